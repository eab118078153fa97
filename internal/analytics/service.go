package analytics

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Repository is the persistence contract for the analytics table.
// It is append-only; no Update/Delete methods exist by design.
type Repository interface {
	Append(ctx context.Context, rec Record) error
	List(ctx context.Context) ([]Record, error)
}

// CoercionError reports a numeric field that failed to parse. It is a client
// error: the offending report is rejected, the table is untouched.
type CoercionError struct {
	Field string
	Value string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("analytics: field %s: cannot parse %q", e.Field, e.Value)
}

// Service coerces outcome reports into records and derives metrics from the
// accumulated table.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// Log coerces and appends one outcome report.
func (s *Service) Log(ctx context.Context, rep Report) error {
	if s.repo == nil {
		return errors.New("analytics: repository not configured")
	}
	rec, err := coerce(rep)
	if err != nil {
		return err
	}
	return s.repo.Append(ctx, rec)
}

func coerce(rep Report) (Record, error) {
	dur, err := strconv.Atoi(rep.CallDurationSec)
	if err != nil {
		return Record{}, &CoercionError{Field: "call_duration_sec", Value: rep.CallDurationSec}
	}
	miles, err := strconv.Atoi(rep.Miles)
	if err != nil {
		return Record{}, &CoercionError{Field: "miles", Value: rep.Miles}
	}

	var rate *float64
	if rep.RateUSD != nil && *rep.RateUSD != "" && *rep.RateUSD != "N/A" {
		f, err := strconv.ParseFloat(*rep.RateUSD, 64)
		if err != nil {
			return Record{}, &CoercionError{Field: "rate_usd", Value: *rep.RateUSD}
		}
		rate = &f
	}

	return Record{
		CarrierPhone:    rep.CarrierPhone,
		CarrierName:     rep.CarrierName,
		CallDurationSec: dur,
		Outcome:         rep.Outcome,
		Sentiment:       rep.Sentiment,
		RateUSD:         rate,
		Origin:          rep.Origin,
		Destination:     rep.Destination,
		Miles:           miles,
	}, nil
}

// Metrics recomputes the snapshot from the current table. Nothing is cached.
//
// Definitions:
// - connected: outcome != "voicemail"
// - acceptance_rate: accepted / connected (0 when nothing connected)
// - connection_rate: connected / total
// - avg/total_rate_usd: over known rates of connected accepted calls
func (s *Service) Metrics(ctx context.Context) (Metrics, error) {
	if s.repo == nil {
		return Metrics{}, errors.New("analytics: repository not configured")
	}
	records, err := s.repo.List(ctx)
	if err != nil {
		return Metrics{}, err
	}
	if len(records) == 0 {
		return Metrics{}, nil
	}

	var connected, accepted, rated int
	var rateSum float64
	for _, rec := range records {
		if rec.Outcome == OutcomeVoicemail {
			continue
		}
		connected++
		if rec.Outcome != OutcomeAccept {
			continue
		}
		accepted++
		if rec.RateUSD != nil {
			rated++
			rateSum += *rec.RateUSD
		}
	}

	out := Metrics{
		ConnectionRate: float64(connected) / float64(len(records)),
	}
	if connected > 0 {
		out.AcceptanceRate = float64(accepted) / float64(connected)
	}
	if rated > 0 {
		out.AvgRateUSD = rateSum / float64(rated)
		out.TotalRateUSD = rateSum
	}
	return out, nil
}

package loads

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownCallType rejects tags outside the workflow contract.
var ErrUnknownCallType = errors.New("loads: unknown type_of_call")

// CarrierVerifier checks a carrier's operating authority by MC number.
// A Verdict with Abort set is a semantic deny, not an error; errors mean the
// registry could not be consulted at all.
type CarrierVerifier interface {
	VerifyMC(ctx context.Context, mcNumber string) (Verdict, error)
}

// Forwarder pushes an accepted call to the downstream workflow.
// The relay never inspects the downstream response; only transport failures
// surface, and they fail the whole request (no retries here, the workflow
// owns retries at the call-type level).
type Forwarder interface {
	Forward(ctx context.Context, call Call) error
}

// Service applies carrier validation and deduplication to inbound calls and
// forwards the ones that pass.
type Service struct {
	verifier  CarrierVerifier
	forwarder Forwarder
	tracker   *Tracker
}

func NewService(verifier CarrierVerifier, forwarder Forwarder, tracker *Tracker) *Service {
	return &Service{verifier: verifier, forwarder: forwarder, tracker: tracker}
}

// Process decides what happens to one call, in this order: carrier
// validation (only when requested), then per-type deduplication, then
// forwarding. A carrier deny short-circuits before any log mutation.
func (s *Service) Process(ctx context.Context, call Call) (Outcome, error) {
	if call.ValidateCarrier == ValidateCarrierYes {
		if s.verifier == nil {
			return Outcome{}, errors.New("loads: carrier verifier not configured")
		}
		v, err := s.verifier.VerifyMC(ctx, call.CarrierMCNumber)
		if err != nil {
			return Outcome{}, fmt.Errorf("carrier verification: %w", err)
		}
		if v.Abort {
			return Outcome{Status: StatusCarrierValidationFailed, Reason: v.Reason}, nil
		}
	}

	switch call.TypeOfCall {
	case TypeNewCall:
		if !s.tracker.RecordNewCall(call) {
			return Outcome{Status: StatusDuplicateSkipped}, nil
		}
		// The call is recorded before the forward attempt; a failed forward
		// leaves the entry in place, so a client retry reports duplicate_skipped.
		if err := s.forward(ctx, call); err != nil {
			return Outcome{}, err
		}
		return Outcome{Status: StatusForwarded}, nil

	case TypeRescheduleCall:
		// Reschedules are never deduplicated.
		if err := s.forward(ctx, call); err != nil {
			return Outcome{}, err
		}
		return Outcome{Status: StatusForwarded}, nil

	case TypeVoicemailRetry:
		if !s.tracker.RecordVoicemailAttempt(call) {
			return Outcome{Status: StatusRetryLimitReached}, nil
		}
		if err := s.forward(ctx, call); err != nil {
			return Outcome{}, err
		}
		return Outcome{Status: StatusForwarded}, nil

	default:
		return Outcome{}, ErrUnknownCallType
	}
}

func (s *Service) forward(ctx context.Context, call Call) error {
	if s.forwarder == nil {
		return errors.New("loads: forwarder not configured")
	}
	if err := s.forwarder.Forward(ctx, call); err != nil {
		return fmt.Errorf("workflow forward: %w", err)
	}
	return nil
}

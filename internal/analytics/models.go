package analytics

// Report is the raw outcome payload for one completed call, as submitted by
// the voice workflow. Numeric fields arrive as strings and are coerced by the
// service; RateUSD may be absent, empty, or the literal "N/A", all of which
// mean the rate is unknown.
type Report struct {
	CarrierPhone    string  `json:"carrier_phone"`
	CarrierName     string  `json:"carrier_name"`
	CallDurationSec string  `json:"call_duration_sec"`
	Outcome         string  `json:"outcome"`
	Sentiment       string  `json:"sentiment"`
	RateUSD         *string `json:"rate_usd"`
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	Miles           string  `json:"miles"`
}

// Record is a coerced, append-only row in the analytics table.
// RateUSD is nil when the rate is unknown; unknown is distinct from zero.
type Record struct {
	CarrierPhone    string
	CarrierName     string
	CallDurationSec int
	Outcome         string
	Sentiment       string
	RateUSD         *float64
	Origin          string
	Destination     string
	Miles           int
}

// Outcome tags with aggregation semantics. Outcome is otherwise free-form.
const (
	OutcomeAccept    = "accept"
	OutcomeVoicemail = "voicemail"
)

// Metrics is a snapshot derived from the full table on every query.
type Metrics struct {
	AcceptanceRate float64 `json:"acceptance_rate"`
	ConnectionRate float64 `json:"connection_rate"`
	AvgRateUSD     float64 `json:"avg_rate_usd"`
	TotalRateUSD   float64 `json:"total_rate_usd"`
}

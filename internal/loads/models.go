package loads

// Call represents a single call event reported by the voice workflow.
//
// Every field is an opaque string to this service except TypeOfCall and
// ValidateCarrier, which drive branching. Deduplication is full structural
// equality over all fields: any difference, including timestamps, makes two
// calls distinct. Do not key dedup on a subset of fields.
type Call struct {
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	PickupDatetime   string `json:"pickup_datetime"`
	DeliveryDatetime string `json:"delivery_datetime"`
	EquipmentType    string `json:"equipment_type"`
	LoadboardRate    string `json:"loadboard_rate"`
	Notes            string `json:"notes"`
	Weight           string `json:"weight"`
	CommodityType    string `json:"commodity_type"`
	NumOfPieces      string `json:"num_of_pieces"`
	Miles            string `json:"miles"`
	Dimensions       string `json:"dimensions"`
	CarrierName      string `json:"carrier_name"`
	CarrierPhone     string `json:"carrier_phone"`
	CarrierMCNumber  string `json:"carrier_mc_number"`
	TypeOfCall       string `json:"type_of_call"`
	ValidateCarrier  string `json:"validate_carrier"`
}

// Call type tags. Part of the workflow contract; keep these stable.
const (
	TypeNewCall        = "new_call"
	TypeRescheduleCall = "reschedule_call"
	TypeVoicemailRetry = "voicemail_retry"
)

// ValidateCarrierYes is the only value that triggers FMCSA validation.
// Anything else (including empty) skips it.
const ValidateCarrierYes = "yes"

// Status values returned to the workflow.
const (
	StatusForwarded               = "forwarded"
	StatusDuplicateSkipped        = "duplicate_skipped"
	StatusRetryLimitReached       = "retry_limit_reached"
	StatusCarrierValidationFailed = "carrier_validation_failed"
)

// Outcome is the relay decision for a processed call.
// Reason is set only for carrier validation failures.
type Outcome struct {
	Status string
	Reason string
}

// Verdict is the carrier authority checker's answer.
// Abort means the call must not be deduplicated or forwarded.
type Verdict struct {
	Abort  bool
	Reason string
}

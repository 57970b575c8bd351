package entities

// GateRequest is the camera's detection payload; field names follow its wire
// format.
type GateRequest struct {
	DetectedText  string `json:"detected_text"`
	DetectionDate string `json:"detection_date"` // YYYY-MM-DD
	DetectionTime string `json:"detection_time"` // HH:mm
}

// Gate decision reasons.
const (
	GateReasonNotFound            = "not_found"             // plate unknown to the system
	GateReasonNoActiveReservation = "no_active_reservation" // plate known, no window covers the detection
)

type GateDecision struct {
	Granted bool   `json:"granted"`
	SpotID  string `json:"spot_id,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

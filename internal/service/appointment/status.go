package appointment

import "strings"

// Appointment lifecycle states. Every appointment starts pending; the other
// three are terminal and reachable only through Respond.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// ParseResponse normalizes a response value from the API ("Accepted",
// "accepted", " REJECTED ") to its canonical status. Pending is not a valid
// response: it is the initial state, not a transition.
func ParseResponse(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case StatusAccepted:
		return StatusAccepted, nil
	case StatusRejected:
		return StatusRejected, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", ErrInvalidResponse
	}
}

// IsTerminal reports whether status is a final state.
func IsTerminal(status string) bool {
	switch status {
	case StatusAccepted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

package appointment

import "errors"

var (
	ErrNotFound        = errors.New("appointment not found")
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrPetNotFound     = errors.New("pet not found")
	ErrNotAssigned     = errors.New("appointment is not assigned to this doctor")
	ErrOwnerOnly       = errors.New("only pet owners can book appointments")
	ErrInvalidResponse = errors.New("invalid response value")
)

// ValidationError reports a booking request the caller can fix.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrInvalidResponse)
}

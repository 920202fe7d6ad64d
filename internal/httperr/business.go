package httperr

import "errors"

// BusinessError is a domain-rule failure identified by a stable code
// (slot_taken, barber_day_off, booking_not_found, invalid_transition,
// already_rated, ...). Handlers translate codes into HTTP statuses; the core
// never deals in status codes directly.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" when err is
// not one.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

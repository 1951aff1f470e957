package httperr

import "errors"

const (
	CodeBadRequest          = "bad_request"
	CodeInvalidDateFormat   = "invalid_date_format"
	CodeCenterNotFound      = "center_not_found"
	CodeSlotTaken           = "slot_taken"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeUnauthorized        = "unauthorized"
	CodeUnauthenticated     = "unauthenticated"
	CodeBadCredentials      = "bad_credentials"
	CodeUserExists          = "user_exists"
	CodeUserNotFound        = "user_not_found"
	CodeInternal            = "internal_error"
)

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

// CodeOf returns the business code carried by err, if any.
func CodeOf(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

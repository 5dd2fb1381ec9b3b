package httperr

import "errors"

// BusinessError is an expected failure carrying a stable snake_case code.
// The code is what clients see as error_code.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// Is lets errors.Is(err, ErrBusiness("code")) match on the code alone.
func (e BusinessError) Is(target error) bool {
	var other BusinessError
	return errors.As(target, &other) && other.Code == e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// CodeOf returns the business code wrapped anywhere in err.
func CodeOf(err error) (string, bool) {
	var be BusinessError
	if !errors.As(err, &be) {
		return "", false
	}
	return be.Code, true
}

func IsBusiness(err error, code string) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}

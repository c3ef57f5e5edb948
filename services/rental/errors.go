package rental

import "errors"

// ErrCode identifies a business-rule failure. Handlers map codes onto
// HTTP statuses; infrastructure errors carry no code and become 500s.
type ErrCode string

const (
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrOutOfStock       ErrCode = "OUT_OF_STOCK"
	ErrAlreadyProcessed ErrCode = "ALREADY_PROCESSED"
)

type codedError struct {
	code    ErrCode
	message string
}

func (e codedError) Error() string { return e.message }
func (e codedError) Code() ErrCode { return e.code }

func makeErr(c ErrCode, message string) error {
	return codedError{code: c, message: message}
}

// Code extracts the business-error code from err, or "" for plain errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

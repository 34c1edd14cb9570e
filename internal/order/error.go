package order

import (
	"errors"
	"fmt"
)

var (
	ErrNoSelection = errors.New("no product selected")
	ErrSaveBooking = errors.New("could not save your order, please try again")
)

// InputError carries every failing form field at once; validation never stops
// at the first violation.
type InputError struct {
	fields map[string]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string]string),
	}
}

// IsInputError extracts the field mapping from an error chain, so callers can
// tell a bad form apart from a missing selection or a storage failure.
func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = msg
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string]string {
	return ie.fields
}

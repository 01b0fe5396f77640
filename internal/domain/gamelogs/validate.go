package gamelogs

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator used for snapshot records.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidationError reports the first invalid record of a collection.
type ValidationError struct {
	Collection string
	Index      int
	Err        error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s[%d]: %v", e.Collection, e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks every log in the collection and fails on the first bad record.
// The whole batch is rejected so no aggregation ever groups under a missing key.
func Validate(collection string, logs []GameLog) error {
	return ValidateEach(collection, logs)
}

// ValidateEach runs struct validation over any record slice.
func ValidateEach[T any](collection string, records []T) error {
	v := Validator()
	for i := range records {
		if err := v.Struct(records[i]); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
				err = fmt.Errorf("field %s failed %q", fieldErrs[0].Field(), fieldErrs[0].Tag())
			}
			return &ValidationError{Collection: collection, Index: i, Err: err}
		}
	}
	return nil
}

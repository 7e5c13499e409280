package people

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nikmy/txcommand/pkg/errors"
	"github.com/nikmy/txcommand/pkg/txn"
)

const MaxNameLength = 255

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags of cmd and reports the first violation
// as a *txn.ValidationError.
func Validate(cmd any) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) || len(violations) == 0 {
		return err
	}

	v := violations[0]
	return txn.Invalid(v.Field(), reason(v))
}

func reason(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return "must not be empty"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", v.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", v.Param())
	case "mongodb":
		return "must be an object id"
	default:
		return fmt.Sprintf("failed %q check", v.Tag())
	}
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/phrasey/internal/model"
)

var validate = validator.New()

// fieldFlags maps config fields to the flag names users see in errors.
var fieldFlags = map[string]string{
	"StoreURI":        "--store",
	"PhrasesPerRound": "--phrases",
	"InputBoxWidth":   "--box-width",
	"LogLevel":        "--log-level",
}

// Validate checks a resolved config before the drill starts.
func Validate(cfg model.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "\n"))
}

func describe(fe validator.FieldError) string {
	name, ok := fieldFlags[fe.Field()]
	if !ok {
		name = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty", name)
	case "gte":
		return fmt.Sprintf("%s must be >= %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}

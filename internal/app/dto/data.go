package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validate is the shared validator instance behind every request DTO.
// InitValidator must run once at startup before any Bind.
var (
	Validate = validator.New()
	trans    ut.Translator
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type Response struct {
	Message string `json:"message"`
}

// InitValidator wires english translations into the shared validator and
// makes field names in messages come from the json tag, so a validation
// error reads as "origin is a required field" rather than "Origin".
func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(Validate, trans); err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return nil
}

// ValidateSingleError validates req and returns only the first violation,
// translated. One clear message per response beats a wall of them.
func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return errors.New(validationErrs[0].Translate(trans))
		}

		return err
	}

	return nil
}

// Package binding decodes JSON request bodies and validates them with
// go-playground/validator, reporting violations as entity.ValidationErrors
// keyed by JSON field name.
package binding

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/respond"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	locale := en.New()
	translator, _ = ut.New(locale, locale).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(fmt.Sprintf("binding: register translations: %v", err))
	}
}

// Decode reads a JSON body into dst. Syntax and type errors become a 400
// AppError. An oversized body becomes 413.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return respond.BadRequest("malformed JSON body", errors.New("empty body"))
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return respond.NewAppError(http.StatusRequestEntityTooLarge, "request body too large", err)
		}
		return respond.BadRequest("malformed JSON body", err)
	}
	return nil
}

// Validate checks v's `validate` tags.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := make(entity.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, entity.ValidationError{
			Field:   baseField(fe.Field()),
			Message: strings.TrimPrefix(fe.Translate(translator), fe.Field()+" "),
		})
	}
	return out
}

// Bind decodes then validates.
func Bind(r *http.Request, dst any) error {
	if err := Decode(r, dst); err != nil {
		return err
	}
	return Validate(dst)
}

// baseField maps "authorIds[2]" to "authorIds".
func baseField(f string) string {
	if i := strings.IndexByte(f, '['); i >= 0 {
		return f[:i]
	}
	return f
}

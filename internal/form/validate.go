package form

import (
	"errors"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phonePattern allows an optional extension: "415-555-1234 ext 2".
var phonePattern = regexp.MustCompile(`(?i)^[0-9+() .-]*(?:(?:ext\.?|x|#)\s*[0-9]+)?$`)

// validLink accepts absolute URLs and host-only links such as
// "www.facebook.com/fillmore".
func validLink(s string) bool {
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	return err == nil && u.Host != ""
}

// Validator checks decoded records against their `validate` tags.  It
// satisfies echo.Validator.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a Validator with the custom "phone" and "link"
// rules registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("link", func(fl validator.FieldLevel) bool {
		return validLink(fl.Field().String())
	})
	// report form field names rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Validate implements echo.Validator.
func (cv *Validator) Validate(i any) error {
	return cv.v.Struct(i)
}

// Messages turns a validation error into one human readable line per
// failing field.  Other errors, such as the joined parse errors of
// Decode, give one message per line.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return strings.Split(err.Error(), "\n")
	}
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "url", "link":
		return fe.Field() + " must be a valid URL"
	case "phone":
		return fe.Field() + " may only contain digits, spaces, + ( ) . - and an extension"
	}
	return fe.Field() + " is invalid"
}

package validator

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/PauloHFS/pagelinks/internal/view"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "env"} {
			if name, _, _ := strings.Cut(fld.Tag.Get(tag), ","); name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

func (r *ValidationResult) add(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

func (r ValidationResult) Error() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Field + ": " + e.Message
	}
	return strings.Join(msgs, "; ")
}

func Validate(s any) error {
	return validate.Struct(s)
}

// Result converts the error returned by Validate into field messages.
func Result(err error) ValidationResult {
	result := ValidationResult{Valid: true, Errors: []ValidationError{}}
	if err == nil {
		return result
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		result.add("", err.Error())
		return result
	}

	for _, fe := range verrs {
		result.add(fe.Field(), message(fe))
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "é obrigatório"
	case "gte", "min":
		return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("deve ser no máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("deve ser um de: %s", fe.Param())
	case "numeric":
		return "deve ser numérico"
	default:
		return fmt.Sprintf("falhou na regra %q", fe.Tag())
	}
}

// LinkQuery holds the parameters of a pagination request. Page is the
// zero-based index derived from the 1-based "page" parameter.
type LinkQuery struct {
	Pages    int `query:"pages" validate:"lte=1000000"`
	Page     int `query:"page"`
	MaxLinks int `query:"max_links" validate:"lte=1000"`
}

// ParseLinkQuery reads pages, page and max_links from values. Negative numbers
// are clamped to zero; only malformed or oversized values are reported.
func ParseLinkQuery(values url.Values, defaultMaxLinks int) (LinkQuery, ValidationResult) {
	result := ValidationResult{Valid: true, Errors: []ValidationError{}}
	q := LinkQuery{MaxLinks: defaultMaxLinks}

	raw := values.Get("pages")
	if raw == "" {
		result.add("pages", "é obrigatório")
	} else if n, err := strconv.Atoi(raw); err != nil {
		result.add("pages", "deve ser um número inteiro")
	} else {
		q.Pages = max(n, 0)
	}

	if raw := values.Get("max_links"); raw != "" {
		if n, err := strconv.Atoi(raw); err != nil {
			result.add("max_links", "deve ser um número inteiro")
		} else {
			q.MaxLinks = max(n, 0)
		}
	}

	q.Page = view.PageIndex(values.Get("page"))

	if !result.Valid {
		return q, result
	}
	return q, Result(Validate(q))
}

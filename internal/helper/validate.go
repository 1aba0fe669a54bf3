package helper

import (
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields under their json names, so error maps line up
// with the request body the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct runs the declarative schema on a request struct and returns
// a field -> message mapping. An empty map means valid; callers must abort
// before any network or storage side effect when the map is non-empty.
func ValidateStruct(s interface{}) map[string]string {
	errs := map[string]string{}

	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_"] = "invalid request"
		return errs
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errs[field] = field + " is required"
		case "email":
			errs[field] = "must be a valid email address"
		case "min":
			errs[field] = "must be at least " + fe.Param() + " characters"
		case "oneof":
			errs[field] = "must be one of: " + fe.Param()
		case "url":
			errs[field] = "must be a valid URL"
		case "datetime":
			errs[field] = "must be an RFC3339 timestamp"
		case "gte":
			errs[field] = "must be " + fe.Param() + " or later"
		default:
			errs[field] = "is invalid"
		}
	}
	return errs
}

// FileConstraint is the schema for an uploaded file field: max byte size and
// allowed extensions (lowercase, with dot).
type FileConstraint struct {
	Field      string
	MaxSize    int64
	Extensions []string
}

var (
	ImageConstraint = FileConstraint{
		Field:      "file",
		MaxSize:    5 * 1024 * 1024,
		Extensions: []string{".jpg", ".jpeg", ".png", ".webp"},
	}
	DocumentConstraint = FileConstraint{
		Field:      "file",
		MaxSize:    10 * 1024 * 1024,
		Extensions: []string{".pdf", ".doc", ".docx"},
	}
	CVConstraint = FileConstraint{
		Field:      "cv",
		MaxSize:    5 * 1024 * 1024,
		Extensions: []string{".pdf", ".doc", ".docx"},
	}
)

// ValidateFile checks presence, size and extension before any upload is
// attempted, so no storage call is wasted on a doomed file.
func (c FileConstraint) ValidateFile(filename string, size int64) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(filename) == "" || size == 0 {
		errs[c.Field] = c.Field + " is required"
		return errs
	}
	if size > c.MaxSize {
		errs[c.Field] = "file too large (max " + sizeLabel(c.MaxSize) + ")"
		return errs
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range c.Extensions {
		if ext == allowed {
			return errs
		}
	}
	errs[c.Field] = "only " + strings.Join(c.Extensions, "/") + " allowed"
	return errs
}

func sizeLabel(n int64) string {
	mb := n / (1024 * 1024)
	if mb > 0 {
		return strconv.FormatInt(mb, 10) + "MB"
	}
	return strconv.FormatInt(n, 10) + "B"
}

package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/musictags/tagchart/internal/dataset"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()
}

// MaxTagsOptions are the allowed values for the max_tags form field.
var MaxTagsOptions = []string{"10", "15", "20"}

// SearchForm carries the submitted search form fields.
type SearchForm struct {
	Artist  string `validate:"required"`
	MaxTags string `validate:"required,oneof=10 15 20"`
}

// Result is the outcome of validating a search form: either valid, or
// invalid with a user-facing reason. Handlers branch on Valid instead of
// handling validation as an error.
type Result struct {
	Valid  bool
	Reason string
}

func invalid(reason string) Result {
	return Result{Reason: reason}
}

// ValidateSearchForm checks the form fields and verifies the submitted
// artist against the set of known artist names (exact string match).
func ValidateSearchForm(form SearchForm, cat *dataset.Catalog) Result {
	if err := Validate.Struct(form); err != nil {
		if form.Artist == "" {
			return invalid("artist name is required")
		}
		return invalid("max_tags must be one of 10, 15 or 20")
	}
	if !cat.HasArtist(form.Artist) {
		return invalid("invalid artist name")
	}
	return Result{Valid: true}
}

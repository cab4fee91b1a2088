package notes

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/goliatone/go-notes/internal/markup"
)

// RenderNodeRequest selects a stored leaf node by ID or by path.
type RenderNodeRequest struct {
	ID    string                `json:"id,omitempty"`
	Path  string                `json:"path,omitempty"`
	Style markup.NumberingStyle `json:"style,omitempty"`
}

// Validate requires exactly one of ID and Path and a known style.
func (r RenderNodeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID,
			validation.When(r.Path == "", validation.Required.Error("id or path is required")),
			validation.When(r.Path != "", validation.Empty.Error("id and path are mutually exclusive")),
			is.UUID,
		),
		validation.Field(&r.Style,
			validation.In(markup.StyleNumeric, markup.StyleAlphabetic, markup.StyleNone),
		),
	)
}

package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/jobeserver/demo/pkg/validation"
)

// DashboardContext is the fixed value handed to the dashboard template.
const DashboardContext = "items_all"

type DashboardPage struct {
	Context   string
	CSRFToken string
	MountPath string
}

// SubmissionRequest keeps the members of content as raw JSON so the echo
// returns them unchanged.
type SubmissionRequest struct {
	Content map[string]json.RawMessage `json:"content" validate:"required"`
} // @name model.SubmissionRequest

func (r *SubmissionRequest) Validate(ctx context.Context) error {
	return validation.Validate().StructCtx(ctx, r)
}

var ErrMissingField = errors.New("missing form field")

var receiveImageFields = []string{"image", "label", "city"}

type ReceiveImageRequest struct {
	Image string `form:"image"`
	Label string `form:"label" mod:"trim"`
	City  string `form:"city" mod:"trim"`
} // @name model.ReceiveImageRequest

// Validate only requires every field to be sent; empty values are accepted.
func (r *ReceiveImageRequest) Validate(ctx context.Context, form url.Values) error {
	for _, key := range receiveImageFields {
		if _, ok := form[key]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}

	return validation.ConformAndValidate(ctx, r)
}

type ReceiveImageResponse struct {
	Context string `json:"context"`
} // @name model.ReceiveImageResponse

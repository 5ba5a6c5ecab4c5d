// Package validation applies struct defaults and validation tags.
package validation

import (
	"context"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Apply fills zero fields from `default` tags and then checks `validate` tags.
func Apply(ctx context.Context, v any) error {
	if err := defaults.Set(v); err != nil {
		return err
	}
	return validate.StructCtx(ctx, v)
}

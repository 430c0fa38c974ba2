package types

import (
	"fmt"

	"github.com/pricofy/translate-model/internal/validation"
)

func validate(v any) error {
	if err := validation.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

package quantity

import (
	"fmt"

	"github.com/khristoforovs/arshin/fundamental"
)

// ConversionError reports a conversion between incompatible dimensions.
type ConversionError struct {
	Expected fundamental.Dimension
	Got      fundamental.Dimension
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("incompatible units: expected %s, got %s", e.Expected, e.Got)
}

package format

import (
	"encoding"

	"github.com/squall321/AdvancedModeller/kfile"
)

// Encoder renders a parse result to some output representation.
type Encoder interface {
	encoding.TextMarshaler
	Encode(result *kfile.ParseResult) error
}

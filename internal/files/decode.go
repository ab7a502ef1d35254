package files

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw export bytes to text. A UTF-8 or UTF-16 byte order
// mark selects that encoding and is removed. Without one, valid UTF-8 is
// kept and anything else is read as Windows-1252, the code page terminal
// emulators save logs in.
func Decode(data []byte) string {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		decoded = data
	}
	if utf8.Valid(decoded) {
		return string(decoded)
	}

	latin, err := charmap.Windows1252.NewDecoder().Bytes(decoded)
	if err != nil {
		return string(decoded)
	}
	return string(latin)
}

// internal/output/text.go
package output

import (
	"io"
	"strconv"
)

// WriteText prints the answer alone on one line.
func WriteText(w io.Writer, a Answer) error {
	_, err := io.WriteString(w, strconv.FormatUint(a.Value, 10)+"\n")
	return err
}

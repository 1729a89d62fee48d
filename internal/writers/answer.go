// internal/writers/answer.go
package writers

import "advent/internal/output"

func init() {
	Register(output.FormatText, output.WriteText)
	Register(output.FormatJSON, output.WriteJSON)
	Register(output.FormatPretty, output.WritePretty)
}

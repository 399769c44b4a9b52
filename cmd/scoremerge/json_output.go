package main

import (
	"encoding/json"
	"io"
)

// emitJSON writes v as indented JSON. The --json flags route merge summaries
// and history runs through here so scripted callers get stable field names.
func emitJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

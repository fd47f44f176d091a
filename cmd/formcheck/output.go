package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/dmitrymomot/formrules"
)

// report is one printed validation pass.
type report struct {
	Trigger string            `json:"trigger"`
	Fields  []string          `json:"fields,omitempty"`
	Time    time.Time         `json:"time"`
	Result  formrules.Result  `json:"result"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func printReport(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

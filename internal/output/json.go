package output

import (
	"encoding/json"
)

// JSONFormatter emits the full report (plan, both series, summary and
// annual breakdown) as a single JSON document.
type JSONFormatter struct {
	Pretty bool
}

func (JSONFormatter) Name() string { return "json" }

func (f JSONFormatter) Format(report *Report) ([]byte, error) {
	if f.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

package importer

import (
	"encoding/json"
	"fmt"
)

// validateAnswers keeps entries whose value is a JSON string or null and
// drops everything else with a per-entry diagnostic. A bad entry never
// aborts the rest of the import.
func validateAnswers(raw map[string]json.RawMessage) (map[string]*string, []string) {
	answers := make(map[string]*string, len(raw))
	var warnings []string
	for question, value := range raw {
		if string(value) == "null" {
			answers[question] = nil
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			warnings = append(warnings, fmt.Sprintf("dropping invalid entry %q: value is not a string or null", question))
			continue
		}
		answers[question] = &s
	}
	return answers, warnings
}

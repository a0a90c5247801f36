package domain

import "strings"

// ApplyBoostRules multiplies the priorities of each rule's boost categories
// when the rule's source category matches the answered category and its
// keyword appears in the answer. Multiple rules may fire for one answer;
// their effects compose multiplicatively. Only categories already present in
// the priority map are touched. Returns the keys whose priority changed.
func ApplyBoostRules(rules []BoostRule, answer, categoryKey string, priorities map[string]float64) []string {
	lowered := strings.ToLower(answer)
	var changed []string
	for _, rule := range rules {
		if rule.SourceCategory != categoryKey {
			continue
		}
		if !strings.Contains(lowered, strings.ToLower(rule.Keyword)) {
			continue
		}
		for _, key := range rule.BoostCategories {
			if p, ok := priorities[key]; ok {
				priorities[key] = p * rule.Factor
				changed = append(changed, key)
			}
		}
	}
	return changed
}

package inbox

import (
	"strings"

	"rental-ops/internal/model"
)

// Keyword tiers, checked highest first. Matching is case-insensitive substring.
var classifierRules = []struct {
	urgency  model.Urgency
	keywords []string
}{
	{model.UrgencyUrgent, []string{"leak", "flood", "fire", "smoke", "gas", "no heat", "lockout", "locked out"}},
	{model.UrgencyHigh, []string{"broken", "not working", "no hot water", "no power", "no wifi"}},
	{model.UrgencyMedium, []string{"replace", "repair", "clean", "stain"}},
}

// Classify guesses the urgency of a free-text request. Text matching no rule is low.
func Classify(title, body string) model.Urgency {
	text := strings.ToLower(title + "\n" + body)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.urgency
			}
		}
	}
	return model.UrgencyLow
}

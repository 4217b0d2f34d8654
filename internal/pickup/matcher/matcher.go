package matcher

import (
	"strings"

	"express-sms/internal/pickup"
)

// Matcher extracts pickup codes using an ordered rule list.
type Matcher struct {
	rules []Rule
}

// New returns a Matcher over rules. With no rules it uses DefaultRules.
func New(rules ...Rule) *Matcher {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Matcher{rules: rules}
}

// Match tries each rule in order and stops at the first structural match.
// A match whose code or location capture is empty is reported as no match;
// later rules are not consulted in that case.
func (m *Matcher) Match(text string) (pickup.Extraction, bool) {
	for _, rule := range m.rules {
		groups := rule.Expr.FindStringSubmatch(text)
		if groups == nil {
			continue
		}

		ext := pickup.Extraction{
			Code:     capture(rule, groups, groupCode),
			Location: capture(rule, groups, groupLocation),
			Rule:     rule.Name,
			Sender:   capture(rule, groups, groupSender),
		}
		if ext.Sender == "" {
			ext.Sender = capture(rule, groups, groupSenderAlt)
		}

		if ext.Code == "" || ext.Location == "" {
			return pickup.Extraction{}, false
		}
		return ext, true
	}
	return pickup.Extraction{}, false
}

func capture(rule Rule, groups []string, name string) string {
	idx := rule.Expr.SubexpIndex(name)
	if idx < 0 || idx >= len(groups) {
		return ""
	}
	return strings.TrimSpace(groups[idx])
}

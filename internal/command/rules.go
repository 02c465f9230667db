package command

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/platform"
)

// MatchRule reports whether any of rule.Match (an OR) matches info, each
// match-config itself an AND over the predicates it sets.
func MatchRule(rule config.WindowRule, info platform.WindowInfo) bool {
	for _, m := range rule.Match {
		if matchConfig(m, info) {
			return true
		}
	}
	return false
}

func matchConfig(m config.MatchConfig, info platform.WindowInfo) bool {
	if m.ProcessName != nil && !matchPredicate(*m.ProcessName, info.ProcessName) {
		return false
	}
	if m.ClassName != nil && !matchPredicate(*m.ClassName, info.ClassName) {
		return false
	}
	if m.Title != nil && !matchPredicate(*m.Title, info.Title) {
		return false
	}
	return true
}

func matchPredicate(p config.MatchPredicate, value string) bool {
	switch p.Op {
	case config.MatchEquals:
		return value == p.Value
	case config.MatchNotEquals:
		return value != p.Value
	case config.MatchIncludes:
		return strings.Contains(value, p.Value)
	case config.MatchRegex:
		return regexMatches(p.Value, value)
	case config.MatchNotRegex:
		return p.Value != "" && !regexMatches(p.Value, value)
	default:
		return false
	}
}

// regexMatches compiles the pattern fresh each call; an invalid pattern
// (already reduced to "" at config-load time, per MatchPredicateInvalid)
// never matches.
func regexMatches(pattern, value string) bool {
	if pattern == "" {
		return false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(value)
}

// MatchedRule pairs a matched rule with the stable id used for
// done_window_rules bookkeeping.
type MatchedRule struct {
	ID   string
	Rule config.WindowRule
}

// ApplicableRules returns the window rules that should fire for trigger on
// info, skipping rules already recorded in doneWindowRules when RunOnce is
// set. A rule is identified by its position in cfg.WindowRules, which is
// stable across one config's lifetime (a reload reconstructs the whole
// slice, so done ids are only meaningful against the config they were
// recorded under).
func ApplicableRules(cfg *config.Config, trigger config.RuleTrigger, info platform.WindowInfo, doneWindowRules []string) []MatchedRule {
	done := make(map[string]bool, len(doneWindowRules))
	for _, id := range doneWindowRules {
		done[id] = true
	}

	var applicable []MatchedRule
	for i, rule := range cfg.WindowRules {
		if !hasTrigger(rule.On, trigger) {
			continue
		}
		id := ruleID(i)
		if rule.RunOnce && done[id] {
			continue
		}
		if MatchRule(rule, info) {
			applicable = append(applicable, MatchedRule{ID: id, Rule: rule})
		}
	}
	return applicable
}

func hasTrigger(on []config.RuleTrigger, trigger config.RuleTrigger) bool {
	for _, t := range on {
		if t == trigger {
			return true
		}
	}
	return false
}

// ruleID names a rule by its index for done_window_rules bookkeeping; a
// stable identity independent of match/command contents, so editing a
// rule's commands without moving it in the list still recognizes it as
// "already run" across a config reload.
func ruleID(index int) string {
	return "rule#" + strconv.Itoa(index)
}

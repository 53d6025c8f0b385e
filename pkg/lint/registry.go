package lint

import (
	"fmt"
	"sort"
	"sync"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	rules: make(map[string]Rule),
}

// Registry stores registered lint rules for discovery. It is safe for
// concurrent use; after startup the active set is read-only in practice.
type Registry struct {
	mu       sync.RWMutex
	rules    map[string]Rule // keyed by ID
	warnings []string
}

// Register adds a data-driven rule to the global registry.
// Call this from init() functions in rule packages.
func Register(def RuleDef) {
	RegisterRule(WrapRuleDef(def))
}

// RegisterRule adds a rule to the global registry. A malformed rule (missing
// ID, no check function, duplicate ID) is excluded from the active set and
// recorded as a load warning; registration never panics.
func RegisterRule(rule Rule) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	if err := validateRule(rule); err != nil {
		globalRegistry.warnings = append(globalRegistry.warnings, err.Error())
		return
	}
	if _, exists := globalRegistry.rules[rule.ID()]; exists {
		globalRegistry.warnings = append(globalRegistry.warnings,
			fmt.Sprintf("rule %q registered twice; keeping first registration", rule.ID()))
		return
	}
	globalRegistry.rules[rule.ID()] = rule
}

func validateRule(rule Rule) error {
	if rule == nil {
		return fmt.Errorf("nil rule rejected")
	}
	if rule.ID() == "" {
		return fmt.Errorf("rule with empty ID rejected (name %q)", rule.Name())
	}
	if w, ok := rule.(*wrappedRuleDef); ok && w.def.Check == nil {
		return fmt.Errorf("rule %q has no check function", rule.ID())
	}
	return nil
}

// Active returns all registered rules sorted by ID. The ordering is stable
// across runs so that report ordering is reproducible.
func Active() []Rule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]Rule, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID() < rules[j].ID()
	})
	return rules
}

// GetByID returns a rule by its ID.
func GetByID(id string) (Rule, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetByGroup returns all rules in a specific group, sorted by ID.
func GetByGroup(group string) []Rule {
	var rules []Rule
	for _, rule := range Active() {
		if rule.Group() == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// AllRules returns metadata for all registered rules, sorted by ID.
func AllRules() []RuleInfo {
	active := Active()
	infos := make([]RuleInfo, 0, len(active))
	for _, rule := range active {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}

// LoadWarnings returns messages for rules that failed registration.
func LoadWarnings() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	out := make([]string, len(globalRegistry.warnings))
	copy(out, globalRegistry.warnings)
	return out
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules and warnings. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]Rule)
	globalRegistry.warnings = nil
}

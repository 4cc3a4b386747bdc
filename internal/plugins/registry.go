package plugins

import (
	"fmt"
	"sort"
)

// Registry maps payment methods to their plugin and keeps the fraud rules in
// registration order. It is immutable once built, so concurrent reads need no locking.
type Registry struct {
	byMethod map[string]PaymentPlugin
	rules    []AntiFraudRule
}

// NewRegistry builds a registry from the given components. A component may be a
// PaymentPlugin, an AntiFraudRule or both; anything else is rejected, as is a second
// plugin for an already registered method.
func NewRegistry(components ...interface{}) (*Registry, error) {
	r := &Registry{
		byMethod: make(map[string]PaymentPlugin),
	}

	for _, c := range components {
		plugin, isPlugin := c.(PaymentPlugin)
		rule, isRule := c.(AntiFraudRule)
		if !isPlugin && !isRule {
			return nil, fmt.Errorf("component %T is neither a payment plugin nor an anti-fraud rule", c)
		}

		if isPlugin {
			method := plugin.Method()
			if _, exists := r.byMethod[method]; exists {
				return nil, fmt.Errorf("payment method %s registered twice", method)
			}
			r.byMethod[method] = plugin
		}
		if isRule {
			r.rules = append(r.rules, rule)
		}
	}

	return r, nil
}

// Default returns the registry with every built-in method.
func Default() *Registry {
	r, err := NewRegistry(&CardPlugin{}, &PixPlugin{})
	if err != nil {
		panic(err)
	}
	return r
}

// Plugin looks up the plugin for method. The match is exact and case sensitive.
func (r *Registry) Plugin(method string) (PaymentPlugin, bool) {
	p, ok := r.byMethod[method]
	return p, ok
}

func (r *Registry) Rules() []AntiFraudRule {
	rules := make([]AntiFraudRule, len(r.rules))
	copy(rules, r.rules)
	return rules
}

func (r *Registry) SupportedMethods() []string {
	methods := make([]string, 0, len(r.byMethod))
	for method := range r.byMethod {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}

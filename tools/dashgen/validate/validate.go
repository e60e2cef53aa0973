// Package validate checks generated rule expressions against the set of
// metrics the service actually exports, so a renamed metric breaks the
// build instead of silently producing an empty panel.
package validate

import (
	"fmt"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/price-alert-api/tools/dashgen/rules"
)

// Expr parses a single PromQL expression and reports any metric name not
// present in known.
func Expr(expr string, known map[string]bool) error {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", expr, err)
	}

	var unknown []string
	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		if vs, ok := node.(*parser.VectorSelector); ok && vs.Name != "" {
			if !known[vs.Name] {
				unknown = append(unknown, vs.Name)
			}
		}
		return nil
	})

	if len(unknown) > 0 {
		return fmt.Errorf("expression %q references unknown metrics %v", expr, unknown)
	}
	return nil
}

// Rules validates every expression in the PrometheusRule CR. Recording
// rule names defined by the CR are added to known before alert rules are
// checked, so rules may reference each other in definition order.
func Rules(pr rules.PrometheusRule, known map[string]bool) error {
	merged := make(map[string]bool, len(known))
	for name := range known {
		merged[name] = true
	}

	for _, group := range pr.Spec.Groups {
		for _, rule := range group.Rules {
			if rule.Record != "" {
				merged[rule.Record] = true
			}
		}
	}

	for _, group := range pr.Spec.Groups {
		for _, rule := range group.Rules {
			if err := Expr(rule.Expr, merged); err != nil {
				return fmt.Errorf("group %s: %w", group.Name, err)
			}
		}
	}
	return nil
}

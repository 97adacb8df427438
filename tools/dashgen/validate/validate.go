// Package validate checks generated dashboards for broken PromQL and
// references to metrics the server does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors fail validation, warnings
// do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation passed.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Histogram series suffixes appended by the Prometheus client. Stripped
// before checking a selector against the known metric set.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Dashboard validates every query expression in the dashboard: each must
// parse as PromQL, and every metric it selects must appear in known.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	for _, outer := range dash.Panels {
		if outer.RowPanel == nil {
			continue
		}
		for _, p := range outer.RowPanel.Panels {
			title := "(untitled)"
			if p.Title != nil && *p.Title != "" {
				title = *p.Title
			}
			for _, target := range p.Targets {
				expr, ok := targetExpr(target)
				if !ok {
					res.warnf("panel %q: target has no expr", title)
					continue
				}
				checkExpr(&res, title, expr, known)
			}
		}
	}
	return res
}

// targetExpr extracts the PromQL expression from a query target via its
// JSON form, so it works for any datasource variant.
func targetExpr(target any) (string, bool) {
	raw, err := json.Marshal(target)
	if err != nil {
		return "", false
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", false
	}
	expr, ok := fields["expr"].(string)
	return expr, ok && expr != ""
}

func checkExpr(res *Result, title, expr string, known map[string]bool) {
	ast, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("panel %q: invalid PromQL %q: %v", title, expr, err)
		return
	}

	parser.Inspect(ast, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[vs.Name] && !known[baseMetric(vs.Name)] {
			res.errorf("panel %q: unknown metric %q in %q", title, vs.Name, expr)
		}
		return nil
	})
}

func baseMetric(name string) string {
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base
		}
	}
	return name
}

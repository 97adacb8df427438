package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "flyerdeals-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "flyerdeals-recording",
					Rules: []Rule{
						{
							Record: "flyerdeals:http_requests:rate5m",
							Expr:   `sum(rate(flyerdeals_http_requests_total[5m]))`,
						},
						{
							Record: "flyerdeals:http_errors:rate5m",
							Expr:   `sum(rate(flyerdeals_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "flyerdeals:catalog_fetches:rate5m",
							Expr:   `rate(flyerdeals_catalog_fetches_total[5m])`,
						},
						{
							Record: "flyerdeals:catalog_fetch_errors:rate5m",
							Expr:   `rate(flyerdeals_catalog_fetch_errors_total[5m])`,
						},
						{
							Record: "flyerdeals:compare_runs:rate5m",
							Expr:   `rate(flyerdeals_compare_runs_total[5m])`,
						},
					},
				},
			},
		},
	}
}

package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// flyer-deals operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "flyerdeals-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "flyerdeals-alerts",
					Rules: []Rule{
						{
							Alert: "FlyerDealsDown",
							Expr:  `absent(up{job="flyer-deals"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Flyer Deals is down",
								"description": "The flyer-deals job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "FlyerDealsReadinessDown",
							Expr:  `flyerdeals_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Flyer Deals readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "FlyerDealsHighErrorRate",
							Expr:  `flyerdeals:http_errors:rate5m / flyerdeals:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Flyer Deals",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "FlyerDealsCatalogFetchErrors",
							Expr:  `flyerdeals:catalog_fetch_errors:rate5m > 0`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Catalog fetch errors detected",
								"description": "Fetches from the flyer catalog feed have been failing for more than 10 minutes. The served catalog may be stale.",
							},
						},
						{
							Alert: "FlyerDealsCatalogEmpty",
							Expr:  `flyerdeals_catalog_deals == 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Deal catalog is empty",
								"description": "The in-memory catalog has held zero deals for more than 15 minutes. Comparisons will return no matches.",
							},
						},
					},
				},
			},
		},
	}
}

package goal

// metricCategories is the reviewed mapping from ingested metric types to
// goal categories. A metric type absent from this table never touches a
// goal; what happens to such a metric is decided by
// EngineConfig.UnmappedPolicy rather than silently falling through.
var metricCategories = map[string]GoalCategory{
	"steps":         CategoryActivity,
	"sleep_minutes": CategorySleep,
}

// MetricCategory resolves a metric type to its goal category.
func MetricCategory(metricType string) (GoalCategory, bool) {
	c, ok := metricCategories[metricType]
	return c, ok
}

// MetricTypeForCategory is the inverse lookup, used when a goal is
// recomputed outside an ingestion (e.g. after its target is edited).
func MetricTypeForCategory(category GoalCategory) (string, bool) {
	for metricType, c := range metricCategories {
		if c == category {
			return metricType, true
		}
	}
	return "", false
}

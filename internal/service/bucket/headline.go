package bucket

import "fmt"

// Headline derives the user-facing summary line for the grouped plant list.
// Priority: overdue count, then today's count, then this week's count, then
// a literal fallback. Computed fresh on every render.
func Headline(buckets *Buckets) string {
	if overdue := buckets.OverdueCount(); overdue > 0 {
		return fmt.Sprintf("%d %s overdue for watering", overdue, pluralPlants(overdue))
	}

	if n := len(buckets.Today); n > 0 {
		return fmt.Sprintf("%d %s to water today", n, pluralPlants(n))
	}

	if n := len(buckets.ThisWeek); n > 0 {
		return fmt.Sprintf("%d %s to water this week", n, pluralPlants(n))
	}

	return "No plants to water this week"
}

func pluralPlants(n int) string {
	if n == 1 {
		return "plant"
	}
	return "plants"
}

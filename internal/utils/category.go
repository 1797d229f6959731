package utils

import "strings"

// NormalizeCategory maps UI category labels onto catalog category slugs.
// The catalog uses one slug per service family while the admin UI has grown
// a few synonyms over time.
func NormalizeCategory(raw string) string {
	c := strings.ToLower(strings.TrimSpace(raw))
	c = strings.ReplaceAll(c, " ", "_")
	switch c {
	case "house_moving", "removals":
		return "moving"
	case "assembly", "furniture":
		return "furniture_assembly"
	case "office", "office_setup":
		return "office_setup"
	}
	return c
}

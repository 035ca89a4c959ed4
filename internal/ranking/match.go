package ranking

import "strings"

// FuzzyTagMatch reports whether two free-text tags match: both sides are
// case-folded and a match is exact equality or a substring relationship in
// either direction. This lets "nuts" match "tree nuts" and vice versa.
func FuzzyTagMatch(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// hasAllergen reports whether any of the user's allergy names fuzzy-matches
// any of the meal's allergen tags. Severity is deliberately ignored: any
// severity excludes.
func hasAllergen(allergens []string, allergies []Allergy) bool {
	for _, allergy := range allergies {
		for _, tag := range allergens {
			if FuzzyTagMatch(allergy.Name, tag) {
				return true
			}
		}
	}
	return false
}

// matchesAnyTag reports whether any preference tag fuzzy-matches any of the
// meal's dietary tags. An empty preference list never matches.
func matchesAnyTag(mealTags []string, prefs []string) bool {
	for _, pref := range prefs {
		for _, tag := range mealTags {
			if FuzzyTagMatch(pref, tag) {
				return true
			}
		}
	}
	return false
}

// matchesExactTag is the strict variant used for religious requirements:
// case-insensitive equality only, no substring matching.
func matchesExactTag(mealTags []string, required []string) bool {
	for _, req := range required {
		for _, tag := range mealTags {
			if strings.EqualFold(tag, req) {
				return true
			}
		}
	}
	return false
}

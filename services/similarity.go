package services

import (
	"strings"

	"simplexify_server/models"
)

// keywordExpansions relates a programming topic to the terms it may appear
// under. Lookup is substring-based in both directions: an interest that
// contains the key matches any interest containing one of the expansions,
// and vice versa.
var keywordExpansions = []struct {
	key        string
	expansions []string
}{
	{"c++", []string{"c++", "cpp", "c plus plus", "programming"}},
	{"python", []string{"python", "programming"}},
	{"java", []string{"java", "programming"}},
	{"javascript", []string{"javascript", "js", "programming"}},
	{"web development", []string{"web", "web dev", "html", "css", "javascript", "frontend", "backend"}},
	{"programming", []string{"code", "coding", "development", "software"}},
}

// significantWords are domain terms that make two multi-word interests
// similar when both contain one. Filler words never appear here.
var significantWords = []string{
	"programming", "development", "web", "data", "science",
	"machine", "learning", "design", "security",
}

// matchBonusKeywords add weight to programming-related matches when scoring.
var matchBonusKeywords = []string{
	"c++", "python", "java", "javascript", "programming", "development", "web",
}

// AreSimilarInterests reports whether two interests should be treated as a
// match. The relation is symmetric but not transitive: "data science" and
// "data security" each relate to "cyber security" differently.
func AreSimilarInterests(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return true
	}

	for _, entry := range keywordExpansions {
		if strings.Contains(a, entry.key) && containsAny(b, entry.expansions) {
			return true
		}
		if strings.Contains(b, entry.key) && containsAny(a, entry.expansions) {
			return true
		}
	}

	for _, word := range significantWords {
		if strings.Contains(a, word) && strings.Contains(b, word) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// EnhancedMatchScore weights the matched interest pairs of a friend match:
// 10 per exact pair, 5 per similar pair, plus 2 for every bonus keyword the
// querying user's side of the pair contains.
func EnhancedMatchScore(commonCourses []models.CommonCourse) int {
	score := 0
	for _, course := range commonCourses {
		switch course.MatchType {
		case models.MatchTypeExact:
			score += 10
		case models.MatchTypeSimilar:
			score += 5
		}

		title := strings.ToLower(course.Title)
		for _, keyword := range matchBonusKeywords {
			if strings.Contains(title, keyword) {
				score += 2
			}
		}
	}
	return score
}

// CourseMatchScore weights course matches: 10 per shared course id, 5 per
// shared title.
func CourseMatchScore(commonCourses []models.CommonCourse) int {
	score := 0
	for _, course := range commonCourses {
		switch course.MatchType {
		case models.MatchTypeExact:
			score += 10
		case models.MatchTypeTitle:
			score += 5
		}
	}
	return score
}

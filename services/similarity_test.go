package services

import (
	"testing"

	"simplexify_server/models"
)

func TestAreSimilarInterests(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"exact match", "python", "python", true},
		{"exact match ignores case", "Python", "pYTHON", true},
		{"python expands to programming", "python", "programming", true},
		{"cpp spelling variants", "c++", "cpp for engineers", true},
		{"javascript shorthand", "javascript", "js frameworks", true},
		{"web development expands to frontend", "web development", "frontend", true},
		{"programming expands to coding", "programming", "coding bootcamp", true},
		{"shared significant word", "machine learning", "deep learning", true},
		{"shared data word", "data science", "data security", true},
		{"unrelated", "cooking", "gardening", false},
		{"filler words do not match", "courses for beginners", "tips for experts", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreSimilarInterests(tt.a, tt.b); got != tt.want {
				t.Errorf("AreSimilarInterests(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := AreSimilarInterests(tt.b, tt.a); got != tt.want {
				t.Errorf("AreSimilarInterests(%q, %q) = %v, want %v (not symmetric)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestAreSimilarInterestsNotTransitive(t *testing.T) {
	a, b, c := "data science", "data security", "cyber security"
	if !AreSimilarInterests(a, b) {
		t.Fatalf("expected %q ~ %q", a, b)
	}
	if !AreSimilarInterests(b, c) {
		t.Fatalf("expected %q ~ %q", b, c)
	}
	if AreSimilarInterests(a, c) {
		t.Fatalf("expected %q !~ %q", a, c)
	}
}

func TestEnhancedMatchScore(t *testing.T) {
	tests := []struct {
		name    string
		courses []models.CommonCourse
		want    int
	}{
		{"empty", nil, 0},
		{
			"exact python with bonus",
			[]models.CommonCourse{{Title: "python", OtherTitle: "python", MatchType: models.MatchTypeExact}},
			12, // 10 + python bonus
		},
		{
			"similar web development with two bonuses",
			[]models.CommonCourse{{Title: "web development", OtherTitle: "frontend", MatchType: models.MatchTypeSimilar}},
			9, // 5 + web + development
		},
		{
			"non-programming exact gets no bonus",
			[]models.CommonCourse{{Title: "cooking", OtherTitle: "cooking", MatchType: models.MatchTypeExact}},
			10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnhancedMatchScore(tt.courses); got != tt.want {
				t.Errorf("EnhancedMatchScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCourseMatchScore(t *testing.T) {
	courses := []models.CommonCourse{
		{ID: "c1", Title: "go basics", MatchType: models.MatchTypeExact},
		{Title: "go basics", MatchType: models.MatchTypeTitle},
	}
	if got := CourseMatchScore(courses); got != 15 {
		t.Errorf("CourseMatchScore() = %d, want 15", got)
	}
}

package services

import (
	"reflect"
	"testing"

	"simplexify_server/models"
)

func TestExtractInterests(t *testing.T) {
	tests := []struct {
		name string
		user *models.UserRecord
		want []string
	}{
		{
			"specific interests in key order plus main interest",
			&models.UserRecord{
				UserID: "u1",
				SpecificInterests: map[string]interface{}{
					"b": "Java",
					"a": "Python",
				},
				MainInterest: "Web Development",
			},
			[]string{"python", "java", "web development"},
		},
		{
			"non-string values are skipped",
			&models.UserRecord{
				UserID: "u1",
				SpecificInterests: map[string]interface{}{
					"a": "Python",
					"b": float64(42),
					"c": true,
				},
			},
			[]string{"python"},
		},
		{
			"non-string main interest is skipped",
			&models.UserRecord{
				UserID:            "u1",
				SpecificInterests: map[string]interface{}{"a": "python"},
				MainInterest:      map[string]interface{}{"oops": true},
			},
			[]string{"python"},
		},
		{
			"duplicates are kept",
			&models.UserRecord{
				UserID:            "u1",
				SpecificInterests: map[string]interface{}{"a": "python", "b": "python"},
				MainInterest:      "python",
			},
			[]string{"python", "python", "python"},
		},
		{
			"course titles only when no interests",
			&models.UserRecord{
				UserID: "u1",
				EnrolledCourses: models.CourseList{
					{Title: "Intro to Go"},
					{CourseID: "no-title"},
					{Title: "Advanced SQL"},
				},
			},
			[]string{"intro to go", "advanced sql"},
		},
		{
			"courses ignored when interests exist",
			&models.UserRecord{
				UserID:            "u1",
				SpecificInterests: map[string]interface{}{"a": "python"},
				EnrolledCourses:   models.CourseList{{Title: "Intro to Go"}},
			},
			[]string{"python"},
		},
		{
			"nothing at all",
			&models.UserRecord{UserID: "u1"},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractInterests(tt.user); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractInterests() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user *models.UserRecord
		want string
	}{
		{
			"profile name wins",
			&models.UserRecord{Profile: &models.UserProfile{Name: "Ada"}, Email: "x@y.com", DisplayName: "Other"},
			"Ada",
		},
		{
			"derived from email",
			&models.UserRecord{Email: "john.doe@example.com"},
			"John Doe",
		},
		{
			"underscores become word breaks",
			&models.UserRecord{Email: "jane_smith@example.com"},
			"Jane Smith",
		},
		{
			"display name as last resort before fallback",
			&models.UserRecord{DisplayName: "Grace"},
			"Grace",
		},
		{
			"fallback",
			&models.UserRecord{},
			"User",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDisplayName(tt.user); got != tt.want {
				t.Errorf("ResolveDisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveEmail(t *testing.T) {
	withProfile := &models.UserRecord{Profile: &models.UserProfile{Email: "p@x.com"}, Email: "top@x.com"}
	if got := ResolveEmail(withProfile); got != "p@x.com" {
		t.Errorf("ResolveEmail() = %q, want profile email", got)
	}
	if got := ResolveEmail(&models.UserRecord{Email: "top@x.com"}); got != "top@x.com" {
		t.Errorf("ResolveEmail() = %q, want top-level email", got)
	}
	if got := ResolveEmail(&models.UserRecord{}); got != "No email available" {
		t.Errorf("ResolveEmail() = %q, want placeholder", got)
	}
}

func TestResolveProfilePic(t *testing.T) {
	if got := ResolveProfilePic(&models.UserRecord{Profile: &models.UserProfile{ProfilePic: "http://pic"}}); got != "http://pic" {
		t.Errorf("ResolveProfilePic() = %q", got)
	}
	if got := ResolveProfilePic(&models.UserRecord{}); got != models.PlaceholderProfilePic {
		t.Errorf("ResolveProfilePic() = %q, want placeholder", got)
	}
}

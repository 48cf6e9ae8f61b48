package services

import (
	"context"
	"testing"
	"time"

	"simplexify_server/models"
)

func newTestCourseService(store *mockUserStore) *CourseService {
	svc := NewCourseService(store, store)
	svc.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestEnrollInCourse(t *testing.T) {
	store := newMockUserStore(&models.UserRecord{UserID: "u1"})
	svc := newTestCourseService(store)

	enrollment, err := svc.EnrollInCourse(context.Background(), "u1", "go-101", models.Course{Title: "Go Basics"})
	if err != nil {
		t.Fatalf("EnrollInCourse: %v", err)
	}

	if enrollment.UserID != "u1" || enrollment.CourseID != "go-101" {
		t.Errorf("enrollment ids = %+v", enrollment)
	}
	if enrollment.Status != "enrolled" {
		t.Errorf("status = %q", enrollment.Status)
	}
	if enrollment.EnrollmentDate != "2025-06-01T12:00:00Z" {
		t.Errorf("enrollmentDate = %q", enrollment.EnrollmentDate)
	}

	// both locations written, counter bumped
	if len(store.users["u1"].EnrolledCourses) != 1 {
		t.Errorf("user record has %d courses", len(store.users["u1"].EnrolledCourses))
	}
	if _, ok := store.legacy["u1"]["go-101"]; !ok {
		t.Error("legacy enrollment missing")
	}
	if store.courseCounts["go-101"] != 1 {
		t.Errorf("enrollment count = %d", store.courseCounts["go-101"])
	}
}

func TestEnrollInCourseSkipsDuplicates(t *testing.T) {
	store := newMockUserStore(&models.UserRecord{
		UserID:          "u1",
		EnrolledCourses: models.CourseList{{CourseID: "go-101", Title: "Go Basics"}},
	})
	svc := newTestCourseService(store)

	if _, err := svc.EnrollInCourse(context.Background(), "u1", "go-101", models.Course{Title: "Go Basics"}); err != nil {
		t.Fatalf("EnrollInCourse: %v", err)
	}
	if got := len(store.users["u1"].EnrolledCourses); got != 1 {
		t.Errorf("user record has %d courses, want 1", got)
	}

	// same title under a different id is also a duplicate
	if _, err := svc.EnrollInCourse(context.Background(), "u1", "go-201", models.Course{Title: "Go Basics"}); err != nil {
		t.Fatalf("EnrollInCourse: %v", err)
	}
	if got := len(store.users["u1"].EnrolledCourses); got != 1 {
		t.Errorf("user record has %d courses, want 1", got)
	}
}

func TestGetEnrolledCoursesFallsBackToLegacy(t *testing.T) {
	store := newMockUserStore(&models.UserRecord{UserID: "u1"})
	store.legacy["u1"] = map[string]models.Course{
		"old-1": {CourseID: "old-1", Title: "Legacy Course"},
	}
	svc := newTestCourseService(store)

	courses, err := svc.GetEnrolledCourses(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetEnrolledCourses: %v", err)
	}
	if len(courses) != 1 || courses[0].Title != "Legacy Course" {
		t.Errorf("courses = %+v", courses)
	}
}

func TestGetEnrolledCoursesPrefersUserRecord(t *testing.T) {
	store := newMockUserStore(&models.UserRecord{
		UserID:          "u1",
		EnrolledCourses: models.CourseList{{CourseID: "new-1", Title: "New Course"}},
	})
	store.legacy["u1"] = map[string]models.Course{
		"old-1": {CourseID: "old-1", Title: "Legacy Course"},
	}
	svc := newTestCourseService(store)

	courses, err := svc.GetEnrolledCourses(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetEnrolledCourses: %v", err)
	}
	if len(courses) != 1 || courses[0].CourseID != "new-1" {
		t.Errorf("courses = %+v", courses)
	}
}

func TestUpdateCourseProgress(t *testing.T) {
	store := newMockUserStore(&models.UserRecord{
		UserID:          "u1",
		EnrolledCourses: models.CourseList{{CourseID: "go-101", Title: "Go Basics"}},
	})
	svc := newTestCourseService(store)

	if err := svc.UpdateCourseProgress(context.Background(), "u1", "go-101", 40); err != nil {
		t.Fatalf("UpdateCourseProgress: %v", err)
	}
	if got := store.users["u1"].EnrolledCourses[0].Progress; got != 40 {
		t.Errorf("progress = %g", got)
	}

	// matching by title works too
	if err := svc.UpdateCourseProgress(context.Background(), "u1", "Go Basics", 60); err != nil {
		t.Fatalf("UpdateCourseProgress: %v", err)
	}
	if got := store.users["u1"].EnrolledCourses[0].Progress; got != 60 {
		t.Errorf("progress = %g", got)
	}
}

func TestUpdateCourseProgressLegacyFallback(t *testing.T) {
	store := newMockUserStore(&models.UserRecord{UserID: "u1"})
	store.legacy["u1"] = map[string]models.Course{
		"old-1": {CourseID: "old-1"},
	}
	svc := newTestCourseService(store)

	if err := svc.UpdateCourseProgress(context.Background(), "u1", "old-1", 25); err != nil {
		t.Fatalf("UpdateCourseProgress: %v", err)
	}
	if got := store.legacy["u1"]["old-1"].Progress; got != 25 {
		t.Errorf("legacy progress = %g", got)
	}
}

func TestGetUserCourses(t *testing.T) {
	store := newMockUserStore(&models.UserRecord{
		UserID:             "u1",
		EnrolledCourses:    models.CourseList{{CourseID: "e1", Title: "Enrolled"}},
		RecommendedCourses: models.CourseList{{Title: "Recommended"}},
		SpecificInterests: map[string]interface{}{
			"k2": "Design",
			"k1": "Python",
			"k3": 7,
		},
	})
	store.legacy["u1"] = map[string]models.Course{
		"old-1": {CourseID: "old-1", Title: "Legacy"},
	}
	svc := newTestCourseService(store)

	courses, err := svc.GetUserCourses(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetUserCourses: %v", err)
	}

	if len(courses.Enrolled) != 2 {
		t.Errorf("enrolled = %d, want 2 (record + legacy)", len(courses.Enrolled))
	}
	if len(courses.Recommended) != 1 {
		t.Errorf("recommended = %d", len(courses.Recommended))
	}
	if len(courses.Interests) != 2 {
		t.Fatalf("interests = %d, want 2", len(courses.Interests))
	}
	if courses.Interests[0].ID != "interest-k1" || courses.Interests[0].Title != "Python" {
		t.Errorf("first interest card = %+v", courses.Interests[0])
	}
	if !courses.Interests[0].IsInterest || courses.Interests[0].Description == "" {
		t.Errorf("interest card not filled: %+v", courses.Interests[0])
	}
	if got := len(courses.All); got != 5 {
		t.Errorf("all = %d, want 5", got)
	}
}

func TestGetUserCoursesUnknownUser(t *testing.T) {
	svc := newTestCourseService(newMockUserStore())

	courses, err := svc.GetUserCourses(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("GetUserCourses: %v", err)
	}
	if len(courses.All) != 0 {
		t.Errorf("all = %v, want empty", courses.All)
	}
}

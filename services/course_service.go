package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"simplexify_server/models"
)

const interestCourseImage = "https://img.freepik.com/free-vector/online-tutorials-concept_23-2148529858.jpg"

// CourseService manages enrollments. Enrollments are written to both the
// user record and the legacy Enrollments table so older readers keep
// working; reads prefer the user record and fall back to the legacy root.
type CourseService struct {
	Store       UserStore
	Enrollments EnrollmentStore

	// Now is the time source, overridable in tests.
	Now func() time.Time
}

// NewCourseService initializes CourseService
func NewCourseService(store UserStore, enrollments EnrollmentStore) *CourseService {
	return &CourseService{Store: store, Enrollments: enrollments, Now: time.Now}
}

// EnrollInCourse records an enrollment in both locations, skipping the user
// record append when a course with the same id or title is already there,
// and bumps the course's enrollment counter. Fields already set on the
// incoming course are kept.
func (s *CourseService) EnrollInCourse(ctx context.Context, userID, courseID string, course models.Course) (*models.Course, error) {
	if userID == "" || courseID == "" {
		return nil, errors.New("user and course ids are required")
	}

	enrollment := course
	enrollment.UserID = userID
	enrollment.CourseID = courseID
	if enrollment.Status == "" {
		enrollment.Status = "enrolled"
	}
	if enrollment.EnrollmentDate == "" {
		enrollment.EnrollmentDate = s.Now().UTC().Format(time.RFC3339)
	}

	if err := s.Enrollments.SetLegacyEnrollment(ctx, userID, courseID, enrollment); err != nil {
		return nil, err
	}

	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user '%s': %w", userID, err)
	}

	var enrolled []models.Course
	if user != nil {
		enrolled = user.EnrolledCourses
	}

	exists := false
	for _, c := range enrolled {
		if c.CourseID == courseID || (c.Title != "" && enrollment.Title != "" && c.Title == enrollment.Title) {
			exists = true
			break
		}
	}
	if !exists {
		enrolled = append(enrolled, enrollment)
		if err := s.Store.SaveEnrolledCourses(ctx, userID, enrolled); err != nil {
			return nil, err
		}
	}

	if err := s.Enrollments.IncrementCourseEnrollment(ctx, courseID); err != nil {
		return nil, err
	}

	log.Printf("User %s enrolled in course %s", userID, courseID)
	return &enrollment, nil
}

// GetEnrolledCourses returns the user's enrollments, reading the legacy
// location only when the user record has none.
func (s *CourseService) GetEnrolledCourses(ctx context.Context, userID string) ([]models.Course, error) {
	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user != nil && len(user.EnrolledCourses) > 0 {
		return user.EnrolledCourses, nil
	}

	legacy, err := s.Enrollments.GetLegacyEnrollments(ctx, userID)
	if err != nil {
		return nil, err
	}
	if legacy == nil {
		legacy = []models.Course{}
	}
	return legacy, nil
}

// UpdateCourseProgress sets the progress of an enrollment, matched by
// course id or title on the user record, falling back to the legacy
// location when the record has no such course.
func (s *CourseService) UpdateCourseProgress(ctx context.Context, userID, courseID string, progress float64) error {
	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if user != nil {
		for i, c := range user.EnrolledCourses {
			if c.Title == courseID || c.CourseID == courseID {
				user.EnrolledCourses[i].Progress = progress
				return s.Store.SaveEnrolledCourses(ctx, userID, user.EnrolledCourses)
			}
		}
	}
	return s.Enrollments.SetLegacyEnrollmentProgress(ctx, userID, courseID, progress)
}

// GetUserCourses aggregates everything course-shaped about a user: real
// enrollments from both locations, generated recommendations, and the
// user's interests dressed up as course cards. All is the concatenation
// the matching views consume.
func (s *CourseService) GetUserCourses(ctx context.Context, userID string) (*models.UserCourses, error) {
	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses := &models.UserCourses{
		All:         []models.Course{},
		Enrolled:    []models.Course{},
		Recommended: []models.Course{},
		Interests:   []models.Course{},
	}
	if user == nil {
		return courses, nil
	}

	courses.Enrolled = append(courses.Enrolled, user.EnrolledCourses...)
	courses.Recommended = append(courses.Recommended, user.RecommendedCourses...)

	keys := make([]string, 0, len(user.SpecificInterests))
	for k := range user.SpecificInterests {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		value, ok := user.SpecificInterests[k].(string)
		if !ok {
			continue
		}
		courses.Interests = append(courses.Interests, models.Course{
			ID:          "interest-" + k,
			Title:       value,
			Description: fmt.Sprintf("Course related to your interest in %s", value),
			ImageURL:    interestCourseImage,
			IsInterest:  true,
		})
	}

	legacy, err := s.Enrollments.GetLegacyEnrollments(ctx, userID)
	if err != nil {
		return nil, err
	}
	courses.Enrolled = append(courses.Enrolled, legacy...)

	courses.All = append(courses.All, courses.Enrolled...)
	courses.All = append(courses.All, courses.Recommended...)
	courses.All = append(courses.All, courses.Interests...)
	return courses, nil
}

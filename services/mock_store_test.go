package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"simplexify_server/models"
)

// mockUserStore is an in-memory UserStore and EnrollmentStore. Writes
// create missing records the way document-path updates do, notification
// keys are sequential for predictable assertions, and per-user errors can
// be injected to exercise partial-failure paths.
type mockUserStore struct {
	mu           sync.Mutex
	users        map[string]*models.UserRecord
	legacy       map[string]map[string]models.Course
	courseCounts map[string]int
	notifySeq    int

	errSetFriendFor map[string]error
	errAppend       error
}

func newMockUserStore(users ...*models.UserRecord) *mockUserStore {
	s := &mockUserStore{
		users:        map[string]*models.UserRecord{},
		legacy:       map[string]map[string]models.Course{},
		courseCounts: map[string]int{},
	}
	for _, u := range users {
		s.users[u.UserID] = u
	}
	return s
}

func (s *mockUserStore) record(userID string) *models.UserRecord {
	if u, ok := s.users[userID]; ok {
		return u
	}
	u := &models.UserRecord{UserID: userID}
	s.users[userID] = u
	return u
}

func (s *mockUserStore) GetUser(_ context.Context, userID string) (*models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[userID], nil
}

func (s *mockUserStore) GetAllUsers(_ context.Context) ([]models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	records := make([]models.UserRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, *s.users[id])
	}
	return records, nil
}

func (s *mockUserStore) GetProfile(_ context.Context, userID string) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		return u.Profile, nil
	}
	return nil, nil
}

func (s *mockUserStore) SaveProfile(_ context.Context, userID string, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(userID).Profile = profile
	return nil
}

func (s *mockUserStore) DeleteUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
	return nil
}

func (s *mockUserStore) SetFriend(_ context.Context, userID, friendID string, friend models.Friend) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.errSetFriendFor[userID]; err != nil {
		return err
	}
	u := s.record(userID)
	if u.Friends == nil {
		u.Friends = map[string]models.Friend{}
	}
	u.Friends[friendID] = friend
	return nil
}

func (s *mockUserStore) SetSentRequest(_ context.Context, userID, recipientID string, request models.SentRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.record(userID)
	if u.SentRequests == nil {
		u.SentRequests = map[string]models.SentRequest{}
	}
	u.SentRequests[recipientID] = request
	return nil
}

func (s *mockUserStore) SetSentRequestStatus(_ context.Context, userID, recipientID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("no user %s", userID)
	}
	request, ok := u.SentRequests[recipientID]
	if !ok {
		return fmt.Errorf("no sent request %s/%s", userID, recipientID)
	}
	request.Status = status
	u.SentRequests[recipientID] = request
	return nil
}

func (s *mockUserStore) AppendNotification(_ context.Context, userID string, n models.Notification) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errAppend != nil {
		return "", s.errAppend
	}
	s.notifySeq++
	id := fmt.Sprintf("notif-%d", s.notifySeq)
	u := s.record(userID)
	if u.Notifications == nil {
		u.Notifications = map[string]models.Notification{}
	}
	u.Notifications[id] = n
	return id, nil
}

func (s *mockUserStore) SetNotificationStatus(_ context.Context, userID, notificationID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("no user %s", userID)
	}
	n, ok := u.Notifications[notificationID]
	if !ok {
		return fmt.Errorf("no notification %s/%s", userID, notificationID)
	}
	n.Status = status
	u.Notifications[notificationID] = n
	return nil
}

func (s *mockUserStore) SaveEnrolledCourses(_ context.Context, userID string, courses []models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(userID).EnrolledCourses = courses
	return nil
}

func (s *mockUserStore) SaveRecommendedCourses(_ context.Context, userID string, courses []models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(userID).RecommendedCourses = courses
	return nil
}

func (s *mockUserStore) GetLegacyEnrollments(_ context.Context, userID string) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byCourse := s.legacy[userID]
	keys := make([]string, 0, len(byCourse))
	for k := range byCourse {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	courses := make([]models.Course, 0, len(keys))
	for _, k := range keys {
		courses = append(courses, byCourse[k])
	}
	return courses, nil
}

func (s *mockUserStore) SetLegacyEnrollment(_ context.Context, userID, courseID string, course models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.legacy[userID] == nil {
		s.legacy[userID] = map[string]models.Course{}
	}
	s.legacy[userID][courseID] = course
	return nil
}

func (s *mockUserStore) SetLegacyEnrollmentProgress(_ context.Context, userID, courseID string, progress float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	course, ok := s.legacy[userID][courseID]
	if !ok {
		return fmt.Errorf("no enrollment %s/%s", userID, courseID)
	}
	course.Progress = progress
	s.legacy[userID][courseID] = course
	return nil
}

func (s *mockUserStore) IncrementCourseEnrollment(_ context.Context, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courseCounts[courseID]++
	return nil
}

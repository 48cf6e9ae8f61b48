package services

import (
	"context"
	"fmt"
	"sort"

	"simplexify_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// UserStore is the document-store surface the community services consume.
// Reads return (nil, nil) for absent records; every write targets a single
// path under one user record and is idempotent on retry.
type UserStore interface {
	GetUser(ctx context.Context, userID string) (*models.UserRecord, error)
	GetAllUsers(ctx context.Context) ([]models.UserRecord, error)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, userID string, profile *models.UserProfile) error
	DeleteUser(ctx context.Context, userID string) error

	SetFriend(ctx context.Context, userID, friendID string, friend models.Friend) error
	SetSentRequest(ctx context.Context, userID, recipientID string, request models.SentRequest) error
	SetSentRequestStatus(ctx context.Context, userID, recipientID, status string) error
	AppendNotification(ctx context.Context, userID string, n models.Notification) (string, error)
	SetNotificationStatus(ctx context.Context, userID, notificationID, status string) error

	SaveEnrolledCourses(ctx context.Context, userID string, courses []models.Course) error
	SaveRecommendedCourses(ctx context.Context, userID string, courses []models.Course) error
}

// EnrollmentStore covers the legacy enrollments root and the shared course
// counters, maintained alongside the user record for older readers.
type EnrollmentStore interface {
	GetLegacyEnrollments(ctx context.Context, userID string) ([]models.Course, error)
	SetLegacyEnrollment(ctx context.Context, userID, courseID string, course models.Course) error
	SetLegacyEnrollmentProgress(ctx context.Context, userID, courseID string, progress float64) error
	IncrementCourseEnrollment(ctx context.Context, courseID string) error
}

// DynamoUserStore keeps each user record as a single Users item and maps
// the sub-trees (friends, sentRequests, notifications) onto nested document
// paths in update expressions.
type DynamoUserStore struct {
	Dynamo *DynamoService
}

func userKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}

func (s *DynamoUserStore) GetUser(ctx context.Context, userID string) (*models.UserRecord, error) {
	item, err := s.Dynamo.GetItem(ctx, models.UsersTable, userKey(userID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var record models.UserRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user record: %w", err)
	}
	return &record, nil
}

// GetAllUsers returns a snapshot of every user record, ordered by user id so
// the ranking views iterate candidates deterministically.
func (s *DynamoUserStore) GetAllUsers(ctx context.Context) ([]models.UserRecord, error) {
	var records []models.UserRecord
	if err := s.Dynamo.ScanAll(ctx, models.UsersTable, &records); err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].UserID < records[j].UserID })
	return records, nil
}

func (s *DynamoUserStore) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	record, err := s.GetUser(ctx, userID)
	if err != nil || record == nil {
		return nil, err
	}
	return record.Profile, nil
}

func (s *DynamoUserStore) SaveProfile(ctx context.Context, userID string, profile *models.UserProfile) error {
	return s.setAttribute(ctx, userID, "profile", profile)
}

func (s *DynamoUserStore) DeleteUser(ctx context.Context, userID string) error {
	return s.Dynamo.DeleteItem(ctx, models.UsersTable, userKey(userID))
}

func (s *DynamoUserStore) SetFriend(ctx context.Context, userID, friendID string, friend models.Friend) error {
	return s.setMapEntry(ctx, userID, "friends", friendID, friend)
}

func (s *DynamoUserStore) SetSentRequest(ctx context.Context, userID, recipientID string, request models.SentRequest) error {
	return s.setMapEntry(ctx, userID, "sentRequests", recipientID, request)
}

func (s *DynamoUserStore) SetSentRequestStatus(ctx context.Context, userID, recipientID, status string) error {
	return s.setMapEntryField(ctx, userID, "sentRequests", recipientID, "status", status)
}

// AppendNotification writes a notification under a freshly generated key and
// returns the key. Every call creates a new entry; dedup is the caller's
// concern.
func (s *DynamoUserStore) AppendNotification(ctx context.Context, userID string, n models.Notification) (string, error) {
	notificationID := uuid.NewString()
	if err := s.setMapEntry(ctx, userID, "notifications", notificationID, n); err != nil {
		return "", err
	}
	return notificationID, nil
}

func (s *DynamoUserStore) SetNotificationStatus(ctx context.Context, userID, notificationID, status string) error {
	return s.setMapEntryField(ctx, userID, "notifications", notificationID, "status", status)
}

func (s *DynamoUserStore) SaveEnrolledCourses(ctx context.Context, userID string, courses []models.Course) error {
	return s.setAttribute(ctx, userID, "enrolledCourses", courses)
}

func (s *DynamoUserStore) SaveRecommendedCourses(ctx context.Context, userID string, courses []models.Course) error {
	return s.setAttribute(ctx, userID, "recommendedCourses", courses)
}

// setAttribute replaces a single top-level attribute of the user record.
func (s *DynamoUserStore) setAttribute(ctx context.Context, userID, attribute string, value interface{}) error {
	av, err := attributevalue.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", attribute, err)
	}

	_, err = s.Dynamo.UpdateItem(ctx, models.UsersTable,
		"SET #attr = :value", userKey(userID),
		map[string]types.AttributeValue{":value": av},
		map[string]string{"#attr": attribute},
	)
	if err != nil {
		return fmt.Errorf("failed to set %s for user '%s': %w", attribute, userID, err)
	}
	return nil
}

// setMapEntry writes one key of a map attribute, creating the map on first
// use. Two updates: document paths into a missing parent map are rejected,
// so the parent is materialized first.
func (s *DynamoUserStore) setMapEntry(ctx context.Context, userID, attribute, entryKey string, value interface{}) error {
	av, err := attributevalue.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s entry: %w", attribute, err)
	}

	_, err = s.Dynamo.UpdateItem(ctx, models.UsersTable,
		"SET #attr = if_not_exists(#attr, :empty)", userKey(userID),
		map[string]types.AttributeValue{":empty": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}}},
		map[string]string{"#attr": attribute},
	)
	if err != nil {
		return fmt.Errorf("failed to initialize %s for user '%s': %w", attribute, userID, err)
	}

	_, err = s.Dynamo.UpdateItem(ctx, models.UsersTable,
		"SET #attr.#key = :value", userKey(userID),
		map[string]types.AttributeValue{":value": av},
		map[string]string{"#attr": attribute, "#key": entryKey},
	)
	if err != nil {
		return fmt.Errorf("failed to set %s/%s for user '%s': %w", attribute, entryKey, userID, err)
	}
	return nil
}

// setMapEntryField updates one field of an existing map entry.
func (s *DynamoUserStore) setMapEntryField(ctx context.Context, userID, attribute, entryKey, field, value string) error {
	_, err := s.Dynamo.UpdateItem(ctx, models.UsersTable,
		"SET #attr.#key.#field = :value", userKey(userID),
		map[string]types.AttributeValue{":value": &types.AttributeValueMemberS{Value: value}},
		map[string]string{"#attr": attribute, "#key": entryKey, "#field": field},
	)
	if err != nil {
		return fmt.Errorf("failed to set %s/%s/%s for user '%s': %w", attribute, entryKey, field, userID, err)
	}
	return nil
}

// legacyEnrollmentItem is the Enrollments-table shape: one item per user
// with a courses map keyed by course id.
type legacyEnrollmentItem struct {
	UserID  string                   `dynamodbav:"userId"`
	Courses map[string]models.Course `dynamodbav:"courses,omitempty"`
}

func (s *DynamoUserStore) GetLegacyEnrollments(ctx context.Context, userID string) ([]models.Course, error) {
	item, err := s.Dynamo.GetItem(ctx, models.EnrollmentsTable, userKey(userID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var record legacyEnrollmentItem
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal legacy enrollments: %w", err)
	}

	keys := make([]string, 0, len(record.Courses))
	for k := range record.Courses {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	courses := make([]models.Course, 0, len(keys))
	for _, k := range keys {
		courses = append(courses, record.Courses[k])
	}
	return courses, nil
}

func (s *DynamoUserStore) SetLegacyEnrollment(ctx context.Context, userID, courseID string, course models.Course) error {
	av, err := attributevalue.Marshal(course)
	if err != nil {
		return fmt.Errorf("failed to marshal enrollment: %w", err)
	}

	_, err = s.Dynamo.UpdateItem(ctx, models.EnrollmentsTable,
		"SET courses = if_not_exists(courses, :empty)", userKey(userID),
		map[string]types.AttributeValue{":empty": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}}},
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize enrollments for user '%s': %w", userID, err)
	}

	_, err = s.Dynamo.UpdateItem(ctx, models.EnrollmentsTable,
		"SET courses.#cid = :course", userKey(userID),
		map[string]types.AttributeValue{":course": av},
		map[string]string{"#cid": courseID},
	)
	if err != nil {
		return fmt.Errorf("failed to set enrollment %s for user '%s': %w", courseID, userID, err)
	}
	return nil
}

func (s *DynamoUserStore) SetLegacyEnrollmentProgress(ctx context.Context, userID, courseID string, progress float64) error {
	_, err := s.Dynamo.UpdateItem(ctx, models.EnrollmentsTable,
		"SET courses.#cid.progress = :progress", userKey(userID),
		map[string]types.AttributeValue{":progress": &types.AttributeValueMemberN{Value: fmt.Sprintf("%g", progress)}},
		map[string]string{"#cid": courseID},
	)
	if err != nil {
		return fmt.Errorf("failed to update progress for enrollment %s of user '%s': %w", courseID, userID, err)
	}
	return nil
}

func (s *DynamoUserStore) IncrementCourseEnrollment(ctx context.Context, courseID string) error {
	_, err := s.Dynamo.UpdateItem(ctx, models.CoursesTable,
		"ADD enrollmentCount :one",
		map[string]types.AttributeValue{"courseId": &types.AttributeValueMemberS{Value: courseID}},
		map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to increment enrollment count for course '%s': %w", courseID, err)
	}
	return nil
}

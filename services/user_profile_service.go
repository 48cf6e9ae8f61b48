package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"simplexify_server/models"
)

// UserProfileService manages the editable profile subtree of a user record.
type UserProfileService struct {
	Store UserStore

	// Clock returns the current time in epoch milliseconds. Overridable
	// in tests.
	Clock func() int64
}

// NewUserProfileService initializes UserProfileService
func NewUserProfileService(store UserStore) *UserProfileService {
	return &UserProfileService{
		Store: store,
		Clock: func() int64 { return time.Now().UnixMilli() },
	}
}

// GetUserProfile returns the profile, or nil when the user has none yet.
func (s *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	return s.Store.GetProfile(ctx, userID)
}

// SaveUserProfile merges the update into the existing profile, leaving
// fields the caller did not send untouched, and stamps updatedAt.
func (s *UserProfileService) SaveUserProfile(ctx context.Context, userID string, update *models.ProfileUpdate) (*models.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	if update == nil {
		return nil, errors.New("profile update is required")
	}

	profile, err := s.Store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for '%s': %w", userID, err)
	}
	if profile == nil {
		profile = &models.UserProfile{}
	}

	if update.Name != nil {
		profile.Name = *update.Name
	}
	if update.Email != nil {
		profile.Email = *update.Email
	}
	if update.Phone != nil {
		profile.Phone = *update.Phone
	}
	if update.DOB != nil {
		profile.DOB = *update.DOB
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.ProfilePic != nil {
		profile.ProfilePic = *update.ProfilePic
	}
	if update.Interests != nil {
		profile.Interests = *update.Interests
	}
	if update.DarkMode != nil {
		profile.DarkMode = *update.DarkMode
	}
	profile.UpdatedAt = s.Clock()

	if err := s.Store.SaveProfile(ctx, userID, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile for '%s': %w", userID, err)
	}
	return profile, nil
}

// SetDarkMode persists the theme preference on the profile.
func (s *UserProfileService) SetDarkMode(ctx context.Context, userID string, enabled bool) (*models.UserProfile, error) {
	return s.SaveUserProfile(ctx, userID, &models.ProfileUpdate{DarkMode: &enabled})
}

// DeleteUser removes the whole user record.
func (s *UserProfileService) DeleteUser(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	return s.Store.DeleteUser(ctx, userID)
}

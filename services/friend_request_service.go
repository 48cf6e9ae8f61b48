package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"simplexify_server/models"
)

// FriendRequestService implements the request workflow: a send writes a
// notification on the recipient and a pending marker on the sender, an
// accept flips both sides into friends. The writes are not transactional;
// each one is individually idempotent so a retried call converges.
type FriendRequestService struct {
	Store UserStore

	// Clock returns the current time in epoch milliseconds. Overridable
	// in tests.
	Clock func() int64
}

// NewFriendRequestService initializes FriendRequestService
func NewFriendRequestService(store UserStore) *FriendRequestService {
	return &FriendRequestService{
		Store: store,
		Clock: func() int64 { return time.Now().UnixMilli() },
	}
}

// SendFriendRequest notifies the recipient and marks the request pending on
// the sender. Every call appends a fresh notification; sending twice leaves
// two notifications on the recipient. Returns the new notification id.
func (s *FriendRequestService) SendFriendRequest(ctx context.Context, senderID, recipientID string) (string, error) {
	if senderID == "" || recipientID == "" {
		return "", errors.New("sender and recipient ids are required")
	}
	if senderID == recipientID {
		return "", errors.New("cannot send a friend request to yourself")
	}

	sender, err := s.Store.GetUser(ctx, senderID)
	if err != nil {
		return "", fmt.Errorf("failed to load sender '%s': %w", senderID, err)
	}

	senderName := models.DefaultUserName
	senderProfilePic := models.PlaceholderProfilePic
	if sender != nil && sender.Profile != nil {
		if sender.Profile.Name != "" {
			senderName = sender.Profile.Name
		}
		if sender.Profile.ProfilePic != "" {
			senderProfilePic = sender.Profile.ProfilePic
		}
	}

	now := s.Clock()
	notificationID, err := s.Store.AppendNotification(ctx, recipientID, models.Notification{
		Type:             models.NotificationTypeFriendRequest,
		SenderID:         senderID,
		SenderName:       senderName,
		SenderProfilePic: senderProfilePic,
		Status:           models.RequestStatusPending,
		Timestamp:        now,
	})
	if err != nil {
		return "", fmt.Errorf("failed to notify recipient '%s': %w", recipientID, err)
	}

	err = s.Store.SetSentRequest(ctx, senderID, recipientID, models.SentRequest{
		Status:    models.RequestStatusPending,
		Timestamp: now,
	})
	if err != nil {
		return "", fmt.Errorf("failed to record sent request for '%s': %w", senderID, err)
	}

	log.Printf("Friend request sent from %s to %s", senderID, recipientID)
	return notificationID, nil
}

// AcceptFriendRequest marks the notification accepted, adds each user to
// the other's friend list with denormalized profile info, and flips the
// sender's pending marker. Writes happen in that order and the first
// failure aborts; a retry resumes safely since every step is idempotent.
func (s *FriendRequestService) AcceptFriendRequest(ctx context.Context, notificationID, senderID, recipientID string) error {
	if notificationID == "" || senderID == "" || recipientID == "" {
		return errors.New("notification, sender and recipient ids are required")
	}

	senderProfile, err := s.Store.GetProfile(ctx, senderID)
	if err != nil {
		return fmt.Errorf("failed to load sender profile '%s': %w", senderID, err)
	}
	recipientProfile, err := s.Store.GetProfile(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("failed to load recipient profile '%s': %w", recipientID, err)
	}

	if err := s.Store.SetNotificationStatus(ctx, recipientID, notificationID, models.RequestStatusAccepted); err != nil {
		return fmt.Errorf("failed to update notification '%s': %w", notificationID, err)
	}

	now := s.Clock()
	if err := s.Store.SetFriend(ctx, recipientID, senderID, friendEntryFromProfile(senderProfile, now)); err != nil {
		return fmt.Errorf("failed to add friend for recipient '%s': %w", recipientID, err)
	}
	if err := s.Store.SetFriend(ctx, senderID, recipientID, friendEntryFromProfile(recipientProfile, now)); err != nil {
		return fmt.Errorf("failed to add friend for sender '%s': %w", senderID, err)
	}

	if err := s.Store.SetSentRequestStatus(ctx, senderID, recipientID, models.RequestStatusAccepted); err != nil {
		return fmt.Errorf("failed to update sent request of '%s': %w", senderID, err)
	}

	log.Printf("Friend request %s accepted: %s and %s are now friends", notificationID, senderID, recipientID)
	return nil
}

func friendEntryFromProfile(profile *models.UserProfile, timestamp int64) models.Friend {
	friend := models.Friend{
		Name:       models.DefaultUserName,
		ProfilePic: models.PlaceholderProfilePic,
		Timestamp:  timestamp,
	}
	if profile != nil {
		if profile.Name != "" {
			friend.Name = profile.Name
		}
		if profile.ProfilePic != "" {
			friend.ProfilePic = profile.ProfilePic
		}
	}
	return friend
}

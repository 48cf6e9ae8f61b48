package services

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"sort"
	"time"

	"simplexify_server/models"
)

// DefaultNotificationPollInterval is how often active subscriptions
// re-read the notification feed.
const DefaultNotificationPollInterval = 30 * time.Second

// NotificationService reads the notification feed and friend list and fans
// out feed changes to subscribers by polling.
type NotificationService struct {
	Store UserStore
}

// NewNotificationService initializes NotificationService
func NewNotificationService(store UserStore) *NotificationService {
	return &NotificationService{Store: store}
}

// GetUserNotifications returns the user's notifications annotated with
// their store keys, newest first.
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID string) ([]models.UserNotification, error) {
	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications for '%s': %w", userID, err)
	}
	if user == nil || len(user.Notifications) == 0 {
		return []models.UserNotification{}, nil
	}

	notifications := make([]models.UserNotification, 0, len(user.Notifications))
	for id, n := range user.Notifications {
		notifications = append(notifications, models.UserNotification{ID: id, Notification: n})
	}
	sort.Slice(notifications, func(i, j int) bool {
		if notifications[i].Timestamp != notifications[j].Timestamp {
			return notifications[i].Timestamp > notifications[j].Timestamp
		}
		return notifications[i].ID < notifications[j].ID
	})
	return notifications, nil
}

// GetUserFriends returns the user's friends annotated with their user ids,
// newest friendship first.
func (s *NotificationService) GetUserFriends(ctx context.Context, userID string) ([]models.FriendEntry, error) {
	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load friends for '%s': %w", userID, err)
	}
	if user == nil || len(user.Friends) == 0 {
		return []models.FriendEntry{}, nil
	}

	friends := make([]models.FriendEntry, 0, len(user.Friends))
	for id, f := range user.Friends {
		entry := models.FriendEntry{
			UserID:     id,
			Name:       f.Name,
			ProfilePic: f.ProfilePic,
			Timestamp:  f.Timestamp,
		}
		if entry.Name == "" {
			entry.Name = models.DefaultUserName
		}
		if entry.ProfilePic == "" {
			entry.ProfilePic = models.PlaceholderProfilePic
		}
		friends = append(friends, entry)
	}
	sort.Slice(friends, func(i, j int) bool {
		if friends[i].Timestamp != friends[j].Timestamp {
			return friends[i].Timestamp > friends[j].Timestamp
		}
		return friends[i].UserID < friends[j].UserID
	})
	return friends, nil
}

// Subscribe delivers the current notification feed immediately, then polls
// at the given interval and calls onChange whenever the feed differs from
// the last delivered state. Read errors are logged and the subscription
// keeps going. The returned function cancels the subscription; it is safe
// to call more than once.
func (s *NotificationService) Subscribe(ctx context.Context, userID string, interval time.Duration, onChange func([]models.UserNotification)) func() {
	if interval <= 0 {
		interval = DefaultNotificationPollInterval
	}

	subCtx, cancel := context.WithCancel(ctx)
	go func() {
		var last []models.UserNotification
		delivered := false

		poll := func() {
			notifications, err := s.GetUserNotifications(subCtx, userID)
			if err != nil {
				if subCtx.Err() == nil {
					log.Printf("Notification poll for %s failed: %v", userID, err)
				}
				return
			}
			if delivered && reflect.DeepEqual(notifications, last) {
				return
			}
			last = notifications
			delivered = true
			onChange(notifications)
		}

		poll()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-subCtx.Done():
				return
			case <-ticker.C:
				poll()
			}
		}
	}()
	return cancel
}

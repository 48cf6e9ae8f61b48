package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"simplexify_server/services"
)

// NotificationController handles HTTP requests for notifications and friends
type NotificationController struct {
	NotificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController instance
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// GetNotifications handles fetching a user's notification feed
func (nc *NotificationController) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	notifications, err := nc.NotificationService.GetUserNotifications(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch notifications: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"notifications": notifications,
	})
}

// GetFriends handles fetching a user's friend list
func (nc *NotificationController) GetFriends(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	friends, err := nc.NotificationService.GetUserFriends(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch friends: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"friends": friends,
	})
}

package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"simplexify_server/services"
)

// FriendRequestController handles HTTP requests for the request workflow
type FriendRequestController struct {
	FriendRequestService *services.FriendRequestService
}

// NewFriendRequestController creates a new FriendRequestController instance
func NewFriendRequestController(friendRequestService *services.FriendRequestService) *FriendRequestController {
	return &FriendRequestController{FriendRequestService: friendRequestService}
}

// SendFriendRequest handles sending a friend request
func (fc *FriendRequestController) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SenderID    string `json:"senderId"`
		RecipientID string `json:"recipientId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.SenderID == "" || request.RecipientID == "" {
		http.Error(w, "senderId and recipientId are required", http.StatusBadRequest)
		return
	}

	notificationID, err := fc.FriendRequestService.SendFriendRequest(r.Context(), request.SenderID, request.RecipientID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to send friend request: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":        "Friend request sent successfully",
		"notificationId": notificationID,
	})
}

// AcceptFriendRequest handles accepting a pending friend request
func (fc *FriendRequestController) AcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	var request struct {
		NotificationID string `json:"notificationId"`
		SenderID       string `json:"senderId"`
		RecipientID    string `json:"recipientId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.NotificationID == "" || request.SenderID == "" || request.RecipientID == "" {
		http.Error(w, "notificationId, senderId and recipientId are required", http.StatusBadRequest)
		return
	}

	if err := fc.FriendRequestService.AcceptFriendRequest(r.Context(), request.NotificationID, request.SenderID, request.RecipientID); err != nil {
		http.Error(w, fmt.Sprintf("Failed to accept friend request: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Friend request accepted",
	})
}

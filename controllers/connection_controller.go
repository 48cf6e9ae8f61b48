package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"simplexify_server/services"
)

// ConnectionController handles HTTP requests for the matching views
type ConnectionController struct {
	ConnectionService *services.ConnectionService
}

// NewConnectionController creates a new ConnectionController instance
func NewConnectionController(connectionService *services.ConnectionService) *ConnectionController {
	return &ConnectionController{ConnectionService: connectionService}
}

// GetPotentialConnections handles the community page connections list
func (cc *ConnectionController) GetPotentialConnections(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	connections, err := cc.ConnectionService.FindPotentialConnections(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to find connections: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"connections": connections,
	})
}

// GetFriendMatches handles the friend-finder ranking by interests
func (cc *ConnectionController) GetFriendMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	result, err := cc.ConnectionService.FindFriendsWithSimilarInterests(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to find matches: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// GetCourseMatches handles the friend-finder ranking by shared courses
func (cc *ConnectionController) GetCourseMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	result, err := cc.ConnectionService.FindFriendsWithSimilarCourses(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to find matches: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

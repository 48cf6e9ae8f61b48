package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"simplexify_server/services"
)

// RecommendationController handles HTTP requests for course recommendations
type RecommendationController struct {
	RecommendationService *services.RecommendationService
}

// NewRecommendationController creates a new RecommendationController instance
func NewRecommendationController(recommendationService *services.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// GenerateRecommendations handles generating and saving recommendations
func (rc *RecommendationController) GenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID          string `json:"userId"`
		MainInterest    string `json:"mainInterest"`
		ExperienceLevel string `json:"experienceLevel"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	courses, err := rc.RecommendationService.GenerateCourseRecommendations(r.Context(), services.RecommendationRequest{
		MainInterest:    request.MainInterest,
		ExperienceLevel: request.ExperienceLevel,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to generate recommendations: %v", err), http.StatusInternalServerError)
		return
	}

	if err := rc.RecommendationService.SaveCourseRecommendations(r.Context(), request.UserID, courses); err != nil {
		http.Error(w, fmt.Sprintf("Failed to save recommendations: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"courses": courses,
	})
}

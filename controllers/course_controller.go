package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"simplexify_server/models"
	"simplexify_server/services"
)

// CourseController handles HTTP requests for enrollments and course views
type CourseController struct {
	CourseService *services.CourseService
}

// NewCourseController creates a new CourseController instance
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// EnrollInCourse handles enrolling a user in a course
func (cc *CourseController) EnrollInCourse(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string        `json:"userId"`
		CourseID string        `json:"courseId"`
		Course   models.Course `json:"course"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.CourseID == "" {
		http.Error(w, "userId and courseId are required", http.StatusBadRequest)
		return
	}

	enrollment, err := cc.CourseService.EnrollInCourse(r.Context(), request.UserID, request.CourseID, request.Course)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to enroll: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(enrollment)
}

// GetEnrolledCourses handles fetching a user's enrollments
func (cc *CourseController) GetEnrolledCourses(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	courses, err := cc.CourseService.GetEnrolledCourses(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch courses: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"courses": courses,
	})
}

// GetUserCourses handles fetching the aggregated course view
func (cc *CourseController) GetUserCourses(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	courses, err := cc.CourseService.GetUserCourses(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch courses: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(courses)
}

// UpdateCourseProgress handles updating progress of an enrollment
func (cc *CourseController) UpdateCourseProgress(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string  `json:"userId"`
		CourseID string  `json:"courseId"`
		Progress float64 `json:"progress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.CourseID == "" {
		http.Error(w, "userId and courseId are required", http.StatusBadRequest)
		return
	}

	if err := cc.CourseService.UpdateCourseProgress(r.Context(), request.UserID, request.CourseID, request.Progress); err != nil {
		http.Error(w, fmt.Sprintf("Failed to update progress: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"progress": request.Progress,
	})
}

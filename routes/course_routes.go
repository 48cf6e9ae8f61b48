package routes

import (
	"github.com/gorilla/mux"

	"simplexify_server/controllers"
)

// RegisterCourseRoutes sets up routes for enrollments and course views
func RegisterCourseRoutes(router *mux.Router, controller *controllers.CourseController) {
	courseRouter := router.PathPrefix("/api/courses").Subrouter()
	courseRouter.HandleFunc("/enroll", controller.EnrollInCourse).Methods("POST")
	courseRouter.HandleFunc("/enrolled", controller.GetEnrolledCourses).Methods("GET")
	courseRouter.HandleFunc("/all", controller.GetUserCourses).Methods("GET")
	courseRouter.HandleFunc("/progress", controller.UpdateCourseProgress).Methods("PUT")
}

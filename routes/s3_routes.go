package routes

import (
	"github.com/gorilla/mux"

	"simplexify_server/controllers"
)

// RegisterS3Routes sets up routes for presigned profile picture URLs
func RegisterS3Routes(router *mux.Router, controller *controllers.S3Controller) {
	s3Router := router.PathPrefix("/api/s3").Subrouter()
	s3Router.HandleFunc("/upload-url", controller.GenerateUploadURL).Methods("POST")
	s3Router.HandleFunc("/read-url", controller.GenerateReadURL).Methods("GET")
}

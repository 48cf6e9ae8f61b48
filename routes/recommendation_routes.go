package routes

import (
	"github.com/gorilla/mux"

	"simplexify_server/controllers"
)

// RegisterRecommendationRoutes sets up routes for course recommendations
func RegisterRecommendationRoutes(router *mux.Router, controller *controllers.RecommendationController) {
	recommendationRouter := router.PathPrefix("/api/recommendations").Subrouter()
	recommendationRouter.HandleFunc("/generate", controller.GenerateRecommendations).Methods("POST")
}

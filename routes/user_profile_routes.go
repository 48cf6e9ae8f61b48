package routes

import (
	"github.com/gorilla/mux"

	"simplexify_server/controllers"
)

// RegisterUserProfileRoutes sets up routes for profile management
func RegisterUserProfileRoutes(router *mux.Router, controller *controllers.UserProfileController) {
	profileRouter := router.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("/{userId}", controller.GetProfile).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.SaveProfile).Methods("PUT")
	profileRouter.HandleFunc("/{userId}/darkmode", controller.SetDarkMode).Methods("PUT")
	profileRouter.HandleFunc("/{userId}", controller.DeleteUser).Methods("DELETE")
}

package routes

import (
	"github.com/gorilla/mux"

	"simplexify_server/controllers"
)

// RegisterCommunityRoutes sets up routes for the matching views, the friend
// request workflow, notifications and the friend list
func RegisterCommunityRoutes(
	router *mux.Router,
	connectionController *controllers.ConnectionController,
	friendRequestController *controllers.FriendRequestController,
	notificationController *controllers.NotificationController,
) {
	communityRouter := router.PathPrefix("/api/community").Subrouter()
	communityRouter.HandleFunc("/connections", connectionController.GetPotentialConnections).Methods("GET")
	communityRouter.HandleFunc("/matches", connectionController.GetFriendMatches).Methods("GET")
	communityRouter.HandleFunc("/matches/courses", connectionController.GetCourseMatches).Methods("GET")
	communityRouter.HandleFunc("/requests/send", friendRequestController.SendFriendRequest).Methods("POST")
	communityRouter.HandleFunc("/requests/accept", friendRequestController.AcceptFriendRequest).Methods("POST")
	communityRouter.HandleFunc("/notifications", notificationController.GetNotifications).Methods("GET")
	communityRouter.HandleFunc("/friends", notificationController.GetFriends).Methods("GET")
}

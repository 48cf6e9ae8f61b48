package socket

import (
	"context"
	"log"
	"sync"

	socketio "github.com/googollee/go-socket.io"

	"simplexify_server/models"
	"simplexify_server/services"
)

// Server pushes notification feed changes to connected clients. A client
// emits "join" with its user id; from then on it receives "notifications"
// events on that room whenever the feed changes, until it disconnects.
type Server struct {
	IO            *socketio.Server
	Notifications *services.NotificationService

	mu      sync.Mutex
	cancels map[string]func()
}

// NewServer initializes the socket.io server and its event handlers.
func NewServer(notifications *services.NotificationService) *Server {
	s := &Server{
		IO:            socketio.NewServer(nil),
		Notifications: notifications,
		cancels:       make(map[string]func()),
	}

	s.IO.OnConnect("/", func(conn socketio.Conn) error {
		log.Printf("Socket connected: %s", conn.ID())
		return nil
	})

	s.IO.OnEvent("/", "join", func(conn socketio.Conn, userID string) {
		if userID == "" {
			return
		}
		conn.Join(userID)
		log.Printf("Socket %s joined room %s", conn.ID(), userID)
		s.subscribe(conn.ID(), userID)
	})

	s.IO.OnDisconnect("/", func(conn socketio.Conn, reason string) {
		log.Printf("Socket disconnected: %s (%s)", conn.ID(), reason)
		s.unsubscribe(conn.ID())
	})

	s.IO.OnError("/", func(conn socketio.Conn, err error) {
		log.Printf("Socket error: %v", err)
	})

	return s
}

func (s *Server) subscribe(connID, userID string) {
	cancel := s.Notifications.Subscribe(context.Background(), userID, services.DefaultNotificationPollInterval, func(notifications []models.UserNotification) {
		s.IO.BroadcastToRoom("/", userID, "notifications", notifications)
	})

	s.mu.Lock()
	if old, ok := s.cancels[connID]; ok {
		old()
	}
	s.cancels[connID] = cancel
	s.mu.Unlock()
}

func (s *Server) unsubscribe(connID string) {
	s.mu.Lock()
	cancel, ok := s.cancels[connID]
	delete(s.cancels, connID)
	s.mu.Unlock()
	if ok {
		cancel()
	}
}

// Serve runs the socket.io event loop until Close.
func (s *Server) Serve() error { return s.IO.Serve() }

// Close shuts the server down and cancels every live subscription.
func (s *Server) Close() error {
	s.mu.Lock()
	for id, cancel := range s.cancels {
		cancel()
		delete(s.cancels, id)
	}
	s.mu.Unlock()
	return s.IO.Close()
}

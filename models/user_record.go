package models

// UserRecord is the full per-user document stored in the Users table.
// Interest sources are deliberately loose-typed: profile data written by
// older clients may hold non-string values, which readers filter out.
type UserRecord struct {
	UserID             string                  `dynamodbav:"userId" json:"userId"`
	Email              string                  `dynamodbav:"email,omitempty" json:"email,omitempty"`
	DisplayName        string                  `dynamodbav:"displayName,omitempty" json:"displayName,omitempty"`
	Profile            *UserProfile            `dynamodbav:"profile,omitempty" json:"profile,omitempty"`
	SpecificInterests  map[string]interface{}  `dynamodbav:"specificInterests,omitempty" json:"specificInterests,omitempty"`
	MainInterest       interface{}             `dynamodbav:"mainInterest,omitempty" json:"mainInterest,omitempty"`
	EnrolledCourses    CourseList              `dynamodbav:"enrolledCourses,omitempty" json:"enrolledCourses,omitempty"`
	RecommendedCourses CourseList              `dynamodbav:"recommendedCourses,omitempty" json:"recommendedCourses,omitempty"`
	Friends            map[string]Friend       `dynamodbav:"friends,omitempty" json:"friends,omitempty"`
	SentRequests       map[string]SentRequest  `dynamodbav:"sentRequests,omitempty" json:"sentRequests,omitempty"`
	Notifications      map[string]Notification `dynamodbav:"notifications,omitempty" json:"notifications,omitempty"`
}

// UserProfile is the editable profile subtree under users/{id}/profile.
type UserProfile struct {
	Name       string   `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Email      string   `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Phone      string   `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	DOB        string   `dynamodbav:"dob,omitempty" json:"dob,omitempty"`
	Bio        string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	ProfilePic string   `dynamodbav:"profilePic,omitempty" json:"profilePic,omitempty"`
	Interests  []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	DarkMode   bool     `dynamodbav:"darkMode,omitempty" json:"darkMode,omitempty"`
	UpdatedAt  int64    `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ProfileUpdate is a partial profile write; nil fields are left untouched.
type ProfileUpdate struct {
	Name       *string   `json:"name,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	DOB        *string   `json:"dob,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	ProfilePic *string   `json:"profilePic,omitempty"`
	Interests  *[]string `json:"interests,omitempty"`
	DarkMode   *bool     `json:"darkMode,omitempty"`
}

// Friend is one half of a friendship edge, denormalized at accept time.
// The two halves carry independent timestamps.
type Friend struct {
	Name       string `dynamodbav:"name,omitempty" json:"name,omitempty"`
	ProfilePic string `dynamodbav:"profilePic,omitempty" json:"profilePic,omitempty"`
	Timestamp  int64  `dynamodbav:"timestamp" json:"timestamp"`
}

// FriendEntry is a friends-map entry annotated with the friend's user id.
type FriendEntry struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic"`
	Timestamp  int64  `json:"timestamp"`
}

// SentRequest mirrors an outgoing friend request on the sender record,
// keyed by recipient id.
type SentRequest struct {
	Status    string `dynamodbav:"status" json:"status"`
	Timestamp int64  `dynamodbav:"timestamp" json:"timestamp"`
}

// Notification is an entry in the recipient's notifications map.
// Timestamps are epoch milliseconds throughout.
type Notification struct {
	Type             string `dynamodbav:"type" json:"type"`
	SenderID         string `dynamodbav:"senderId" json:"senderId"`
	SenderName       string `dynamodbav:"senderName" json:"senderName"`
	SenderProfilePic string `dynamodbav:"senderProfilePic" json:"senderProfilePic"`
	Status           string `dynamodbav:"status" json:"status"`
	Timestamp        int64  `dynamodbav:"timestamp" json:"timestamp"`
}

// UserNotification is a notification annotated with its store key.
type UserNotification struct {
	ID string `json:"id"`
	Notification
}

// UserIdentity is the authenticated caller as exposed by the auth provider.
type UserIdentity struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
	Email       string `json:"email,omitempty"`
}

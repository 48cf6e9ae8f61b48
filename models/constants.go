package models

// UsersTable holds one item per user: the full user record tree.
const UsersTable = "Users"

// EnrollmentsTable is the legacy per-user enrollment location, kept for
// records written before enrolledCourses moved onto the user record.
const EnrollmentsTable = "Enrollments"

// CoursesTable stores the shared course catalog and enrollment counters.
const CoursesTable = "Courses"

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
)

const NotificationTypeFriendRequest = "friend_request"

const (
	DefaultUserName       = "User"
	PlaceholderProfilePic = "https://via.placeholder.com/100"
)

package models

// CandidateConnection is a not-yet-connected user surfaced by the
// connections view. The score is the raw count of matching interest pairs;
// duplicate interests count multiple times. Never persisted.
type CandidateConnection struct {
	UserID               string   `json:"userId"`
	Name                 string   `json:"name"`
	ProfilePic           string   `json:"profilePic"`
	SimilarityScore      int      `json:"similarityScore"`
	MatchingCourses      int      `json:"matchingCourses"`
	MatchingCourseTitles []string `json:"matchingCourseTitles"`
}

// CommonCourse is one matched pair in a friend match. Title is the querying
// user's side, OtherTitle the candidate's. MatchType is "exact", "similar"
// or "title" (course-title match in the course-based variant).
type CommonCourse struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	OtherTitle string `json:"otherTitle,omitempty"`
	MatchType  string `json:"matchType"`
}

const (
	MatchTypeExact   = "exact"
	MatchTypeSimilar = "similar"
	MatchTypeTitle   = "title"
)

// FriendMatch is a weighted match from the friend-finder view.
type FriendMatch struct {
	UserID        string         `json:"userId"`
	Name          string         `json:"name"`
	ProfilePic    string         `json:"profilePic"`
	Email         string         `json:"email"`
	CommonCourses []CommonCourse `json:"commonCourses"`
	MatchScore    int            `json:"matchScore"`
	Bio           string         `json:"bio"`
}

// FriendMatchResult pairs the ranked matches with a human-readable summary
// for the UI to show verbatim.
type FriendMatchResult struct {
	Matches []FriendMatch `json:"matches"`
	Message string        `json:"message"`
}

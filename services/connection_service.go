package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"simplexify_server/models"
)

// CourseLister provides the aggregated course view the course-based matcher
// ranks against.
type CourseLister interface {
	GetUserCourses(ctx context.Context, userID string) (*models.UserCourses, error)
}

// ConnectionService ranks not-yet-connected users against the caller by
// interest or course overlap. Rankings are computed on the fly from a full
// snapshot of the user set and never persisted.
type ConnectionService struct {
	Store   UserStore
	Courses CourseLister
}

// NewConnectionService initializes ConnectionService
func NewConnectionService(store UserStore, courses CourseLister) *ConnectionService {
	return &ConnectionService{Store: store, Courses: courses}
}

// FindPotentialConnections returns every other user sharing at least one
// similar interest with the caller, scored by the number of matching
// interest pairs and ordered best first. Existing friends are excluded;
// users with a pending request are still shown here.
func (s *ConnectionService) FindPotentialConnections(ctx context.Context, userID string) ([]models.CandidateConnection, error) {
	users, err := s.Store.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if len(users) == 0 {
		return []models.CandidateConnection{}, nil
	}

	current, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		log.Printf("User %s not found", userID)
		return []models.CandidateConnection{}, nil
	}

	userInterests := ExtractInterests(current)
	if len(userInterests) == 0 {
		log.Printf("User %s has no interests to match on", userID)
		return []models.CandidateConnection{}, nil
	}

	connections := []models.CandidateConnection{}
	for i := range users {
		other := &users[i]
		if other.UserID == userID || isFriend(current, other.UserID) {
			continue
		}

		otherInterests := ExtractInterests(other)
		if len(otherInterests) == 0 {
			continue
		}

		var matchedTitles []string
		for _, mine := range userInterests {
			for _, theirs := range otherInterests {
				if AreSimilarInterests(mine, theirs) {
					matchedTitles = append(matchedTitles, theirs)
				}
			}
		}
		if len(matchedTitles) == 0 {
			continue
		}

		connections = append(connections, models.CandidateConnection{
			UserID:               other.UserID,
			Name:                 ResolveDisplayName(other),
			ProfilePic:           ResolveProfilePic(other),
			SimilarityScore:      len(matchedTitles),
			MatchingCourses:      len(matchedTitles),
			MatchingCourseTitles: matchedTitles,
		})
	}

	sort.SliceStable(connections, func(i, j int) bool {
		return connections[i].SimilarityScore > connections[j].SimilarityScore
	})
	log.Printf("Found %d potential connections for user %s", len(connections), userID)
	return connections, nil
}

// FindFriendsWithSimilarInterests is the friend-finder ranking: weighted
// scores, per-pair match detail, and a summary message for the UI. Unlike
// the connections view it also excludes users the caller already sent a
// request to.
func (s *ConnectionService) FindFriendsWithSimilarInterests(ctx context.Context, userID string) (*models.FriendMatchResult, error) {
	users, err := s.Store.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if len(users) == 0 {
		return &models.FriendMatchResult{Matches: []models.FriendMatch{}, Message: "No users found"}, nil
	}

	current, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return &models.FriendMatchResult{Matches: []models.FriendMatch{}, Message: "User not found"}, nil
	}

	userInterests := ExtractInterests(current)
	if len(userInterests) == 0 {
		return &models.FriendMatchResult{
			Matches: []models.FriendMatch{},
			Message: "You haven't added any interests or enrolled in any courses yet. Add some interests to find potential connections!",
		}, nil
	}

	matches := []models.FriendMatch{}
	for i := range users {
		other := &users[i]
		if other.UserID == userID || isFriend(current, other.UserID) || hasSentRequest(current, other.UserID) {
			continue
		}

		otherInterests := ExtractInterests(other)
		if len(otherInterests) == 0 {
			continue
		}

		var commonCourses []models.CommonCourse
		for _, mine := range userInterests {
			for _, theirs := range otherInterests {
				if AreSimilarInterests(mine, theirs) {
					matchType := models.MatchTypeSimilar
					if mine == theirs {
						matchType = models.MatchTypeExact
					}
					commonCourses = append(commonCourses, models.CommonCourse{
						Title:      mine,
						OtherTitle: theirs,
						MatchType:  matchType,
					})
				}
			}
		}
		if len(commonCourses) == 0 {
			continue
		}

		matches = append(matches, models.FriendMatch{
			UserID:        other.UserID,
			Name:          ResolveDisplayName(other),
			ProfilePic:    ResolveProfilePic(other),
			Email:         ResolveEmail(other),
			CommonCourses: commonCourses,
			MatchScore:    EnhancedMatchScore(commonCourses),
			Bio:           profileBio(other),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	message := "No matches found with your interests. Try adding more interests to find connections!"
	if len(matches) > 0 {
		message = fmt.Sprintf("Found %d potential friends with similar interests!", len(matches))
	}
	return &models.FriendMatchResult{Matches: matches, Message: message}, nil
}

// FindFriendsWithSimilarCourses ranks users by overlap between the caller's
// aggregated courses and the candidates' enrolled plus recommended courses.
// Shared course ids weigh 10, shared titles 5.
func (s *ConnectionService) FindFriendsWithSimilarCourses(ctx context.Context, userID string) (*models.FriendMatchResult, error) {
	userCourses, err := s.Courses.GetUserCourses(ctx, userID)
	if err != nil {
		return nil, err
	}

	mine := courseRefs(userCourses.All)
	if len(mine) == 0 {
		return &models.FriendMatchResult{Matches: []models.FriendMatch{}, Message: "You haven't enrolled in any courses yet"}, nil
	}

	users, err := s.Store.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	current, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	matches := []models.FriendMatch{}
	for i := range users {
		other := &users[i]
		if other.UserID == userID || isFriend(current, other.UserID) || hasSentRequest(current, other.UserID) {
			continue
		}

		otherCourses := append(append([]models.Course{}, other.RecommendedCourses...), other.EnrolledCourses...)
		theirs := courseRefs(otherCourses)
		if len(theirs) == 0 {
			continue
		}

		var commonCourses []models.CommonCourse

		// Pass one: shared course ids, the strongest signal.
		for _, mc := range mine {
			for _, oc := range theirs {
				if mc.id != "" && oc.id != "" && mc.id == oc.id {
					commonCourses = append(commonCourses, models.CommonCourse{
						ID:        mc.id,
						Title:     mc.title,
						MatchType: models.MatchTypeExact,
					})
				}
			}
		}

		// Pass two: identical titles not already matched by id.
		for _, mc := range mine {
			for _, oc := range theirs {
				if mc.title != oc.title {
					continue
				}
				already := false
				for _, cc := range commonCourses {
					if cc.Title == mc.title {
						already = true
						break
					}
				}
				if !already {
					commonCourses = append(commonCourses, models.CommonCourse{
						Title:     mc.title,
						MatchType: models.MatchTypeTitle,
					})
				}
			}
		}
		if len(commonCourses) == 0 {
			continue
		}

		name := models.DefaultUserName
		if other.Profile != nil && other.Profile.Name != "" {
			name = other.Profile.Name
		} else if other.Email != "" {
			name = other.Email
		}

		matches = append(matches, models.FriendMatch{
			UserID:        other.UserID,
			Name:          name,
			ProfilePic:    ResolveProfilePic(other),
			Email:         ResolveEmail(other),
			CommonCourses: commonCourses,
			MatchScore:    CourseMatchScore(commonCourses),
			Bio:           profileBio(other),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	message := "No matches found with your current courses"
	if len(matches) > 0 {
		message = fmt.Sprintf("Found %d potential friends with similar courses!", len(matches))
	}
	return &models.FriendMatchResult{Matches: matches, Message: message}, nil
}

type courseRef struct {
	id    string
	title string
}

func courseRefs(courses []models.Course) []courseRef {
	refs := make([]courseRef, 0, len(courses))
	for _, c := range courses {
		if c.Title == "" {
			continue
		}
		refs = append(refs, courseRef{id: c.ID, title: strings.ToLower(c.Title)})
	}
	return refs
}

func isFriend(user *models.UserRecord, otherID string) bool {
	if user == nil {
		return false
	}
	_, ok := user.Friends[otherID]
	return ok
}

func hasSentRequest(user *models.UserRecord, otherID string) bool {
	if user == nil {
		return false
	}
	_, ok := user.SentRequests[otherID]
	return ok
}

func profileBio(user *models.UserRecord) string {
	if user.Profile != nil {
		return user.Profile.Bio
	}
	return ""
}

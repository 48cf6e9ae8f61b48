package services

import (
	"sort"
	"strings"

	"simplexify_server/models"
	"simplexify_server/utils"
)

// ExtractInterests collects the interests the matching views compare. The
// specificInterests values are taken in key order, then mainInterest;
// non-string values written by older clients are skipped. Everything is
// lowercased and duplicates are kept. When a user has no interests at all,
// enrolled course titles stand in for them.
func ExtractInterests(user *models.UserRecord) []string {
	var interests []string

	keys := make([]string, 0, len(user.SpecificInterests))
	for k := range user.SpecificInterests {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s, ok := user.SpecificInterests[k].(string); ok {
			interests = append(interests, strings.ToLower(s))
		}
	}

	if s, ok := user.MainInterest.(string); ok {
		interests = append(interests, strings.ToLower(s))
	}

	if len(interests) == 0 {
		for _, course := range user.EnrolledCourses {
			if course.Title != "" {
				interests = append(interests, strings.ToLower(course.Title))
			}
		}
	}
	return interests
}

// ResolveDisplayName picks the best available name for a user record:
// profile name, then a name derived from the email, then the top-level
// display name, then the generic fallback.
func ResolveDisplayName(user *models.UserRecord) string {
	if user.Profile != nil && user.Profile.Name != "" {
		return user.Profile.Name
	}
	if user.Email != "" {
		return utils.NameFromEmail(user.Email)
	}
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return models.DefaultUserName
}

// ResolveEmail returns the contact email shown on a match card.
func ResolveEmail(user *models.UserRecord) string {
	if user.Profile != nil && user.Profile.Email != "" {
		return user.Profile.Email
	}
	if user.Email != "" {
		return user.Email
	}
	return "No email available"
}

// ResolveProfilePic returns the profile picture URL or the placeholder.
func ResolveProfilePic(user *models.UserRecord) string {
	if user.Profile != nil && user.Profile.ProfilePic != "" {
		return user.Profile.ProfilePic
	}
	return models.PlaceholderProfilePic
}

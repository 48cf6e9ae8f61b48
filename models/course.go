package models

import (
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Course is a catalog entry, an enrollment, or a generated recommendation;
// which fields are set depends on where it came from.
type Course struct {
	ID               string   `dynamodbav:"id,omitempty" json:"id,omitempty"`
	CourseID         string   `dynamodbav:"courseId,omitempty" json:"courseId,omitempty"`
	UserID           string   `dynamodbav:"userId,omitempty" json:"userId,omitempty"`
	Title            string   `dynamodbav:"title,omitempty" json:"title,omitempty"`
	Description      string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Duration         int      `dynamodbav:"duration,omitempty" json:"duration,omitempty"`
	Difficulty       string   `dynamodbav:"difficulty,omitempty" json:"difficulty,omitempty"`
	KeyTopics        []string `dynamodbav:"keyTopics,omitempty" json:"keyTopics,omitempty"`
	LearningOutcomes []string `dynamodbav:"learningOutcomes,omitempty" json:"learningOutcomes,omitempty"`
	ImageURL         string   `dynamodbav:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Progress         float64  `dynamodbav:"progress,omitempty" json:"progress,omitempty"`
	Status           string   `dynamodbav:"status,omitempty" json:"status,omitempty"`
	EnrollmentDate   string   `dynamodbav:"enrollmentDate,omitempty" json:"enrollmentDate,omitempty"`
	IsInterest       bool     `dynamodbav:"isInterest,omitempty" json:"isInterest,omitempty"`
}

// CourseList normalizes the two historical on-store shapes of a course
// collection (an ordered list, or a keyed map) into one ordered slice at
// the unmarshalling boundary, so readers never branch on the shape.
// Map entries are ordered by key.
type CourseList []Course

func (cl *CourseList) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberL:
		out := make([]Course, 0, len(v.Value))
		for _, item := range v.Value {
			var c Course
			if err := attributevalue.Unmarshal(item, &c); err != nil {
				return fmt.Errorf("course list entry: %w", err)
			}
			out = append(out, c)
		}
		*cl = out
	case *types.AttributeValueMemberM:
		keys := make([]string, 0, len(v.Value))
		for k := range v.Value {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Course, 0, len(keys))
		for _, k := range keys {
			var c Course
			if err := attributevalue.Unmarshal(v.Value[k], &c); err != nil {
				return fmt.Errorf("course map entry %q: %w", k, err)
			}
			out = append(out, c)
		}
		*cl = out
	case *types.AttributeValueMemberNULL:
		*cl = nil
	default:
		return fmt.Errorf("course collection: unsupported attribute type %T", av)
	}
	return nil
}

// UserCourses groups every course associated with a user. All is the
// concatenation used by the community matching views.
type UserCourses struct {
	All         []Course `json:"all"`
	Enrolled    []Course `json:"enrolled"`
	Recommended []Course `json:"recommended"`
	Interests   []Course `json:"interests"`
}

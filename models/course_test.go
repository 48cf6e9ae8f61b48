package models

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestCourseListUnmarshalsListShape(t *testing.T) {
	av := &types.AttributeValueMemberL{Value: []types.AttributeValue{
		&types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"title": &types.AttributeValueMemberS{Value: "First"},
		}},
		&types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"title": &types.AttributeValueMemberS{Value: "Second"},
		}},
	}}

	var list CourseList
	if err := attributevalue.Unmarshal(av, &list); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(list) != 2 || list[0].Title != "First" || list[1].Title != "Second" {
		t.Errorf("list = %+v", list)
	}
}

func TestCourseListUnmarshalsMapShapeInKeyOrder(t *testing.T) {
	av := &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
		"b-key": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"title": &types.AttributeValueMemberS{Value: "Second"},
		}},
		"a-key": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"title": &types.AttributeValueMemberS{Value: "First"},
		}},
	}}

	var list CourseList
	if err := attributevalue.Unmarshal(av, &list); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(list) != 2 || list[0].Title != "First" || list[1].Title != "Second" {
		t.Errorf("list = %+v", list)
	}
}

func TestCourseListUnmarshalsNull(t *testing.T) {
	var list CourseList
	if err := attributevalue.Unmarshal(&types.AttributeValueMemberNULL{Value: true}, &list); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if list != nil {
		t.Errorf("list = %+v, want nil", list)
	}
}

func TestCourseListRejectsScalar(t *testing.T) {
	var list CourseList
	if err := attributevalue.Unmarshal(&types.AttributeValueMemberS{Value: "oops"}, &list); err == nil {
		t.Error("expected error for scalar attribute")
	}
}

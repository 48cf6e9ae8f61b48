package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"simplexify_server/models"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// RecommendationRequest carries the onboarding answers recommendations are
// generated from.
type RecommendationRequest struct {
	MainInterest    string `json:"mainInterest"`
	ExperienceLevel string `json:"experienceLevel"`
}

// RecommendationService generates personalized course recommendations with
// an OpenRouter chat model and falls back to the curated catalog whenever
// the model output is unusable. Generation never fails outright.
type RecommendationService struct {
	Store    UserStore
	Client   *http.Client
	BaseURL  string
	APIKey   string
	Model    string
	SiteName string
	Referer  string
}

// NewRecommendationService initializes RecommendationService
func NewRecommendationService(store UserStore, apiKey, model, siteName, referer string) *RecommendationService {
	return &RecommendationService{
		Store:    store,
		Client:   &http.Client{Timeout: 60 * time.Second},
		BaseURL:  defaultOpenRouterBaseURL,
		APIKey:   apiKey,
		Model:    model,
		SiteName: siteName,
		Referer:  referer,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type generatedCourses struct {
	Courses []models.Course `json:"courses"`
}

// GenerateCourseRecommendations produces up to ten cleaned, deduplicated
// courses for the request. Model errors, unparseable output, and thin
// results all degrade to catalog courses; the caller always gets something.
func (s *RecommendationService) GenerateCourseRecommendations(ctx context.Context, req RecommendationRequest) ([]models.Course, error) {
	courses, err := s.callModel(ctx, req)
	if err != nil {
		log.Printf("Recommendation model call failed, using catalog courses: %v", err)
		courses = templateCoursesFor(req.MainInterest, req.ExperienceLevel)
	}
	if len(courses) == 0 {
		courses = templateCoursesFor(req.MainInterest, req.ExperienceLevel)
	}

	cleaned := make([]models.Course, 0, len(courses))
	seen := map[string]bool{}
	for _, c := range courses {
		course := s.cleanCourse(c, req.ExperienceLevel)
		if course.Title == "" || seen[course.Title] {
			continue
		}
		seen[course.Title] = true
		cleaned = append(cleaned, course)
		if len(cleaned) == 10 {
			break
		}
	}

	// Thin results get padded from the catalog up to five courses.
	if len(cleaned) < 3 {
		for _, c := range templateCoursesFor(req.MainInterest, req.ExperienceLevel) {
			if seen[c.Title] {
				continue
			}
			course := c
			course.ImageURL = relevantImage(course.Title, course.KeyTopics)
			seen[course.Title] = true
			cleaned = append(cleaned, course)
			if len(cleaned) >= 5 {
				break
			}
		}
	}
	return cleaned, nil
}

// SaveCourseRecommendations stores the generated courses on the user
// record, replacing any previous set.
func (s *RecommendationService) SaveCourseRecommendations(ctx context.Context, userID string, courses []models.Course) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	if err := s.Store.SaveRecommendedCourses(ctx, userID, courses); err != nil {
		return fmt.Errorf("failed to save recommendations for '%s': %w", userID, err)
	}
	log.Printf("Saved %d course recommendations for user %s", len(courses), userID)
	return nil
}

func (s *RecommendationService) callModel(ctx context.Context, req RecommendationRequest) ([]models.Course, error) {
	prompt := fmt.Sprintf(`Generate 10 unique course recommendations based on these preferences:
Main Interest: %s
Experience Level: %s

Return the response in this exact JSON format:
{
    "courses": [
        {
            "title": "Course Title",
            "description": "2-3 sentences about the course",
            "duration": 8,
            "difficulty": "Beginner/Intermediate/Advanced",
            "keyTopics": ["topic1", "topic2", "topic3"],
            "learningOutcomes": ["outcome1", "outcome2", "outcome3"]
        }
    ]
}

Make sure:
1. Each course title is unique and specific
2. Descriptions are detailed and relevant
3. Duration is in weeks (4-12 weeks)
4. Key topics are specific to the course (at least 3 topics)
5. Learning outcomes are measurable
6. Difficulty matches user's level (%s)
7. All courses relate to %s`, req.MainInterest, req.ExperienceLevel, req.ExperienceLevel, req.MainInterest)

	body, err := json.Marshal(chatRequest{
		Model: s.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are an expert course advisor who provides detailed, personalized course recommendations. Always return valid JSON."},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.APIKey)
	httpReq.Header.Set("HTTP-Referer", s.Referer)
	httpReq.Header.Set("X-Title", s.SiteName)

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openrouter request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("openrouter returned %s: %s", resp.Status, detail)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("failed to decode openrouter response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, errors.New("openrouter response has no choices")
	}

	var parsed generatedCourses
	if err := json.Unmarshal([]byte(stripCodeFences(chat.Choices[0].Message.Content)), &parsed); err != nil {
		return nil, fmt.Errorf("model output is not valid JSON: %w", err)
	}
	return parsed.Courses, nil
}

// stripCodeFences unwraps model output wrapped in a markdown code block.
func stripCodeFences(content string) string {
	if i := strings.Index(content, "```json"); i >= 0 {
		rest := content[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
		return strings.TrimSpace(rest)
	}
	if i := strings.Index(content, "```"); i >= 0 {
		rest := content[i+len("```"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
		return strings.TrimSpace(rest)
	}
	return content
}

func (s *RecommendationService) cleanCourse(course models.Course, experienceLevel string) models.Course {
	cleaned := models.Course{
		Title:       strings.TrimSpace(course.Title),
		Description: strings.TrimSpace(course.Description),
		Duration:    course.Duration,
		Difficulty:  strings.TrimSpace(course.Difficulty),
	}
	if cleaned.Duration == 0 {
		cleaned.Duration = 8
	}
	if cleaned.Difficulty == "" {
		cleaned.Difficulty = experienceLevel
	}
	for _, topic := range course.KeyTopics {
		cleaned.KeyTopics = append(cleaned.KeyTopics, strings.TrimSpace(topic))
	}
	for _, outcome := range course.LearningOutcomes {
		cleaned.LearningOutcomes = append(cleaned.LearningOutcomes, strings.TrimSpace(outcome))
	}
	cleaned.ImageURL = relevantImage(cleaned.Title, cleaned.KeyTopics)
	return cleaned
}

// relevantImage picks an illustration from the matching category. The
// top-level rand functions are safe for concurrent request handlers.
func relevantImage(title string, topics []string) string {
	images := courseImageCategories[imageCategoryFor(title, topics)]
	return images[rand.Intn(len(images))]
}

package services

import (
	"strings"

	"simplexify_server/models"
)

// courseImageCategories holds stock illustrations per course category. A
// generated course gets a random image from the category its title and
// topics match.
var courseImageCategories = map[string][]string{
	"programming": {
		"https://img.freepik.com/free-vector/programmers-using-javascript-programming-language-computer-tiny-people-javascript-language-javascript-engine-js-web-development-concept_335657-2412.jpg",
		"https://img.freepik.com/free-vector/hand-coding-concept-illustration_114360-8193.jpg",
		"https://img.freepik.com/free-vector/programming-concept-illustration_114360-1351.jpg",
		"https://img.freepik.com/free-vector/desktop-smartphone-app-development_23-2148683130.jpg",
	},
	"design": {
		"https://img.freepik.com/free-vector/gradient-ui-ux-background_23-2149052117.jpg",
		"https://img.freepik.com/free-vector/gradient-ui-ux-illustration_52683-69272.jpg",
		"https://img.freepik.com/free-vector/website-designer-concept-illustration_114360-4100.jpg",
		"https://img.freepik.com/free-vector/design-process-concept-illustration_114360-4957.jpg",
	},
	"webdev": {
		"https://img.freepik.com/free-vector/website-development-banner_33099-1687.jpg",
		"https://img.freepik.com/free-vector/web-development-programmer-engineering-coding-website-augmented-reality-interface-screens-developer-project-engineer-programming-software-application-design-cartoon-illustration_107791-3863.jpg",
		"https://img.freepik.com/free-vector/web-development-concept-illustration_114360-2923.jpg",
	},
	"mobile": {
		"https://img.freepik.com/free-vector/app-development-illustration_52683-47931.jpg",
		"https://img.freepik.com/free-vector/mobile-app-development-concept-illustration_114360-7293.jpg",
		"https://img.freepik.com/free-vector/gradient-mobile-development-illustration_52683-81760.jpg",
	},
	"data": {
		"https://img.freepik.com/free-vector/big-data-analytics-abstract-concept-illustration_335657-2137.jpg",
		"https://img.freepik.com/free-vector/data-extraction-concept-illustration_114360-4876.jpg",
		"https://img.freepik.com/free-vector/data-analysis-concept-illustration_114360-8112.jpg",
	},
	"ai": {
		"https://img.freepik.com/free-vector/artificial-intelligence-concept-illustration_114360-7135.jpg",
		"https://img.freepik.com/free-vector/artificial-intelligence-concept-illustration_114360-1164.jpg",
		"https://img.freepik.com/free-vector/machine-learning-concept-illustration_114360-3207.jpg",
	},
	"business": {
		"https://img.freepik.com/free-vector/business-planning-concept-illustration_114360-1675.jpg",
		"https://img.freepik.com/free-vector/digital-marketing-team-with-laptops-light-bulb-marketing-team-metrics-marketing-team-lead-responsibilities-concept_335657-258.jpg",
		"https://img.freepik.com/free-vector/strategic-consulting-concept-illustration_114360-8994.jpg",
	},
}

// imageMatchRules map course keywords to an image category. First rule that
// matches the title or any topic wins.
var imageMatchRules = []struct {
	keywords []string
	category string
}{
	{[]string{"react", "frontend", "web development"}, "webdev"},
	{[]string{"ui", "ux", "design", "graphic"}, "design"},
	{[]string{"mobile", "ios", "android", "react native"}, "mobile"},
	{[]string{"data", "algorithm", "structure", "database"}, "data"},
	{[]string{"ai", "machine learning", "artificial intelligence"}, "ai"},
	{[]string{"business", "marketing", "management"}, "business"},
	{[]string{"programming", "coding", "development"}, "programming"},
}

func imageCategoryFor(title string, topics []string) string {
	titleLower := strings.ToLower(title)
	topicsLower := make([]string, len(topics))
	for i, t := range topics {
		topicsLower[i] = strings.ToLower(t)
	}

	for _, rule := range imageMatchRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(titleLower, keyword) {
				return rule.category
			}
			for _, topic := range topicsLower {
				if strings.Contains(topic, keyword) {
					return rule.category
				}
			}
		}
	}
	return "programming"
}

// courseTemplates is the curated fallback catalog used when the generator
// returns nothing usable, keyed by interest then experience level.
var courseTemplates = map[string]map[string][]models.Course{
	"design": {
		"beginner": {
			{
				Title:            "Introduction to UI/UX Design",
				Description:      "Learn the fundamentals of user interface and user experience design. Master the basics of design thinking and modern design tools.",
				Duration:         6,
				Difficulty:       "Beginner",
				KeyTopics:        []string{"Design Principles", "Color Theory", "Typography", "Wireframing", "Prototyping"},
				LearningOutcomes: []string{"Create basic UI designs", "Understand user experience principles", "Use design tools effectively"},
			},
			{
				Title:            "Graphic Design Fundamentals",
				Description:      "Master the basics of graphic design including composition, layout, and digital design tools.",
				Duration:         8,
				Difficulty:       "Beginner",
				KeyTopics:        []string{"Adobe Creative Suite", "Layout Design", "Brand Design", "Digital Graphics"},
				LearningOutcomes: []string{"Create professional graphics", "Design logos and branding materials", "Master design software"},
			},
		},
		"intermediate": {
			{
				Title:            "Advanced UI Design Patterns",
				Description:      "Deep dive into complex UI patterns and advanced design systems. Learn to create scalable and consistent designs.",
				Duration:         10,
				Difficulty:       "Intermediate",
				KeyTopics:        []string{"Design Systems", "Component Libraries", "Advanced Prototyping", "Design Documentation"},
				LearningOutcomes: []string{"Build complex design systems", "Create advanced prototypes", "Document design decisions"},
			},
		},
		"advanced": {
			{
				Title:            "Design Leadership and Systems",
				Description:      "Learn to lead design teams and create enterprise-level design systems. Master advanced design strategy and team management.",
				Duration:         12,
				Difficulty:       "Advanced",
				KeyTopics:        []string{"Design Leadership", "Enterprise Design Systems", "Design Strategy", "Team Management"},
				LearningOutcomes: []string{"Lead design teams", "Create enterprise design systems", "Develop design strategies"},
			},
		},
	},
	"programming": {
		"beginner": {
			{
				Title:            "Introduction to Web Development",
				Description:      "Learn the basics of web development including HTML, CSS, and JavaScript. Build your first responsive websites.",
				Duration:         8,
				Difficulty:       "Beginner",
				KeyTopics:        []string{"HTML5", "CSS3", "JavaScript Basics", "Responsive Design"},
				LearningOutcomes: []string{"Build basic websites", "Style web pages", "Add interactivity"},
			},
		},
		"intermediate": {
			{
				Title:            "Full-Stack JavaScript Development",
				Description:      "Master both frontend and backend development with JavaScript. Learn popular frameworks and databases.",
				Duration:         12,
				Difficulty:       "Intermediate",
				KeyTopics:        []string{"React", "Node.js", "MongoDB", "Express.js"},
				LearningOutcomes: []string{"Build full-stack applications", "Work with databases", "Deploy web apps"},
			},
		},
		"advanced": {
			{
				Title:            "Advanced Software Architecture",
				Description:      "Learn advanced software design patterns and architectural principles. Master system design and scalability.",
				Duration:         10,
				Difficulty:       "Advanced",
				KeyTopics:        []string{"Design Patterns", "System Architecture", "Scalability", "Performance"},
				LearningOutcomes: []string{"Design complex systems", "Implement design patterns", "Scale applications"},
			},
		},
	},
	"business": {
		"beginner": {
			{
				Title:            "Business Fundamentals",
				Description:      "Learn the basics of business management and entrepreneurship. Understand key business concepts and strategies.",
				Duration:         6,
				Difficulty:       "Beginner",
				KeyTopics:        []string{"Business Planning", "Marketing Basics", "Financial Management", "Operations"},
				LearningOutcomes: []string{"Create business plans", "Understand market analysis", "Manage basic finances"},
			},
		},
		"intermediate": {
			{
				Title:            "Digital Marketing Strategy",
				Description:      "Master digital marketing channels and strategies. Learn to create and execute marketing campaigns.",
				Duration:         8,
				Difficulty:       "Intermediate",
				KeyTopics:        []string{"Social Media Marketing", "SEO", "Content Marketing", "Analytics"},
				LearningOutcomes: []string{"Create marketing strategies", "Manage campaigns", "Analyze performance"},
			},
		},
		"advanced": {
			{
				Title:            "Advanced Business Strategy",
				Description:      "Learn advanced business strategy and leadership. Master corporate strategy and organizational management.",
				Duration:         10,
				Difficulty:       "Advanced",
				KeyTopics:        []string{"Corporate Strategy", "Leadership", "Change Management", "Innovation"},
				LearningOutcomes: []string{"Develop business strategies", "Lead organizations", "Drive innovation"},
			},
		},
	},
}

// templateCoursesFor returns the catalog slice for the interest and level,
// falling back to the interest's beginner track, then to programming
// beginner.
func templateCoursesFor(mainInterest, experienceLevel string) []models.Course {
	interest := strings.ToLower(mainInterest)
	level := strings.ToLower(experienceLevel)

	if byLevel, ok := courseTemplates[interest]; ok {
		if courses, ok := byLevel[level]; ok && len(courses) > 0 {
			return courses
		}
		if courses, ok := byLevel["beginner"]; ok {
			return courses
		}
	}
	return courseTemplates["programming"]["beginner"]
}

package lesson

import "github.com/priyam/learnsphere/internal/llm"

// LessonSchema defines the JSON schema for lesson generation. The section
// array is deliberately unconstrained in length; the quiz length and
// option count are enforced post-parse in Validate so that a malformed
// response is rejected identically regardless of provider schema support.
var LessonSchema = &llm.Schema{
	Name:        "lesson",
	Description: "A structured lesson with introduction, progressive sections, and a 10-question quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A catchy and descriptive title for the lesson",
			},
			"introduction": map[string]any{
				"type":        "string",
				"description": "A brief, engaging introduction to the topic",
			},
			"sections": map[string]any{
				"type":        "array",
				"description": "Lesson sections structured progressively, starting with fundamental concepts and building to more complex topics",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "The title of the lesson section",
						},
						"content": map[string]any{
							"type":        "string",
							"description": "The main content of the section, formatted as paragraphs separated by line breaks",
						},
					},
					"required":             []any{"title", "content"},
					"additionalProperties": false,
				},
			},
			"quiz": map[string]any{
				"type":        "array",
				"description": "Exactly 10 multiple-choice questions to test understanding, each with 4 options",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The quiz question",
						},
						"options": map[string]any{
							"type":        "array",
							"description": "An array of 4 possible answers",
							"items":       map[string]any{"type": "string"},
						},
						"correctAnswerIndex": map[string]any{
							"type":        "integer",
							"description": "The 0-based index of the correct answer in the options array",
						},
					},
					"required":             []any{"question", "options", "correctAnswerIndex"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "introduction", "sections", "quiz"},
		"additionalProperties": false,
	},
}

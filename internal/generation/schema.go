package generation

import "github.com/phrazzld/quizgen-api/internal/domain"

// Schema is the subset of JSON Schema used to constrain structured model
// output. It marshals to standard JSON Schema; provider adapters translate it
// to their own representation.
type Schema struct {
	Type                 string             `json:"type"`
	Description          string             `json:"description,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	PropertyOrder        []string           `json:"-"`
	Required             []string           `json:"required,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	MinItems             *int               `json:"minItems,omitempty"`
	MaxItems             *int               `json:"maxItems,omitempty"`
	Minimum              *int               `json:"minimum,omitempty"`
	Maximum              *int               `json:"maximum,omitempty"`
	MinLength            *int               `json:"minLength,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty"`
}

// Schema types.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeInteger = "integer"
)

func ptr[T any](v T) *T { return &v }

// QuizSchema returns the structured-output schema for a quiz of exactly count
// questions. It is a hard constraint passed to the model, which may still
// ignore it; ResponseValidator.Validate is the authoritative check.
func QuizSchema(count int) *Schema {
	question := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"id": {
				Type:        TypeString,
				Description: "Unique identifier for the question",
			},
			"question": {
				Type:        TypeString,
				Description: "The quiz question text",
				MinLength:   ptr(domain.MinQuestionLength),
			},
			"options": {
				Type:        TypeArray,
				Description: "Four answer options",
				Items:       &Schema{Type: TypeString},
				MinItems:    ptr(domain.OptionCount),
				MaxItems:    ptr(domain.OptionCount),
			},
			"correctAnswer": {
				Type:        TypeInteger,
				Description: "Index of the correct answer (0-3)",
				Minimum:     ptr(0),
				Maximum:     ptr(domain.OptionCount - 1),
			},
			"explanation": {
				Type:        TypeString,
				Description: "Explanation of the correct answer",
				MinLength:   ptr(domain.MinExplanationLength),
			},
		},
		PropertyOrder:        []string{"id", "question", "options", "correctAnswer", "explanation"},
		Required:             []string{"id", "question", "options", "correctAnswer", "explanation"},
		AdditionalProperties: ptr(false),
	}

	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title": {
				Type:        TypeString,
				Description: "Short title summarizing the quiz topic",
			},
			"category": {
				Type:        TypeString,
				Description: "Coarse subject category of the source content",
			},
			"questions": {
				Type:        TypeArray,
				Description: "Array of quiz questions",
				Items:       question,
				MinItems:    ptr(count),
				MaxItems:    ptr(count),
			},
		},
		PropertyOrder:        []string{"title", "category", "questions"},
		Required:             []string{"title", "category", "questions"},
		AdditionalProperties: ptr(false),
	}
}

package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/quizgen-api/internal/domain"
)

// quizPayload is the wire shape of a synthesized quiz. Pointer fields let
// validation tell a missing field from a zero value.
type quizPayload struct {
	Title     *string           `json:"title"     validate:"required,notblank"`
	Category  *string           `json:"category"  validate:"required,notblank"`
	Questions []questionPayload `json:"questions" validate:"required,dive"`
}

type questionPayload struct {
	ID            *string  `json:"id"`
	Question      *string  `json:"question"      validate:"required,min=10"`
	Options       []string `json:"options"       validate:"required,len=4"`
	CorrectAnswer *int     `json:"correctAnswer" validate:"required,min=0,max=3"`
	Explanation   *string  `json:"explanation"   validate:"required,min=10"`
}

// Global validator instance for reuse
var validate = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ResponseValidator turns raw model output into a quiz, or explains why it
// cannot. It is safe for concurrent use.
type ResponseValidator struct {
	newStamp func() string
}

// NewResponseValidator creates a validator that stamps repaired ids with
// NewResponseStamp.
func NewResponseValidator() *ResponseValidator {
	return &ResponseValidator{newStamp: NewResponseStamp}
}

// Validate parses raw as JSON, checks it against the quiz shape, enforces
// exactly expected questions and repairs missing ids.
//
// It returns an error wrapping ErrJSONParse, ErrSchemaValidation or
// ErrQuestionCountMismatch. A response with the wrong number of questions is
// never truncated or padded.
func (v *ResponseValidator) Validate(raw string, expected int) (*domain.QuizQuestions, error) {
	var payload quizPayload
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %q has type %s, want %s",
				ErrSchemaValidation, typeErr.Field, typeErr.Value, typeErr.Type)
		}
		return nil, fmt.Errorf("%w: %v", ErrJSONParse, err)
	}

	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaValidation, describeValidationError(err))
	}

	if len(payload.Questions) != expected {
		return nil, fmt.Errorf("%w: got %d, want %d",
			ErrQuestionCountMismatch, len(payload.Questions), expected)
	}

	quiz := &domain.QuizQuestions{
		Title:     strings.TrimSpace(*payload.Title),
		Category:  strings.TrimSpace(*payload.Category),
		Questions: make([]domain.QuizQuestion, 0, len(payload.Questions)),
	}
	for _, q := range payload.Questions {
		question := domain.QuizQuestion{
			Question:      *q.Question,
			Options:       append([]string(nil), q.Options...),
			CorrectAnswer: *q.CorrectAnswer,
			Explanation:   *q.Explanation,
		}
		if q.ID != nil {
			question.ID = strings.TrimSpace(*q.ID)
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	RepairIDs(quiz, v.newStamp())

	return quiz, nil
}

// cleanJSONResponse removes whitespace and a surrounding Markdown code fence,
// which models sometimes add even in JSON mode.
func cleanJSONResponse(response string) string {
	cleaned := strings.TrimSpace(response)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}

// describeValidationError names the first failing field by its JSON path,
// e.g. `questions[2].options failed "len=4"`.
func describeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}

	fe := validationErrs[0]
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}

	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}

	return fmt.Sprintf("%s failed %q", path, rule)
}

package domain

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Minimum lengths for generated free text.
const (
	MinQuestionLength    = 10
	MinExplanationLength = 10
)

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	// ID is unique within one quiz. It is assigned by the system when the
	// model leaves it empty.
	ID string `json:"id"`

	Question string   `json:"question"`
	Options  []string `json:"options"`

	// CorrectAnswer indexes Options and is always in [0, OptionCount).
	CorrectAnswer int `json:"correctAnswer"`

	Explanation string `json:"explanation"`
}

// QuizQuestions is a generated quiz. The length of Questions always matches
// the amount requested by the caller.
type QuizQuestions struct {
	Title     string         `json:"title"`
	Category  string         `json:"category"`
	Questions []QuizQuestion `json:"questions"`
}

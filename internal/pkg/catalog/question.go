package catalog

// Difficulty of a quiz question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Option is one answer choice. Exactly one option per question carries
// IsCorrect=true; Validate enforces this at startup.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"-"`
}

// Question is a static quiz question. The pool is defined in-process and
// never mutated at runtime.
type Question struct {
	ID           string     `json:"id"`
	QuestionText string     `json:"question_text"`
	Options      []Option   `json:"options"`
	Category     string     `json:"category"`
	Difficulty   Difficulty `json:"difficulty"`
	Explanation  string     `json:"explanation"`
}

// CorrectIndex returns the position of the correct option, or -1 if the
// question data is invalid.
func (q Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o.IsCorrect {
			return i
		}
	}
	return -1
}

package entity

// Quiz state machine values exposed over the API.
const (
	QuizStateIdle     = "idle"
	QuizStateActive   = "active"
	QuizStateFinished = "finished"
)

// Answer status values for the current question.
const (
	AnswerUnanswered = "unanswered"
	AnswerCorrect    = "correct"
	AnswerIncorrect  = "incorrect"
)

// QuizQuestionView is a question as presented to the client. Option
// correctness is withheld until the answer is submitted.
type QuizQuestionView struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	Category     string   `json:"category"`
	Difficulty   string   `json:"difficulty"`
}

type SelectAnswerRequest struct {
	OptionIndex *int `json:"option_index" validate:"required,min=0"`
}

type ExplainRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
}

type ExplainResponse struct {
	QuestionID  string `json:"question_id"`
	Explanation string `json:"explanation"`
	Source      string `json:"source"` // "coach" or "static"
}

// QuizStateResponse is the full view of one quiz attempt.
type QuizStateResponse struct {
	State          string            `json:"state"`
	CurrentIndex   int               `json:"current_index"`
	TotalQuestions int               `json:"total_questions"`
	Score          int               `json:"score"`
	AnswerStatus   string            `json:"answer_status"`
	SelectedOption *int              `json:"selected_option,omitempty"`
	Question       *QuizQuestionView `json:"question,omitempty"`
	CorrectOption  *int              `json:"correct_option,omitempty"`
	Explanation    string            `json:"explanation,omitempty"`
}

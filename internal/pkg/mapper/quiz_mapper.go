package mapper

import (
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/entity"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/catalog"
)

// QuestionView maps a catalog question to its client view, stripping
// option correctness.
func QuestionView(q catalog.Question) *entity.QuizQuestionView {
	options := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, o.Text)
	}
	return &entity.QuizQuestionView{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		Options:      options,
		Category:     q.Category,
		Difficulty:   string(q.Difficulty),
	}
}

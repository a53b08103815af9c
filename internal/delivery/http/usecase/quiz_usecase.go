package usecase

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/entity"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/repository"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/catalog"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/llm"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// batchSize is the number of questions drawn per quiz attempt.
const batchSize = 5

type QuizUsecase interface {
	Start(ctx context.Context, clientID string) (*entity.QuizStateResponse, error)
	Select(ctx context.Context, clientID string, optionIndex int) (*entity.QuizStateResponse, error)
	Submit(ctx context.Context, clientID string) (*entity.QuizStateResponse, error)
	Next(ctx context.Context, clientID string) (*entity.QuizStateResponse, error)
	Current(ctx context.Context, clientID string) (*entity.QuizStateResponse, error)
	Explain(ctx context.Context, clientID string, questionID string) (*entity.ExplainResponse, error)
}

type QuizConfig struct {
	DB      *gorm.DB
	Log     *logrus.Logger
	Storage repository.StorageRepository
	Pool    []catalog.Question
	Coach   *llm.CoachClient
	Seed    *int64 // deterministic draws when set
}

// attempt is the in-memory state of one quiz run. It lives only for the
// duration of the attempt and is discarded on restart.
type attempt struct {
	questions []catalog.Question
	current   int
	score     int
	selected  int // -1 when nothing is selected
	status    string
	state     string
}

type quizUsecase struct {
	cfg QuizConfig
	rnd *rand.Rand

	mu       sync.Mutex
	attempts map[string]*attempt
}

func NewQuizUsecase(cfg QuizConfig) QuizUsecase {
	var r *rand.Rand
	if cfg.Seed != nil {
		r = rand.New(rand.NewSource(*cfg.Seed))
	} else {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &quizUsecase{
		cfg:      cfg,
		rnd:      r,
		attempts: make(map[string]*attempt),
	}
}

// Start draws a fresh batch of not-recently-seen questions and resets the
// attempt state. When fewer than a full batch remain unseen, the seen
// record is cleared first so every start produces a full batch, even
// though a just-seen question may then reappear immediately.
func (u *quizUsecase) Start(_ context.Context, clientID string) (*entity.QuizStateResponse, error) {
	if len(u.cfg.Pool) == 0 {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "question pool is empty")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	seen := u.loadSeen(clientID)

	unseen := make([]catalog.Question, 0, len(u.cfg.Pool))
	for _, q := range u.cfg.Pool {
		if _, ok := seen[q.ID]; !ok {
			unseen = append(unseen, q)
		}
	}

	if len(unseen) < batchSize {
		if err := u.cfg.Storage.Delete(u.cfg.DB, storageKey(clientID, keySeenQuestions)); err != nil && u.cfg.Log != nil {
			u.cfg.Log.WithError(err).Warn("failed to clear seen-question record")
		}
		unseen = append([]catalog.Question(nil), u.cfg.Pool...)
	}

	u.rnd.Shuffle(len(unseen), func(i, j int) { unseen[i], unseen[j] = unseen[j], unseen[i] })

	n := batchSize
	if n > len(unseen) {
		n = len(unseen)
	}

	a := &attempt{
		questions: unseen[:n],
		selected:  -1,
		status:    entity.AnswerUnanswered,
		state:     entity.QuizStateActive,
	}
	u.attempts[clientID] = a

	return u.view(a), nil
}

// Select records a tentative answer. It is a no-op once the current
// question has a submitted answer.
func (u *quizUsecase) Select(_ context.Context, clientID string, optionIndex int) (*entity.QuizStateResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	a, err := u.activeAttempt(clientID)
	if err != nil {
		return nil, err
	}
	if a.status != entity.AnswerUnanswered {
		return u.view(a), nil
	}
	if optionIndex < 0 || optionIndex >= len(a.questions[a.current].Options) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "option index out of range")
	}
	a.selected = optionIndex
	return u.view(a), nil
}

// Submit evaluates the selected option. With nothing selected it is a
// no-op; once answered, the status is terminal until the next question.
func (u *quizUsecase) Submit(_ context.Context, clientID string) (*entity.QuizStateResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	a, err := u.activeAttempt(clientID)
	if err != nil {
		return nil, err
	}
	if a.selected < 0 || a.status != entity.AnswerUnanswered {
		return u.view(a), nil
	}

	if a.questions[a.current].Options[a.selected].IsCorrect {
		a.score++
		a.status = entity.AnswerCorrect
	} else {
		a.status = entity.AnswerIncorrect
	}
	return u.view(a), nil
}

// Next marks the current question seen, persisting immediately, then
// advances or finishes the attempt.
func (u *quizUsecase) Next(_ context.Context, clientID string) (*entity.QuizStateResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	a, err := u.activeAttempt(clientID)
	if err != nil {
		return nil, err
	}

	u.markSeen(clientID, a.questions[a.current].ID)

	if a.current+1 < len(a.questions) {
		a.current++
		a.selected = -1
		a.status = entity.AnswerUnanswered
	} else {
		a.state = entity.QuizStateFinished
	}
	return u.view(a), nil
}

// Current returns the attempt view, or the idle state when no attempt
// exists for the client.
func (u *quizUsecase) Current(_ context.Context, clientID string) (*entity.QuizStateResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	a, ok := u.attempts[clientID]
	if !ok {
		return &entity.QuizStateResponse{
			State:        entity.QuizStateIdle,
			AnswerStatus: entity.AnswerUnanswered,
		}, nil
	}
	return u.view(a), nil
}

// Explain returns the expanded coach explanation for a pool question,
// falling back to the static explanation whenever the coach is
// unavailable or errors out.
func (u *quizUsecase) Explain(ctx context.Context, _ string, questionID string) (*entity.ExplainResponse, error) {
	var question *catalog.Question
	for i := range u.cfg.Pool {
		if u.cfg.Pool[i].ID == questionID {
			question = &u.cfg.Pool[i]
			break
		}
	}
	if question == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "unknown question id")
	}

	if u.cfg.Coach.Enabled() {
		text, err := u.cfg.Coach.ExplainQuestion(ctx, *question)
		if err == nil {
			return &entity.ExplainResponse{QuestionID: questionID, Explanation: text, Source: "coach"}, nil
		}
		if u.cfg.Log != nil {
			u.cfg.Log.WithError(err).Warn("coach explanation failed, using static text")
		}
	}

	return &entity.ExplainResponse{QuestionID: questionID, Explanation: question.Explanation, Source: "static"}, nil
}

func (u *quizUsecase) activeAttempt(clientID string) (*attempt, error) {
	a, ok := u.attempts[clientID]
	if !ok {
		return nil, fiber.NewError(fiber.StatusConflict, "no quiz in progress")
	}
	if a.state != entity.QuizStateActive {
		return nil, fiber.NewError(fiber.StatusConflict, "quiz already finished")
	}
	return a, nil
}

// loadSeen reads the persisted seen-question record. Absent or unparsable
// records resolve to an empty set; the parse failure is logged only.
func (u *quizUsecase) loadSeen(clientID string) map[string]struct{} {
	seen := make(map[string]struct{})
	raw, ok, err := u.cfg.Storage.Get(u.cfg.DB, storageKey(clientID, keySeenQuestions))
	if err != nil {
		if u.cfg.Log != nil {
			u.cfg.Log.WithError(err).Warn("seen-question record read failed")
		}
		return seen
	}
	if !ok {
		return seen
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		if u.cfg.Log != nil {
			u.cfg.Log.WithError(err).Warn("discarding corrupt seen-question record")
		}
		return seen
	}
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return seen
}

// markSeen appends id to the persisted seen record, skipping ids already
// present. Storage failures are logged and swallowed so a quiz never
// fails over its seen bookkeeping.
func (u *quizUsecase) markSeen(clientID string, id string) {
	key := storageKey(clientID, keySeenQuestions)

	var ids []string
	raw, ok, err := u.cfg.Storage.Get(u.cfg.DB, key)
	if err == nil && ok {
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			ids = nil
		}
	}

	for _, existing := range ids {
		if existing == id {
			return
		}
	}
	ids = append(ids, id)

	encoded, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := u.cfg.Storage.Put(u.cfg.DB, key, string(encoded)); err != nil && u.cfg.Log != nil {
		u.cfg.Log.WithError(err).Warn("failed to persist seen-question record")
	}
}

func (u *quizUsecase) view(a *attempt) *entity.QuizStateResponse {
	resp := &entity.QuizStateResponse{
		State:          a.state,
		CurrentIndex:   a.current,
		TotalQuestions: len(a.questions),
		Score:          a.score,
		AnswerStatus:   a.status,
	}

	if a.state != entity.QuizStateActive {
		return resp
	}

	q := a.questions[a.current]
	resp.Question = mapper.QuestionView(q)
	if a.selected >= 0 {
		sel := a.selected
		resp.SelectedOption = &sel
	}
	// correctness and explanation are revealed only after submission
	if a.status != entity.AnswerUnanswered {
		correct := q.CorrectIndex()
		resp.CorrectOption = &correct
		resp.Explanation = q.Explanation
	}
	return resp
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/entity"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/catalog"
	"gorm.io/gorm"
)

// fakeStorage is a map-backed StorageRepository for usecase tests.
type fakeStorage struct {
	m    map[string]string
	fail bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{m: make(map[string]string)}
}

func (f *fakeStorage) Get(_ *gorm.DB, key string) (string, bool, error) {
	if f.fail {
		return "", false, errors.New("storage unavailable")
	}
	v, ok := f.m[key]
	return v, ok, nil
}

func (f *fakeStorage) Put(_ *gorm.DB, key, value string) error {
	if f.fail {
		return errors.New("storage unavailable")
	}
	f.m[key] = value
	return nil
}

func (f *fakeStorage) Delete(_ *gorm.DB, key string) error {
	if f.fail {
		return errors.New("storage unavailable")
	}
	delete(f.m, key)
	return nil
}

func testPool(n int) []catalog.Question {
	pool := make([]catalog.Question, 0, n)
	for i := 0; i < n; i++ {
		correct := i % 3
		options := make([]catalog.Option, 3)
		for j := range options {
			options[j] = catalog.Option{Text: fmt.Sprintf("option %d", j), IsCorrect: j == correct}
		}
		pool = append(pool, catalog.Question{
			ID:           fmt.Sprintf("t-%d", i),
			QuestionText: fmt.Sprintf("question %d", i),
			Options:      options,
			Category:     "test",
			Difficulty:   catalog.DifficultyEasy,
			Explanation:  "because",
		})
	}
	return pool
}

func newQuizForTest(store *fakeStorage, pool []catalog.Question, seed int64) QuizUsecase {
	return NewQuizUsecase(QuizConfig{
		Storage: store,
		Pool:    pool,
		Seed:    &seed,
	})
}

// walkQuiz advances through a started quiz without answering, returning
// the ids presented in order.
func walkQuiz(t *testing.T, u QuizUsecase, clientID string, start *entity.QuizStateResponse) []string {
	t.Helper()
	var ids []string
	resp := start
	for resp.State == entity.QuizStateActive {
		if resp.Question == nil {
			t.Fatal("active state without a question")
		}
		ids = append(ids, resp.Question.ID)
		var err error
		resp, err = u.Next(context.Background(), clientID)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	if resp.State != entity.QuizStateFinished {
		t.Fatalf("final state = %s, want finished", resp.State)
	}
	return ids
}

func TestStartDrawsFullUniqueBatch(t *testing.T) {
	u := newQuizForTest(newFakeStorage(), testPool(20), 1)

	resp, err := u.Start(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if resp.State != entity.QuizStateActive {
		t.Fatalf("state = %s, want active", resp.State)
	}
	if resp.TotalQuestions != 5 {
		t.Fatalf("total = %d, want 5", resp.TotalQuestions)
	}
	if resp.AnswerStatus != entity.AnswerUnanswered {
		t.Errorf("status = %s, want unanswered", resp.AnswerStatus)
	}

	ids := walkQuiz(t, u, "c1", resp)
	unique := make(map[string]struct{})
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	if len(unique) != 5 {
		t.Errorf("batch ids = %v, want 5 unique", ids)
	}
}

func TestStartTruncatesSmallPool(t *testing.T) {
	u := newQuizForTest(newFakeStorage(), testPool(3), 1)

	resp, err := u.Start(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if resp.TotalQuestions != 3 {
		t.Errorf("total = %d, want 3", resp.TotalQuestions)
	}
}

func TestFullRotationAcrossQuizzes(t *testing.T) {
	store := newFakeStorage()
	u := newQuizForTest(store, testPool(20), 42)
	ctx := context.Background()

	seenAll := make(map[string]struct{})
	for round := 0; round < 4; round++ {
		resp, err := u.Start(ctx, "c1")
		if err != nil {
			t.Fatalf("Start round %d: %v", round, err)
		}
		for _, id := range walkQuiz(t, u, "c1", resp) {
			if _, dup := seenAll[id]; dup {
				t.Errorf("round %d repeated question %s", round, id)
			}
			seenAll[id] = struct{}{}
		}
	}
	if len(seenAll) != 20 {
		t.Fatalf("saw %d distinct questions over 4 rounds, want 20", len(seenAll))
	}

	// the pool is exhausted: the fifth start must clear the seen record
	// before drawing
	if _, err := u.Start(ctx, "c1"); err != nil {
		t.Fatalf("Start after exhaustion: %v", err)
	}
	if _, ok := store.m["c1/"+keySeenQuestions]; ok {
		t.Error("seen record not cleared after pool exhaustion")
	}
}

func TestResetWhenUnseenBelowBatch(t *testing.T) {
	store := newFakeStorage()
	pool := testPool(6)

	// leave only 4 unseen, one short of a batch
	raw, _ := json.Marshal([]string{"t-0", "t-1"})
	store.m["c1/"+keySeenQuestions] = string(raw)

	u := newQuizForTest(store, pool, 7)
	resp, err := u.Start(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if resp.TotalQuestions != 5 {
		t.Errorf("total = %d, want 5 after reset", resp.TotalQuestions)
	}
	if _, ok := store.m["c1/"+keySeenQuestions]; ok {
		t.Error("seen record should be cleared when unseen pool is short")
	}
}

func TestCorruptSeenRecordTreatedAsEmpty(t *testing.T) {
	store := newFakeStorage()
	store.m["c1/"+keySeenQuestions] = "{not json"

	u := newQuizForTest(store, testPool(20), 3)
	resp, err := u.Start(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if resp.TotalQuestions != 5 {
		t.Errorf("total = %d, want 5", resp.TotalQuestions)
	}
}

func TestSubmitWithoutSelectionIsNoOp(t *testing.T) {
	u := newQuizForTest(newFakeStorage(), testPool(20), 1)
	ctx := context.Background()

	if _, err := u.Start(ctx, "c1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	resp, err := u.Submit(ctx, "c1")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if resp.AnswerStatus != entity.AnswerUnanswered {
		t.Errorf("status = %s, want unanswered", resp.AnswerStatus)
	}
	if resp.Score != 0 {
		t.Errorf("score = %d, want 0", resp.Score)
	}
}

func TestSelectAfterSubmitIsNoOp(t *testing.T) {
	u := newQuizForTest(newFakeStorage(), testPool(20), 1)
	ctx := context.Background()

	if _, err := u.Start(ctx, "c1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := u.Select(ctx, "c1", 0); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if _, err := u.Submit(ctx, "c1"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	resp, err := u.Select(ctx, "c1", 1)
	if err != nil {
		t.Fatalf("Select after submit: %v", err)
	}
	if resp.SelectedOption == nil || *resp.SelectedOption != 0 {
		t.Errorf("selected = %v, want 0 preserved", resp.SelectedOption)
	}
}

func TestSelectOutOfRange(t *testing.T) {
	u := newQuizForTest(newFakeStorage(), testPool(20), 1)
	ctx := context.Background()

	if _, err := u.Start(ctx, "c1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := u.Select(ctx, "c1", 99); err == nil {
		t.Error("Select(99) should fail")
	}
	if _, err := u.Select(ctx, "c1", -1); err == nil {
		t.Error("Select(-1) should fail")
	}
}

func TestScoreCountsCorrectSubmissions(t *testing.T) {
	pool := testPool(6)
	correctIdx := make(map[string]int)
	for _, q := range pool {
		correctIdx[q.ID] = q.CorrectIndex()
	}

	u := newQuizForTest(newFakeStorage(), pool, 11)
	ctx := context.Background()

	resp, err := u.Start(ctx, "c1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	// answer the first three correctly, the remaining two wrong
	for i := 0; resp.State == entity.QuizStateActive; i++ {
		idx := correctIdx[resp.Question.ID]
		if i >= 3 {
			idx = (idx + 1) % len(resp.Question.Options)
		}
		if _, err := u.Select(ctx, "c1", idx); err != nil {
			t.Fatalf("Select: %v", err)
		}
		sub, err := u.Submit(ctx, "c1")
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		wantStatus := entity.AnswerCorrect
		if i >= 3 {
			wantStatus = entity.AnswerIncorrect
		}
		if sub.AnswerStatus != wantStatus {
			t.Errorf("question %d status = %s, want %s", i, sub.AnswerStatus, wantStatus)
		}
		resp, err = u.Next(ctx, "c1")
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	if resp.Score != 3 {
		t.Errorf("final score = %d, want 3", resp.Score)
	}
}

func TestMarkSeenDeduplicates(t *testing.T) {
	store := newFakeStorage()
	u := newQuizForTest(store, testPool(20), 1).(*quizUsecase)

	u.markSeen("c1", "t-0")
	u.markSeen("c1", "t-0")
	u.markSeen("c1", "t-1")

	var ids []string
	if err := json.Unmarshal([]byte(store.m["c1/"+keySeenQuestions]), &ids); err != nil {
		t.Fatalf("seen record is not valid JSON: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("seen record = %v, want 2 entries", ids)
	}
}

func TestOperationsWithoutActiveQuiz(t *testing.T) {
	u := newQuizForTest(newFakeStorage(), testPool(20), 1)
	ctx := context.Background()

	if _, err := u.Select(ctx, "c1", 0); err == nil {
		t.Error("Select without a quiz should fail")
	}
	if _, err := u.Submit(ctx, "c1"); err == nil {
		t.Error("Submit without a quiz should fail")
	}
	if _, err := u.Next(ctx, "c1"); err == nil {
		t.Error("Next without a quiz should fail")
	}

	resp, err := u.Current(ctx, "c1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if resp.State != entity.QuizStateIdle {
		t.Errorf("state = %s, want idle", resp.State)
	}
}

func TestExplainFallsBackToStaticText(t *testing.T) {
	pool := testPool(6)
	u := newQuizForTest(newFakeStorage(), pool, 1)

	resp, err := u.Explain(context.Background(), "c1", "t-0")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if resp.Source != "static" {
		t.Errorf("source = %s, want static with no coach configured", resp.Source)
	}
	if resp.Explanation != "because" {
		t.Errorf("explanation = %q", resp.Explanation)
	}

	if _, err := u.Explain(context.Background(), "c1", "unknown"); err == nil {
		t.Error("Explain(unknown) should fail")
	}
}

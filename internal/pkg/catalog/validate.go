package catalog

import "fmt"

// Validate checks the static data invariants the runtime depends on:
// unique question ids, at least two options per question and exactly one
// correct option. Run at startup so a bad edit fails fast instead of
// corrupting quiz scoring.
func Validate() error {
	seen := make(map[string]struct{}, len(QuestionBank))
	for _, q := range QuestionBank {
		if q.ID == "" {
			return fmt.Errorf("question with empty id: %q", q.QuestionText)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = struct{}{}

		if len(q.Options) < 2 {
			return fmt.Errorf("question %s has %d options, need at least 2", q.ID, len(q.Options))
		}
		correct := 0
		for _, o := range q.Options {
			if o.Text == "" {
				return fmt.Errorf("question %s has an empty option", q.ID)
			}
			if o.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("question %s has %d correct options, need exactly 1", q.ID, correct)
		}
	}

	lawIDs := make(map[string]struct{}, len(Laws))
	for _, l := range Laws {
		if _, dup := lawIDs[l.ID]; dup {
			return fmt.Errorf("duplicate law id %s", l.ID)
		}
		lawIDs[l.ID] = struct{}{}
	}

	return nil
}

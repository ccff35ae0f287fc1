package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vocablab/vocabmaster/internal/model"
)

func choiceConfig(order model.QuizOrder) QuizConfig {
	return QuizConfig{Type: model.QuestionChoice, Order: order}
}

func TestQuizStartInsufficientCards(t *testing.T) {
	tests := []struct {
		name  string
		cards []model.Card
		cfg   QuizConfig
	}{
		{"choice with three cards", testCards(3), choiceConfig(model.OrderRandom)},
		{"empty store", nil, choiceConfig(model.OrderRandom)},
		{"scramble with no favorites", testCards(5), QuizConfig{Type: model.QuestionScramble, FavoritesOnly: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuizSession(tt.cfg, rand.New(rand.NewSource(1)))
			err := q.Start(tt.cards)
			if !errors.Is(err, ErrInsufficientCards) {
				t.Fatalf("Start error = %v, want ErrInsufficientCards", err)
			}
			if q.Phase() != PhaseIdle {
				t.Errorf("phase = %s, want idle", q.Phase())
			}
		})
	}
}

func TestQuizChoiceOptions(t *testing.T) {
	q := NewQuizSession(choiceConfig(model.OrderRandom), rand.New(rand.NewSource(5)))
	if err := q.Start(testCards(10)); err != nil {
		t.Fatal(err)
	}

	correct, ok := q.Current()
	if !ok {
		t.Fatal("no current card")
	}
	opts := q.Choice().Options
	if len(opts) != 4 {
		t.Fatalf("option count = %d, want 4", len(opts))
	}
	seen := make(map[string]bool)
	correctCount := 0
	for _, o := range opts {
		if seen[o.ID] {
			t.Fatalf("duplicate option %s", o.ID)
		}
		seen[o.ID] = true
		if o.ID == correct.ID {
			correctCount++
		}
	}
	if correctCount != 1 {
		t.Errorf("correct card appears %d times, want 1", correctCount)
	}
}

func TestQuizChoiceCorrectSlotRoughlyUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	slots := make([]int, 4)
	for run := 0; run < 400; run++ {
		q := NewQuizSession(choiceConfig(model.OrderSequential), rng)
		if err := q.Start(testCards(6)); err != nil {
			t.Fatal(err)
		}
		correct, _ := q.Current()
		for i, o := range q.Choice().Options {
			if o.ID == correct.ID {
				slots[i]++
			}
		}
	}
	// 400 runs over 4 slots: expect ~100 each; a fixed slot would show 0s.
	for i, n := range slots {
		if n < 50 || n > 150 {
			t.Errorf("slot %d hit %d times of 400, outside [50,150]", i, n)
		}
	}
}

func TestQuizSequentialFullRun(t *testing.T) {
	// 5 cards, sequential order, choice type: deck follows store order and
	// a score of 3 lands at 60%.
	q := NewQuizSession(choiceConfig(model.OrderSequential), rand.New(rand.NewSource(2)))
	cards := testCards(5)
	if err := q.Start(cards); err != nil {
		t.Fatal(err)
	}
	if q.Len() != 5 {
		t.Fatalf("deck length = %d, want 5", q.Len())
	}

	for i := 0; i < 5; i++ {
		current, ok := q.Current()
		if !ok {
			t.Fatalf("question %d: no current card", i)
		}
		if current.ID != cards[i].ID {
			t.Fatalf("question %d asks %s, want store order %s", i, current.ID, cards[i].ID)
		}

		pick := current.ID
		if i >= 3 { // answer the last two wrong
			for _, o := range q.Choice().Options {
				if o.ID != current.ID {
					pick = o.ID
					break
				}
			}
		}
		if !q.SelectOption(pick) {
			t.Fatalf("question %d: SelectOption rejected", i)
		}
		if !q.Advance(q.Key()) {
			t.Fatalf("question %d: Advance rejected", i)
		}
	}

	if q.Phase() != PhaseResult {
		t.Fatalf("phase = %s, want result", q.Phase())
	}
	res, ok := q.Result()
	if !ok {
		t.Fatal("Result unavailable")
	}
	if res.Correct != 3 || res.Total != 5 || res.Percentage != 60 {
		t.Errorf("result = %+v, want 3/5 = 60%%", res)
	}
	if res.Rank != "Good Job!" {
		t.Errorf("rank = %q", res.Rank)
	}
}

func TestQuizDoubleSelectIsNoOp(t *testing.T) {
	q := NewQuizSession(choiceConfig(model.OrderSequential), rand.New(rand.NewSource(3)))
	if err := q.Start(testCards(5)); err != nil {
		t.Fatal(err)
	}
	correct, _ := q.Current()

	if !q.SelectOption(correct.ID) {
		t.Fatal("first select rejected")
	}
	if q.SelectOption(correct.ID) {
		t.Error("second select should be a no-op")
	}
	if q.Score() != 1 {
		t.Errorf("score = %d, want 1 (no double-scoring)", q.Score())
	}
}

func TestQuizStaleAdvanceDropped(t *testing.T) {
	q := NewQuizSession(choiceConfig(model.OrderSequential), rand.New(rand.NewSource(4)))
	if err := q.Start(testCards(5)); err != nil {
		t.Fatal(err)
	}
	correct, _ := q.Current()
	q.SelectOption(correct.ID)
	key := q.Key()

	// User exits to menu before the feedback timer fires.
	q.Reset()
	if q.Advance(key) {
		t.Error("advance with stale key mutated a reset session")
	}
	if q.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", q.Phase())
	}

	// Restarting bumps the generation, so the old key stays dead.
	if err := q.Start(testCards(5)); err != nil {
		t.Fatal(err)
	}
	if q.Advance(key) {
		t.Error("advance with pre-restart key mutated the new session")
	}
}

func TestQuizAdvanceRequiresAnswer(t *testing.T) {
	q := NewQuizSession(choiceConfig(model.OrderSequential), rand.New(rand.NewSource(6)))
	if err := q.Start(testCards(5)); err != nil {
		t.Fatal(err)
	}
	if q.Advance(q.Key()) {
		t.Error("advance before answering should be rejected")
	}
}

func scrambleSession(t *testing.T, front string) *QuizSession {
	t.Helper()
	cards := testCards(2)
	cards[0].FrontText = front
	q := NewQuizSession(QuizConfig{Type: model.QuestionScramble, Order: model.OrderSequential}, rand.New(rand.NewSource(8)))
	if err := q.Start(cards); err != nil {
		t.Fatal(err)
	}
	return q
}

// assemble selects tokens matching the given words in order.
func assemble(t *testing.T, q *QuizSession, words []string) {
	t.Helper()
	for _, w := range words {
		picked := false
		for _, tok := range q.Scramble().Tokens {
			if tok.Text == w && !tok.Consumed {
				if !q.SelectToken(tok.ID) {
					t.Fatalf("SelectToken(%d) rejected", tok.ID)
				}
				picked = true
				break
			}
		}
		if !picked {
			t.Fatalf("no unused token for %q", w)
		}
	}
}

func TestQuizScrambleEvaluation(t *testing.T) {
	tests := []struct {
		name    string
		front   string
		words   []string
		outcome ScrambleOutcome
	}{
		{"correct order", "I love cats", []string{"I", "love", "cats"}, OutcomeCorrect},
		{"wrong order", "I love cats", []string{"love", "I", "cats"}, OutcomeIncorrect},
		{"whitespace collapsed", "I  love\tcats", []string{"I", "love", "cats"}, OutcomeCorrect},
		{"case sensitive", "I love Cats", []string{"I", "love", "Cats"}, OutcomeCorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := scrambleSession(t, tt.front)
			assemble(t, q, tt.words)
			if !q.Submit() {
				t.Fatal("Submit rejected")
			}
			if got := q.Scramble().Outcome; got != tt.outcome {
				t.Errorf("outcome = %v, want %v", got, tt.outcome)
			}
			wantScore := 0
			if tt.outcome == OutcomeCorrect {
				wantScore = 1
			}
			if q.Score() != wantScore {
				t.Errorf("score = %d, want %d", q.Score(), wantScore)
			}
		})
	}
}

func TestQuizScrambleTokensDistinguishDuplicates(t *testing.T) {
	q := scrambleSession(t, "so so good")
	ids := make(map[int]bool)
	for _, tok := range q.Scramble().Tokens {
		if ids[tok.ID] {
			t.Fatalf("duplicate token id %d", tok.ID)
		}
		ids[tok.ID] = true
	}
	if len(ids) != 3 {
		t.Fatalf("token count = %d, want 3", len(ids))
	}
}

func TestQuizScrambleDeselect(t *testing.T) {
	q := scrambleSession(t, "I love cats")
	assemble(t, q, []string{"love", "I"})

	if !q.DeselectToken(0) { // remove "love"
		t.Fatal("DeselectToken rejected")
	}
	sc := q.Scramble()
	if len(sc.Assembled) != 1 || sc.Assembled[0].Text != "I" {
		t.Fatalf("assembled after deselect = %v", sc.Assembled)
	}
	assemble(t, q, []string{"love", "cats"})
	if !q.Submit() {
		t.Fatal("Submit rejected")
	}
	if sc.Outcome != OutcomeCorrect {
		t.Errorf("outcome = %v, want correct", sc.Outcome)
	}
	if q.Submit() {
		t.Error("second submit should be a no-op")
	}
}

func TestQuizRankBoundaries(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "Perfect!"},
		{99, "Excellent!"},
		{80, "Excellent!"},
		{79, "Good Job!"},
		{60, "Good Job!"},
		{59, "Keep Practicing!"},
		{0, "Keep Practicing!"},
	}
	for _, tt := range tests {
		if got := rankFor(tt.pct); got != tt.want {
			t.Errorf("rankFor(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestQuizFavoritesOnlyPoolWithStoreWideDistractors(t *testing.T) {
	cards := testCards(6)
	cards[2].IsFavorite = true
	cfg := QuizConfig{Type: model.QuestionChoice, Order: model.OrderSequential, FavoritesOnly: true}
	q := NewQuizSession(cfg, rand.New(rand.NewSource(9)))
	if err := q.Start(cards); err != nil {
		t.Fatal(err)
	}
	if q.Len() != 1 {
		t.Fatalf("deck length = %d, want 1 favorite", q.Len())
	}
	// Distractors still come from the whole store.
	if len(q.Choice().Options) != 4 {
		t.Errorf("option count = %d, want 4", len(q.Choice().Options))
	}
}

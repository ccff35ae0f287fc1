package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/vocablab/vocabmaster/internal/model"
	"github.com/vocablab/vocabmaster/pkg/textutil"
)

// FeedbackDelay is how long answer feedback stays visible before the quiz
// advances to the next question.
const FeedbackDelay = 1200 * time.Millisecond

// choiceOptionCount is the number of options in a choice question: one
// correct card plus three distractors drawn from the whole store.
const choiceOptionCount = 4

// ErrInsufficientCards is returned when a quiz cannot start with the cards
// available for the selected mode. Reported to the user, never fatal.
var ErrInsufficientCards = errors.New("not enough cards")

// Phase represents the quiz state machine phase.
type Phase string

const (
	// PhaseIdle means no quiz is in progress.
	PhaseIdle Phase = "idle"
	// PhasePlaying means a quiz is in progress.
	PhasePlaying Phase = "playing"
	// PhaseResult means the quiz finished and the score is showing.
	PhaseResult Phase = "result"
)

// QuizConfig selects the question type, deck order, and candidate pool.
type QuizConfig struct {
	Type          model.QuestionType
	Order         model.QuizOrder
	FavoritesOnly bool
}

// ChoiceQuestion is the per-question state for a 4-option question.
type ChoiceQuestion struct {
	// Options holds four distinct cards, exactly one of them correct, in
	// uniformly random slot order.
	Options []model.Card
	// SelectedID is the option the user picked, empty until answered.
	SelectedID string
}

// Answered reports whether an option has been selected.
func (q *ChoiceQuestion) Answered() bool { return q.SelectedID != "" }

// Token is one word of a scramble question. IDs are synthetic ordinals so
// duplicate words stay distinguishable.
type Token struct {
	ID       int
	Text     string
	Consumed bool
}

// ScrambleOutcome is the evaluation result of a scramble question.
type ScrambleOutcome int

const (
	// OutcomePending means the answer has not been submitted yet.
	OutcomePending ScrambleOutcome = iota
	// OutcomeCorrect means the assembled sentence matched.
	OutcomeCorrect
	// OutcomeIncorrect means the assembled sentence did not match.
	OutcomeIncorrect
)

// ScrambleQuestion is the per-question state for a word-order question.
type ScrambleQuestion struct {
	// Tokens is the shuffled word pool; consumed tokens live in Assembled.
	Tokens []Token
	// Assembled is the answer under construction, in selection order.
	Assembled []Token
	// Outcome is set once Submit has evaluated the answer.
	Outcome ScrambleOutcome
}

// Answered reports whether the question has been submitted.
func (q *ScrambleQuestion) Answered() bool { return q.Outcome != OutcomePending }

// AdvanceKey identifies the session generation and question index a deferred
// advance was scheduled for. A key minted before a reset or restart no
// longer matches, so stale advances are dropped.
type AdvanceKey struct {
	Generation int
	Question   int
}

// QuizResult summarizes a finished quiz.
type QuizResult struct {
	Total      int
	Correct    int
	Percentage int
	Rank       string
}

// QuizSession owns the idle→playing→result state machine, deck
// construction, per-question state, answer evaluation, and scoring.
type QuizSession struct {
	cfg        QuizConfig
	all        []model.Card
	deck       []model.Card
	pos        int
	score      int
	phase      Phase
	generation int
	choice     *ChoiceQuestion
	scramble   *ScrambleQuestion
	rng        *rand.Rand
}

// NewQuizSession creates an idle session with the given configuration.
func NewQuizSession(cfg QuizConfig, rng *rand.Rand) *QuizSession {
	return &QuizSession{cfg: cfg, phase: PhaseIdle, rng: rng}
}

// Config returns the session configuration.
func (q *QuizSession) Config() QuizConfig { return q.cfg }

// SetConfig replaces the configuration. Only allowed while idle.
func (q *QuizSession) SetConfig(cfg QuizConfig) {
	if q.phase == PhaseIdle {
		q.cfg = cfg
	}
}

// Phase returns the current state machine phase.
func (q *QuizSession) Phase() Phase { return q.phase }

// Len returns the deck length.
func (q *QuizSession) Len() int { return len(q.deck) }

// Pos returns the zero-based index of the current question.
func (q *QuizSession) Pos() int { return q.pos }

// Score returns the number of correct answers so far.
func (q *QuizSession) Score() int { return q.score }

// Current returns the card being asked about.
func (q *QuizSession) Current() (model.Card, bool) {
	if q.phase != PhasePlaying || q.pos >= len(q.deck) {
		return model.Card{}, false
	}
	return q.deck[q.pos], true
}

// Choice returns the current choice question state, if any.
func (q *QuizSession) Choice() *ChoiceQuestion { return q.choice }

// Scramble returns the current scramble question state, if any.
func (q *QuizSession) Scramble() *ScrambleQuestion { return q.scramble }

// Key returns the advance key for the current generation and question.
func (q *QuizSession) Key() AdvanceKey {
	return AdvanceKey{Generation: q.generation, Question: q.pos}
}

// Start builds a deck from the collection snapshot and enters playing.
// The candidate pool honors FavoritesOnly; choice questions additionally
// require at least four cards in the whole store, since distractors are
// drawn store-wide. On error the session stays idle.
func (q *QuizSession) Start(cards []model.Card) error {
	pool := Filter(cards, q.cfg.FavoritesOnly)
	if len(pool) == 0 {
		return fmt.Errorf("%w: the selected pool is empty", ErrInsufficientCards)
	}
	if q.cfg.Type == model.QuestionChoice && len(cards) < choiceOptionCount {
		return fmt.Errorf("%w: choice quiz needs at least %d cards", ErrInsufficientCards, choiceOptionCount)
	}

	q.all = make([]model.Card, len(cards))
	copy(q.all, cards)

	if q.cfg.Order == model.OrderRandom {
		q.deck = shuffleCards(q.rng, pool)
	} else {
		q.deck = pool
	}

	q.score = 0
	q.pos = 0
	q.phase = PhasePlaying
	q.generation++
	q.initQuestion()
	return nil
}

// Reset returns the session to idle, invalidating any pending advance.
func (q *QuizSession) Reset() {
	q.phase = PhaseIdle
	q.generation++
	q.deck = nil
	q.all = nil
	q.choice = nil
	q.scramble = nil
	q.pos = 0
	q.score = 0
}

// initQuestion builds the per-question state for the card at q.pos.
func (q *QuizSession) initQuestion() {
	q.choice = nil
	q.scramble = nil
	correct := q.deck[q.pos]

	switch q.cfg.Type {
	case model.QuestionScramble:
		words := textutil.Words(correct.FrontText)
		tokens := make([]Token, len(words))
		perm := Permute(q.rng, len(words))
		for i, j := range perm {
			tokens[i] = Token{ID: j, Text: words[j]}
		}
		q.scramble = &ScrambleQuestion{Tokens: tokens}

	default:
		others := make([]model.Card, 0, len(q.all))
		for _, c := range q.all {
			if c.ID != correct.ID {
				others = append(others, c)
			}
		}
		options := append([]model.Card{correct}, sampleCards(q.rng, others, choiceOptionCount-1)...)
		// Shuffle so the correct answer's slot is uniform across the four.
		q.choice = &ChoiceQuestion{Options: shuffleCards(q.rng, options)}
	}
}

// SelectOption records the user's pick for a choice question and scores it.
// Returns false (no-op) if an option is already selected, which also guards
// against double-scoring from rapid repeated input.
func (q *QuizSession) SelectOption(optionID string) bool {
	if q.phase != PhasePlaying || q.choice == nil || q.choice.Answered() {
		return false
	}
	found := false
	for _, o := range q.choice.Options {
		if o.ID == optionID {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	q.choice.SelectedID = optionID
	if optionID == q.deck[q.pos].ID {
		q.score++
	}
	return true
}

// SelectToken moves an unused token into the assembled sequence.
func (q *QuizSession) SelectToken(tokenID int) bool {
	if q.phase != PhasePlaying || q.scramble == nil || q.scramble.Answered() {
		return false
	}
	for i := range q.scramble.Tokens {
		t := &q.scramble.Tokens[i]
		if t.ID == tokenID && !t.Consumed {
			t.Consumed = true
			q.scramble.Assembled = append(q.scramble.Assembled, Token{ID: t.ID, Text: t.Text})
			return true
		}
	}
	return false
}

// DeselectToken returns the assembled token at index to the unused pool.
func (q *QuizSession) DeselectToken(index int) bool {
	if q.phase != PhasePlaying || q.scramble == nil || q.scramble.Answered() {
		return false
	}
	if index < 0 || index >= len(q.scramble.Assembled) {
		return false
	}
	removed := q.scramble.Assembled[index]
	q.scramble.Assembled = append(q.scramble.Assembled[:index], q.scramble.Assembled[index+1:]...)
	for i := range q.scramble.Tokens {
		if q.scramble.Tokens[i].ID == removed.ID {
			q.scramble.Tokens[i].Consumed = false
			break
		}
	}
	return true
}

// Submit evaluates the assembled scramble answer: token texts joined with
// single spaces must exactly match the front text with its own whitespace
// collapsed (case-sensitive). Scores and records the outcome; a second
// submit is a no-op.
func (q *QuizSession) Submit() bool {
	if q.phase != PhasePlaying || q.scramble == nil || q.scramble.Answered() {
		return false
	}
	parts := make([]string, len(q.scramble.Assembled))
	for i, t := range q.scramble.Assembled {
		parts[i] = t.Text
	}
	answer := strings.Join(parts, " ")
	if answer == textutil.NormalizeSpace(q.deck[q.pos].FrontText) {
		q.scramble.Outcome = OutcomeCorrect
		q.score++
	} else {
		q.scramble.Outcome = OutcomeIncorrect
	}
	return true
}

// Answered reports whether the current question has been answered.
func (q *QuizSession) Answered() bool {
	switch {
	case q.choice != nil:
		return q.choice.Answered()
	case q.scramble != nil:
		return q.scramble.Answered()
	}
	return false
}

// Advance moves to the next question or, after the last one, to the result
// phase. The key must match the generation and question the advance was
// scheduled for; stale keys (session reset or restarted since) are dropped.
func (q *QuizSession) Advance(key AdvanceKey) bool {
	if q.phase != PhasePlaying || key != q.Key() || !q.Answered() {
		return false
	}
	if q.pos >= len(q.deck)-1 {
		q.phase = PhaseResult
		q.choice = nil
		q.scramble = nil
		return true
	}
	q.pos++
	q.initQuestion()
	return true
}

// Result returns the final score once the session reached the result phase.
func (q *QuizSession) Result() (QuizResult, bool) {
	if q.phase != PhaseResult || len(q.deck) == 0 {
		return QuizResult{}, false
	}
	pct := int(math.Round(float64(q.score) * 100 / float64(len(q.deck))))
	return QuizResult{
		Total:      len(q.deck),
		Correct:    q.score,
		Percentage: pct,
		Rank:       rankFor(pct),
	}, true
}

// rankFor maps a percentage to its tier label. Boundaries {100, 80, 60}.
func rankFor(pct int) string {
	switch {
	case pct == 100:
		return "Perfect!"
	case pct >= 80:
		return "Excellent!"
	case pct >= 60:
		return "Good Job!"
	default:
		return "Keep Practicing!"
	}
}

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocablab/vocabmaster/internal/engine"
	"github.com/vocablab/vocabmaster/internal/model"
	"github.com/vocablab/vocabmaster/internal/notify"
	"github.com/vocablab/vocabmaster/internal/store"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case AdvanceMsg:
		return a.handleAdvance(msg.Key)

	case ClearStatusMsg:
		if msg.ID == a.statusSeq {
			a.statusBar.ClearMessage()
		}
		return a, nil

	case NotifiedMsg:
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleAdvance applies a deferred quiz advance; stale keys are dropped by
// the session itself.
func (a *App) handleAdvance(k engine.AdvanceKey) (tea.Model, tea.Cmd) {
	if !a.quiz.Advance(k) {
		return a, nil
	}
	a.optionCursor = 0
	a.tokenCursor = 0
	if a.quiz.Phase() != engine.PhaseResult {
		return a, nil
	}
	res, ok := a.quiz.Result()
	if !ok {
		return a, nil
	}
	nc := a.cfg.Notifications
	if nc.Desktop || nc.WebhookURL != "" {
		return a, DispatchNotification(a.dispatcher, nc, notify.QuizCompleted(res))
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal layers take the keyboard first.
	if a.form != nil {
		return a.handleFormKey(msg)
	}
	if a.rangeEdit {
		return a.handleRangeKey(msg)
	}
	if a.searching {
		return a.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, a.keyMap.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(msg, a.keyMap.Help):
		a.showHelp = !a.showHelp
		return a, nil
	case key.Matches(msg, a.keyMap.Theme):
		return a, a.toggleTheme()
	}

	// While a quiz question is live the digit keys pick options, so the
	// mode bindings yield until the question is resolved.
	if !a.quizQuestionLive() {
		switch {
		case key.Matches(msg, a.keyMap.StudyMode):
			a.switchMode(ModeStudy)
			return a, nil
		case key.Matches(msg, a.keyMap.ListMode):
			a.switchMode(ModeList)
			return a, nil
		case key.Matches(msg, a.keyMap.QuizMode):
			a.switchMode(ModeQuiz)
			return a, nil
		case key.Matches(msg, a.keyMap.ManageMode):
			a.switchMode(ModeManage)
			return a, nil
		}
	}

	switch a.mode {
	case ModeStudy:
		return a.handleStudyKey(msg)
	case ModeList:
		return a.handleListKey(msg)
	case ModeQuiz:
		return a.handleQuizKey(msg)
	case ModeManage:
		return a.handleManageKey(msg)
	}
	return a, nil
}

// quizQuestionLive reports whether a quiz question currently owns the
// keyboard.
func (a *App) quizQuestionLive() bool {
	return a.mode == ModeQuiz && a.quiz.Phase() == engine.PhasePlaying
}

// ---------- Study mode ----------

func (a *App) handleStudyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keyMap.Flip):
		a.study.Flip()
	case key.Matches(msg, a.keyMap.Right):
		a.study.Next()
	case key.Matches(msg, a.keyMap.Left):
		a.study.Prev()
	case key.Matches(msg, a.keyMap.Reverse):
		a.study.Reverse()
	case key.Matches(msg, a.keyMap.Shuffle):
		a.study.Reshuffle()
	case key.Matches(msg, a.keyMap.Favorites):
		a.restartStudy(!a.study.FavoritesOnly())
	case key.Matches(msg, a.keyMap.Favorite):
		return a, a.toggleFavoriteInStudy()
	}
	return a, nil
}

func (a *App) toggleFavoriteInStudy() tea.Cmd {
	c, ok := a.study.Current()
	if !ok {
		return nil
	}
	if err := a.cards.ToggleFavorite(c.ID); err != nil {
		return a.setStatus("Could not update favorite", true)
	}
	a.study.SetFavorite(c.ID, !c.IsFavorite)
	return nil
}

// ---------- List mode ----------

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.cardList.HandleKey(msg.String()) {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keyMap.Favorite):
		if c, ok := a.cardList.Selected(); ok {
			if err := a.cards.ToggleFavorite(c.ID); err != nil {
				return a, a.setStatus("Could not update favorite", true)
			}
			a.refreshList()
		}
	case key.Matches(msg, a.keyMap.Favorites):
		a.listView.SetFavoritesOnly(!a.listView.FavoritesOnly(), a.cards.List())
		a.refreshList()
	case key.Matches(msg, a.keyMap.Shuffle):
		a.listView.ToggleShuffle(a.cards.List())
		a.refreshList()
	case key.Matches(msg, a.keyMap.RedText):
		a.listView.ToggleRedText()
		a.refreshList()
	case key.Matches(msg, a.keyMap.RedSheet):
		a.listView.ToggleRedSheet()
		a.refreshList()
	case key.Matches(msg, a.keyMap.Target):
		a.listView.ToggleOcclusionTarget()
		a.refreshList()
	case key.Matches(msg, a.keyMap.Reveal):
		if c, ok := a.cardList.Selected(); ok {
			a.listView.ToggleReveal(c.ID)
			a.refreshList()
		}
	case key.Matches(msg, a.keyMap.Range):
		start, end := a.listView.Range()
		if start > 0 {
			a.rangeInput.SetValue(fmt.Sprintf("%d-%d", start, end))
		} else {
			a.rangeInput.SetValue("")
		}
		a.rangeEdit = true
		return a, a.rangeInput.Focus()
	}
	return a, nil
}

func (a *App) handleRangeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		start, end, err := parseRange(a.rangeInput.Value())
		if err != nil {
			return a, a.setStatus("Range must look like 3-12", true)
		}
		a.listView.SetRange(start, end)
		a.rangeEdit = false
		a.rangeInput.Blur()
		a.refreshList()
		return a, nil
	case "esc":
		a.rangeEdit = false
		a.rangeInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.rangeInput, cmd = a.rangeInput.Update(msg)
	return a, cmd
}

// parseRange parses "start-end", a bare "start", or an empty string (all).
func parseRange(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil
	}
	if before, after, found := strings.Cut(s, "-"); found {
		start, err := strconv.Atoi(strings.TrimSpace(before))
		if err != nil {
			return 0, 0, err
		}
		end, err := strconv.Atoi(strings.TrimSpace(after))
		if err != nil {
			return 0, 0, err
		}
		return start, end, nil
	}
	start, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, err
	}
	return start, start, nil
}

// ---------- Quiz mode ----------

func (a *App) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.quiz.Phase() {
	case engine.PhaseIdle:
		return a.handleQuizIdleKey(msg)
	case engine.PhasePlaying:
		return a.handleQuizPlayingKey(msg)
	default:
		switch msg.String() {
		case "enter", "esc", " ":
			a.quiz.Reset()
		}
		return a, nil
	}
}

func (a *App) handleQuizIdleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := a.quiz.Config()
	switch {
	case msg.String() == "t":
		if cfg.Type == model.QuestionChoice {
			cfg.Type = model.QuestionScramble
		} else {
			cfg.Type = model.QuestionChoice
		}
		a.quiz.SetConfig(cfg)
	case msg.String() == "o":
		if cfg.Order == model.OrderRandom {
			cfg.Order = model.OrderSequential
		} else {
			cfg.Order = model.OrderRandom
		}
		a.quiz.SetConfig(cfg)
	case key.Matches(msg, a.keyMap.Favorites):
		cfg.FavoritesOnly = !cfg.FavoritesOnly
		a.quiz.SetConfig(cfg)
	case key.Matches(msg, a.keyMap.Enter) || msg.String() == "s":
		if err := a.quiz.Start(a.cards.List()); err != nil {
			return a, a.setStatus("Not enough cards for this quiz", true)
		}
		a.optionCursor = 0
		a.tokenCursor = 0
	}
	return a, nil
}

func (a *App) handleQuizPlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		a.quiz.Reset()
		return a, nil
	}
	if a.quiz.Choice() != nil {
		return a.handleChoiceKey(msg)
	}
	if a.quiz.Scramble() != nil {
		return a.handleScrambleKey(msg)
	}
	return a, nil
}

func (a *App) handleChoiceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ch := a.quiz.Choice()
	if ch.Answered() {
		return a, nil
	}

	switch msg.String() {
	case "up", "k":
		if a.optionCursor > 0 {
			a.optionCursor--
		}
		return a, nil
	case "down", "j":
		if a.optionCursor < len(ch.Options)-1 {
			a.optionCursor++
		}
		return a, nil
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if idx < len(ch.Options) {
			return a, a.selectOption(ch.Options[idx].ID)
		}
		return a, nil
	case "enter", " ":
		if a.optionCursor < len(ch.Options) {
			return a, a.selectOption(ch.Options[a.optionCursor].ID)
		}
	}
	return a, nil
}

func (a *App) selectOption(id string) tea.Cmd {
	if !a.quiz.SelectOption(id) {
		return nil
	}
	return ScheduleAdvance(a.quiz.Key(), a.feedbackDelay())
}

func (a *App) handleScrambleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sc := a.quiz.Scramble()
	if sc.Answered() {
		return a, nil
	}

	unused := unusedTokens(sc)
	switch msg.String() {
	case "left", "h":
		if a.tokenCursor > 0 {
			a.tokenCursor--
		}
		return a, nil
	case "right", "l", "tab":
		if a.tokenCursor < len(unused)-1 {
			a.tokenCursor++
		}
		return a, nil
	case "backspace":
		if n := len(sc.Assembled); n > 0 {
			a.quiz.DeselectToken(n - 1)
		}
		return a, nil
	case "enter", " ":
		// Once every word is placed, enter checks the answer; the user can
		// still reorder with backspace until then.
		if len(unused) == 0 {
			if a.quiz.Submit() {
				return a, ScheduleAdvance(a.quiz.Key(), a.feedbackDelay())
			}
			return a, nil
		}
		if a.tokenCursor >= len(unused) {
			return a, nil
		}
		if !a.quiz.SelectToken(unused[a.tokenCursor].ID) {
			return a, nil
		}
		if a.tokenCursor > 0 {
			a.tokenCursor--
		}
	}
	return a, nil
}

// unusedTokens returns the tokens still in the pool, in display order.
func unusedTokens(sc *engine.ScrambleQuestion) []engine.Token {
	var out []engine.Token
	for _, t := range sc.Tokens {
		if !t.Consumed {
			out = append(out, t)
		}
	}
	return out
}

// ---------- Manage mode ----------

func (a *App) handleManageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.cardList.HandleKey(msg.String()) {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keyMap.Search):
		a.searching = true
		return a, a.searchInput.Focus()
	case key.Matches(msg, a.keyMap.Add):
		form := cardFormNew(a, "Add Card", "", "", "", "")
		a.form = &form
		return a, nil
	case key.Matches(msg, a.keyMap.Edit):
		if c, ok := a.cardList.Selected(); ok {
			form := cardFormNew(a, "Edit Card", c.ID, c.FrontText, c.BackText, c.Category)
			a.form = &form
		}
		return a, nil
	case key.Matches(msg, a.keyMap.Delete):
		if c, ok := a.cardList.Selected(); ok {
			if err := a.cards.Remove(c.ID); err != nil {
				return a, a.setStatus("Could not delete card", true)
			}
			a.refreshManage()
			return a, a.setStatus("Card deleted", false)
		}
		return a, nil
	case key.Matches(msg, a.keyMap.Favorite):
		if c, ok := a.cardList.Selected(); ok {
			if err := a.cards.ToggleFavorite(c.ID); err != nil {
				return a, a.setStatus("Could not update favorite", true)
			}
			a.refreshManage()
		}
		return a, nil
	case msg.String() == "R":
		if err := a.cards.ResetToDefaults(); err != nil {
			return a, a.setStatus("Could not reset the deck", true)
		}
		a.refreshManage()
		return a, a.setStatus("Deck restored to defaults", false)
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.searching = false
		a.searchInput.Blur()
		return a, nil
	case "esc":
		a.searching = false
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.refreshManage()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.refreshManage()
	return a, cmd
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	a.form = &form

	if form.IsCancelled() {
		a.form = nil
		return a, nil
	}
	if !form.IsSubmitted() {
		return a, cmd
	}

	front, back, category := form.Values()
	var err error
	if form.CardID() == "" {
		_, err = a.cards.Add(front, back, category)
	} else {
		err = a.cards.Update(form.CardID(), store.CardFields{
			FrontText: &front,
			BackText:  &back,
			Category:  &category,
		})
	}
	if err != nil {
		a.form.ResetOutcome()
		return a, a.setStatus("Front and back text are required", true)
	}

	a.form = nil
	a.refreshManage()
	a.restartStudy(a.study.FavoritesOnly())
	return a, a.setStatus("Card saved", false)
}

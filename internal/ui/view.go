package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vocablab/vocabmaster/internal/engine"
	"github.com/vocablab/vocabmaster/internal/model"
	"github.com/vocablab/vocabmaster/internal/ui/components/statusbar"
	"github.com/vocablab/vocabmaster/internal/ui/styles"
	"github.com/vocablab/vocabmaster/pkg/textutil"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return a.st.Muted.Render(fmt.Sprintf("Terminal too small (need at least %dx%d)", minAppWidth, minAppHeight))
	}

	if a.form != nil {
		return a.form.View()
	}

	var body string
	switch a.mode {
	case ModeStudy:
		body = a.viewStudy()
	case ModeList:
		body = a.viewList()
	case ModeQuiz:
		body = a.viewQuiz()
	case ModeManage:
		body = a.viewManage()
	}

	if a.showHelp {
		body = a.viewHelp()
	}

	header := a.viewHeader()
	bodyHeight := a.height - lipgloss.Height(header) - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.NewStyle().Width(a.width).Height(bodyHeight).Render(body)

	a.syncStatusHints()
	return lipgloss.JoinVertical(lipgloss.Left, header, body, a.statusBar.View())
}

// viewHeader renders the mode tab strip.
func (a *App) viewHeader() string {
	tabs := []struct {
		mode  Mode
		label string
	}{
		{ModeStudy, "1 Study"},
		{ModeList, "2 List"},
		{ModeQuiz, "3 Quiz"},
		{ModeManage, "4 Manage"},
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.mode == a.mode {
			parts = append(parts, a.st.ModeActive.Render(t.label))
		} else {
			parts = append(parts, a.st.ModeInactive.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// syncStatusHints keeps the status bar help in step with the active mode.
func (a *App) syncStatusHints() {
	var hints []statusbar.Hint
	switch a.mode {
	case ModeStudy:
		hints = []statusbar.Hint{
			{Key: "space", Desc: "flip"},
			{Key: "←/→", Desc: "prev/next"},
			{Key: "r", Desc: "reverse"},
			{Key: "s", Desc: "shuffle"},
			{Key: "f", Desc: "favorite"},
			{Key: "v", Desc: "favs only"},
		}
	case ModeList:
		hints = []statusbar.Hint{
			{Key: "s", Desc: "shuffle"},
			{Key: "t", Desc: "red text"},
			{Key: "o", Desc: "sheet"},
			{Key: "g", Desc: "side"},
			{Key: "space", Desc: "peek"},
			{Key: "n", Desc: "range"},
		}
	case ModeQuiz:
		switch a.quiz.Phase() {
		case engine.PhaseIdle:
			hints = []statusbar.Hint{
				{Key: "t", Desc: "type"},
				{Key: "o", Desc: "order"},
				{Key: "v", Desc: "favs only"},
				{Key: "enter", Desc: "start"},
			}
		case engine.PhasePlaying:
			hints = []statusbar.Hint{{Key: "esc", Desc: "abort"}}
		default:
			hints = []statusbar.Hint{{Key: "enter", Desc: "done"}}
		}
	case ModeManage:
		hints = []statusbar.Hint{
			{Key: "/", Desc: "search"},
			{Key: "a", Desc: "add"},
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "delete"},
			{Key: "f", Desc: "favorite"},
			{Key: "R", Desc: "reset"},
		}
	}
	hints = append(hints, statusbar.Hint{Key: "?", Desc: "help"}, statusbar.Hint{Key: "q", Desc: "quit"})
	a.statusBar.SetMode(a.mode.String())
	a.statusBar.SetHints(hints)
}

// ---------- Study ----------

func (a *App) viewStudy() string {
	c, ok := a.study.Current()
	if !ok {
		msg := "No cards to study"
		if a.study.FavoritesOnly() {
			msg = "No favorite cards yet — press v to show all"
		}
		return lipgloss.Place(a.width, a.height-3, lipgloss.Center, lipgloss.Center, a.st.Muted.Render(msg))
	}

	counter := a.st.CardCounter.Render(fmt.Sprintf("%d / %d", a.study.Pos()+1, a.study.Len()))
	if a.study.FavoritesOnly() {
		counter += a.st.Favorite.Render("  " + styles.IconStar + " favorites")
	}
	if a.study.Reversed() {
		counter += a.st.Muted.Render("  (reversed)")
	}

	star := styles.IconStarEmpty
	starStyle := a.st.Muted
	if c.IsFavorite {
		star = styles.IconStar
		starStyle = a.st.Favorite
	}

	prompt := a.st.CardPrompt.Render(textutil.DisplayText(c.Text(a.study.PromptSide())))
	lines := []string{starStyle.Render(star), "", prompt}
	cardStyle := a.st.Card
	if a.study.IsRevealed() {
		answer := a.st.CardAnswer.Render(textutil.DisplayText(c.Text(a.study.AnswerSide())))
		lines = append(lines, "", answer)
		cardStyle = a.st.CardReveal
	} else {
		lines = append(lines, "", a.st.Muted.Render("space to flip"))
	}

	card := cardStyle.Width(min(a.width-8, 60)).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	bar := a.progress.ViewAs(float64(a.study.Pos()+1) / float64(a.study.Len()))
	content := lipgloss.JoinVertical(lipgloss.Center, counter, "", card, "", bar)
	return lipgloss.Place(a.width, a.height-3, lipgloss.Center, lipgloss.Center, content)
}

// ---------- List ----------

func (a *App) viewList() string {
	var toggles []string
	flag := func(on bool, label string) string {
		if on {
			return a.st.Title.Render("[" + label + "]")
		}
		return a.st.Muted.Render("[" + label + "]")
	}
	toggles = append(toggles,
		flag(a.listView.FavoritesOnly(), "favorites"),
		flag(a.listView.Shuffled(), "shuffle"),
		flag(a.listView.RedTextEnabled(), "red text"),
		flag(a.listView.RedSheetActive(), "red sheet"),
	)
	side := "back"
	if a.listView.OcclusionTarget() == model.SideFront {
		side = "front"
	}
	toggles = append(toggles, a.st.Muted.Render("side:"+side))
	if start, end := a.listView.Range(); start > 0 {
		toggles = append(toggles, a.st.Muted.Render(fmt.Sprintf("range:%d-%d", start, end)))
	}
	bar := strings.Join(toggles, " ")

	if a.rangeEdit {
		prompt := a.st.InputLabel.Render("Range: ") + a.rangeInput.View()
		return lipgloss.JoinVertical(lipgloss.Left, bar, prompt, a.cardList.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, "", a.cardList.View())
}

// ---------- Quiz ----------

func (a *App) viewQuiz() string {
	switch a.quiz.Phase() {
	case engine.PhasePlaying:
		if a.quiz.Choice() != nil {
			return a.viewChoiceQuestion()
		}
		if a.quiz.Scramble() != nil {
			return a.viewScrambleQuestion()
		}
		return ""
	case engine.PhaseResult:
		return a.viewQuizResult()
	default:
		return a.viewQuizIdle()
	}
}

func (a *App) viewQuizIdle() string {
	cfg := a.quiz.Config()

	typeLabel := "4-choice"
	if cfg.Type == model.QuestionScramble {
		typeLabel = "word scramble"
	}
	orderLabel := "random"
	if cfg.Order == model.OrderSequential {
		orderLabel = "sequential"
	}
	poolLabel := "all cards"
	if cfg.FavoritesOnly {
		poolLabel = "favorites only"
	}

	lines := []string{
		a.st.Title.Render("Quiz"),
		"",
		a.st.InputLabel.Render("t  type:  ") + a.st.CardPrompt.Render(typeLabel),
		a.st.InputLabel.Render("o  order: ") + a.st.CardPrompt.Render(orderLabel),
		a.st.InputLabel.Render("v  pool:  ") + a.st.CardPrompt.Render(poolLabel),
		"",
		a.st.Subtitle.Render("press enter to start"),
	}
	content := a.st.DialogBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(a.width, a.height-3, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) viewChoiceQuestion() string {
	c, ok := a.quiz.Current()
	if !ok {
		return ""
	}
	ch := a.quiz.Choice()

	counter := a.st.CardCounter.Render(fmt.Sprintf("Question %d / %d", a.quiz.Pos()+1, a.quiz.Len()))
	prompt := a.st.CardPrompt.Render(textutil.DisplayText(c.BackText))

	var rows []string
	for i, o := range ch.Options {
		label := fmt.Sprintf("%d. %s", i+1, textutil.DisplayText(o.FrontText))
		style := a.st.OptionNormal
		switch {
		case ch.Answered() && o.ID == c.ID:
			label = styles.IconCorrect + " " + label
			style = a.st.OptionCorrect
		case ch.Answered() && o.ID == ch.SelectedID:
			label = styles.IconWrong + " " + label
			style = a.st.OptionIncorrect
		case !ch.Answered() && i == a.optionCursor:
			label = "› " + label
			style = a.st.OptionSelected
		default:
			label = "  " + label
		}
		rows = append(rows, style.Render(label))
	}

	feedback := ""
	if ch.Answered() {
		if ch.SelectedID == c.ID {
			feedback = a.st.OptionCorrect.Render("Correct!")
		} else {
			feedback = a.st.OptionIncorrect.Render("Incorrect")
		}
	}

	bar := a.progress.ViewAs(float64(a.quiz.Pos()) / float64(a.quiz.Len()))
	content := lipgloss.JoinVertical(lipgloss.Left,
		counter, "", prompt, "",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"", feedback, bar,
	)
	return lipgloss.Place(a.width, a.height-3, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) viewScrambleQuestion() string {
	c, ok := a.quiz.Current()
	if !ok {
		return ""
	}
	sc := a.quiz.Scramble()

	counter := a.st.CardCounter.Render(fmt.Sprintf("Question %d / %d", a.quiz.Pos()+1, a.quiz.Len()))
	prompt := a.st.CardPrompt.Render(textutil.DisplayText(c.BackText))

	// Assembled answer line.
	var assembled []string
	for _, t := range sc.Assembled {
		assembled = append(assembled, a.st.TokenAssembled.Render(t.Text))
	}
	answerLine := a.st.Muted.Render("…")
	if len(assembled) > 0 {
		answerLine = lipgloss.JoinHorizontal(lipgloss.Top, assembled...)
	}

	// Remaining token pool.
	var pool []string
	cursor := 0
	for _, t := range sc.Tokens {
		if t.Consumed {
			continue
		}
		if cursor == a.tokenCursor && !sc.Answered() {
			pool = append(pool, a.st.OptionSelected.Render(t.Text))
		} else {
			pool = append(pool, a.st.TokenUnused.Render(t.Text))
		}
		cursor++
	}
	poolLine := ""
	if len(pool) > 0 {
		poolLine = lipgloss.JoinHorizontal(lipgloss.Top, pool...)
	}

	feedback := ""
	switch sc.Outcome {
	case engine.OutcomeCorrect:
		feedback = a.st.OptionCorrect.Render("Correct!")
	case engine.OutcomeIncorrect:
		feedback = a.st.OptionIncorrect.Render("Incorrect — " + textutil.NormalizeSpace(c.FrontText))
	}

	hint := a.st.Muted.Render("←/→ pick word • enter place • backspace undo")
	if len(pool) == 0 && !sc.Answered() {
		hint = a.st.Muted.Render("enter check answer • backspace undo")
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		counter, "", prompt, "",
		answerLine, "",
		poolLine, "",
		feedback, hint,
	)
	return lipgloss.Place(a.width, a.height-3, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) viewQuizResult() string {
	res, ok := a.quiz.Result()
	if !ok {
		return ""
	}

	lines := []string{
		a.st.Title.Render(res.Rank),
		"",
		a.st.CardPrompt.Render(fmt.Sprintf("%d / %d correct", res.Correct, res.Total)),
		a.st.CardAnswer.Render(fmt.Sprintf("%d%%", res.Percentage)),
		"",
		a.st.Subtitle.Render("press enter to continue"),
	}
	content := a.st.DialogBox.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return lipgloss.Place(a.width, a.height-3, lipgloss.Center, lipgloss.Center, content)
}

// ---------- Manage ----------

func (a *App) viewManage() string {
	search := a.st.InputLabel.Render("Search: ") + a.searchInput.View()
	count := a.st.Muted.Render(fmt.Sprintf("%d of %d cards", a.cardList.Count(), a.cards.Len()))
	return lipgloss.JoinVertical(lipgloss.Left, search, count, "", a.cardList.View())
}

// ---------- Help ----------

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.st.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, group := range a.keyMap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(a.st.StatusKey.Render(fmt.Sprintf("%-10s", h.Key)))
			b.WriteString(a.st.StatusDesc.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(a.st.Muted.Render("? to close"))

	content := a.st.DialogBox.Render(b.String())
	return lipgloss.Place(a.width, a.height-3, lipgloss.Center, lipgloss.Center, content)
}

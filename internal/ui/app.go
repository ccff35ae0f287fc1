package ui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocablab/vocabmaster/internal/app"
	"github.com/vocablab/vocabmaster/internal/engine"
	"github.com/vocablab/vocabmaster/internal/model"
	"github.com/vocablab/vocabmaster/internal/notify"
	"github.com/vocablab/vocabmaster/internal/store"
	"github.com/vocablab/vocabmaster/internal/ui/components/cardform"
	"github.com/vocablab/vocabmaster/internal/ui/components/cardlist"
	"github.com/vocablab/vocabmaster/internal/ui/components/statusbar"
	"github.com/vocablab/vocabmaster/internal/ui/keys"
	"github.com/vocablab/vocabmaster/internal/ui/styles"
)

// Mode represents the active screen.
type Mode int

const (
	// ModeStudy is the one-card-at-a-time flashcard screen.
	ModeStudy Mode = iota
	// ModeList is the scrollable list with the red-sheet tools.
	ModeList
	// ModeQuiz is the quiz screen (idle, playing, or result).
	ModeQuiz
	// ModeManage is the search/add/edit/delete screen.
	ModeManage
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeQuiz:
		return "quiz"
	case ModeManage:
		return "manage"
	default:
		return "study"
	}
}

const (
	minAppWidth  = 40
	minAppHeight = 10

	statusMessageTTL = 4 * time.Second
)

// App is the main application model.
type App struct {
	cfg        *app.Config
	cards      *store.CardStore
	dispatcher *notify.Dispatcher
	rng        *rand.Rand

	theme  model.Theme
	st     styles.Styles
	keyMap keys.KeyMap

	mode     Mode
	width    int
	height   int
	ready    bool
	quitting bool

	statusBar   statusbar.Model
	statusSeq   int
	progress    progress.Model
	cardList    cardlist.Model
	form        *cardform.Model
	rangeInput  textinput.Model
	rangeEdit   bool
	searchInput textinput.Model
	searching   bool

	study    *engine.StudySession
	listView *engine.ListView
	quiz     *engine.QuizSession

	// Quiz screen cursors.
	optionCursor int
	tokenCursor  int
	showHelp     bool
}

// NewApp creates the application model.
func NewApp(cfg *app.Config, cards *store.CardStore, theme model.Theme, rng *rand.Rand) *App {
	st := styles.New(theme)

	rangeInput := textinput.New()
	rangeInput.Placeholder = "start-end (empty for all)"
	rangeInput.CharLimit = 16
	rangeInput.Width = 24

	searchInput := textinput.New()
	searchInput.Placeholder = "search cards"
	searchInput.CharLimit = 64
	searchInput.Width = 32

	a := &App{
		cfg:         cfg,
		cards:       cards,
		dispatcher:  notify.NewDispatcher(),
		rng:         rng,
		theme:       theme,
		st:          st,
		keyMap:      keys.DefaultKeyMap(),
		statusBar:   statusbar.New(st),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		cardList:    cardlist.New(st),
		rangeInput:  rangeInput,
		searchInput: searchInput,
		listView:    engine.NewListView(rng),
		quiz:        engine.NewQuizSession(engine.QuizConfig{Type: model.QuestionChoice, Order: model.OrderRandom}, rng),
	}
	a.study = engine.NewStudySession(cards.List(), false, rng)
	a.refreshList()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if warn := a.cards.LoadWarning(); warn != nil {
		return a.setStatus("Saved data was invalid; restored the default deck", true)
	}
	return nil
}

// feedbackDelay returns the answer-feedback duration, honoring the config
// override.
func (a *App) feedbackDelay() time.Duration {
	if a.cfg != nil && a.cfg.QuizFeedbackMs > 0 {
		return time.Duration(a.cfg.QuizFeedbackMs) * time.Millisecond
	}
	return engine.FeedbackDelay
}

// SetSize stores the window dimensions and resizes the components.
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.ready = width >= minAppWidth && height >= minAppHeight
	a.statusBar.SetWidth(width)
	a.cardList.SetSize(width, height-4)
	a.progress.Width = min(width-8, 60)
	if a.form != nil {
		a.form.SetSize(width, height)
	}
}

// setTheme switches the palette, persists the preference, and restyles the
// components.
func (a *App) setTheme(theme model.Theme) tea.Cmd {
	a.theme = theme
	a.st = styles.New(theme)
	a.statusBar.SetStyles(a.st)
	a.cardList.SetStyles(a.st)
	if err := a.cards.SaveTheme(theme); err != nil {
		return a.setStatus("Could not save theme preference", true)
	}
	return nil
}

func (a *App) toggleTheme() tea.Cmd {
	if a.theme == model.ThemeLight {
		return a.setTheme(model.ThemeDark)
	}
	return a.setTheme(model.ThemeLight)
}

// setStatus shows a transient status message.
func (a *App) setStatus(msg string, isError bool) tea.Cmd {
	a.statusSeq++
	a.statusBar.SetMessage(msg, isError)
	return ClearStatusAfter(statusMessageTTL, a.statusSeq)
}

// refreshList re-derives the card list rows from the store and list view.
func (a *App) refreshList() {
	all := a.cards.List()
	a.listView.Refresh(all)
	cards := a.listView.Cards(all)
	items := make([]cardlist.Item, len(cards))
	for i, c := range cards {
		items[i] = cardlist.Item{
			Card:       c,
			FrontState: a.listView.TextState(c, model.SideFront),
			BackState:  a.listView.TextState(c, model.SideBack),
		}
	}
	a.cardList.SetItems(items)
}

// refreshManage re-derives the manage list rows from the search term.
func (a *App) refreshManage() {
	term := a.searchInput.Value()
	var items []cardlist.Item
	for _, c := range a.cards.List() {
		if c.Matches(term) {
			items = append(items, cardlist.Item{Card: c})
		}
	}
	a.cardList.SetItems(items)
}

// restartStudy rebuilds the study session from the current collection,
// keeping the favorites filter and side orientation.
func (a *App) restartStudy(favoritesOnly bool) {
	reversed := a.study != nil && a.study.Reversed()
	a.study = engine.NewStudySession(a.cards.List(), favoritesOnly, a.rng)
	if reversed {
		a.study.Reverse()
	}
}

// cardFormNew builds a sized card form for add or edit.
func cardFormNew(a *App, title, cardID, front, back, category string) cardform.Model {
	form := cardform.New(a.st, title, cardID, front, back, category, a.categories())
	form.SetSize(a.width, a.height)
	return form
}

// categories collects the distinct category labels for form suggestions.
func (a *App) categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range a.cards.List() {
		if _, ok := seen[c.Category]; ok {
			continue
		}
		seen[c.Category] = struct{}{}
		out = append(out, c.Category)
	}
	return out
}

// switchMode changes the active screen and refreshes its data.
func (a *App) switchMode(mode Mode) {
	a.mode = mode
	a.form = nil
	a.rangeEdit = false
	a.searching = false
	a.showHelp = false

	switch mode {
	case ModeStudy:
		a.restartStudy(a.study != nil && a.study.FavoritesOnly())
	case ModeList:
		a.refreshList()
	case ModeManage:
		a.refreshManage()
	}
	a.statusBar.SetMode(mode.String())
}

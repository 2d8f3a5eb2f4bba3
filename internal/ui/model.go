package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/preflight-terminal/internal/aviationweather"
	"github.com/ngmaloney/preflight-terminal/internal/history"
	"github.com/ngmaloney/preflight-terminal/internal/metar"
	"github.com/ngmaloney/preflight-terminal/internal/models"
	"github.com/ngmaloney/preflight-terminal/internal/profile"
	"github.com/ngmaloney/preflight-terminal/internal/scoring"
	"github.com/ngmaloney/preflight-terminal/pkg/logger"
)

const (
	recentLimit = 5

	missingRouteAdvisory = "Add both departure and destination ICAOs first."
	missingNameAdvisory  = "Add your full name to save."
	noProfileAdvisory    = "Set up your pilot profile first (ctrl+p)."
)

// AppState represents the current state of the application
type AppState int

const (
	StateHome    AppState = iota // Landing screen and recent checks
	StateProfile                 // Editing the pilot profile
	StateFlight                  // Entering flight conditions
	StateLoading                 // Fetching METAR/TAF
	StateResult                  // Showing the decision
	StateError                   // Error state
)

// HistoryLog records checks and lists recent ones
type HistoryLog interface {
	Record(ctx context.Context, d models.Decision) error
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// Dependencies are the collaborators the UI talks to. History may be nil.
type Dependencies struct {
	Profiles profile.Store
	Weather  aviationweather.WeatherClient
	History  HistoryLog
	Logger   *logger.Logger
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	// Collaborators
	profiles profile.Store
	weather  aviationweather.WeatherClient
	history  HistoryLog
	logger   *logger.Logger

	// Data
	profile  models.PilotProfile
	flight   models.FlightInput
	decision *models.Decision
	briefing aviationweather.Briefing
	recent   []history.Entry

	// Forms
	profileForm form
	flightForm  form
	formErr     string // inline message under the active form
	wxErr       string // weather advisory on the flight form

	showTech bool
	spinner  spinner.Model
}

// NewModel creates a new application model
func NewModel(deps Dependencies) Model {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := models.DefaultProfile()
	f := models.DefaultFlight()

	return Model{
		state:       StateHome,
		profiles:    deps.Profiles,
		weather:     deps.Weather,
		history:     deps.History,
		logger:      log.Named("ui"),
		profile:     p,
		flight:      f,
		profileForm: newProfileForm(p),
		flightForm:  newFlightForm(f),
		spinner:     s,
	}
}

// SetProfile replaces the pilot profile shown in the forms
func (m *Model) SetProfile(p models.PilotProfile) {
	m.profile = p
	m.profileForm = newProfileForm(p)
}

// SetFlight replaces the flight conditions shown in the flight form
func (m *Model) SetFlight(f models.FlightInput) {
	m.flight = f
	m.flightForm = newFlightForm(f)
}

// SetBriefing sets the raw reports shown on the flight form
func (m *Model) SetBriefing(b aviationweather.Briefing) {
	m.briefing = b
}

// SetDecision shows d on the result screen
func (m *Model) SetDecision(d models.Decision) {
	m.decision = &d
	m.showTech = false
	m.state = StateResult
}

// SetRecent sets the recent checks listed on the home screen
func (m *Model) SetRecent(entries []history.Entry) {
	m.recent = entries
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadProfile(m.profiles),
		loadHistory(m.history, recentLimit),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.logger.Error("Operation failed", logger.Error(msg.err))
		m.err = msg.err
		m.state = StateError
		return m, nil

	case profileLoadedMsg:
		if msg.ok {
			m.SetProfile(msg.profile)
		}
		return m, nil

	case profileSavedMsg:
		m.logger.Debug("Profile saved")
		return m, nil

	case profileClearedMsg:
		if msg.err != nil {
			m.logger.Warn("Failed to clear stored profile", logger.Error(msg.err))
		}
		return m, nil

	case weatherFetchedMsg:
		return m.applyBriefing(msg.briefing), textinput.Blink

	case decisionRecordedMsg:
		if msg.err != nil {
			m.logger.Warn("Failed to record flight check", logger.Error(msg.err))
			return m, nil
		}
		return m, loadHistory(m.history, recentLimit)

	case historyLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("Failed to load recent checks", logger.Error(msg.err))
			return m, nil
		}
		m.recent = msg.entries
		return m, nil
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global keys
		if keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// State-specific handling
		switch m.state {
		case StateHome:
			return m.handleHome(keyMsg)
		case StateProfile:
			return m.handleProfileForm(keyMsg)
		case StateFlight:
			return m.handleFlightForm(keyMsg)
		case StateResult:
			return m.handleResult(keyMsg)
		case StateLoading:
			return m, nil
		case StateError:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			// Any other key returns home
			m.state = StateHome
			m.err = nil
			return m, nil
		}
	}

	if m.state == StateLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// start opens the flight form, or the profile form if no profile exists yet
func (m Model) start() (tea.Model, tea.Cmd) {
	m.formErr = ""
	if m.profile.IsConfigured() {
		m.state = StateFlight
	} else {
		m.state = StateProfile
		m.profileForm = newProfileForm(m.profile)
	}
	return m, textinput.Blink
}

func (m Model) handleHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n", "enter":
		return m.start()
	case "p":
		m.state = StateProfile
		m.formErr = ""
		m.profileForm = newProfileForm(m.profile)
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleProfileForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateHome
		m.formErr = ""
		return m, nil

	case "ctrl+s":
		if strings.TrimSpace(m.profileForm.text(keyFullName)) == "" {
			m.formErr = missingNameAdvisory
			return m, nil
		}
		p, errs := readProfile(m.profileForm, m.profile)
		if len(errs) > 0 {
			m.formErr = strings.Join(errs, " • ")
			return m, nil
		}
		m.profile = p
		m.formErr = ""
		m.state = StateFlight
		return m, tea.Batch(saveProfile(m.profiles, p), textinput.Blink)

	case "ctrl+r":
		m.SetProfile(models.DefaultProfile())
		m.formErr = ""
		return m, clearProfile(m.profiles)

	case "enter":
		m.profileForm.setFocus(m.profileForm.focus + 1)
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.profileForm, cmd = m.profileForm.Update(msg)
	if m.formErr != "" && msg.Type == tea.KeyRunes {
		m.formErr = ""
	}
	return m, cmd
}

func (m Model) handleFlightForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateHome
		m.formErr = ""
		m.wxErr = ""
		return m, nil

	case "ctrl+p":
		m.state = StateProfile
		m.formErr = ""
		m.profileForm = newProfileForm(m.profile)
		return m, textinput.Blink

	case "ctrl+w":
		dep := strings.TrimSpace(m.flightForm.text(keyDeparture))
		dest := strings.TrimSpace(m.flightForm.text(keyDestination))
		if dep == "" || dest == "" {
			m.wxErr = missingRouteAdvisory
			return m, nil
		}
		if m.weather == nil {
			m.wxErr = aviationweather.NoWeatherAdvisory
			return m, nil
		}
		m.wxErr = ""
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, fetchWeather(m.weather, dep, dest))

	case "enter":
		if !m.profile.IsConfigured() {
			m.formErr = noProfileAdvisory
			return m, nil
		}
		in, errs := readFlight(m.flightForm, m.flight)
		if len(errs) > 0 {
			m.formErr = strings.Join(errs, " • ")
			return m, nil
		}
		m.flight = in
		m.formErr = ""

		d := scoring.Decide(m.profile, in)
		m.logger.Info("Flight checked",
			logger.String("status", string(d.Status)),
			logger.Int("score", d.Score),
			logger.String("departure", d.Tech.Inputs.Departure),
			logger.String("destination", d.Tech.Inputs.Destination))
		m.SetDecision(d)
		return m, recordDecision(m.history, d)
	}

	var cmd tea.Cmd
	m.flightForm, cmd = m.flightForm.Update(msg)
	if m.formErr != "" && msg.Type == tea.KeyRunes {
		m.formErr = ""
	}
	return m, cmd
}

// applyBriefing stores fetched reports and overlays the departure METAR
// onto the flight conditions
func (m Model) applyBriefing(b aviationweather.Briefing) Model {
	m.state = StateFlight
	m.briefing = b
	m.wxErr = b.Advisory()

	if b.DepartureMetar == "" {
		return m
	}

	parsed := metar.Parse(b.DepartureMetar)
	current, _ := readFlight(m.flightForm, m.flight)
	updated := current.WithMetar(parsed)
	setConditions(m.flightForm, updated, parsed)

	m.logger.Debug("Applied departure METAR",
		logger.String("raw", b.DepartureMetar),
		logger.Float64("crosswind", updated.WindCross),
		logger.Float64("gust_spread", updated.GustSpread),
		logger.Float64("ceiling", updated.Ceiling),
		logger.Float64("visibility", updated.Visibility))
	return m
}

func (m Model) handleResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "t":
		m.showTech = !m.showTech
	case "n":
		m.state = StateFlight
		return m, textinput.Blink
	case "h", "esc":
		m.state = StateHome
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateHome:
		return m.viewHome()
	case StateProfile:
		return m.viewProfile()
	case StateFlight:
		return m.viewFlight()
	case StateLoading:
		return m.viewLoading()
	case StateResult:
		return m.viewResult()
	case StateError:
		return m.viewError()
	}

	return ""
}

package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/preflight-terminal/internal/aviationweather"
	"github.com/ngmaloney/preflight-terminal/internal/history"
	"github.com/ngmaloney/preflight-terminal/internal/models"
	"github.com/ngmaloney/preflight-terminal/internal/profile"
)

// Message types for async operations

// profileLoadedMsg is sent when the stored profile has been read
type profileLoadedMsg struct {
	profile models.PilotProfile
	ok      bool
}

// profileSavedMsg is sent when the profile has been persisted
type profileSavedMsg struct{}

// profileClearedMsg is sent when the stored profile has been removed
type profileClearedMsg struct {
	err error
}

// weatherFetchedMsg is sent when the route briefing has been fetched
type weatherFetchedMsg struct {
	briefing aviationweather.Briefing
}

// decisionRecordedMsg is sent when a check has been written to history
type decisionRecordedMsg struct {
	err error
}

// historyLoadedMsg is sent when recent checks have been read
type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

func loadProfile(store profile.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		p, ok := store.Load(ctx)
		return profileLoadedMsg{profile: p, ok: ok}
	}
}

func saveProfile(store profile.Store, p models.PilotProfile) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := store.Save(ctx, p); err != nil {
			return errMsg{err: fmt.Errorf("couldn't save your profile: %w", err)}
		}
		return profileSavedMsg{}
	}
}

func clearProfile(store profile.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return profileClearedMsg{err: store.Clear(ctx)}
	}
}

// fetchWeather fetches METAR and TAF for both ends of the route
func fetchWeather(client aviationweather.WeatherClient, departure, destination string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return weatherFetchedMsg{
			briefing: aviationweather.FetchBriefing(ctx, client, departure, destination),
		}
	}
}

func recordDecision(log HistoryLog, d models.Decision) tea.Cmd {
	if log == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return decisionRecordedMsg{err: log.Record(ctx, d)}
	}
}

func loadHistory(log HistoryLog, limit int) tea.Cmd {
	if log == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		entries, err := log.Recent(ctx, limit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

package store

import (
	"context"
	"errors"

	"github.com/rajshahuk/macos-menubar-worldclock/internal/model"
)

// Memory is a map-backed gateway for tests and database-less runs. It
// mirrors the fallback behavior of the SQL gateways: loads return
// defaults until something has been saved.
type Memory struct {
	timezones   []model.TimezoneEntry
	settings    *model.AppSettings
	FailSaves   bool
	SaveCount   int
	failedSaves int
}

// NewMemory creates an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{}
}

// Seed preloads stored state, as if a previous session had saved it.
func (m *Memory) Seed(entries []model.TimezoneEntry, settings model.AppSettings) {
	m.timezones = append([]model.TimezoneEntry(nil), entries...)
	m.settings = &settings
}

func (m *Memory) LoadTimezones(_ context.Context) ([]model.TimezoneEntry, error) {
	if m.timezones == nil {
		return BootstrapTimezones(), nil
	}
	return append([]model.TimezoneEntry(nil), m.timezones...), nil
}

func (m *Memory) SaveTimezones(_ context.Context, entries []model.TimezoneEntry) error {
	if m.FailSaves {
		m.failedSaves++
		return errors.New("save failed")
	}
	m.timezones = append([]model.TimezoneEntry(nil), entries...)
	m.SaveCount++
	return nil
}

func (m *Memory) LoadSettings(_ context.Context) (model.AppSettings, error) {
	if m.settings == nil {
		return model.DefaultSettings(), nil
	}
	return *m.settings, nil
}

func (m *Memory) SaveSettings(_ context.Context, settings model.AppSettings) error {
	if m.FailSaves {
		m.failedSaves++
		return errors.New("save failed")
	}
	m.settings = &settings
	m.SaveCount++
	return nil
}

// StoredTimezones returns the last saved list, or nil if none.
func (m *Memory) StoredTimezones() []model.TimezoneEntry { return m.timezones }

// StoredSettings returns the last saved settings, or nil if none.
func (m *Memory) StoredSettings() *model.AppSettings { return m.settings }

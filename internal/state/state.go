// Package state holds the in-memory timezone list and settings and
// mediates all mutations, persisting each change through the gateway.
package state

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/rajshahuk/macos-menubar-worldclock/internal/loginitem"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/model"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/service"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/store"
)

// App is the coordination core. It is affine to a single owner (the UI
// loop); mutation methods are synchronous and unsynchronized.
type App struct {
	gateway   store.Gateway
	svc       service.Interface
	registrar loginitem.Registrar
	logger    *zap.Logger
	now       func() time.Time

	timezones []model.TimezoneEntry
	settings  model.AppSettings
	observers []func()
}

// Option configures an App during construction.
type Option func(*App)

// WithClock overrides the "now" source, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New loads both aggregates from the gateway, deduplicates the timezone
// list by identifier (first occurrence wins) and repairs the primary
// selection invariant. The returned App is ready for all operations.
func New(ctx context.Context, gateway store.Gateway, svc service.Interface, registrar loginitem.Registrar, logger *zap.Logger, opts ...Option) *App {
	a := &App{
		gateway:   gateway,
		svc:       svc,
		registrar: registrar,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	entries, err := gateway.LoadTimezones(ctx)
	if err != nil {
		logger.Warn("failed to load timezones, using bootstrap defaults", zap.Error(err))
		entries = store.BootstrapTimezones()
	}
	deduped := dedupeByIdentifier(entries)
	if len(deduped) == 0 {
		deduped = store.BootstrapTimezones()
	}
	a.timezones = deduped
	if len(deduped) != len(entries) {
		a.persistTimezones()
	}

	settings, err := gateway.LoadSettings(ctx)
	if err != nil {
		logger.Warn("failed to load settings, using defaults", zap.Error(err))
		settings = model.DefaultSettings()
	}
	a.settings = settings
	a.repairPrimary()

	return a
}

// dedupeByIdentifier keeps the first entry for each identifier.
func dedupeByIdentifier(entries []model.TimezoneEntry) []model.TimezoneEntry {
	seen := make(map[string]bool, len(entries))
	result := make([]model.TimezoneEntry, 0, len(entries))
	for _, e := range entries {
		if seen[e.TimezoneIdentifier] {
			continue
		}
		seen[e.TimezoneIdentifier] = true
		result = append(result, e)
	}
	return result
}

// repairPrimary resets the primary selection to the first entry when it
// no longer references a present entry, persisting the repair.
func (a *App) repairPrimary() {
	id := a.settings.PrimaryTimezoneID
	if id == nil || len(a.timezones) == 0 {
		return
	}
	for _, e := range a.timezones {
		if e.ID == *id {
			return
		}
	}
	first := a.timezones[0].ID
	a.settings.PrimaryTimezoneID = &first
	a.persistSettings()
}

// Timezones returns the current ordered list.
func (a *App) Timezones() []model.TimezoneEntry {
	return append([]model.TimezoneEntry(nil), a.timezones...)
}

// Settings returns the current settings snapshot.
func (a *App) Settings() model.AppSettings {
	return a.settings
}

// PrimaryTimezone returns the entry the primary selection points at, or
// the first entry when unset.
func (a *App) PrimaryTimezone() model.TimezoneEntry {
	if id := a.settings.PrimaryTimezoneID; id != nil {
		for _, e := range a.timezones {
			if e.ID == *id {
				return e
			}
		}
	}
	return a.timezones[0]
}

// SetPrimaryTimezone marks the entry as the primary selection.
func (a *App) SetPrimaryTimezone(entry model.TimezoneEntry) {
	id := entry.ID
	a.settings.PrimaryTimezoneID = &id
	a.persistSettings()
	a.notify()
}

// IsPrimary reports whether the entry is the resolved primary.
func (a *App) IsPrimary(entry model.TimezoneEntry) bool {
	return entry.ID == a.PrimaryTimezone().ID
}

// AddTimezone appends the entry to the end of the list. Duplicate
// identifiers are accepted here; they are only collapsed at load time.
func (a *App) AddTimezone(entry model.TimezoneEntry) {
	a.timezones = append(a.timezones, entry)
	a.persistTimezones()
	a.notify()
}

// RemoveTimezone removes the entry by id. Removing the sole remaining
// entry is refused. When the removed entry was primary, the primary is
// reassigned to the new first entry before the list is persisted.
func (a *App) RemoveTimezone(entry model.TimezoneEntry) {
	if len(a.timezones) <= 1 {
		return
	}

	idx := -1
	for i, e := range a.timezones {
		if e.ID == entry.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	wasPrimary := a.IsPrimary(entry)
	a.timezones = append(a.timezones[:idx], a.timezones[idx+1:]...)

	if wasPrimary {
		first := a.timezones[0].ID
		a.settings.PrimaryTimezoneID = &first
		a.persistSettings()
	}
	a.persistTimezones()
	a.notify()
}

// MoveTimezone moves the entries at fromIndices to toIndex, with
// drag-reorder semantics: both are interpreted against the list before
// any removal. Out-of-range source indices are ignored.
func (a *App) MoveTimezone(fromIndices []int, toIndex int) {
	from := make([]int, 0, len(fromIndices))
	for _, i := range fromIndices {
		if i >= 0 && i < len(a.timezones) {
			from = append(from, i)
		}
	}
	if len(from) == 0 {
		return
	}
	sort.Ints(from)

	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(a.timezones) {
		toIndex = len(a.timezones)
	}

	moving := make([]model.TimezoneEntry, 0, len(from))
	fromSet := make(map[int]bool, len(from))
	insertAt := toIndex
	for _, i := range from {
		moving = append(moving, a.timezones[i])
		fromSet[i] = true
		if i < toIndex {
			insertAt--
		}
	}

	remaining := make([]model.TimezoneEntry, 0, len(a.timezones)-len(moving))
	for i, e := range a.timezones {
		if !fromSet[i] {
			remaining = append(remaining, e)
		}
	}

	reordered := make([]model.TimezoneEntry, 0, len(a.timezones))
	reordered = append(reordered, remaining[:insertAt]...)
	reordered = append(reordered, moving...)
	reordered = append(reordered, remaining[insertAt:]...)

	a.timezones = reordered
	a.persistTimezones()
	a.notify()
}

// SetUse24HourFormat overwrites the 24-hour flag.
func (a *App) SetUse24HourFormat(enabled bool) {
	a.settings.Use24HourFormat = enabled
	a.persistSettings()
	a.notify()
}

// SetShowSeconds overwrites the seconds flag.
func (a *App) SetShowSeconds(enabled bool) {
	a.settings.ShowSeconds = enabled
	a.persistSettings()
	a.notify()
}

// SetShowTimezoneOffset overwrites the offset display flag.
func (a *App) SetShowTimezoneOffset(enabled bool) {
	a.settings.ShowTimezoneOffset = enabled
	a.persistSettings()
	a.notify()
}

// SetDisplayMode overwrites the compact display mode.
func (a *App) SetDisplayMode(mode model.DisplayMode) {
	a.settings.DisplayMode = mode
	a.persistSettings()
	a.notify()
}

// SetLaunchAtLogin delegates to the registrar first; settings are only
// updated and persisted when registration succeeded, so a failure
// leaves no partial state. Returns whether the change took effect.
func (a *App) SetLaunchAtLogin(enabled bool) bool {
	if err := a.registrar.SetEnabled(enabled); err != nil {
		a.logger.Warn("login item registration failed", zap.Bool("enabled", enabled), zap.Error(err))
		return false
	}
	a.settings.LaunchAtLogin = enabled
	a.persistSettings()
	a.notify()
	return true
}

// FormattedTime renders the entry's current time per current settings.
func (a *App) FormattedTime(entry model.TimezoneEntry) string {
	return a.svc.FormattedTime(entry, a.settings.Use24HourFormat, a.settings.ShowSeconds, a.now())
}

// DayOffsetString maps the day offset to "+1 day" / "-1 day", or ""
// when the entry shares the local calendar day.
func (a *App) DayOffsetString(entry model.TimezoneEntry) string {
	switch a.svc.DayOffset(entry, a.now()) {
	case 1:
		return "+1 day"
	case -1:
		return "-1 day"
	default:
		return ""
	}
}

// HourOffset returns the entry's signed hour offset from local time.
func (a *App) HourOffset(entry model.TimezoneEntry) string {
	return a.svc.HourOffset(entry, a.now())
}

// SearchTimezones searches the catalog.
func (a *App) SearchTimezones(query string) []model.TimezoneSearchResult {
	return a.svc.Search(query)
}

// Subscribe registers an observer invoked after every successful
// mutation. Observers run synchronously on the owner's context.
func (a *App) Subscribe(fn func()) {
	a.observers = append(a.observers, fn)
}

func (a *App) notify() {
	for _, fn := range a.observers {
		fn()
	}
}

// A failed write is dropped: the in-memory state stays authoritative
// for the session but will not survive a restart.
func (a *App) persistTimezones() {
	if err := a.gateway.SaveTimezones(context.Background(), a.timezones); err != nil {
		a.logger.Warn("failed to persist timezones", zap.Error(err))
	}
}

func (a *App) persistSettings() {
	if err := a.gateway.SaveSettings(context.Background(), a.settings); err != nil {
		a.logger.Warn("failed to persist settings", zap.Error(err))
	}
}

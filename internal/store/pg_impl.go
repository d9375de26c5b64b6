package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/rajshahuk/macos-menubar-worldclock/internal/model"
)

type pgGateway struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func (g *pgGateway) LoadTimezones(ctx context.Context) ([]model.TimezoneEntry, error) {
	raw, found, err := g.get(ctx, keyTimezones)
	if err != nil {
		return nil, err
	}
	if !found {
		return BootstrapTimezones(), nil
	}

	var entries []model.TimezoneEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || len(entries) == 0 {
		g.logger.Warn("stored timezone list unreadable, using bootstrap defaults", zap.Error(err))
		return BootstrapTimezones(), nil
	}
	return entries, nil
}

func (g *pgGateway) SaveTimezones(ctx context.Context, entries []model.TimezoneEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		g.logger.Warn("failed to serialize timezone list", zap.Error(err))
		return nil
	}
	return g.put(ctx, keyTimezones, string(raw))
}

func (g *pgGateway) LoadSettings(ctx context.Context) (model.AppSettings, error) {
	raw, found, err := g.get(ctx, keySettings)
	if err != nil {
		return model.DefaultSettings(), err
	}
	if !found {
		return model.DefaultSettings(), nil
	}

	var settings model.AppSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		g.logger.Warn("stored settings unreadable, using defaults", zap.Error(err))
		return model.DefaultSettings(), nil
	}
	if !settings.DisplayMode.Valid() {
		settings.DisplayMode = model.DefaultSettings().DisplayMode
	}
	return settings, nil
}

func (g *pgGateway) SaveSettings(ctx context.Context, settings model.AppSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		g.logger.Warn("failed to serialize settings", zap.Error(err))
		return nil
	}
	return g.put(ctx, keySettings, string(raw))
}

func (g *pgGateway) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := g.db.GetContext(ctx, &value, "SELECT value FROM clock_store WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (g *pgGateway) put(ctx context.Context, key, value string) error {
	q := `
		INSERT INTO clock_store (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`
	if _, err := g.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/rajshahuk/macos-menubar-worldclock/internal/catalog"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/config"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/model"
)

// Storage keys for the two independent aggregates. There is no
// transactional coupling between them.
const (
	keyTimezones = "timezones"
	keySettings  = "settings"
)

// Gateway defines key-value persistence of the timezone list and the
// settings object. Loads fall back to defaults when the stored blob is
// absent or corrupt; only driver failures surface as errors.
type Gateway interface {
	LoadTimezones(ctx context.Context) ([]model.TimezoneEntry, error)
	SaveTimezones(ctx context.Context, entries []model.TimezoneEntry) error
	LoadSettings(ctx context.Context) (model.AppSettings, error)
	SaveSettings(ctx context.Context, settings model.AppSettings) error
}

// NewGateway creates a gateway implementation based on DB type
func NewGateway(db *sqlx.DB, dbType config.DBType, logger *zap.Logger) Gateway {
	if dbType == config.DBTypePostgreSQL {
		return &pgGateway{db: db, logger: logger}
	}
	// Default to SQLite
	return &sqliteGateway{db: db, logger: logger}
}

// BootstrapTimezones returns the fixed default list used when no stored
// timezones exist: the local zone first, then Hong Kong, Mumbai, London
// and New York.
func BootstrapTimezones() []model.TimezoneEntry {
	local := localIdentifier()
	place := catalog.FallbackPlace(local)

	return []model.TimezoneEntry{
		model.NewTimezoneEntry(local, place.CityName, place.CountryCode),
		model.NewTimezoneEntry("Asia/Hong_Kong", "Hong Kong", "HK"),
		model.NewTimezoneEntry("Asia/Kolkata", "Mumbai", "IN"),
		model.NewTimezoneEntry("Europe/London", "London", "GB"),
		model.NewTimezoneEntry("America/New_York", "New York", "US"),
	}
}

func localIdentifier() string {
	name := time.Local.String()
	if name == "" || name == "Local" {
		return "UTC"
	}
	return name
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/rajshahuk/macos-menubar-worldclock/internal/catalog"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/config"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/database"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/loginitem"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/model"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/service"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/state"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := runMigrations(db, cfg); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	logger.Info("Store ready", zap.String("type", string(cfg.DB.Type)))

	gateway := store.NewGateway(db, cfg.DB.Type, logger)
	cat := catalog.New()
	svc := service.New(cat, time.Local)

	program, err := os.Executable()
	if err != nil {
		program = os.Args[0]
	}
	registrar := loginitem.NewLaunchAgent(cfg.LoginItem.AgentDir, cfg.LoginItem.Label, program)

	app := state.New(context.Background(), gateway, svc, registrar, logger)
	app.Subscribe(func() { render(app) })

	ticker := time.NewTicker(time.Duration(cfg.Clock.TickInterval) * time.Second)
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	render(app)
	for {
		select {
		case <-ticker.C:
			render(app)
		case <-quit:
			logger.Info("Shutting down")
			return
		}
	}
}

var (
	primaryStyle = color.New(color.FgCyan, color.Bold)
	offsetStyle  = color.New(color.FgHiBlack)
)

// render repaints the whole clock list. The tick loop is read-only; it
// never mutates persisted state.
func render(app *state.App) {
	fmt.Print("\033[H\033[2J")

	settings := app.Settings()
	for _, entry := range app.Timezones() {
		marker := "  "
		if app.IsPrimary(entry) {
			marker = primaryStyle.Sprint("* ")
		}

		line := fmt.Sprintf("%s%-24s %s", marker, label(entry, settings.DisplayMode), app.FormattedTime(entry))
		if day := app.DayOffsetString(entry); day != "" {
			line += " " + offsetStyle.Sprint(day)
		}
		if settings.ShowTimezoneOffset {
			if off := app.HourOffset(entry); off != "" && off != "0" {
				line += " " + offsetStyle.Sprintf("(%sh)", off)
			}
		}
		fmt.Println(line)
	}
}

func label(entry model.TimezoneEntry, mode model.DisplayMode) string {
	switch mode {
	case model.DisplayModeFlagOnly:
		return entry.FlagEmoji()
	case model.DisplayModeLocationOnly:
		return entry.CityName
	default:
		return entry.FlagEmoji() + " " + entry.CityName
	}
}

func runMigrations(db *sqlx.DB, cfg *config.Config) error {
	var m *migrate.Migrate
	var err error

	sourcePath := "file://migrations/postgres"

	if cfg.DB.IsSQLite() {
		sourcePath = "file://migrations/sqlite"
		// Use driver instance directly to avoid DSN parsing issues with in-memory SQLite
		driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
		if err != nil {
			return fmt.Errorf("could not create sqlite driver: %w", err)
		}
		m, err = migrate.NewWithDatabaseInstance(
			sourcePath,
			"sqlite3",
			driver,
		)
		if err != nil {
			return fmt.Errorf("could not create migrate instance: %w", err)
		}
	} else {
		m, err = migrate.New(sourcePath, cfg.DB.DSN())
		if err != nil {
			return err
		}
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

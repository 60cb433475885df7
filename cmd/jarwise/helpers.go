package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Veraticus/jarwise/internal/classification"
	"github.com/Veraticus/jarwise/internal/common"
	"github.com/Veraticus/jarwise/internal/config"
	"github.com/Veraticus/jarwise/internal/engine"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/Veraticus/jarwise/internal/service"
	"github.com/Veraticus/jarwise/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

// app bundles the storage, classifier and engine a command works against.
type app struct {
	store      service.Storage
	classifier *classification.Classifier
	engine     *engine.Engine
	cfg        *config.Config
}

// openApp loads configuration, opens and migrates the database and restores the
// learned category table.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	store, err := initStorage(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	classifier, err := newClassifier(ctx, cfg, store)
	if err != nil {
		closeStore(store)
		return nil, err
	}

	eng := engine.NewWithConfig(classifier, engine.Config{
		HorizonDays:  cfg.HorizonDays,
		ForecastDays: cfg.ForecastDays,
	})

	return &app{
		store:      store,
		classifier: classifier,
		engine:     eng,
		cfg:        cfg,
	}, nil
}

// initStorage opens the database at dbPath and runs migrations.
func initStorage(ctx context.Context, dbPath string) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		closeStore(store)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newClassifier builds the built-in rule table plus configured rules and loads
// learned overrides from store.
func newClassifier(ctx context.Context, cfg *config.Config, store classification.TableStore) (*classification.Classifier, error) {
	rules := append(classification.DefaultRules(), cfg.Rules...)
	classifier := classification.New(rules, store)
	if err := classifier.Load(ctx); err != nil {
		return nil, err
	}
	slog.Debug("Classifier ready",
		"rules", classifier.RuleCount(),
		"learned", len(classifier.Learned()))
	return classifier, nil
}

func (a *app) Close() {
	closeStore(a.store)
}

func closeStore(store service.Storage) {
	if err := store.Close(); err != nil {
		slog.Error("failed to close storage", "error", err)
	}
}

// snapshot loads the full history and every jar.
func (a *app) snapshot(ctx context.Context) ([]model.Transaction, []model.Jar, error) {
	txns, err := a.store.GetTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	jars, err := a.store.GetJars(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load jars: %w", err)
	}
	return txns, jars, nil
}

// insights runs the engine over the stored history. An empty ledger is reported
// to the user instead of producing an all-zero snapshot.
func (a *app) insights(ctx context.Context) (engine.Insights, []model.Jar, error) {
	count, err := a.store.GetTransactionCount(ctx)
	if err != nil {
		return engine.Insights{}, nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	if count == 0 {
		return engine.Insights{}, nil, common.NewUserError(
			"No transactions yet. Import a statement with `jarwise import` or record one with `jarwise add`.",
			common.ErrNoTransactions)
	}

	txns, jars, err := a.snapshot(ctx)
	if err != nil {
		return engine.Insights{}, nil, err
	}
	return a.engine.Analyze(txns, jars), jars, nil
}

// parseAmount parses a non-negative money amount.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid amount %q: must not be negative", s)
	}
	return amount, nil
}

// parseDate parses YYYY-MM-DD; an empty string yields now.
func parseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	parsed, err := time.ParseInLocation(dateLayout, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
	}
	return parsed, nil
}

func writeLine(w io.Writer, s string) {
	if _, err := fmt.Fprintln(w, s); err != nil {
		slog.Warn("Failed to write output", "error", err)
	}
}

// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/jarwise/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
// Zero values mean "no restriction".
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      model.TransactionType
	Category  string
	Limit     int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	UpdateTransactionCategory(ctx context.Context, id, category string) error
	GetTransactionCount(ctx context.Context) (int, error)

	// Jar operations
	SaveJar(ctx context.Context, jar model.Jar) error
	GetJars(ctx context.Context) ([]model.Jar, error)
	GetJar(ctx context.Context, name string) (*model.Jar, error)
	DeleteJar(ctx context.Context, name string) error

	// Learned category overrides
	LoadLearned(ctx context.Context) ([]model.LearnedOverride, error)
	SaveLearned(ctx context.Context, overrides []model.LearnedOverride) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

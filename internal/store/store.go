//go:generate mockgen -source=store.go -destination=mocks/mock_store.go

// Package store reads the dashboard's five record tables.
package store

import (
	"context"
	"errors"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// ErrNotFound is returned when the property row does not exist
var ErrNotFound = errors.New("property not found")

// Store is the read-only record-store collaborator. LatestOverride returns
// nil without error when the history is empty.
type Store interface {
	GetProperty(ctx context.Context) (domain.PropertyAssumptions, error)
	ListPartners(ctx context.Context) ([]domain.Partner, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListOverrides(ctx context.Context, kind domain.OverrideKind) ([]domain.ValueOverride, error)
	LatestOverride(ctx context.Context, kind domain.OverrideKind) (*domain.ValueOverride, error)
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*PostgresStore)(nil)
)

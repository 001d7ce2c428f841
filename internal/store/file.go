package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/propeq/equity-dashboard/internal/config"
	"github.com/propeq/equity-dashboard/internal/domain"
)

// FileStore serves a dataset loaded from a YAML file. It is a read-only
// snapshot; every call returns copies.
type FileStore struct {
	ds *domain.Dataset
}

// NewFileStore wraps an in-memory dataset. Rows without an id get a random one.
func NewFileStore(ds *domain.Dataset) *FileStore {
	if ds == nil {
		return &FileStore{}
	}
	cp := cloneDataset(ds)

	for i := range cp.Partners {
		if cp.Partners[i].ID == "" {
			cp.Partners[i].ID = uuid.NewString()
		}
	}
	for i := range cp.Transactions {
		if cp.Transactions[i].ID == "" {
			cp.Transactions[i].ID = uuid.NewString()
		}
	}
	for _, h := range [][]domain.ValueOverride{cp.PropertyValueHistory, cp.LoanBalanceHistory} {
		for i := range h {
			if h[i].ID == "" {
				h[i].ID = uuid.NewString()
			}
		}
	}
	return &FileStore{ds: cp}
}

// cloneDataset copies every table and the loan start date so the copy
// shares no memory with ds.
func cloneDataset(ds *domain.Dataset) *domain.Dataset {
	cp := *ds
	cp.Property = cloneProperty(ds.Property)
	cp.Partners = append([]domain.Partner(nil), ds.Partners...)
	cp.Transactions = append([]domain.Transaction(nil), ds.Transactions...)
	cp.PropertyValueHistory = append([]domain.ValueOverride(nil), ds.PropertyValueHistory...)
	cp.LoanBalanceHistory = append([]domain.ValueOverride(nil), ds.LoanBalanceHistory...)
	return &cp
}

func cloneProperty(p domain.PropertyAssumptions) domain.PropertyAssumptions {
	if p.LoanStartDate != nil {
		start := *p.LoanStartDate
		p.LoanStartDate = &start
	}
	return p
}

// LoadFileStore loads and validates a dataset file
func LoadFileStore(path string) (*FileStore, error) {
	ds, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return NewFileStore(ds), nil
}

// Dataset returns a deep copy of the underlying snapshot
func (s *FileStore) Dataset() (*domain.Dataset, error) {
	if s.ds == nil {
		return nil, ErrNotFound
	}
	return cloneDataset(s.ds), nil
}

func (s *FileStore) GetProperty(ctx context.Context) (domain.PropertyAssumptions, error) {
	if err := ctx.Err(); err != nil {
		return domain.PropertyAssumptions{}, err
	}
	if s.ds == nil {
		return domain.PropertyAssumptions{}, ErrNotFound
	}
	return cloneProperty(s.ds.Property), nil
}

func (s *FileStore) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.ds == nil {
		return nil, nil
	}
	return append([]domain.Partner(nil), s.ds.Partners...), nil
}

// ListTransactions returns transactions newest first
func (s *FileStore) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.ds == nil {
		return nil, nil
	}
	out := append([]domain.Transaction(nil), s.ds.Transactions...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// ListOverrides returns the history newest first
func (s *FileStore) ListOverrides(ctx context.Context, kind domain.OverrideKind) ([]domain.ValueOverride, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if kind.Table() == "" {
		return nil, fmt.Errorf("unknown override kind %q", kind)
	}
	if s.ds == nil {
		return nil, nil
	}
	return domain.SortNewestFirst(s.ds.History(kind)), nil
}

func (s *FileStore) LatestOverride(ctx context.Context, kind domain.OverrideKind) (*domain.ValueOverride, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if kind.Table() == "" {
		return nil, fmt.Errorf("unknown override kind %q", kind)
	}
	if s.ds == nil {
		return nil, nil
	}
	return domain.LatestOverride(s.ds.History(kind)), nil
}

package repository

import (
	"context"
	"sync"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
)

// AssetRepository is the asset collection consumed by the services.
// List returns assets in insertion order; Update is a whole-record replace.
type AssetRepository interface {
	List(ctx context.Context) ([]model.Asset, error)
	Get(ctx context.Context, id string) (model.Asset, error)
	Add(ctx context.Context, a model.Asset) error
	Update(ctx context.Context, a model.Asset) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// MemoryAssetRepository keeps the session's assets in an ordered slice.
// It is the default store: the portfolio dies with the process.
type MemoryAssetRepository struct {
	mu     sync.RWMutex
	assets []model.Asset
}

// NewMemoryAssetRepository creates an empty in-memory repository.
func NewMemoryAssetRepository() *MemoryAssetRepository {
	return &MemoryAssetRepository{}
}

func (r *MemoryAssetRepository) List(_ context.Context) ([]model.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Asset, len(r.assets))
	for i, a := range r.assets {
		out[i] = cloneAsset(a)
	}
	return out, nil
}

func (r *MemoryAssetRepository) Get(_ context.Context, id string) (model.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}
	return cloneAsset(r.assets[i]), nil
}

func (r *MemoryAssetRepository) Add(_ context.Context, a model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(a.ID) >= 0 {
		return apperrors.ErrDuplicateAsset
	}
	r.assets = append(r.assets, cloneAsset(a))
	return nil
}

func (r *MemoryAssetRepository) Update(_ context.Context, a model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(a.ID)
	if i < 0 {
		return apperrors.ErrAssetNotFound
	}
	r.assets[i] = cloneAsset(a)
	return nil
}

func (r *MemoryAssetRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return apperrors.ErrAssetNotFound
	}
	r.assets = append(r.assets[:i], r.assets[i+1:]...)
	return nil
}

func (r *MemoryAssetRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.assets), nil
}

// indexOf must be called with the lock held.
func (r *MemoryAssetRepository) indexOf(id string) int {
	for i := range r.assets {
		if r.assets[i].ID == id {
			return i
		}
	}
	return -1
}

// cloneAsset copies the optional fields so callers cannot mutate stored records.
func cloneAsset(a model.Asset) model.Asset {
	if a.MaturityDate != nil {
		d := *a.MaturityDate
		a.MaturityDate = &d
	}
	if a.InterestRate != nil {
		r := *a.InterestRate
		a.InterestRate = &r
	}
	return a
}

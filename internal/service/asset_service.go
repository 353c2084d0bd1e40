package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/request"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/csvio"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/repository"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/seed"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/validation"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/valuation"
)

// AssetService handles the asset table: create, replace, delete and search,
// plus CSV import/export. It applies the form-level defaults so that the
// repository and the engines always see fully populated records.
type AssetService struct {
	repo repository.AssetRepository
	now  func() time.Time
}

// NewAssetService creates a new AssetService backed by repo.
func NewAssetService(repo repository.AssetRepository) *AssetService {
	return &AssetService{
		repo: repo,
		now:  time.Now,
	}
}

// List returns the assets whose name or type label contains filter.Query,
// case-insensitively, in insertion order. An empty query returns everything.
func (s *AssetService) List(ctx context.Context, filter model.AssetFilter) ([]model.Asset, error) {
	assets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveAssets, err)
	}

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	if q == "" {
		return assets, nil
	}

	matched := make([]model.Asset, 0, len(assets))
	for _, a := range assets {
		if strings.Contains(strings.ToLower(a.Name), q) || strings.Contains(strings.ToLower(a.Type.Label()), q) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// Rows returns the filtered assets with their per-row valuation.
func (s *AssetService) Rows(ctx context.Context, filter model.AssetFilter) ([]model.AssetValuation, error) {
	assets, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return valuation.Rows(assets), nil
}

// Get retrieves a single asset.
// Returns apperrors.ErrAssetNotFound when the id is unknown.
func (s *AssetService) Get(ctx context.Context, id string) (model.Asset, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new asset built from a validated request.
//
// Parameters:
//   - ctx: request context
//   - req: validated AssetRequest
//
// Returns the stored asset with its fresh UUID. A blank currentPrice becomes
// investedAmount/quantity and a blank purchaseDate becomes today (UTC).
func (s *AssetService) Create(ctx context.Context, req request.AssetRequest) (model.Asset, error) {
	a, err := s.fromRequest(uuid.New().String(), req)
	if err != nil {
		return model.Asset{}, err
	}

	if err := s.repo.Add(ctx, a); err != nil {
		return model.Asset{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToStoreAsset, err)
	}
	return a, nil
}

// Replace overwrites the whole record identified by id.
// Fields omitted from req are defaulted exactly as in Create, not preserved.
func (s *AssetService) Replace(ctx context.Context, id string, req request.AssetRequest) (model.Asset, error) {
	a, err := s.fromRequest(id, req)
	if err != nil {
		return model.Asset{}, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return model.Asset{}, err
	}
	return a, nil
}

// Delete removes the asset. Returns apperrors.ErrAssetNotFound when the id is unknown.
func (s *AssetService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ExportCSV writes every asset to w.
func (s *AssetService) ExportCSV(ctx context.Context, w io.Writer) error {
	assets, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveAssets, err)
	}
	return csvio.Write(w, assets)
}

// ImportCSV appends the assets in r to the collection. Every imported asset
// gets a fresh id; ids in the file are ignored. Every row must pass the same
// rules as a create request before anything is stored, and a store failure
// removes the rows already added, so the import is all or nothing.
func (s *AssetService) ImportCSV(ctx context.Context, r io.Reader) ([]model.Asset, error) {
	rows, err := csvio.Read(r)
	if err != nil {
		return nil, err
	}

	for i, a := range rows {
		if err := validation.ValidateAsset(a); err != nil {
			// header is line 1
			return nil, fmt.Errorf("%w: line %d: %w", apperrors.ErrInvalidCSV, i+2, err)
		}
	}

	imported := make([]model.Asset, 0, len(rows))
	for _, a := range rows {
		a.ID = uuid.New().String()
		s.applyDefaults(&a, a.CurrentPrice != 0)
		if err := s.repo.Add(ctx, a); err != nil {
			err = fmt.Errorf("%w: %w", apperrors.ErrFailedToStoreAsset, err)
			return nil, errors.Join(err, s.rollback(ctx, imported))
		}
		imported = append(imported, a)
	}
	return imported, nil
}

// rollback deletes assets stored by an import that failed part way.
func (s *AssetService) rollback(ctx context.Context, assets []model.Asset) error {
	var errs []error
	for _, a := range assets {
		if err := s.repo.Delete(ctx, a.ID); err != nil {
			errs = append(errs, fmt.Errorf("failed to roll back asset %s: %w", a.ID, err))
		}
	}
	return errors.Join(errs...)
}

// SeedDemo loads the embedded demo portfolio when the collection is empty.
// Returns the number of assets added.
func (s *AssetService) SeedDemo(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveAssets, err)
	}
	if n > 0 {
		return 0, nil
	}

	demo, err := seed.Demo()
	if err != nil {
		return 0, err
	}
	for _, a := range demo {
		a.ID = uuid.New().String()
		if err := s.repo.Add(ctx, a); err != nil {
			return 0, fmt.Errorf("%w: %w", apperrors.ErrFailedToStoreAsset, err)
		}
	}
	return len(demo), nil
}

func (s *AssetService) fromRequest(id string, req request.AssetRequest) (model.Asset, error) {
	t, ok := model.ParseAssetType(strings.TrimSpace(req.Type))
	if !ok {
		return model.Asset{}, fmt.Errorf("invalid asset type: %s", req.Type)
	}

	a := model.Asset{
		ID:             id,
		Name:           strings.TrimSpace(req.Name),
		Type:           t,
		Quantity:       req.Quantity,
		InvestedAmount: req.InvestedAmount,
	}
	if req.CurrentPrice != nil {
		a.CurrentPrice = *req.CurrentPrice
	}
	if req.InterestRate != nil {
		rate := *req.InterestRate
		a.InterestRate = &rate
	}

	if strings.TrimSpace(req.PurchaseDate) != "" {
		d, err := time.Parse(dateLayout, req.PurchaseDate)
		if err != nil {
			return model.Asset{}, fmt.Errorf("invalid purchaseDate: %w", err)
		}
		a.PurchaseDate = d
	}
	if strings.TrimSpace(req.MaturityDate) != "" {
		d, err := time.Parse(dateLayout, req.MaturityDate)
		if err != nil {
			return model.Asset{}, fmt.Errorf("invalid maturityDate: %w", err)
		}
		a.MaturityDate = &d
	}

	s.applyDefaults(&a, req.CurrentPrice != nil)
	return a, nil
}

// applyDefaults fills a missing currentPrice and a blank purchaseDate.
func (s *AssetService) applyDefaults(a *model.Asset, hasPrice bool) {
	if !hasPrice && a.Quantity != 0 {
		a.CurrentPrice = a.InvestedAmount / a.Quantity
	}
	if a.PurchaseDate.IsZero() {
		a.PurchaseDate = truncateDay(s.now())
	}
}

const dateLayout = "2006-01-02"

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

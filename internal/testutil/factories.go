package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/repository"
)

// AssetBuilder provides a fluent interface for creating test assets.
//
// Example usage:
//
//	// Simple creation with defaults
//	asset := testutil.NewAsset().Build(t, repo)
//
//	// Customized asset, not stored
//	asset := testutil.NewAsset().
//	    WithType(model.AssetTypeEquity).
//	    WithoutInterestRate().
//	    Value()
type AssetBuilder struct {
	asset model.Asset
}

// NewAsset creates an AssetBuilder with sensible defaults: a treasury bond,
// 10 units, 1,000,000 invested, priced at 100,000 and a 16.5% coupon.
func NewAsset() *AssetBuilder {
	rate := 16.5
	return &AssetBuilder{asset: model.Asset{
		ID:             MakeID(),
		Name:           MakeAssetName("OT"),
		Type:           model.AssetTypeTreasuryBond,
		Quantity:       10,
		InvestedAmount: 1_000_000,
		CurrentPrice:   100_000,
		PurchaseDate:   Date(2024, time.January, 15),
		InterestRate:   &rate,
	}}
}

// WithID sets a custom ID.
func (b *AssetBuilder) WithID(id string) *AssetBuilder {
	b.asset.ID = id
	return b
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.asset.Name = name
	return b
}

func (b *AssetBuilder) WithType(t model.AssetType) *AssetBuilder {
	b.asset.Type = t
	return b
}

func (b *AssetBuilder) WithQuantity(q float64) *AssetBuilder {
	b.asset.Quantity = q
	return b
}

func (b *AssetBuilder) WithInvestedAmount(v float64) *AssetBuilder {
	b.asset.InvestedAmount = v
	return b
}

func (b *AssetBuilder) WithCurrentPrice(p float64) *AssetBuilder {
	b.asset.CurrentPrice = p
	return b
}

func (b *AssetBuilder) WithPurchaseDate(d time.Time) *AssetBuilder {
	b.asset.PurchaseDate = d
	return b
}

// WithMaturityDate sets the optional maturity date.
func (b *AssetBuilder) WithMaturityDate(d time.Time) *AssetBuilder {
	b.asset.MaturityDate = &d
	return b
}

// WithInterestRate sets the optional coupon; 0 is stored as a present zero.
func (b *AssetBuilder) WithInterestRate(r float64) *AssetBuilder {
	b.asset.InterestRate = &r
	return b
}

// WithoutInterestRate marks the coupon as absent.
func (b *AssetBuilder) WithoutInterestRate() *AssetBuilder {
	b.asset.InterestRate = nil
	return b
}

// Value returns the asset without storing it.
func (b *AssetBuilder) Value() model.Asset {
	return b.asset
}

// Build stores the asset in repo and returns it.
func (b *AssetBuilder) Build(t *testing.T, repo repository.AssetRepository) model.Asset {
	t.Helper()

	if err := repo.Add(context.Background(), b.asset); err != nil {
		t.Fatalf("Failed to add test asset: %v", err)
	}
	return b.asset
}

// DemoAssets returns the five-asset demo portfolio.
//
// Totals: invested 7,450,000; current value 8,130,000; monthly yield
// estimate 58,833.33; five distinct types.
func DemoAssets() []model.Asset {
	return []model.Asset{
		NewAsset().
			WithName("OT-TX 2028").
			WithType(model.AssetTypeTreasuryBond).
			WithQuantity(10).
			WithInvestedAmount(1_000_000).
			WithCurrentPrice(105_000).
			WithPurchaseDate(Date(2023, time.May, 10)).
			WithMaturityDate(Date(2028, time.May, 10)).
			WithInterestRate(16.5).
			Value(),
		NewAsset().
			WithName("Banco Caixa (BCGA)").
			WithType(model.AssetTypeEquity).
			WithQuantity(500).
			WithInvestedAmount(2_500_000).
			WithCurrentPrice(5_800).
			WithPurchaseDate(Date(2023, time.September, 12)).
			WithInterestRate(0).
			Value(),
		NewAsset().
			WithName("Sonangol 2027").
			WithType(model.AssetTypeCorporateBond).
			WithQuantity(20).
			WithInvestedAmount(2_000_000).
			WithCurrentPrice(102_000).
			WithPurchaseDate(Date(2023, time.August, 1)).
			WithMaturityDate(Date(2027, time.August, 1)).
			WithInterestRate(14).
			Value(),
		NewAsset().
			WithName("Fundo BFA Oportunidades").
			WithType(model.AssetTypeInvestmentFund).
			WithQuantity(1_500).
			WithInvestedAmount(1_500_000).
			WithCurrentPrice(1_100).
			WithPurchaseDate(Date(2024, time.January, 15)).
			WithInterestRate(12).
			Value(),
		NewAsset().
			WithName("BT-91 Dias").
			WithType(model.AssetTypeTreasuryBill).
			WithQuantity(50).
			WithInvestedAmount(450_000).
			WithCurrentPrice(9_800).
			WithPurchaseDate(Date(2024, time.March, 1)).
			WithMaturityDate(Date(2024, time.June, 1)).
			WithInterestRate(18).
			Value(),
	}
}

// SeedAssets stores every asset in repo, in order.
func SeedAssets(t *testing.T, repo repository.AssetRepository, assets []model.Asset) {
	t.Helper()

	for _, a := range assets {
		if err := repo.Add(context.Background(), a); err != nil {
			t.Fatalf("Failed to seed asset %q: %v", a.Name, err)
		}
	}
}

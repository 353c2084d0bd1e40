// Package seed loads the embedded demo portfolio.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
)

//go:embed demo.toml
var demoTOML []byte

type file struct {
	Assets []assetEntry `toml:"asset"`
}

type assetEntry struct {
	Name           string   `toml:"name"`
	Type           string   `toml:"type"`
	Quantity       float64  `toml:"quantity"`
	InvestedAmount float64  `toml:"invested_amount"`
	CurrentPrice   float64  `toml:"current_price"`
	PurchaseDate   string   `toml:"purchase_date"`
	MaturityDate   string   `toml:"maturity_date"`
	InterestRate   *float64 `toml:"interest_rate"`
}

// Demo returns the demo assets without IDs, in file order.
func Demo() ([]model.Asset, error) {
	return Parse(demoTOML)
}

// Parse decodes a seed document.
func Parse(data []byte) ([]model.Asset, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	assets := make([]model.Asset, 0, len(f.Assets))
	for i, e := range f.Assets {
		t, ok := model.ParseAssetType(e.Type)
		if !ok {
			return nil, fmt.Errorf("seed asset %d: unknown type %q", i, e.Type)
		}

		purchase, err := time.Parse("2006-01-02", e.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("seed asset %d: purchase_date: %w", i, err)
		}

		a := model.Asset{
			Name:           e.Name,
			Type:           t,
			Quantity:       e.Quantity,
			InvestedAmount: e.InvestedAmount,
			CurrentPrice:   e.CurrentPrice,
			PurchaseDate:   purchase,
			InterestRate:   e.InterestRate,
		}
		if e.MaturityDate != "" {
			d, err := time.Parse("2006-01-02", e.MaturityDate)
			if err != nil {
				return nil, fmt.Errorf("seed asset %d: maturity_date: %w", i, err)
			}
			a.MaturityDate = &d
		}
		assets = append(assets, a)
	}
	return assets, nil
}

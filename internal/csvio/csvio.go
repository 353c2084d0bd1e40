// Package csvio reads and writes the asset table as CSV.
package csvio

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
)

const dateLayout = "2006-01-02"

// assetRow is one CSV line. Optional columns are strings so that an empty
// cell stays distinguishable from zero.
type assetRow struct {
	ID             string  `csv:"id"`
	Name           string  `csv:"name"`
	Type           string  `csv:"type"`
	Quantity       float64 `csv:"quantity"`
	InvestedAmount float64 `csv:"investedAmount"`
	CurrentPrice   float64 `csv:"currentPrice"`
	PurchaseDate   string  `csv:"purchaseDate"`
	MaturityDate   string  `csv:"maturityDate"`
	InterestRate   string  `csv:"interestRate"`
}

// Write encodes assets, header first, in the given order.
func Write(w io.Writer, assets []model.Asset) error {
	rows := make([]*assetRow, 0, len(assets))
	for _, a := range assets {
		row := &assetRow{
			ID:             a.ID,
			Name:           a.Name,
			Type:           string(a.Type),
			Quantity:       a.Quantity,
			InvestedAmount: a.InvestedAmount,
			CurrentPrice:   a.CurrentPrice,
			PurchaseDate:   a.PurchaseDate.Format(dateLayout),
		}
		if a.MaturityDate != nil {
			row.MaturityDate = a.MaturityDate.Format(dateLayout)
		}
		if a.InterestRate != nil {
			row.InterestRate = strconv.FormatFloat(*a.InterestRate, 'f', -1, 64)
		}
		rows = append(rows, row)
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write asset CSV: %w", err)
	}
	return nil
}

// Read decodes assets from r. The id column is returned as-is; callers decide
// whether to keep it. type accepts a category code or its display label.
// A blank purchaseDate is left zero.
func Read(r io.Reader) ([]model.Asset, error) {
	var rows []*assetRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidCSV, err)
	}

	assets := make([]model.Asset, 0, len(rows))
	for i, row := range rows {
		a, err := row.toAsset()
		if err != nil {
			// header is line 1
			return nil, fmt.Errorf("%w: line %d: %w", apperrors.ErrInvalidCSV, i+2, err)
		}
		assets = append(assets, a)
	}
	return assets, nil
}

func (row *assetRow) toAsset() (model.Asset, error) {
	t, ok := model.ParseAssetType(strings.TrimSpace(row.Type))
	if !ok {
		return model.Asset{}, fmt.Errorf("unknown type %q", row.Type)
	}

	a := model.Asset{
		ID:             strings.TrimSpace(row.ID),
		Name:           strings.TrimSpace(row.Name),
		Type:           t,
		Quantity:       row.Quantity,
		InvestedAmount: row.InvestedAmount,
		CurrentPrice:   row.CurrentPrice,
	}
	if a.Name == "" {
		return model.Asset{}, fmt.Errorf("name is required")
	}

	if s := strings.TrimSpace(row.PurchaseDate); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return model.Asset{}, fmt.Errorf("purchaseDate: %w", err)
		}
		a.PurchaseDate = d
	}

	if s := strings.TrimSpace(row.MaturityDate); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return model.Asset{}, fmt.Errorf("maturityDate: %w", err)
		}
		a.MaturityDate = &d
	}

	if s := strings.TrimSpace(row.InterestRate); s != "" {
		r, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.Asset{}, fmt.Errorf("interestRate: %w", err)
		}
		a.InterestRate = &r
	}

	return a, nil
}

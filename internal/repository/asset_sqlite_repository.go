package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
)

const dateLayout = "2006-01-02"

// SQLiteAssetRepository stores assets in the asset table.
// Insertion order is kept by the autoincrement seq column.
type SQLiteAssetRepository struct {
	db *sql.DB
}

// NewSQLiteAssetRepository creates a new SQLiteAssetRepository with the provided database connection.
func NewSQLiteAssetRepository(db *sql.DB) *SQLiteAssetRepository {
	return &SQLiteAssetRepository{db: db}
}

const assetColumns = `id, name, type, quantity, invested_amount, current_price, purchase_date, maturity_date, interest_rate`

// List retrieves all assets ordered by insertion.
// Returns an empty slice if there are none.
func (s *SQLiteAssetRepository) List(ctx context.Context) ([]model.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM asset ORDER BY seq`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}

	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset table: %w", err)
	}

	return assets, nil
}

func (s *SQLiteAssetRepository) Get(ctx context.Context, id string) (model.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM asset WHERE id = ?`

	a, err := scanAsset(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}
	return a, err
}

func (s *SQLiteAssetRepository) Add(ctx context.Context, a model.Asset) error {
	query := `
		INSERT INTO asset (` + assetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		string(a.Type),
		a.Quantity,
		a.InvestedAmount,
		a.CurrentPrice,
		a.PurchaseDate.Format(dateLayout),
		nullDate(a),
		nullRate(a),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicateAsset
		}
		return fmt.Errorf("failed to insert asset: %w", err)
	}
	return nil
}

func (s *SQLiteAssetRepository) Update(ctx context.Context, a model.Asset) error {
	query := `
		UPDATE asset
		SET name = ?, type = ?, quantity = ?, invested_amount = ?, current_price = ?,
		    purchase_date = ?, maturity_date = ?, interest_rate = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		a.Name,
		string(a.Type),
		a.Quantity,
		a.InvestedAmount,
		a.CurrentPrice,
		a.PurchaseDate.Format(dateLayout),
		nullDate(a),
		nullRate(a),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return expectOneRow(res)
}

func (s *SQLiteAssetRepository) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM asset WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return expectOneRow(res)
}

func (s *SQLiteAssetRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM asset`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (model.Asset, error) {
	var (
		a            model.Asset
		typ          string
		purchaseStr  string
		maturityStr  sql.NullString
		interestRate sql.NullFloat64
	)

	err := row.Scan(
		&a.ID,
		&a.Name,
		&typ,
		&a.Quantity,
		&a.InvestedAmount,
		&a.CurrentPrice,
		&purchaseStr,
		&maturityStr,
		&interestRate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Asset{}, err
		}
		return model.Asset{}, fmt.Errorf("failed to scan asset: %w", err)
	}

	a.Type = model.AssetType(typ)

	a.PurchaseDate, err = ParseTime(purchaseStr)
	if err != nil {
		return model.Asset{}, err
	}

	if maturityStr.Valid {
		d, err := ParseTime(maturityStr.String)
		if err != nil {
			return model.Asset{}, err
		}
		a.MaturityDate = &d
	}

	if interestRate.Valid {
		r := interestRate.Float64
		a.InterestRate = &r
	}

	return a, nil
}

func nullDate(a model.Asset) sql.NullString {
	if a.MaturityDate == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: a.MaturityDate.Format(dateLayout), Valid: true}
}

func nullRate(a model.Asset) sql.NullFloat64 {
	if a.InterestRate == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *a.InterestRate, Valid: true}
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

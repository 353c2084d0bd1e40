package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/request"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
)

// DateLayout is the calendar date format accepted on the wire.
const DateLayout = "2006-01-02"

// ValidateAssetRequest validates an asset create or replace request.
//
// Required fields:
//   - name: non-blank, at most 100 characters
//   - type: a category code (TREASURY_BOND, ...) or its display label
//   - quantity: must be positive
//   - investedAmount: must be positive
//
// Optional fields (validated if provided):
//   - currentPrice: must not be negative
//   - purchaseDate, maturityDate: YYYY-MM-DD, maturity not before purchase
//   - interestRate: must not be negative
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateAssetRequest(req request.AssetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if _, ok := model.ParseAssetType(strings.TrimSpace(req.Type)); !ok {
		errors["type"] = fmt.Sprintf("invalid asset type: %s", req.Type)
	}

	if !finite(req.Quantity) || req.Quantity <= 0 {
		errors["quantity"] = "quantity must be positive"
	}

	if !finite(req.InvestedAmount) || req.InvestedAmount <= 0 {
		errors["investedAmount"] = "investedAmount must be positive"
	}

	// optionals

	if req.CurrentPrice != nil && (!finite(*req.CurrentPrice) || *req.CurrentPrice < 0) {
		errors["currentPrice"] = "currentPrice cannot be negative"
	}

	if req.InterestRate != nil && (!finite(*req.InterestRate) || *req.InterestRate < 0) {
		errors["interestRate"] = "interestRate cannot be negative"
	}

	var purchase, maturity time.Time
	var err error
	if strings.TrimSpace(req.PurchaseDate) != "" {
		purchase, err = time.Parse(DateLayout, req.PurchaseDate)
		if err != nil {
			errors["purchaseDate"] = err.Error()
		}
	}
	if strings.TrimSpace(req.MaturityDate) != "" {
		maturity, err = time.Parse(DateLayout, req.MaturityDate)
		if err != nil {
			errors["maturityDate"] = err.Error()
		}
	}
	if !purchase.IsZero() && !maturity.IsZero() && maturity.Before(purchase) {
		errors["maturityDate"] = "maturityDate cannot be before purchaseDate"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateAsset applies the asset request rules to a decoded record, for
// paths such as CSV import that never build an AssetRequest.
// A zero PurchaseDate means the date is still to be defaulted.
func ValidateAsset(a model.Asset) error {
	errors := make(map[string]string)

	if strings.TrimSpace(a.Name) == "" {
		errors["name"] = "name is required"
	} else if len(a.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if !a.Type.Valid() {
		errors["type"] = fmt.Sprintf("invalid asset type: %s", a.Type)
	}

	if !finite(a.Quantity) || a.Quantity <= 0 {
		errors["quantity"] = "quantity must be positive"
	}

	if !finite(a.InvestedAmount) || a.InvestedAmount <= 0 {
		errors["investedAmount"] = "investedAmount must be positive"
	}

	if !finite(a.CurrentPrice) || a.CurrentPrice < 0 {
		errors["currentPrice"] = "currentPrice cannot be negative"
	}

	if a.InterestRate != nil && (!finite(*a.InterestRate) || *a.InterestRate < 0) {
		errors["interestRate"] = "interestRate cannot be negative"
	}

	if a.MaturityDate != nil && !a.PurchaseDate.IsZero() && a.MaturityDate.Before(a.PurchaseDate) {
		errors["maturityDate"] = "maturityDate cannot be before purchaseDate"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

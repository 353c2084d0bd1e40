package model

import "time"

// AssetType is the instrument category of a holding.
type AssetType string

const (
	AssetTypeTreasuryBond   AssetType = "TREASURY_BOND"
	AssetTypeTreasuryBill   AssetType = "TREASURY_BILL"
	AssetTypeEquity         AssetType = "EQUITY"
	AssetTypeCorporateBond  AssetType = "CORPORATE_BOND"
	AssetTypeInvestmentFund AssetType = "INVESTMENT_FUND"
)

// AssetTypes lists every supported category in form order.
var AssetTypes = []AssetType{
	AssetTypeTreasuryBond,
	AssetTypeTreasuryBill,
	AssetTypeEquity,
	AssetTypeCorporateBond,
	AssetTypeInvestmentFund,
}

var assetTypeLabels = map[AssetType]string{
	AssetTypeTreasuryBond:   "Obrigações do Tesouro (OT)",
	AssetTypeTreasuryBill:   "Bilhetes do Tesouro (BT)",
	AssetTypeEquity:         "Ações",
	AssetTypeCorporateBond:  "Obrigações Corporativas",
	AssetTypeInvestmentFund: "Fundos de Investimento",
}

// Label returns the display label used by the asset table and the charts.
func (t AssetType) Label() string {
	if label, ok := assetTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid reports whether t is one of the known categories.
func (t AssetType) Valid() bool {
	_, ok := assetTypeLabels[t]
	return ok
}

// ParseAssetType accepts either the category code or its display label.
func ParseAssetType(s string) (AssetType, bool) {
	if t := AssetType(s); t.Valid() {
		return t, true
	}
	for t, label := range assetTypeLabels {
		if label == s {
			return t, true
		}
	}
	return "", false
}

// Asset is one purchased holding.
//
// MaturityDate and InterestRate are optional: nil means the field is absent
// (equities have neither), which is distinct from a zero coupon.
type Asset struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Type           AssetType  `json:"type"`
	Quantity       float64    `json:"quantity"`
	InvestedAmount float64    `json:"investedAmount"`
	CurrentPrice   float64    `json:"currentPrice"`
	PurchaseDate   time.Time  `json:"purchaseDate"`
	MaturityDate   *time.Time `json:"maturityDate,omitempty"`
	InterestRate   *float64   `json:"interestRate,omitempty"`
}

// CurrentValue is currentPrice * quantity.
func (a Asset) CurrentValue() float64 {
	return a.CurrentPrice * a.Quantity
}

// HasCoupon reports whether the asset carries a defined, non-zero annual rate.
func (a Asset) HasCoupon() bool {
	return a.InterestRate != nil && *a.InterestRate != 0
}

// AssetValuation is a single asset row with its derived figures.
type AssetValuation struct {
	Asset         Asset   `json:"asset"`
	CurrentValue  float64 `json:"currentValue"`
	Profit        float64 `json:"profit"`
	ProfitPercent float64 `json:"profitPercent"`
}

// AssetFilter narrows a listing by a free-text search term.
type AssetFilter struct {
	Query string
}

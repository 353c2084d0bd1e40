package request

// AssetRequest is the body of POST /api/assets and PUT /api/assets/{uuid}.
// Blank currentPrice and purchaseDate are defaulted by the asset service.
type AssetRequest struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Quantity       float64  `json:"quantity"`
	InvestedAmount float64  `json:"investedAmount"`
	CurrentPrice   *float64 `json:"currentPrice,omitempty"`
	PurchaseDate   string   `json:"purchaseDate,omitempty"`
	MaturityDate   string   `json:"maturityDate,omitempty"`
	InterestRate   *float64 `json:"interestRate,omitempty"`
}

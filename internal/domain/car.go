package domain

import "time"

// Car listing statuses.
const (
	CarStatusAvailable = "available"
	CarStatusSold      = "sold"
)

// Car is a dealer's listing. Keyed by (owner, created_at) so one dealer's
// inventory lives in a single partition.
type Car struct {
	Owner             string    `json:"owner" dynamodbav:"owner"`
	CompanyName       string    `json:"companyName" dynamodbav:"company_name"`
	Model             string    `json:"model" dynamodbav:"model"`
	Year              int       `json:"year" dynamodbav:"year"`
	Transmission      string    `json:"transmission" dynamodbav:"transmission"`
	Color             string    `json:"color" dynamodbav:"color"`
	Insurance         string    `json:"insurance" dynamodbav:"insurance"`
	PurchaseDate      string    `json:"purchaseDate" dynamodbav:"purchase_date"`
	OriginalPrice     float64   `json:"originalPrice" dynamodbav:"original_price"`
	Refurb            string    `json:"refurb" dynamodbav:"refurb"`
	InterestRate      float64   `json:"interestRate" dynamodbav:"interest_rate"`
	Fuel              string    `json:"fuel" dynamodbav:"fuel"`
	NegotiationBuffer float64   `json:"negotiationBuffer" dynamodbav:"negotiation_buffer"`
	ProfitMargin      float64   `json:"profitMargin" dynamodbav:"profit_margin"`
	CurrentPrice      float64   `json:"currentPrice" dynamodbav:"current_price"`
	SuggestedPrice    float64   `json:"suggestedPrice" dynamodbav:"suggested_price"`
	Description       string    `json:"description" dynamodbav:"description"`
	KmsDriven         int       `json:"kmsDriven" dynamodbav:"kms_driven"`
	PhotoURLs         []string  `json:"photoUrls" dynamodbav:"photo_urls"`
	VideoURL          string    `json:"videoUrl" dynamodbav:"video_url"`
	Status            string    `json:"status" dynamodbav:"status"`
	CreatedAt         time.Time `json:"createdAt" dynamodbav:"created_at"`
}

type CreateCarRequest struct {
	Model             string  `json:"model" validate:"required"`
	Year              int     `json:"year" validate:"required,gte=1900"`
	Transmission      string  `json:"transmission" validate:"required,oneof=manual auto"`
	Color             string  `json:"color" validate:"required"`
	Insurance         string  `json:"insurance" validate:"required"`
	PurchaseDate      string  `json:"purchaseDate" validate:"required"`
	OriginalPrice     float64 `json:"originalPrice" validate:"required,gt=0"`
	Refurb            string  `json:"refurb" validate:"required"`
	InterestRate      float64 `json:"interestRate" validate:"gte=0,lte=100"`
	Fuel              string  `json:"fuel" validate:"required,oneof=petrol diesel cng ev"`
	NegotiationBuffer float64 `json:"negotiationBuffer"`
	ProfitMargin      float64 `json:"profitMargin"`
	CurrentPrice      float64 `json:"currentPrice"`
	SuggestedPrice    float64 `json:"suggestedPrice"`
	Description       string  `json:"description" validate:"required"`
	KmsDriven         int     `json:"kmsDriven" validate:"required,gt=0"`
}

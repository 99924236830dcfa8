package domain

import "time"

// Account is a registered dealer. The company name is the canonical key:
// it is immutable once created and every other entity joins on it.
type Account struct {
	CompanyName   string    `json:"companyName" dynamodbav:"company_name"`
	ContactNumber string    `json:"contactNumber" dynamodbav:"contact_number"`
	OwnerName     string    `json:"ownerName" dynamodbav:"owner_name"`
	Location      string    `json:"location" dynamodbav:"location"`
	GSTIN         string    `json:"gstin" dynamodbav:"gstin"`
	PasswordHash  string    `json:"-" dynamodbav:"password_hash"`
	CreatedAt     time.Time `json:"createdAt" dynamodbav:"created_at"`
}

type RegisterAccountRequest struct {
	CompanyName   string `json:"companyName" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	OwnerName     string `json:"ownerName" validate:"required"`
	Location      string `json:"location" validate:"required"`
	GSTIN         string `json:"gstin" validate:"required"`
	Password      string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// AccountSummary is the public projection returned by directory searches.
type AccountSummary struct {
	CompanyName string `json:"companyName"`
	Name        string `json:"name"`
}

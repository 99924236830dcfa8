package domain

import "time"

// CustomerFeedback is a dealer-scoped record of a customer enquiry,
// either from a walk-in or an online lead.
type CustomerFeedback struct {
	ID                     string    `json:"id" dynamodbav:"id"`
	Owner                  string    `json:"owner" dynamodbav:"owner"`
	Name                   string    `json:"name" dynamodbav:"name"`
	Phone                  string    `json:"phone" dynamodbav:"phone"`
	CarInterested          string    `json:"carInterested" dynamodbav:"car_interested"`
	Budget                 float64   `json:"budget" dynamodbav:"budget"`
	TransmissionPreference string    `json:"transmissionPreference" dynamodbav:"transmission_preference"`
	Comments               string    `json:"comments" dynamodbav:"comments"`
	IsWalkIn               bool      `json:"isWalkIn" dynamodbav:"is_walk_in"`
	CreatedAt              time.Time `json:"createdAt" dynamodbav:"created_at"`
}

type CustomerFeedbackRequest struct {
	Name                   string  `json:"name" validate:"required"`
	Phone                  string  `json:"phone" validate:"required,len=10,numeric"`
	CarInterested          string  `json:"carInterested" validate:"required"`
	Budget                 float64 `json:"budget" validate:"required,gt=0"`
	TransmissionPreference string  `json:"transmissionPreference" validate:"required,oneof=automatic manual hybrid"`
	Comments               string  `json:"comments"`
	IsWalkIn               *bool   `json:"isWalkIn" validate:"required"`
}

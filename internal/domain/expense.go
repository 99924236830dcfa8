package domain

import "time"

// MonthlyExpense is one month's cost breakdown for a dealership.
type MonthlyExpense struct {
	ID               string    `json:"id" dynamodbav:"id"`
	CompanyName      string    `json:"companyName" dynamodbav:"company_name"`
	TotalCars        int       `json:"totalCars" dynamodbav:"total_cars"`
	RentLegalExpense float64   `json:"rentLegalExpense" dynamodbav:"rent_legal_expense"`
	LightBill        float64   `json:"lightBill" dynamodbav:"light_bill"`
	EmployeeCost     float64   `json:"employeeCost" dynamodbav:"employee_cost"`
	Others           float64   `json:"others" dynamodbav:"others"`
	MonthlyExpense   float64   `json:"monthlyExpense" dynamodbav:"monthly_expense"`
	DailyExpense     float64   `json:"dailyExpense" dynamodbav:"daily_expense"`
	PerCarExpense    float64   `json:"perCarExpense" dynamodbav:"per_car_expense"`
	CreatedAt        time.Time `json:"createdAt" dynamodbav:"created_at"`
}

type CreateExpenseRequest struct {
	TotalCars        int     `json:"totalCars" validate:"required,gt=0"`
	RentLegalExpense float64 `json:"rentLegalExpense" validate:"gte=0"`
	LightBill        float64 `json:"lightBill" validate:"gte=0"`
	EmployeeCost     float64 `json:"employeeCost" validate:"gte=0"`
	Others           float64 `json:"others" validate:"gte=0"`
	MonthlyExpense   float64 `json:"monthlyExpense" validate:"gte=0"`
	DailyExpense     float64 `json:"dailyExpense" validate:"gte=0"`
	PerCarExpense    float64 `json:"perCarExpense" validate:"gte=0"`
}

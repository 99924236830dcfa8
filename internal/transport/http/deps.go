package http

import (
	"github.com/jhalaktiwarii/dealerspot-backend/internal/infrastructure/dynamo"
	jwtinfra "github.com/jhalaktiwarii/dealerspot-backend/internal/infrastructure/jwt"
	s3infra "github.com/jhalaktiwarii/dealerspot-backend/internal/infrastructure/s3"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/infrastructure/sns"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/realtime"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	AccountRepo      *dynamo.AccountRepo
	FriendRepo       *dynamo.FriendRepo
	NotificationRepo *dynamo.NotificationRepo
	SettingsRepo     *dynamo.SettingsRepo
	CarRepo          *dynamo.CarRepo
	CustomerRepo     *dynamo.CustomerRepo
	ExpenseRepo      *dynamo.ExpenseRepo
	S3Store          *s3infra.Store
	SMSSender        sns.SMSSender
	JWTProvider      *jwtinfra.Provider
	Hub              *realtime.Hub
}

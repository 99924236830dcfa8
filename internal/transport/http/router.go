package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/application/account"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/application/car"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/application/customer"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/application/expense"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/application/friend"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/application/notification"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/config"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/transport/http/handler"
	appmiddleware "github.com/jhalaktiwarii/dealerspot-backend/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	// 5 requests/second, burst of 10 — applied to register and login.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	notifSvc := notification.NewService(deps.NotificationRepo, deps.SettingsRepo, deps.Hub)
	accountSvc := account.NewService(deps.AccountRepo, deps.JWTProvider, deps.SMSSender)
	friendSvc := friend.NewService(deps.FriendRepo, deps.AccountRepo, deps.CarRepo)
	carSvc := car.NewService(deps.CarRepo, deps.FriendRepo, notifSvc, deps.S3Store)
	customerSvc := customer.NewService(deps.CustomerRepo)
	expenseSvc := expense.NewService(deps.ExpenseRepo)

	healthH := handler.NewHealthHandler()
	accountH := handler.NewAccountHandler(accountSvc)
	friendH := handler.NewFriendHandler(friendSvc)
	notifH := handler.NewNotificationHandler(notifSvc)
	carH := handler.NewCarHandler(carSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	expenseH := handler.NewExpenseHandler(expenseSvc)
	wsH := handler.NewWSHandler(deps.Hub)

	r.Get("/ws", wsH.Serve)

	r.Route("/api", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/users/register", accountH.Register)
		r.With(sensitiveRL.Limit).Post("/users/login", accountH.Login)
		r.Get("/cars/all", carH.ListAll)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Route("/friends", func(r chi.Router) {
				r.Post("/", friendH.Add)
				r.Get("/", friendH.List)
				r.Delete("/{friendId}", friendH.Delete)
				r.Get("/search", friendH.Search)
				r.Get("/cars", friendH.ListCars)
			})

			r.Route("/cars", func(r chi.Router) {
				r.Post("/", carH.Create)
				r.Get("/my-cars", carH.ListMine)
				r.Put("/status", carH.UpdateStatus)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notifH.ListAll)
				r.Get("/unread", notifH.ListUnread)
				r.Get("/unseen", notifH.ListUnseen)
				r.Put("/{id}/read", notifH.MarkRead)
				r.Put("/{id}/seen", notifH.MarkSeen)
				r.Get("/settings", notifH.GetSettings)
				r.Put("/settings", notifH.UpdateSettings)
			})

			r.Post("/customer/feedback", customerH.Submit)
			r.Get("/customer/feedback", customerH.List)

			r.Post("/monthly-expenses", expenseH.Create)
			r.Get("/monthly-expenses", expenseH.List)
		})
	})

	return r
}

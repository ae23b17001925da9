package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/paperdeck-be/internal/api/handlers"
	"github.com/isdelr/paperdeck-be/internal/auth"
	"github.com/isdelr/paperdeck-be/internal/payments"
	"github.com/isdelr/paperdeck-be/internal/services"
)

// RouterDeps bundles everything the HTTP layer needs.
type RouterDeps struct {
	TokenManager   *auth.Manager
	UserService    services.UserServiceProvider
	PaperService   services.PaperServiceProvider
	EventService   services.EventServiceProvider
	Checkout       payments.CheckoutProvider
	FrontendOrigin string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for the frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(deps.UserService, deps.TokenManager)
	paperHandler := handlers.NewPaperHandler(deps.PaperService)
	billingHandler := handlers.NewBillingHandler(deps.UserService, deps.Checkout, deps.EventService)
	eventHandler := handlers.NewEventHandler(deps.EventService)

	r.Route("/api", func(r chi.Router) {
		// Public auth endpoints
		r.Post("/signup", userHandler.Signup)
		r.Post("/login", userHandler.Login)

		// Everything else requires a bearer token
		r.Group(func(r chi.Router) {
			r.Use(deps.TokenManager.Middleware())

			r.Get("/user", userHandler.GetMe)

			r.Get("/papers", paperHandler.GetAll)
			r.Post("/upload-paper", paperHandler.Upload)
			r.Route("/papers/{id}", func(r chi.Router) {
				r.Get("/", paperHandler.Get)
				r.Delete("/", paperHandler.Delete)
			})

			r.Get("/events", eventHandler.GetRecent)

			r.Post("/create-checkout-session", billingHandler.CreateCheckoutSession)
		})
	})

	return r
}

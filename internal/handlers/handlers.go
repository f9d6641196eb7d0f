package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rojahomes/rentmarket/docs"
	"github.com/rojahomes/rentmarket/internal/domain"
	authhandlers "github.com/rojahomes/rentmarket/internal/handlers/auth"
	balancehandlers "github.com/rojahomes/rentmarket/internal/handlers/balance"
	chathandlers "github.com/rojahomes/rentmarket/internal/handlers/chat"
	paymenthandlers "github.com/rojahomes/rentmarket/internal/handlers/payment"
	profilehandlers "github.com/rojahomes/rentmarket/internal/handlers/profile"
	propertyhandlers "github.com/rojahomes/rentmarket/internal/handlers/property"
	ratinghandlers "github.com/rojahomes/rentmarket/internal/handlers/rating"
	tenancyhandlers "github.com/rojahomes/rentmarket/internal/handlers/tenancy"
	"github.com/rojahomes/rentmarket/internal/metrics"
	"github.com/rojahomes/rentmarket/internal/service"
	"github.com/rojahomes/rentmarket/internal/ws"
	"github.com/rojahomes/rentmarket/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	SendVerificationCode(w http.ResponseWriter, r *http.Request)
	VerifyPhone(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	GetLandlordProfile(w http.ResponseWriter, r *http.Request)
	UpdateLandlordProfile(w http.ResponseWriter, r *http.Request)
	GetTenantProfile(w http.ResponseWriter, r *http.Request)
	UpdateTenantProfile(w http.ResponseWriter, r *http.Request)
	DeleteProfile(w http.ResponseWriter, r *http.Request)
	PublicLandlordProfile(w http.ResponseWriter, r *http.Request)
	ListLandlords(w http.ResponseWriter, r *http.Request)
	ListTenants(w http.ResponseWriter, r *http.Request)
	ListPricingTiers(w http.ResponseWriter, r *http.Request)
}

type PropertyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAccessible(w http.ResponseWriter, r *http.Request)
	CurrentProperty(w http.ResponseWriter, r *http.Request)
	ListPendingApproval(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Disapprove(w http.ResponseWriter, r *http.Request)
	AddImage(w http.ResponseWriter, r *http.Request)
	DeleteImage(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	ListLocations(w http.ResponseWriter, r *http.Request)
	CreateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)
	CreateLocation(w http.ResponseWriter, r *http.Request)
	DeleteLocation(w http.ResponseWriter, r *http.Request)
	RequestAccess(w http.ResponseWriter, r *http.Request)
	ListAccess(w http.ResponseWriter, r *http.Request)
	RevokeAccess(w http.ResponseWriter, r *http.Request)
	SetCurrentTenant(w http.ResponseWriter, r *http.Request)
	ClearCurrentTenant(w http.ResponseWriter, r *http.Request)
}

type TenancyHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	ListApplicationsForProperty(w http.ResponseWriter, r *http.Request)
	ListMyApplications(w http.ResponseWriter, r *http.Request)
	CreateLease(w http.ResponseWriter, r *http.Request)
	GetLease(w http.ResponseWriter, r *http.Request)
	SignLease(w http.ResponseWriter, r *http.Request)
	ListMyLeases(w http.ResponseWriter, r *http.Request)
	ListLeasesForProperty(w http.ResponseWriter, r *http.Request)
	ListMyRentPayments(w http.ResponseWriter, r *http.Request)
	ListRentPaymentsForProperty(w http.ResponseWriter, r *http.Request)
}

type ChatHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	Conversation(w http.ResponseWriter, r *http.Request)
	Chats(w http.ResponseWriter, r *http.Request)
}

type RatingHandler interface {
	CreateReview(w http.ResponseWriter, r *http.Request)
	ListReviews(w http.ResponseWriter, r *http.Request)
	CreateComment(w http.ResponseWriter, r *http.Request)
	ListComments(w http.ResponseWriter, r *http.Request)
	React(w http.ResponseWriter, r *http.Request)
	RateTenant(w http.ResponseWriter, r *http.Request)
	ListTenantRatings(w http.ResponseWriter, r *http.Request)
	PropertyRating(w http.ResponseWriter, r *http.Request)
	RecomputeRatings(w http.ResponseWriter, r *http.Request)
	ScoreSentiments(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	ChoosePlan(w http.ResponseWriter, r *http.Request)
	PayRent(w http.ResponseWriter, r *http.Request)
	PayLeaseDocument(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
	SubscriptionStatus(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	ProcessWithdrawal(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	ProfileHandler  ProfileHandler
	PropertyHandler PropertyHandler
	TenancyHandler  TenancyHandler
	ChatHandler     ChatHandler
	RatingHandler   RatingHandler
	PaymentHandler  PaymentHandler
	BalanceHandler  BalanceHandler

	hub *ws.Hub
}

func New(s *service.Services, hub *ws.Hub) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService, s.ProfileService),
		ProfileHandler:  profilehandlers.New(s.ProfileService, s.AuthService, s.BalanceService),
		PropertyHandler: propertyhandlers.New(s.PropertyService),
		TenancyHandler:  tenancyhandlers.New(s.TenancyService),
		ChatHandler:     chathandlers.New(s.ChatService),
		RatingHandler:   ratinghandlers.New(s.RatingService, s.CommentService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		BalanceHandler:  balancehandlers.New(s.BalanceService),
		hub:             hub,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/ws", h.hub)

	landlordOnly := auth.RequireUserType(domain.UserTypeLandlord)
	tenantOnly := auth.RequireUserType(domain.UserTypeTenant)
	adminOnly := auth.RequireUserType(domain.UserTypeAdmin)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)
		r.Post("/payments/webhook", h.PaymentHandler.Webhook)

		r.Get("/pricing-tiers", h.ProfileHandler.ListPricingTiers)
		r.Get("/house-types", h.PropertyHandler.ListTypes)
		r.Get("/locations", h.PropertyHandler.ListLocations)
		r.Get("/properties", h.PropertyHandler.List)
		r.Get("/properties/{id}", h.PropertyHandler.Get)
		r.Get("/landlords/{id}", h.ProfileHandler.PublicLandlordProfile)
		r.Get("/properties/{id}/reviews", h.RatingHandler.ListReviews)
		r.Get("/properties/{id}/comments", h.RatingHandler.ListComments)
		r.Get("/properties/{id}/rating", h.RatingHandler.PropertyRating)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Post("/auth/phone/send-code", h.AuthHandler.SendVerificationCode)
			r.Post("/auth/phone/verify", h.AuthHandler.VerifyPhone)
			r.Delete("/profile", h.ProfileHandler.DeleteProfile)

			r.Group(func(r chi.Router) {
				r.Use(landlordOnly)
				r.Get("/profile/landlord", h.ProfileHandler.GetLandlordProfile)
				r.Put("/profile/landlord", h.ProfileHandler.UpdateLandlordProfile)

				r.Post("/properties", h.PropertyHandler.Create)
				r.Get("/properties/mine", h.PropertyHandler.ListMine)
				r.Put("/properties/{id}", h.PropertyHandler.Update)
				r.Delete("/properties/{id}", h.PropertyHandler.Delete)
				r.Post("/properties/{id}/images", h.PropertyHandler.AddImage)
				r.Delete("/properties/{id}/images/{image_id}", h.PropertyHandler.DeleteImage)
				r.Get("/properties/{id}/access", h.PropertyHandler.ListAccess)
				r.Delete("/properties/{id}/access/{tenant_id}", h.PropertyHandler.RevokeAccess)
				r.Put("/properties/{id}/tenant", h.PropertyHandler.SetCurrentTenant)
				r.Delete("/properties/{id}/tenant", h.PropertyHandler.ClearCurrentTenant)
				r.Get("/properties/{id}/applications", h.TenancyHandler.ListApplicationsForProperty)
				r.Get("/properties/{id}/leases", h.TenancyHandler.ListLeasesForProperty)
				r.Get("/properties/{id}/rent-payments", h.TenancyHandler.ListRentPaymentsForProperty)

				r.Put("/applications/{id}/decision", h.TenancyHandler.Decide)
				r.Post("/leases", h.TenancyHandler.CreateLease)

				r.Post("/tenant-ratings", h.RatingHandler.RateTenant)

				r.Post("/payments/lease-document", h.PaymentHandler.PayLeaseDocument)

				r.Get("/balance", h.BalanceHandler.GetBalance)
				r.Post("/balance/withdraw", h.BalanceHandler.Withdraw)
				r.Get("/balance/withdrawals", h.BalanceHandler.GetWithdrawals)
			})

			r.Group(func(r chi.Router) {
				r.Use(tenantOnly)
				r.Get("/profile/tenant", h.ProfileHandler.GetTenantProfile)
				r.Put("/profile/tenant", h.ProfileHandler.UpdateTenantProfile)

				r.Get("/properties/accessible", h.PropertyHandler.ListAccessible)
				r.Get("/properties/current", h.PropertyHandler.CurrentProperty)
				r.Post("/properties/{id}/access", h.PropertyHandler.RequestAccess)

				r.Post("/applications", h.TenancyHandler.Apply)
				r.Get("/applications", h.TenancyHandler.ListMyApplications)
				r.Get("/leases", h.TenancyHandler.ListMyLeases)
				r.Post("/leases/{id}/sign", h.TenancyHandler.SignLease)
				r.Get("/rent-payments", h.TenancyHandler.ListMyRentPayments)

				r.Post("/reviews", h.RatingHandler.CreateReview)

				r.Post("/payments/subscription", h.PaymentHandler.ChoosePlan)
				r.Get("/payments/subscription/{reference}", h.PaymentHandler.SubscriptionStatus)
				r.Post("/payments/rent", h.PaymentHandler.PayRent)
			})

			r.Get("/leases/{id}", h.TenancyHandler.GetLease)

			r.Post("/comments", h.RatingHandler.CreateComment)
			r.Post("/comments/{id}/react", h.RatingHandler.React)
			r.Get("/tenants/{id}/ratings", h.RatingHandler.ListTenantRatings)

			r.Post("/messages", h.ChatHandler.Send)
			r.Get("/messages/{user_id}", h.ChatHandler.Conversation)
			r.Get("/chats", h.ChatHandler.Chats)

			r.Route("/admin", func(r chi.Router) {
				r.Use(adminOnly)
				r.Get("/properties/pending", h.PropertyHandler.ListPendingApproval)
				r.Post("/properties/{id}/approve", h.PropertyHandler.Approve)
				r.Post("/properties/{id}/disapprove", h.PropertyHandler.Disapprove)
				r.Get("/landlords", h.ProfileHandler.ListLandlords)
				r.Get("/tenants", h.ProfileHandler.ListTenants)
				r.Post("/house-types", h.PropertyHandler.CreateType)
				r.Delete("/house-types/{id}", h.PropertyHandler.DeleteType)
				r.Post("/locations", h.PropertyHandler.CreateLocation)
				r.Delete("/locations/{id}", h.PropertyHandler.DeleteLocation)
				r.Post("/ratings/recompute", h.RatingHandler.RecomputeRatings)
				r.Post("/comments/score", h.RatingHandler.ScoreSentiments)
				r.Put("/withdrawals/{id}", h.BalanceHandler.ProcessWithdrawal)
			})
		})
	})

	return r
}

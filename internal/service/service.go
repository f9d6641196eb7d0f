package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/ai"
	"github.com/rojahomes/rentmarket/internal/config"
	"github.com/rojahomes/rentmarket/internal/paynow"
	"github.com/rojahomes/rentmarket/internal/repo"
	"github.com/rojahomes/rentmarket/internal/service/authservice"
	"github.com/rojahomes/rentmarket/internal/service/balanceservice"
	"github.com/rojahomes/rentmarket/internal/service/chatservice"
	"github.com/rojahomes/rentmarket/internal/service/commentservice"
	"github.com/rojahomes/rentmarket/internal/service/paymentservice"
	"github.com/rojahomes/rentmarket/internal/service/profileservice"
	"github.com/rojahomes/rentmarket/internal/service/propertyservice"
	"github.com/rojahomes/rentmarket/internal/service/ratingservice"
	"github.com/rojahomes/rentmarket/internal/service/tenancyservice"
	"github.com/rojahomes/rentmarket/internal/sms"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
	"github.com/rojahomes/rentmarket/pkg/cache"
	"github.com/rojahomes/rentmarket/pkg/clients"
	"github.com/rojahomes/rentmarket/pkg/mailer"
)

type Services struct {
	AuthService     *authservice.Service
	ProfileService  *profileservice.Service
	PropertyService *propertyservice.Service
	TenancyService  *tenancyservice.Service
	ChatService     *chatservice.Service
	CommentService  *commentservice.Service
	RatingService   *ratingservice.Service
	PaymentService  *paymentservice.Service
	BalanceService  *balanceservice.Service
}

func New(ctx context.Context, cfg *config.Config, repos *repo.Repositories, notifier chatservice.Notifier) *Services {
	httpClient := clients.NewHTTPClient()
	gateway := paynow.New(cfg, httpClient)
	aiClient := ai.New(cfg, httpClient)
	smsClient := sms.New(cfg, httpClient)
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	redisCache, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		zap.L().Warn("redis unavailable, caching disabled", zap.Error(err))
		redisCache = nil
	}

	balanceService := balanceservice.New(repos.BalanceRepo, repos.WithdrawalRepo)
	authService := authservice.New(repos.UserRepo, repos.ProfileRepo, repos.BalanceRepo,
		&pkgauth.HashService{}, &pkgauth.JWTService{})
	profileService := profileservice.New(repos.ProfileRepo, repos.UserRepo, smsClient)
	ratingService := ratingservice.New(repos.RatingRepo, repos.ProfileRepo, repos.PropertyRepo, aiClient)
	propertyService := propertyservice.New(repos.PropertyRepo, repos.ProfileRepo, repos.UserRepo,
		repos.TenancyRepo, aiClient, redisCache, mail)
	tenancyService := tenancyservice.New(repos.TenancyRepo, repos.PropertyRepo, repos.UserRepo, mail)
	chatService := chatservice.New(repos.MessageRepo, repos.UserRepo, notifier)
	commentService := commentservice.New(repos.RatingRepo, repos.PropertyRepo)
	paymentService := paymentservice.New(repos.PaymentRepo, repos.TenancyRepo, repos.ProfileRepo,
		repos.UserRepo, gateway)

	return &Services{
		AuthService:     authService,
		ProfileService:  profileService,
		PropertyService: propertyService,
		TenancyService:  tenancyService,
		ChatService:     chatService,
		CommentService:  commentService,
		RatingService:   ratingService,
		PaymentService:  paymentService,
		BalanceService:  balanceService,
	}
}

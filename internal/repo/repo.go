package repo

import (
	"github.com/rojahomes/rentmarket/internal/pg"
	balancerepo "github.com/rojahomes/rentmarket/internal/repo/balance-repo"
	messagerepo "github.com/rojahomes/rentmarket/internal/repo/message-repo"
	paymentrepo "github.com/rojahomes/rentmarket/internal/repo/payment-repo"
	profilerepo "github.com/rojahomes/rentmarket/internal/repo/profile-repo"
	propertyrepo "github.com/rojahomes/rentmarket/internal/repo/property-repo"
	ratingrepo "github.com/rojahomes/rentmarket/internal/repo/rating-repo"
	tenancyrepo "github.com/rojahomes/rentmarket/internal/repo/tenancy-repo"
	userrepo "github.com/rojahomes/rentmarket/internal/repo/user-repo"
	withdrawalrepo "github.com/rojahomes/rentmarket/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	ProfileRepo    *profilerepo.Repository
	PropertyRepo   *propertyrepo.Repository
	TenancyRepo    *tenancyrepo.Repository
	MessageRepo    *messagerepo.Repository
	RatingRepo     *ratingrepo.Repository
	PaymentRepo    *paymentrepo.Repository
	BalanceRepo    *balancerepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		ProfileRepo:    profilerepo.New(conn),
		PropertyRepo:   propertyrepo.New(conn, txManager),
		TenancyRepo:    tenancyrepo.New(conn, txManager),
		MessageRepo:    messagerepo.New(conn),
		RatingRepo:     ratingrepo.New(conn),
		PaymentRepo:    paymentrepo.New(conn),
		BalanceRepo:    balancerepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
	}
}

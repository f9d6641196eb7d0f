package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/pkg/auth"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownUserType    = errors.New("unknown user type")
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}

type ProfileRepo interface {
	CreateLandlordProfile(ctx context.Context, userID int) error
	CreateTenantProfile(ctx context.Context, userID int) error
}

type BalanceRepo interface {
	Create(ctx context.Context, landlordID int) (*domain.LandlordBalance, error)
}

type Service struct {
	userRepo    Repo
	profileRepo ProfileRepo
	balanceRepo BalanceRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo Repo, profileRepo ProfileRepo, balanceRepo BalanceRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		balanceRepo: balanceRepo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates the account together with its role profile. Landlords
// also get a zero balance so rent credits never hit a missing row.
func (s *Service) Register(ctx context.Context, email, password, firstName, lastName, userType string) (*domain.User, error) {
	if userType != domain.UserTypeLandlord && userType != domain.UserTypeTenant {
		return nil, ErrUnknownUserType
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    firstName,
		LastName:     lastName,
		UserType:     userType,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	switch userType {
	case domain.UserTypeLandlord:
		if err := s.profileRepo.CreateLandlordProfile(ctx, newUser.ID); err != nil {
			return nil, err
		}
		if _, err := s.balanceRepo.Create(ctx, newUser.ID); err != nil {
			zap.L().Error("can't create balance: ", zap.Error(err))
			return nil, err
		}
	case domain.UserTypeTenant:
		if err := s.profileRepo.CreateTenantProfile(ctx, newUser.ID); err != nil {
			return nil, err
		}
	}

	zap.L().Info("user successfully registered", zap.String("email", email), zap.String("user_type", userType))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// DeleteUser removes the account and everything hanging off it.
func (s *Service) DeleteUser(ctx context.Context, userID int) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		zap.L().Error("can't delete user: ", zap.Error(err))
		return err
	}
	zap.L().Info("user deleted", zap.Int("user_id", userID))
	return nil
}

func (s *Service) GenerateToken(userID int, userType string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, userType, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

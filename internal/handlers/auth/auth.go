package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/dto"
	"github.com/rojahomes/rentmarket/internal/service/authservice"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
	"github.com/rojahomes/rentmarket/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, email, password, firstName, lastName, userType string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(userID int, userType string) (string, error)
}

type VerificationService interface {
	SendVerificationCode(ctx context.Context, userID int, userType string) error
	VerifyPhone(ctx context.Context, userID int, userType, code string) error
}

type AuthHandler struct {
	authService         Service
	verificationService VerificationService
}

func New(authService Service, verificationService VerificationService) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		verificationService: verificationService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create a landlord or tenant account; the matching profile is created alongside
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName, req.UserType)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		case errors.Is(err, authservice.ErrUnknownUserType):
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown user type")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.UserType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "User successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate
//	@Description	Log in with email and password and receive a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.UserType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token:    token,
		UserType: user.UserType,
	})
}

// SendVerificationCode godoc
//
//	@Summary		Send a phone verification code
//	@Description	Text a 6-digit code to the phone number on the caller's profile; the code expires after 5 minutes
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"No phone number on profile"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/phone/send-code [post]
func (h *AuthHandler) SendVerificationCode(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	userType := r.Context().Value(pkgauth.UserTypeKey).(string)

	if err := h.verificationService.SendVerificationCode(r.Context(), userID, userType); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Verification code sent"})
}

// VerifyPhone godoc
//
//	@Summary		Verify the phone number
//	@Description	Check the submitted code against the latest issued one and mark the phone verified
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPhoneRequestDTO	true	"Verification payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Code mismatch or expired"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/auth/phone/verify [post]
func (h *AuthHandler) VerifyPhone(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	userType := r.Context().Value(pkgauth.UserTypeKey).(string)

	var req dto.VerifyPhoneRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.verificationService.VerifyPhone(r.Context(), userID, userType, req.Code); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Phone number verified"})
}

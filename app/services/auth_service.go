package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/shashiranjanraj/freshbasket/app/jobs"
	"github.com/shashiranjanraj/freshbasket/app/models"
	"github.com/shashiranjanraj/freshbasket/pkg/auth"
	"github.com/shashiranjanraj/freshbasket/pkg/cache"
	"github.com/shashiranjanraj/freshbasket/pkg/logger"
	"github.com/shashiranjanraj/freshbasket/pkg/queue"
)

const otpTTL = 10 * time.Minute

// RegisterInput is the signup payload.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput is the credential payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the issued tokens.
type LoginResult struct {
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService handles registration, login, and OTP email verification.
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with a bcrypt password hash. Duplicate emails are
// rejected as a conflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	_, exists, err := s.users.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("lookup email: %w", err)}
	}
	if exists {
		return nil, ErrEmailTaken()
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("hash password: %w", err)}
	}

	user := models.User{
		Name:             in.Name,
		Email:            in.Email,
		PasswordHash:     hash,
		RegistrationDate: time.Now().Format("2006-01-02"),
	}
	if err := s.users.CreateUser(ctx, &user); err != nil {
		return nil, &InternalError{Err: fmt.Errorf("create user: %w", err)}
	}
	return &user, nil
}

// Login verifies the password and issues access + refresh tokens.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, found, err := s.users.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("lookup email: %w", err)}
	}
	if !found {
		return nil, &NotFoundError{Entity: "user", ID: 0}
	}
	if !auth.CheckPassword(user.PasswordHash, in.Password) {
		return nil, &ConflictError{Reason: "invalid_credentials", Message: "Invalid credentials"}
	}

	access, err := auth.GenerateToken(user.UserID, user.Email)
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("sign access token: %w", err)}
	}
	refresh, err := auth.GenerateRefreshToken(user.UserID, user.Email)
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("sign refresh token: %w", err)}
	}

	return &LoginResult{
		UserID:       user.UserID,
		Name:         user.Name,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// SendOTP generates a 6-digit code, stores it in Redis for 10 minutes, and
// queues the delivery email.
func (s *AuthService) SendOTP(ctx context.Context, email string) error {
	_, found, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return &InternalError{Err: fmt.Errorf("lookup email: %w", err)}
	}
	if !found {
		return &NotFoundError{Entity: "user", ID: 0}
	}

	code, err := generateOTP()
	if err != nil {
		return &InternalError{Err: fmt.Errorf("generate otp: %w", err)}
	}

	if err := cache.Set(ctx, otpKey(email), code, otpTTL); err != nil {
		return &InternalError{Err: fmt.Errorf("store otp: %w", err)}
	}

	if err := queue.Dispatch(&jobs.OTPEmailJob{Email: email, Code: code}); err != nil {
		return &InternalError{Err: fmt.Errorf("dispatch otp email: %w", err)}
	}

	logger.WithCtx(ctx).Info("otp sent", "email", email)
	return nil
}

// ResendOTP issues a fresh code, replacing any outstanding one.
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	cache.Del(ctx, otpKey(email))
	return s.SendOTP(ctx, email)
}

// VerifyOTP checks the code, marks the user verified, and consumes the code.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	var stored string
	if !cache.Get(ctx, otpKey(email), &stored) {
		return &ConflictError{Reason: "otp_expired", Message: "OTP expired or not requested"}
	}
	if stored != code {
		return &ConflictError{Reason: "otp_mismatch", Message: "Invalid OTP"}
	}

	user, found, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return &InternalError{Err: fmt.Errorf("lookup email: %w", err)}
	}
	if !found {
		return &NotFoundError{Entity: "user", ID: 0}
	}

	if err := s.users.MarkVerified(ctx, user.UserID); err != nil {
		return &InternalError{Err: fmt.Errorf("mark verified: %w", err)}
	}

	cache.Del(ctx, otpKey(email))
	return nil
}

func otpKey(email string) string {
	return "otp:" + email
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

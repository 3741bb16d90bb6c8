package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/freshbasket/app/services"
	"github.com/shashiranjanraj/freshbasket/pkg/bind"
	"github.com/shashiranjanraj/freshbasket/pkg/response"
)

// AuthController exposes registration, login, and OTP verification.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles POST /api/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "invalid_body", err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.auth.Register(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, map[string]interface{}{
		"message": "User registered successfully",
		"user_id": user.UserID,
	})
}

// Login handles POST /api/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "invalid_body", err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := c.auth.Login(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, result)
}

type otpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"otp" validate:"required,digits=6"`
}

// SendOTP handles POST /api/send-otp.
func (c *AuthController) SendOTP(w http.ResponseWriter, r *http.Request) {
	var in otpRequest
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "invalid_body", err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.auth.SendOTP(r.Context(), in.Email); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "OTP sent"})
}

// ResendOTP handles POST /api/resend-otp.
func (c *AuthController) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var in otpRequest
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "invalid_body", err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.auth.ResendOTP(r.Context(), in.Email); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "OTP resent"})
}

// VerifyOTP handles POST /api/verify-otp.
func (c *AuthController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var in verifyOTPRequest
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "invalid_body", err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.auth.VerifyOTP(r.Context(), in.Email, in.Code); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "Email verified"})
}

package dto

import (
	"agrirent/infras/jwt"
	"agrirent/internal/domains/session/model"
	userModel "agrirent/internal/domains/user/model"
	userDto "agrirent/internal/domains/user/model/dto"
)

type RequestOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,mobile"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,mobile"`
	OTP         string `json:"otp"         validate:"required,numeric,len=6"`
}

type RegisterRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,mobile"`
	FullName    string `json:"fullName"    validate:"required,min=2,max=100"`
	Email       string `json:"email"       validate:"omitempty,email"`
	Role        string `json:"role"        validate:"required,oneof=FARMER OWNER"`
	Address     string `json:"address"     validate:"omitempty,max=255"`
	City        string `json:"city"        validate:"omitempty,max=100"`
	State       string `json:"state"       validate:"omitempty,max=100"`
	Pincode     string `json:"pincode"     validate:"omitempty,numeric,len=6"`
}

type LanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en hi mr"`
}

type RegisterResponse struct {
	Message string               `json:"message"`
	User    userDto.UserResponse `json:"user"`
}

func (r *RegisterResponse) FromModel(message string, user userModel.User) {
	r.Message = message
	r.User.FromModel(user)
}

type SessionResponse struct {
	User     userDto.UserResponse `json:"user"`
	Language string               `json:"language"`
}

func (r *SessionResponse) FromModel(s model.Session) {
	r.User.FromModel(s.User)
	r.Language = s.Language
}

type LoginResponse struct {
	jwt.Token
	SessionResponse
}

type TranslationsResponse struct {
	Language  string            `json:"language"`
	Languages []string          `json:"languages"`
	Messages  map[string]string `json:"messages"`
}

func (r *TranslationsResponse) FromLanguage(lang string) {
	r.Language = lang
	r.Languages = model.Languages
	r.Messages = model.Messages(lang)
}

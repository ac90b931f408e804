package dto

import (
	"agrirent/internal/domains/user/model"
	"agrirent/shared/constant"
)

type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Address  string `json:"address"  validate:"omitempty,max=255"`
	City     string `json:"city"     validate:"omitempty,max=100"`
	State    string `json:"state"    validate:"omitempty,max=100"`
	Pincode  string `json:"pincode"  validate:"omitempty,numeric,len=6"`
}

type UserResponse struct {
	ID           string `json:"id"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	FullName     string `json:"fullName"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Pincode      string `json:"pincode,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	IsActive     bool   `json:"isActive"`
	IsBlocked    bool   `json:"isBlocked"`
	Blockable    bool   `json:"blockable"`
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.PhoneNumber = m.PhoneNumber
	r.FullName = m.FullName
	r.Email = m.Email
	r.Role = m.Role
	r.Address = m.Address
	r.City = m.City
	r.State = m.State
	r.Pincode = m.Pincode
	r.ProfileImage = m.ProfileImage
	r.IsActive = m.IsActive
	r.IsBlocked = m.IsBlocked
	r.Blockable = m.Role != constant.RoleAdmin
}

// UsersRequest filters the admin user list.
type UsersRequest struct {
	Role    string `json:"role"    validate:"omitempty,oneof=FARMER OWNER ADMIN"`
	Blocked *bool  `json:"blocked"`
}

func (r UsersRequest) Match(m model.User) bool {
	if r.Role != "" && m.Role != r.Role {
		return false
	}

	if r.Blocked != nil && m.IsBlocked != *r.Blocked {
		return false
	}

	return true
}

type GetUsersResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

func (r *GetUsersResponse) FromModels(models []model.User, filter UsersRequest) {
	r.Users = make([]UserResponse, 0, len(models))

	for _, m := range models {
		if !filter.Match(m) {
			continue
		}

		var user UserResponse
		user.FromModel(m)
		r.Users = append(r.Users, user)
	}

	r.Total = len(r.Users)
}

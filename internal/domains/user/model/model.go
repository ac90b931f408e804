package model

const EntityName = "user"

type User struct {
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
	CreatedAt    string `json:"createdAt,omitempty"`
}

// WithoutContact hides the phone number and the whole address from a booking peer.
func (u User) WithoutContact() User {
	u.PhoneNumber = ""
	u.Address = ""
	u.City = ""
	u.State = ""
	u.Pincode = ""

	return u
}

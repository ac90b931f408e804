package model

import userModel "agrirent/internal/domains/user/model"

type EquipmentRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type Review struct {
	ID        string          `json:"id"`
	Equipment *EquipmentRef   `json:"equipment,omitempty"`
	Farmer    *userModel.User `json:"farmer,omitempty"`
	Rating    int             `json:"rating"`
	Comment   string          `json:"comment"`
	CreatedAt string          `json:"createdAt,omitempty"`
}

package model

import userModel "agrirent/internal/domains/user/model"

const EntityName = "message"

// Message is one append-only chat line between the farmer and the owner of a booking.
type Message struct {
	ID        string          `json:"id"`
	BookingID string          `json:"bookingId"`
	Sender    *userModel.User `json:"sender,omitempty"`
	Receiver  *userModel.User `json:"receiver,omitempty"`
	Content   string          `json:"content"`
	CreatedAt string          `json:"createdAt,omitempty"`
	IsRead    bool            `json:"isRead"`
}

func (m Message) SentBy(userID string) bool {
	return m.Sender != nil && m.Sender.ID == userID
}

package dto

import (
	bookingModel "agrirent/internal/domains/booking/model"
	bookingDto "agrirent/internal/domains/booking/model/dto"
	"agrirent/internal/domains/lifecycle"
	"agrirent/internal/domains/message/model"
)

type SendMessageRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	Content   string `json:"content"   validate:"required,max=2000"`
}

type MessageResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"bookingId"`
	SenderID   string `json:"senderId,omitempty"`
	SenderName string `json:"senderName,omitempty"`
	Mine       bool   `json:"mine"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt,omitempty"`
	IsRead     bool   `json:"isRead"`
}

// FromModel fills the response as seen by userID.
func (r *MessageResponse) FromModel(m model.Message, userID string) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.Mine = m.SentBy(userID)
	r.Content = m.Content
	r.CreatedAt = m.CreatedAt
	r.IsRead = m.IsRead

	if m.Sender != nil {
		r.SenderID = m.Sender.ID
		r.SenderName = m.Sender.FullName
	}
}

func FromModels(models []model.Message, userID string) []MessageResponse {
	res := make([]MessageResponse, 0, len(models))
	for _, m := range models {
		var msg MessageResponse
		msg.FromModel(m, userID)
		res = append(res, msg)
	}

	return res
}

// ThreadResponse is the chat of a booking. Peer contact details are only filled
// once the booking is confirmed.
type ThreadResponse struct {
	BookingID      string                    `json:"bookingId"`
	Status         lifecycle.Status          `json:"status"`
	Peer           *bookingDto.PartyResponse `json:"peer,omitempty"`
	PeerRole       string                    `json:"peerRole,omitempty"`
	ContactVisible bool                      `json:"contactVisible"`
	Messages       []MessageResponse         `json:"messages"`
}

func (r *ThreadResponse) FromModel(booking bookingModel.Booking, messages []model.Message, userID string) {
	r.BookingID = booking.ID
	r.Status = booking.Status
	r.ContactVisible = booking.Status.ContactVisible()
	r.Messages = FromModels(messages, userID)

	if peer := booking.Peer(userID); peer != nil {
		r.Peer = bookingDto.NewPartyResponse(peer, r.ContactVisible)
		r.PeerRole = peer.Role
	}
}

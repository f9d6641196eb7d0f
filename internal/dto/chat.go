package dto

type SendMessageRequestDTO struct {
	ReceiverID int    `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required,max=2000"`
}

type MessageResponseDTO struct {
	ID         int    `json:"id"`
	SenderID   int    `json:"sender_id"`
	ReceiverID int    `json:"receiver_id"`
	Content    string `json:"content"`
	IsRead     bool   `json:"is_read"`
	SentAt     string `json:"sent_at" example:"2026-03-05T14:22:01Z"`
}

type ChatResponseDTO struct {
	PartnerID   int    `json:"partner_id"`
	PartnerName string `json:"partner_name"`
	LastMessage string `json:"last_message"`
	LastSentAt  string `json:"last_sent_at"`
	UnreadCount int    `json:"unread_count"`
}

package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/dto"
	"github.com/rojahomes/rentmarket/internal/service/chatservice"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
	"github.com/rojahomes/rentmarket/pkg/utils"
)

type Service interface {
	Send(ctx context.Context, senderID, receiverID int, content string) (*domain.Message, error)
	Conversation(ctx context.Context, userID, otherID int) ([]domain.Message, error)
	Chats(ctx context.Context, userID int) ([]domain.Chat, error)
}

type ChatHandler struct {
	chatService Service
}

func New(chatService Service) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send godoc
//
//	@Summary		Send a message
//	@Description	Persists the message and pushes it to the receiver's live connection if one is open
//	@Tags			Chat
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SendMessageRequestDTO	true	"Receiver and content"
//	@Success		201		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Receiver not found"
//	@Router			/api/messages [post]
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.SendMessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := h.chatService.Send(r.Context(), userID, req.ReceiverID, req.Content)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusCreated, toMessageDTO(message))
	case errors.Is(err, chatservice.ErrEmptyMessage):
		utils.RespondWithError(w, http.StatusBadRequest, "Message content is empty")
	case errors.Is(err, chatservice.ErrUnknownReceiver):
		utils.RespondWithError(w, http.StatusNotFound, "Receiver not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Conversation godoc
//
//	@Summary		Get a conversation
//	@Description	Full message history with one user; their unread messages are marked read
//	@Tags			Chat
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	path		int	true	"Other user ID"
//	@Success		200		{array}		dto.MessageResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/messages/{user_id} [get]
func (h *ChatHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	otherID, err := strconv.Atoi(chi.URLParam(r, "user_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	messages, err := h.chatService.Conversation(r.Context(), userID, otherID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.MessageResponseDTO, 0, len(messages))
	for i := range messages {
		resp = append(resp, toMessageDTO(&messages[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Chats godoc
//
//	@Summary		List chats
//	@Description	One entry per counterpart with the last message and unread count
//	@Tags			Chat
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ChatResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/chats [get]
func (h *ChatHandler) Chats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	chats, err := h.chatService.Chats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.ChatResponseDTO, 0, len(chats))
	for _, c := range chats {
		resp = append(resp, dto.ChatResponseDTO{
			PartnerID:   c.OtherUser.ID,
			PartnerName: c.OtherUser.FullName(),
			LastMessage: c.LastMessage.Content,
			LastSentAt:  c.LastMessage.SentAt.Format(time.RFC3339),
			UnreadCount: c.UnreadCount,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toMessageDTO(m *domain.Message) dto.MessageResponseDTO {
	return dto.MessageResponseDTO{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		SentAt:     m.SentAt.Format(time.RFC3339),
	}
}

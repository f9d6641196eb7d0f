package chatservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
)

var (
	ErrEmptyMessage    = errors.New("message content is empty")
	ErrUnknownReceiver = errors.New("receiver does not exist")
)

type Repo interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListConversation(ctx context.Context, userID, otherID int) ([]domain.Message, error)
	ListChats(ctx context.Context, userID int) ([]domain.Chat, error)
	MarkRead(ctx context.Context, userID, otherID int) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// Notifier pushes a delivered message to the receiver's live connection,
// if any.
type Notifier interface {
	Push(userID int, message *domain.Message)
}

type Service struct {
	messageRepo Repo
	userRepo    UserRepo
	notifier    Notifier
}

func New(messageRepo Repo, userRepo UserRepo, notifier Notifier) *Service {
	return &Service{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

func (s *Service) Send(ctx context.Context, senderID, receiverID int, content string) (*domain.Message, error) {
	if content == "" {
		return nil, ErrEmptyMessage
	}

	receiver, err := s.userRepo.FindByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrUnknownReceiver
	}

	message, err := s.messageRepo.Create(ctx, &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Push(receiverID, message)
	}
	return message, nil
}

// Conversation returns the full history with the other user and marks
// their messages as read.
func (s *Service) Conversation(ctx context.Context, userID, otherID int) ([]domain.Message, error) {
	messages, err := s.messageRepo.ListConversation(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	if err := s.messageRepo.MarkRead(ctx, userID, otherID); err != nil {
		zap.L().Warn("can't mark conversation read", zap.Int("user_id", userID), zap.Error(err))
	}
	return messages, nil
}

func (s *Service) Chats(ctx context.Context, userID int) ([]domain.Chat, error) {
	return s.messageRepo.ListChats(ctx, userID)
}

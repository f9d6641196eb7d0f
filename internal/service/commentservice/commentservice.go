package commentservice

import (
	"context"
	"errors"

	"github.com/rojahomes/rentmarket/internal/domain"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrReplyToReply    = errors.New("replies can only be one level deep")
	ErrWrongProperty   = errors.New("parent comment belongs to another property")
	ErrBadReaction     = errors.New("reaction must be like or dislike")
)

type Repo interface {
	CreateComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetComment(ctx context.Context, id int) (*domain.Comment, error)
	ListCommentsByProperty(ctx context.Context, propertyID int) ([]domain.Comment, error)
	React(ctx context.Context, commentID, userID int, reaction string) error
	CountReactions(ctx context.Context, commentID int) (likes, dislikes int, err error)
}

type PropertyRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Property, error)
}

type Service struct {
	commentRepo  Repo
	propertyRepo PropertyRepo
}

func New(commentRepo Repo, propertyRepo PropertyRepo) *Service {
	return &Service{
		commentRepo:  commentRepo,
		propertyRepo: propertyRepo,
	}
}

// Create posts a comment or a reply. A reply cannot itself be replied
// to, threads are a single level deep.
func (s *Service) Create(ctx context.Context, userID, propertyID int, parentID *int, content string) (*domain.Comment, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.New("property not found")
	}

	comment := &domain.Comment{
		PropertyID:  propertyID,
		CommenterID: userID,
		Content:     content,
		IsOwner:     property.OwnerID == userID,
	}

	if parentID != nil {
		parent, err := s.commentRepo.GetComment(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrCommentNotFound
		}
		if parent.IsReply {
			return nil, ErrReplyToReply
		}
		if parent.PropertyID != propertyID {
			return nil, ErrWrongProperty
		}
		comment.ParentID = parentID
		comment.IsReply = true
	}

	return s.commentRepo.CreateComment(ctx, comment)
}

func (s *Service) ListByProperty(ctx context.Context, propertyID int) ([]domain.Comment, error) {
	return s.commentRepo.ListCommentsByProperty(ctx, propertyID)
}

func (s *Service) React(ctx context.Context, userID, commentID int, reaction string) error {
	if reaction != domain.ReactionLike && reaction != domain.ReactionDislike {
		return ErrBadReaction
	}
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	return s.commentRepo.React(ctx, commentID, userID, reaction)
}

func (s *Service) Reactions(ctx context.Context, commentID int) (likes, dislikes int, err error) {
	return s.commentRepo.CountReactions(ctx, commentID)
}

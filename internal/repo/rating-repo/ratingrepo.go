package ratingrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/pg"
)

// ErrDuplicateRating signals that the landlord has already rated this
// tenant. It maps the unique violation on (landlord_id, tenant_id).
var ErrDuplicateRating = errors.New("tenant already rated by this landlord")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateReview(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	query := `
		INSERT INTO reviews (reviewer_id, reviewed_id, property_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, rev.ReviewerID, rev.ReviewedID, rev.PropertyID, rev.Rating, rev.Comment).
		Scan(&rev.ID, &rev.CreatedAt)
	if err != nil {
		zap.L().Error("can't save review", zap.Error(err))
		return nil, err
	}
	return rev, nil
}

func (r *Repository) ListReviewsByProperty(ctx context.Context, propertyID int) ([]domain.Review, error) {
	query := `
		SELECT id, reviewer_id, reviewed_id, property_id, rating, comment, created_at
		FROM reviews
		WHERE property_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		zap.L().Error("can't list property reviews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.ReviewerID, &rev.ReviewedID, &rev.PropertyID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// AverageReviewRating returns nil when the property has no reviews.
func (r *Repository) AverageReviewRating(ctx context.Context, propertyID int) (*float64, error) {
	var avg *float64
	err := r.db.QueryRow(ctx,
		"SELECT AVG(rating)::float8 FROM reviews WHERE property_id = $1", propertyID).Scan(&avg)
	if err != nil {
		zap.L().Error("can't average reviews", zap.Error(err))
		return nil, err
	}
	return avg, nil
}

// AverageLandlordReviewRating averages reviews across every property the
// landlord owns. Nil when none of them has a review.
func (r *Repository) AverageLandlordReviewRating(ctx context.Context, landlordID int) (*float64, error) {
	var avg *float64
	query := `
		SELECT AVG(r.rating)::float8
		FROM reviews r
		JOIN properties p ON p.id = r.property_id
		WHERE p.owner_id = $1
	`
	err := r.db.QueryRow(ctx, query, landlordID).Scan(&avg)
	if err != nil {
		zap.L().Error("can't average landlord reviews", zap.Error(err))
		return nil, err
	}
	return avg, nil
}

func (r *Repository) CreateComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	query := `
		INSERT INTO comments (property_id, commenter_id, content, parent_id, is_reply, is_owner)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, c.PropertyID, c.CommenterID, c.Content, c.ParentID, c.IsReply, c.IsOwner).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save comment", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) GetComment(ctx context.Context, id int) (*domain.Comment, error) {
	var c domain.Comment
	query := `
		SELECT id, property_id, commenter_id, content, parent_id, is_reply, is_owner,
		       ai_rating, is_rated, created_at, updated_at
		FROM comments
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.PropertyID, &c.CommenterID, &c.Content, &c.ParentID, &c.IsReply,
		&c.IsOwner, &c.AIRating, &c.IsRated, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get comment", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListCommentsByProperty(ctx context.Context, propertyID int) ([]domain.Comment, error) {
	query := `
		SELECT id, property_id, commenter_id, content, parent_id, is_reply, is_owner,
		       ai_rating, is_rated, created_at, updated_at
		FROM comments
		WHERE property_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		zap.L().Error("can't list property comments", zap.Error(err))
		return nil, err
	}
	return collectComments(rows)
}

// ListUnratedComments feeds the sentiment scoring job.
func (r *Repository) ListUnratedComments(ctx context.Context, limit int) ([]domain.Comment, error) {
	query := `
		SELECT id, property_id, commenter_id, content, parent_id, is_reply, is_owner,
		       ai_rating, is_rated, created_at, updated_at
		FROM comments
		WHERE NOT is_rated
		ORDER BY created_at
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list unrated comments", zap.Error(err))
		return nil, err
	}
	return collectComments(rows)
}

func collectComments(rows pgx.Rows) ([]domain.Comment, error) {
	defer rows.Close()
	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		err := rows.Scan(&c.ID, &c.PropertyID, &c.CommenterID, &c.Content, &c.ParentID,
			&c.IsReply, &c.IsOwner, &c.AIRating, &c.IsRated, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *Repository) SetCommentAIRating(ctx context.Context, commentID int, rating float64) error {
	_, err := r.db.Exec(ctx,
		"UPDATE comments SET ai_rating = $1, is_rated = TRUE, updated_at = NOW() WHERE id = $2",
		rating, commentID)
	if err != nil {
		zap.L().Error("can't set comment ai rating", zap.Error(err))
	}
	return err
}

// AverageCommentSentiment returns nil when no comment has been scored yet.
func (r *Repository) AverageCommentSentiment(ctx context.Context, propertyID int) (*float64, error) {
	var avg *float64
	err := r.db.QueryRow(ctx,
		"SELECT AVG(ai_rating)::float8 FROM comments WHERE property_id = $1 AND is_rated", propertyID).Scan(&avg)
	if err != nil {
		zap.L().Error("can't average comment sentiment", zap.Error(err))
		return nil, err
	}
	return avg, nil
}

// React upserts the user's reaction to a comment. Reacting again with the
// same value removes it, a different value replaces it.
func (r *Repository) React(ctx context.Context, commentID, userID int, reaction string) error {
	var existing string
	err := r.db.QueryRow(ctx,
		"SELECT reaction FROM comment_reactions WHERE comment_id = $1 AND user_id = $2",
		commentID, userID).Scan(&existing)
	switch {
	case err == pgx.ErrNoRows:
		_, err = r.db.Exec(ctx,
			"INSERT INTO comment_reactions (comment_id, user_id, reaction) VALUES ($1, $2, $3)",
			commentID, userID, reaction)
	case err != nil:
		zap.L().Error("can't read comment reaction", zap.Error(err))
		return err
	case existing == reaction:
		_, err = r.db.Exec(ctx,
			"DELETE FROM comment_reactions WHERE comment_id = $1 AND user_id = $2", commentID, userID)
	default:
		_, err = r.db.Exec(ctx,
			"UPDATE comment_reactions SET reaction = $1 WHERE comment_id = $2 AND user_id = $3",
			reaction, commentID, userID)
	}
	if err != nil {
		zap.L().Error("can't save comment reaction", zap.Error(err))
	}
	return err
}

func (r *Repository) CountReactions(ctx context.Context, commentID int) (likes, dislikes int, err error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE reaction = 'like'),
		       COUNT(*) FILTER (WHERE reaction = 'dislike')
		FROM comment_reactions
		WHERE comment_id = $1
	`
	err = r.db.QueryRow(ctx, query, commentID).Scan(&likes, &dislikes)
	if err != nil {
		zap.L().Error("can't count reactions", zap.Error(err))
		return 0, 0, err
	}
	return likes, dislikes, nil
}

func (r *Repository) CreateTenantRating(ctx context.Context, tr *domain.TenantRating) (*domain.TenantRating, error) {
	query := `
		INSERT INTO tenant_ratings (landlord_id, tenant_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, tr.LandlordID, tr.TenantID, tr.Rating, tr.Comment).Scan(&tr.ID, &tr.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateRating
		}
		zap.L().Error("can't save tenant rating", zap.Error(err))
		return nil, err
	}
	return tr, nil
}

func (r *Repository) ListTenantRatings(ctx context.Context, tenantID int) ([]domain.TenantRating, error) {
	query := `
		SELECT id, landlord_id, tenant_id, rating, comment, created_at
		FROM tenant_ratings
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		zap.L().Error("can't list tenant ratings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.TenantRating
	for rows.Next() {
		var tr domain.TenantRating
		if err := rows.Scan(&tr.ID, &tr.LandlordID, &tr.TenantID, &tr.Rating, &tr.Comment, &tr.CreatedAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, tr)
	}
	return ratings, rows.Err()
}

// AverageTenantRating returns nil when the tenant has not been rated.
func (r *Repository) AverageTenantRating(ctx context.Context, tenantID int) (*float64, error) {
	var avg *float64
	err := r.db.QueryRow(ctx,
		"SELECT AVG(rating)::float8 FROM tenant_ratings WHERE tenant_id = $1", tenantID).Scan(&avg)
	if err != nil {
		zap.L().Error("can't average tenant ratings", zap.Error(err))
		return nil, err
	}
	return avg, nil
}

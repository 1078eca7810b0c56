package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"blogCPT/internal/apperr"
	"blogCPT/internal/database"
	"blogCPT/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const commentSelect = `
	SELECT cm.comment_id, cm.content, cm.likes, cm.user_id, u.name AS user_name,
		cm.post_id, cm.created_at, cm.updated_at
	FROM comments cm
	JOIN users u ON u.user_id = cm.user_id`

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	query := `
		INSERT INTO comments (comment_id, content, likes, user_id, post_id, created_at, updated_at)
		VALUES (:comment_id, :content, :likes, :user_id, :post_id, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperr.NotFound("post with ID %s not found", comment.PostID)
		}
		if database.IsCheckViolation(err) {
			return apperr.Validation("likes must not be negative")
		}
		return apperr.Internal(err, "error while creating comment")
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, commentSelect+` WHERE cm.comment_id = $1`, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("comment with ID %s not found", commentID)
		}
		return nil, apperr.Internal(err, "error while fetching comment")
	}

	return &comment, nil
}

func (r *commentRepository) GetAll(ctx context.Context) ([]models.Comment, error) {
	return r.list(ctx, commentSelect+` ORDER BY cm.created_at DESC`)
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	return r.list(ctx, commentSelect+` WHERE cm.post_id = $1 ORDER BY cm.created_at DESC`, postID)
}

func (r *commentRepository) GetByUserID(ctx context.Context, userID string) ([]models.Comment, error) {
	return r.list(ctx, commentSelect+` WHERE cm.user_id = $1 ORDER BY cm.created_at DESC`, userID)
}

func (r *commentRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, apperr.Internal(err, "error while listing comments")
	}

	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	comment.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE comments SET
			content = :content,
			likes = :likes,
			updated_at = :updated_at
		WHERE comment_id = :comment_id
	`

	result, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		if database.IsCheckViolation(err) {
			return apperr.Validation("likes must not be negative")
		}
		return apperr.Internal(err, "error while updating comment")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal(err, "error while checking updated rows")
	}

	if rowsAffected == 0 {
		return apperr.NotFound("comment with ID %s not found", comment.CommentID)
	}

	return nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		return apperr.Internal(err, "error while deleting comment")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal(err, "error while checking deleted rows")
	}

	if rowsAffected == 0 {
		return apperr.NotFound("comment with ID %s not found", commentID)
	}

	return nil
}

// IncrementLikes bumps the counter in a single statement so concurrent
// likes are never lost.
func (r *commentRepository) IncrementLikes(ctx context.Context, commentID string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE comments SET likes = likes + 1 WHERE comment_id = $1`, commentID)
	if err != nil {
		return apperr.Internal(err, "error while liking comment")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal(err, "error while checking updated rows")
	}

	if rowsAffected == 0 {
		return apperr.NotFound("comment with ID %s not found", commentID)
	}

	return nil
}

// DecrementLikes never takes the counter below zero. Unliking a comment
// that has no likes is a no-op.
func (r *commentRepository) DecrementLikes(ctx context.Context, commentID string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE comments SET likes = likes - 1 WHERE comment_id = $1 AND likes > 0`, commentID)
	if err != nil {
		return apperr.Internal(err, "error while unliking comment")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal(err, "error while checking updated rows")
	}

	if rowsAffected > 0 {
		return nil
	}

	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM comments WHERE comment_id = $1`, commentID); err != nil {
		return apperr.Internal(err, "error while checking comment")
	}

	if count == 0 {
		return apperr.NotFound("comment with ID %s not found", commentID)
	}

	return nil
}

func (r *commentRepository) CountByPostID(ctx context.Context, postID string) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID); err != nil {
		return 0, apperr.Internal(err, "error while counting comments")
	}

	return count, nil
}

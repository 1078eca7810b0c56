package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"blogCPT/internal/apperr"
	"blogCPT/internal/database"
	"blogCPT/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const postSelect = `
	SELECT p.post_id, p.title, p.content, p.status, p.reading_time, p.photo,
		p.author_id, u.name AS author_name, p.category_id, c.name AS category_name,
		p.created_at, p.updated_at
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
	JOIN categories c ON c.category_id = p.category_id`

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and its tag links in one transaction.
func (r *postRepository) Create(ctx context.Context, post *models.Post, tagIDs []string) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperr.Internal(err, "error while starting transaction")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts
		(post_id, title, content, status, reading_time, photo, author_id, category_id, created_at, updated_at)
		VALUES
		(:post_id, :title, :content, :status, :reading_time, :photo, :author_id, :category_id, :created_at, :updated_at)
	`

	if _, err := tx.NamedExecContext(ctx, query, post); err != nil {
		return mapPostWriteError(err, "error while creating post")
	}

	if err := insertPostTags(ctx, tx, post.PostID, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperr.Internal(err, "error while committing post")
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	err := r.db.GetContext(ctx, &post, postSelect+` WHERE p.post_id = $1`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("post with ID %s not found", postID)
		}
		return nil, apperr.Internal(err, "error while fetching post")
	}

	posts := []models.Post{post}
	if err := r.attachTags(ctx, posts); err != nil {
		return nil, err
	}

	return &posts[0], nil
}

// List returns posts matching every non-empty filter field, newest first.
func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		conditions = append(conditions, "p.status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, "p.category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.AuthorID != "" {
		conditions = append(conditions, "p.author_id = ?")
		args = append(args, filter.AuthorID)
	}
	if filter.TagID != "" {
		conditions = append(conditions, "EXISTS (SELECT 1 FROM post_tags pt WHERE pt.post_id = p.post_id AND pt.tag_id = ?)")
		args = append(args, filter.TagID)
	}

	query := postSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.created_at DESC"

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, r.db.Rebind(query), args...); err != nil {
		return nil, apperr.Internal(err, "error while listing posts")
	}

	if err := r.attachTags(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// Update rewrites the mutable post fields. A nil tagIDs leaves the tag set
// untouched; a non-nil slice replaces it.
func (r *postRepository) Update(ctx context.Context, post *models.Post, tagIDs []string) error {
	post.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperr.Internal(err, "error while starting transaction")
	}
	defer tx.Rollback()

	query := `
		UPDATE posts SET
			title = :title,
			content = :content,
			status = :status,
			reading_time = :reading_time,
			category_id = :category_id,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	result, err := tx.NamedExecContext(ctx, query, post)
	if err != nil {
		return mapPostWriteError(err, "error while updating post")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal(err, "error while checking updated rows")
	}

	if rowsAffected == 0 {
		return apperr.NotFound("post with ID %s not found", post.PostID)
	}

	if tagIDs != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = $1`, post.PostID); err != nil {
			return apperr.Internal(err, "error while clearing post tags")
		}
		if err := insertPostTags(ctx, tx, post.PostID, tagIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return apperr.Internal(err, "error while committing post")
	}

	return nil
}

// Delete removes the post; its tag links and comments cascade.
func (r *postRepository) Delete(ctx context.Context, postID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		return apperr.Internal(err, "error while deleting post")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal(err, "error while checking deleted rows")
	}

	if rowsAffected == 0 {
		return apperr.NotFound("post with ID %s not found", postID)
	}

	return nil
}

func (r *postRepository) attachTags(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, 0, len(posts))
	for i := range posts {
		posts[i].Tags = []models.Tag{}
		ids = append(ids, posts[i].PostID)
	}

	query, args, err := sqlx.In(`
		SELECT pt.post_id, t.tag_id, t.name
		FROM post_tags pt
		JOIN tags t ON t.tag_id = pt.tag_id
		WHERE pt.post_id IN (?)
		ORDER BY t.name`, ids)
	if err != nil {
		return apperr.Internal(err, "error while building post tags query")
	}

	var rows []models.PostTag
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return apperr.Internal(err, "error while fetching post tags")
	}

	byPost := make(map[string][]models.Tag, len(posts))
	for _, row := range rows {
		byPost[row.PostID] = append(byPost[row.PostID], models.Tag{TagID: row.TagID, Name: row.Name})
	}

	for i := range posts {
		if tags, ok := byPost[posts[i].PostID]; ok {
			posts[i].Tags = tags
		}
	}

	return nil
}

func insertPostTags(ctx context.Context, tx *sqlx.Tx, postID string, tagIDs []string) error {
	for _, tagID := range tagIDs {
		_, err := tx.ExecContext(ctx, `INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)`, postID, tagID)
		if err != nil {
			if database.IsForeignKeyViolation(err) {
				return apperr.NotFound("tag with ID %s not found", tagID)
			}
			return apperr.Internal(err, "error while linking tag to post")
		}
	}

	return nil
}

func mapPostWriteError(err error, message string) error {
	switch {
	case database.IsForeignKeyViolation(err):
		return apperr.NotFound("referenced author or category not found")
	case database.IsCheckViolation(err):
		return apperr.Validation("invalid post status")
	default:
		return apperr.Internal(err, "%s", message)
	}
}

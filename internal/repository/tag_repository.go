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

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	query := `
		SELECT t.tag_id, t.name, t.created_at, COUNT(p.post_id) AS post_count
		FROM tags t
		LEFT JOIN post_tags pt ON pt.tag_id = t.tag_id
		LEFT JOIN posts p ON p.post_id = pt.post_id AND p.status = 'PUBLISHED'
		GROUP BY t.tag_id, t.name, t.created_at
		ORDER BY t.name
	`

	tags := []models.Tag{}
	if err := r.db.SelectContext(ctx, &tags, query); err != nil {
		return nil, apperr.Internal(err, "error while listing tags")
	}

	return tags, nil
}

func (r *tagRepository) GetByID(ctx context.Context, tagID string) (*models.Tag, error) {
	query := `
		SELECT t.tag_id, t.name, t.created_at,
			(SELECT COUNT(*) FROM post_tags pt JOIN posts p ON p.post_id = pt.post_id
			 WHERE pt.tag_id = t.tag_id AND p.status = 'PUBLISHED') AS post_count
		FROM tags t
		WHERE t.tag_id = $1
	`

	var tag models.Tag
	err := r.db.GetContext(ctx, &tag, query, tagID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("tag with ID %s not found", tagID)
		}
		return nil, apperr.Internal(err, "error while fetching tag")
	}

	return &tag, nil
}

// GetByName matches case-insensitively, mirroring the unique index.
func (r *tagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	query := `SELECT tag_id, name, created_at FROM tags WHERE LOWER(name) = LOWER($1)`

	var tag models.Tag
	err := r.db.GetContext(ctx, &tag, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("tag with name '%s' not found", name)
		}
		return nil, apperr.Internal(err, "error while fetching tag by name")
	}

	return &tag, nil
}

func (r *tagRepository) GetByIDs(ctx context.Context, tagIDs []string) ([]models.Tag, error) {
	tags := []models.Tag{}
	if len(tagIDs) == 0 {
		return tags, nil
	}

	query, args, err := sqlx.In(`SELECT tag_id, name, created_at FROM tags WHERE tag_id IN (?) ORDER BY name`, tagIDs)
	if err != nil {
		return nil, apperr.Internal(err, "error while building tag query")
	}

	if err := r.db.SelectContext(ctx, &tags, r.db.Rebind(query), args...); err != nil {
		return nil, apperr.Internal(err, "error while fetching tags")
	}

	return tags, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if tag.TagID == "" {
		tag.TagID = uuid.New().String()
	}
	tag.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO tags (tag_id, name, created_at)
		VALUES (:tag_id, :name, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, tag)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("tag with name '%s' already exists", tag.Name)
		}
		return apperr.Internal(err, "error while creating tag")
	}

	return nil
}

func (r *tagRepository) UpdateName(ctx context.Context, tagID, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tags SET name = $1 WHERE tag_id = $2`, name, tagID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("tag with name '%s' already exists", name)
		}
		return apperr.Internal(err, "error while updating tag")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal(err, "error while checking updated rows")
	}

	if rowsAffected == 0 {
		return apperr.NotFound("tag with ID %s not found", tagID)
	}

	return nil
}

// Delete removes the tag; post_tags rows go with it via ON DELETE CASCADE.
func (r *tagRepository) Delete(ctx context.Context, tagID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE tag_id = $1`, tagID)
	if err != nil {
		return apperr.Internal(err, "error while deleting tag")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal(err, "error while checking deleted rows")
	}

	if rowsAffected == 0 {
		return apperr.NotFound("tag with ID %s not found", tagID)
	}

	return nil
}

func (r *tagRepository) ExistsByID(ctx context.Context, tagID string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM tags WHERE tag_id = $1`, tagID); err != nil {
		return false, apperr.Internal(err, "error while checking tag")
	}

	return count > 0, nil
}

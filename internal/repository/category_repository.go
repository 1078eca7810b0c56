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

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// GetAll returns every category with the number of its published posts.
func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT c.category_id, c.name, c.created_at, COUNT(p.post_id) AS post_count
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.category_id AND p.status = 'PUBLISHED'
		GROUP BY c.category_id, c.name, c.created_at
		ORDER BY c.name
	`

	categories := []models.Category{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, apperr.Internal(err, "error while listing categories")
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, categoryID string) (*models.Category, error) {
	query := `
		SELECT c.category_id, c.name, c.created_at,
			(SELECT COUNT(*) FROM posts p WHERE p.category_id = c.category_id AND p.status = 'PUBLISHED') AS post_count
		FROM categories c
		WHERE c.category_id = $1
	`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("category with ID %s not found", categoryID)
		}
		return nil, apperr.Internal(err, "error while fetching category")
	}

	return &category, nil
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM categories WHERE LOWER(name) = LOWER($1)`, name)
	if err != nil {
		return false, apperr.Internal(err, "error while checking category name")
	}

	return count > 0, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.CategoryID == "" {
		category.CategoryID = uuid.New().String()
	}
	category.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO categories (category_id, name, created_at)
		VALUES (:category_id, :name, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, category)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("category with name '%s' already exists", category.Name)
		}
		return apperr.Internal(err, "error while creating category")
	}

	return nil
}

func (r *categoryRepository) UpdateName(ctx context.Context, categoryID, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE categories SET name = $1 WHERE category_id = $2`, name, categoryID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("category with name '%s' already exists", name)
		}
		return apperr.Internal(err, "error while updating category")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal(err, "error while checking updated rows")
	}

	if rowsAffected == 0 {
		return apperr.NotFound("category with ID %s not found", categoryID)
	}

	return nil
}

// CountPosts counts posts of any status that reference the category.
func (r *categoryRepository) CountPosts(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, apperr.Internal(err, "error while counting category posts")
	}

	return count, nil
}

// Delete removes the category. Deleting a missing id is not an error; a
// category still referenced by posts is rejected by the foreign key.
func (r *categoryRepository) Delete(ctx context.Context, categoryID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperr.Conflict("cannot delete category with existing posts")
		}
		return apperr.Internal(err, "error while deleting category")
	}

	return nil
}

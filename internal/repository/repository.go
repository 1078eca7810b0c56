package repository

import (
	"context"

	"blogCPT/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, categoryID string) (*models.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, category *models.Category) error
	UpdateName(ctx context.Context, categoryID, name string) error
	CountPosts(ctx context.Context, categoryID string) (int64, error)
	Delete(ctx context.Context, categoryID string) error
}

type TagRepository interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, tagID string) (*models.Tag, error)
	GetByName(ctx context.Context, name string) (*models.Tag, error)
	GetByIDs(ctx context.Context, tagIDs []string) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	UpdateName(ctx context.Context, tagID, name string) error
	Delete(ctx context.Context, tagID string) error
	ExistsByID(ctx context.Context, tagID string) (bool, error)
}

// PostFilter narrows post listings. Empty fields are ignored.
type PostFilter struct {
	Status     models.PostStatus
	CategoryID string
	TagID      string
	AuthorID   string
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post, tagIDs []string) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context, filter PostFilter) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post, tagIDs []string) error
	Delete(ctx context.Context, postID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	GetAll(ctx context.Context) ([]models.Comment, error)
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID string) error
	IncrementLikes(ctx context.Context, commentID string) error
	DecrementLikes(ctx context.Context, commentID string) error
	CountByPostID(ctx context.Context, postID string) (int64, error)
}

type HealthRepository interface {
	Ping(ctx context.Context) error
}

type Repository struct {
	User     UserRepository
	Category CategoryRepository
	Tag      TagRepository
	Post     PostRepository
	Comment  CommentRepository
	Health   HealthRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Category: NewCategoryRepository(db),
		Tag:      NewTagRepository(db),
		Post:     NewPostRepository(db),
		Comment:  NewCommentRepository(db),
		Health:   NewHealthRepository(db),
	}
}

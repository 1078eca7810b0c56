package service

import (
	"context"
	"errors"
	"strings"

	"blogCPT/internal/apperr"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, categoryID string) (*models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, categoryID, name string) (*models.Category, error)
	Delete(ctx context.Context, categoryID string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *categoryService) Get(ctx context.Context, categoryID string) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, categoryID)
}

func (s *categoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("category name is required")
	}

	exists, err := s.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("category with name '%s' already exists", name)
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Update renames the category. There is no name pre-check here; a clash is
// reported by the unique index as Conflict.
func (s *categoryService) Update(ctx context.Context, categoryID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("category name is required")
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.UpdateName(ctx, categoryID, name); err != nil {
		return nil, err
	}

	category.Name = name
	return category, nil
}

// Delete is a no-op for unknown ids and refuses categories that still have posts.
func (s *categoryService) Delete(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}

	count, err := s.categoryRepo.CountPosts(ctx, categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("category has %d associated posts", count)
	}

	return s.categoryRepo.Delete(ctx, categoryID)
}

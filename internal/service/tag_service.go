package service

import (
	"context"
	"errors"
	"strings"

	"blogCPT/internal/apperr"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type CreateTagsRequest struct {
	Names []string `json:"names" validate:"required,min=1,dive,required,max=30"`
}

type UpdateTagRequest struct {
	Name string `json:"name" validate:"required,max=30"`
}

type TagService interface {
	List(ctx context.Context) ([]models.Tag, error)
	Get(ctx context.Context, tagID string) (*models.Tag, error)
	CreateOrGet(ctx context.Context, name string) (*models.Tag, error)
	CreateMany(ctx context.Context, names []string) ([]models.Tag, error)
	Update(ctx context.Context, tagID, name string) (*models.Tag, error)
	Delete(ctx context.Context, tagID string) error
	ExistsByID(ctx context.Context, tagID string) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	GetByIDs(ctx context.Context, tagIDs []string) ([]models.Tag, error)
}

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) List(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.GetAll(ctx)
}

func (s *tagService) Get(ctx context.Context, tagID string) (*models.Tag, error) {
	return s.tagRepo.GetByID(ctx, tagID)
}

// CreateOrGet returns the tag whose name matches case-insensitively, creating
// it when absent. Losing a creation race re-reads the winner's row.
func (s *tagService) CreateOrGet(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("tag name is required")
	}

	tag, err := s.tagRepo.GetByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	tag = &models.Tag{Name: name}
	err = s.tagRepo.Create(ctx, tag)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, apperr.ErrConflict) {
		return nil, err
	}

	return s.tagRepo.GetByName(ctx, name)
}

func (s *tagService) CreateMany(ctx context.Context, names []string) ([]models.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	tags := make([]models.Tag, 0, len(names))

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		tag, err := s.CreateOrGet(ctx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}

func (s *tagService) Update(ctx context.Context, tagID, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("tag name is required")
	}

	tag, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}

	existing, err := s.tagRepo.GetByName(ctx, name)
	switch {
	case err == nil && existing.TagID != tagID:
		return nil, apperr.Conflict("tag with name '%s' already exists", name)
	case err != nil && !errors.Is(err, apperr.ErrNotFound):
		return nil, err
	}

	if err := s.tagRepo.UpdateName(ctx, tagID, name); err != nil {
		return nil, err
	}

	tag.Name = name
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, tagID string) error {
	return s.tagRepo.Delete(ctx, tagID)
}

func (s *tagService) ExistsByID(ctx context.Context, tagID string) (bool, error) {
	return s.tagRepo.ExistsByID(ctx, tagID)
}

func (s *tagService) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, err := s.tagRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GetByIDs resolves every id or fails with NotFound. Duplicate ids count once.
func (s *tagService) GetByIDs(ctx context.Context, tagIDs []string) ([]models.Tag, error) {
	ids := uniqueIDs(tagIDs)

	tags, err := s.tagRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(tags) != len(ids) {
		return nil, apperr.NotFound("one or more tags not found")
	}

	return tags, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

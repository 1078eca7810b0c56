package service

import (
	"context"
	"strings"

	"blogCPT/internal/apperr"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type CreatePostRequest struct {
	Title      string            `json:"title" validate:"required,min=3,max=200"`
	Content    string            `json:"content" validate:"required,min=10,max=50000"`
	CategoryID string            `json:"categoryId" validate:"required,uuid"`
	TagIDs     []string          `json:"tagIds" validate:"omitempty,max=10,dive,uuid"`
	Photo      *string           `json:"photo" validate:"omitempty,max=500"`
	Status     models.PostStatus `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
}

// UpdatePostRequest replaces every field. An empty Status keeps the current one.
type UpdatePostRequest struct {
	Title      string            `json:"title" validate:"required,min=3,max=200"`
	Content    string            `json:"content" validate:"required,min=10,max=50000"`
	CategoryID string            `json:"categoryId" validate:"required,uuid"`
	TagIDs     []string          `json:"tagIds" validate:"omitempty,max=10,dive,uuid"`
	Status     models.PostStatus `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
}

type PostService interface {
	List(ctx context.Context, categoryID, tagID string) ([]models.Post, error)
	ListDrafts(ctx context.Context, identity *models.Identity) ([]models.Post, error)
	Get(ctx context.Context, postID string, viewer *models.Identity) (*models.Post, error)
	Create(ctx context.Context, identity *models.Identity, req CreatePostRequest) (*models.Post, error)
	Update(ctx context.Context, postID string, identity *models.Identity, req UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, postID string, identity *models.Identity) error
}

type postService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	tags         TagService
}

func NewPostService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository, tags TagService) PostService {
	return &postService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tags:         tags,
	}
}

// List returns published posts, optionally narrowed by category and tag.
// A filter id that does not exist is NotFound rather than an empty list.
func (s *postService) List(ctx context.Context, categoryID, tagID string) ([]models.Post, error) {
	if categoryID != "" {
		if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
			return nil, err
		}
	}

	if tagID != "" {
		if _, err := s.tags.Get(ctx, tagID); err != nil {
			return nil, err
		}
	}

	return s.postRepo.List(ctx, repository.PostFilter{
		Status:     models.PostStatusPublished,
		CategoryID: categoryID,
		TagID:      tagID,
	})
}

func (s *postService) ListDrafts(ctx context.Context, identity *models.Identity) ([]models.Post, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	return s.postRepo.List(ctx, repository.PostFilter{
		Status:   models.PostStatusDraft,
		AuthorID: identity.UserID,
	})
}

// Get hides drafts from everyone but their author.
func (s *postService) Get(ctx context.Context, postID string, viewer *models.Identity) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !CanView(viewer, post) {
		return nil, apperr.NotFound("post with ID %s not found", postID)
	}

	return post, nil
}

func (s *postService) Create(ctx context.Context, identity *models.Identity, req CreatePostRequest) (*models.Post, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if !status.Valid() {
		return nil, apperr.Validation("invalid post status %q", req.Status)
	}

	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	tagIDs := uniqueIDs(req.TagIDs)
	tags, err := s.tags.GetByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:        strings.TrimSpace(req.Title),
		Content:      req.Content,
		Status:       status,
		ReadingTime:  EstimateReadingTime(req.Content),
		Photo:        req.Photo,
		AuthorID:     identity.UserID,
		AuthorName:   identity.Name,
		CategoryID:   category.CategoryID,
		CategoryName: category.Name,
		Tags:         tags,
	}

	if err := s.postRepo.Create(ctx, post, tagIDs); err != nil {
		return nil, err
	}

	return post, nil
}

// Update replaces title, content and reading time. Category and tags are
// only touched when they differ from the stored values.
func (s *postService) Update(ctx context.Context, postID string, identity *models.Identity, req UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := Authorize(identity, post, "update"); err != nil {
		return nil, err
	}

	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, apperr.Validation("invalid post status %q", req.Status)
		}
		post.Status = req.Status
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Content = req.Content
	post.ReadingTime = EstimateReadingTime(req.Content)

	if req.CategoryID != post.CategoryID {
		category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		post.CategoryID = category.CategoryID
		post.CategoryName = category.Name
	}

	var tagIDs []string
	requested := uniqueIDs(req.TagIDs)
	if !sameIDSet(requested, post.TagIDs()) {
		tags, err := s.tags.GetByIDs(ctx, requested)
		if err != nil {
			return nil, err
		}
		tagIDs = requested
		post.Tags = tags
	}

	if err := s.postRepo.Update(ctx, post, tagIDs); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) Delete(ctx context.Context, postID string, identity *models.Identity) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := Authorize(identity, post, "delete"); err != nil {
		return err
	}

	return s.postRepo.Delete(ctx, postID)
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	set := make(map[string]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			return false
		}
	}

	return true
}

package service

import (
	"context"

	"blogCPT/internal/apperr"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

// CommentRequest is used for create and update. A nil Likes leaves the
// counter at its default or current value.
type CommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
	Likes   *int   `json:"likes" validate:"omitempty,min=0"`
}

type CommentService interface {
	ListAll(ctx context.Context) ([]models.Comment, error)
	ListByPost(ctx context.Context, postID string, viewer *models.Identity) ([]models.Comment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Comment, error)
	Get(ctx context.Context, commentID string) (*models.Comment, error)
	Create(ctx context.Context, identity *models.Identity, postID string, req CommentRequest) (*models.Comment, error)
	Update(ctx context.Context, commentID string, identity *models.Identity, req CommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, commentID string, identity *models.Identity) error
	Like(ctx context.Context, commentID string) (*models.Comment, error)
	Unlike(ctx context.Context, commentID string) (*models.Comment, error)
	CountByPost(ctx context.Context, postID string, viewer *models.Identity) (int64, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) ListAll(ctx context.Context) ([]models.Comment, error) {
	return s.commentRepo.GetAll(ctx)
}

func (s *commentService) ListByPost(ctx context.Context, postID string, viewer *models.Identity) ([]models.Comment, error) {
	if err := s.ensureVisiblePost(ctx, postID, viewer); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByPostID(ctx, postID)
}

func (s *commentService) ListByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	return s.commentRepo.GetByUserID(ctx, userID)
}

func (s *commentService) Get(ctx context.Context, commentID string) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *commentService) Create(ctx context.Context, identity *models.Identity, postID string, req CommentRequest) (*models.Comment, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}
	if likes < 0 {
		return nil, apperr.Validation("likes must not be negative")
	}

	if err := s.ensureVisiblePost(ctx, postID, identity); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:  req.Content,
		Likes:    likes,
		UserID:   identity.UserID,
		UserName: identity.Name,
		PostID:   postID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) Update(ctx context.Context, commentID string, identity *models.Identity, req CommentRequest) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if err := Authorize(identity, comment, "update"); err != nil {
		return nil, err
	}

	if req.Likes != nil {
		if *req.Likes < 0 {
			return nil, apperr.Validation("likes must not be negative")
		}
		comment.Likes = *req.Likes
	}
	comment.Content = req.Content

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, commentID string, identity *models.Identity) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := Authorize(identity, comment, "delete"); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, commentID)
}

func (s *commentService) Like(ctx context.Context, commentID string) (*models.Comment, error) {
	if err := s.commentRepo.IncrementLikes(ctx, commentID); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, commentID)
}

// Unlike never drops the counter below zero.
func (s *commentService) Unlike(ctx context.Context, commentID string) (*models.Comment, error) {
	if err := s.commentRepo.DecrementLikes(ctx, commentID); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *commentService) CountByPost(ctx context.Context, postID string, viewer *models.Identity) (int64, error) {
	if err := s.ensureVisiblePost(ctx, postID, viewer); err != nil {
		return 0, err
	}

	return s.commentRepo.CountByPostID(ctx, postID)
}

// ensureVisiblePost treats a draft the viewer does not own as missing.
func (s *commentService) ensureVisiblePost(ctx context.Context, postID string, viewer *models.Identity) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !CanView(viewer, post) {
		return apperr.NotFound("post with ID %s not found", postID)
	}

	return nil
}

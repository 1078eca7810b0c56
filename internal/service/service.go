package service

import (
	"blogCPT/internal/config"
	"blogCPT/internal/repository"
)

type Service struct {
	Token    TokenService
	Auth     AuthService
	User     UserService
	Category CategoryService
	Tag      TagService
	Post     PostService
	Comment  CommentService
	Health   HealthService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	tokens := NewTokenService(cfg)
	tags := NewTagService(rep.Tag)

	return &Service{
		Token:    tokens,
		Auth:     NewAuthService(rep.User, tokens, cfg),
		User:     NewUserService(rep.User),
		Category: NewCategoryService(rep.Category),
		Tag:      tags,
		Post:     NewPostService(rep.Post, rep.Category, tags),
		Comment:  NewCommentService(rep.Comment, rep.Post),
		Health:   NewHealthService(rep.Health),
	}
}

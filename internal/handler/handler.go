package handlers

import (
	"reflect"
	"strings"

	"blogCPT/internal/config"
	"blogCPT/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	AuthService     service.AuthService
	UserService     service.UserService
	CategoryService service.CategoryService
	TagService      service.TagService
	PostService     service.PostService
	CommentService  service.CommentService
	HealthService   service.HealthService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     service.Auth,
		UserService:     service.User,
		CategoryService: service.Category,
		TagService:      service.Tag,
		PostService:     service.Post,
		CommentService:  service.Comment,
		HealthService:   service.Health,
		Cfg:             config,
		Validate:        NewValidator(),
	}
}

// NewValidator reports field errors under their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

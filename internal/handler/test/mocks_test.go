package test

import (
	"context"

	"blogCPT/internal/models"
	"blogCPT/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.AuthToken, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthToken), args.Error(1)
}

func (m *MockAuthService) IssueToken(user *models.User) (*service.AuthToken, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthToken), args.Error(1)
}

func (m *MockAuthService) ResolveIdentity(ctx context.Context, tokenString string) (*models.Identity, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Identity), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Get(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, identity *models.Identity) (*models.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryService) Get(ctx context.Context, categoryID string) (*models.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, categoryID, name string) (*models.Category, error) {
	args := m.Called(ctx, categoryID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}

type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) List(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagService) Get(ctx context.Context, tagID string) (*models.Tag, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) CreateOrGet(ctx context.Context, name string) (*models.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) CreateMany(ctx context.Context, names []string) ([]models.Tag, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagService) Update(ctx context.Context, tagID, name string) (*models.Tag, error) {
	args := m.Called(ctx, tagID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) Delete(ctx context.Context, tagID string) error {
	return m.Called(ctx, tagID).Error(0)
}

func (m *MockTagService) ExistsByID(ctx context.Context, tagID string) (bool, error) {
	args := m.Called(ctx, tagID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagService) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagService) GetByIDs(ctx context.Context, tagIDs []string) ([]models.Tag, error) {
	args := m.Called(ctx, tagIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) List(ctx context.Context, categoryID, tagID string) ([]models.Post, error) {
	args := m.Called(ctx, categoryID, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) ListDrafts(ctx context.Context, identity *models.Identity) ([]models.Post, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, postID string, viewer *models.Identity) (*models.Post, error) {
	args := m.Called(ctx, postID, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, identity *models.Identity, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, postID string, identity *models.Identity, req service.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, postID, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, postID string, identity *models.Identity) error {
	return m.Called(ctx, postID, identity).Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) comments(args mock.Arguments) ([]models.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) comment(args mock.Arguments) (*models.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) ListAll(ctx context.Context) ([]models.Comment, error) {
	return m.comments(m.Called(ctx))
}

func (m *MockCommentService) ListByPost(ctx context.Context, postID string, viewer *models.Identity) ([]models.Comment, error) {
	return m.comments(m.Called(ctx, postID, viewer))
}

func (m *MockCommentService) ListByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	return m.comments(m.Called(ctx, userID))
}

func (m *MockCommentService) Get(ctx context.Context, commentID string) (*models.Comment, error) {
	return m.comment(m.Called(ctx, commentID))
}

func (m *MockCommentService) Create(ctx context.Context, identity *models.Identity, postID string, req service.CommentRequest) (*models.Comment, error) {
	return m.comment(m.Called(ctx, identity, postID, req))
}

func (m *MockCommentService) Update(ctx context.Context, commentID string, identity *models.Identity, req service.CommentRequest) (*models.Comment, error) {
	return m.comment(m.Called(ctx, commentID, identity, req))
}

func (m *MockCommentService) Delete(ctx context.Context, commentID string, identity *models.Identity) error {
	return m.Called(ctx, commentID, identity).Error(0)
}

func (m *MockCommentService) Like(ctx context.Context, commentID string) (*models.Comment, error) {
	return m.comment(m.Called(ctx, commentID))
}

func (m *MockCommentService) Unlike(ctx context.Context, commentID string) (*models.Comment, error) {
	return m.comment(m.Called(ctx, commentID))
}

func (m *MockCommentService) CountByPost(ctx context.Context, postID string, viewer *models.Identity) (int64, error) {
	args := m.Called(ctx, postID, viewer)
	return args.Get(0).(int64), args.Error(1)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) (*service.HealthStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HealthStatus), args.Error(1)
}

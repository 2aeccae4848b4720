package impl

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// mockRepo is a hand-rolled testify mock for the generic repository
// contract, shared by every resource repository in these tests.
type mockRepo[T any] struct {
	mock.Mock
}

func (m *mockRepo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if doc, ok := args.Get(0).(*T); ok {
		return doc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRepo[T]) FindAll(ctx context.Context, q repository.ListQuery) ([]*T, error) {
	args := m.Called(ctx, q)
	if docs, ok := args.Get(0).([]*T); ok {
		return docs, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRepo[T]) Create(ctx context.Context, doc *T) (string, error) {
	args := m.Called(ctx, doc)

	return args.String(0), args.Error(1)
}

func (m *mockRepo[T]) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)

	return args.Error(0)
}

func (m *mockRepo[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// mockUserRepo adds the UID-keyed creation used for profile documents.
type mockUserRepo struct {
	mockRepo[entity.User]
}

func (m *mockUserRepo) CreateWithID(ctx context.Context, id string, user *entity.User) error {
	args := m.Called(ctx, id, user)

	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

type mockIdentity struct {
	mock.Mock
}

func (m *mockIdentity) VerifyToken(ctx context.Context, authorizationHeader string) (*service.Principal, error) {
	args := m.Called(ctx, authorizationHeader)
	if p, ok := args.Get(0).(*service.Principal); ok {
		return p, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockIdentity) GetUser(ctx context.Context, uid string) (*service.IdentityUser, error) {
	args := m.Called(ctx, uid)
	if u, ok := args.Get(0).(*service.IdentityUser); ok {
		return u, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockIdentity) CreateUser(ctx context.Context, params service.CreateIdentityParams) (*service.IdentityUser, error) {
	args := m.Called(ctx, params)
	if u, ok := args.Get(0).(*service.IdentityUser); ok {
		return u, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockIdentity) GenerateCustomToken(ctx context.Context, uid string, role entity.Role) (string, error) {
	args := m.Called(ctx, uid, role)

	return args.String(0), args.Error(1)
}

func (m *mockIdentity) SetUserRole(ctx context.Context, uid string, role entity.Role) error {
	args := m.Called(ctx, uid, role)

	return args.Error(0)
}

type mockQRCode struct {
	mock.Mock
}

func (m *mockQRCode) GeneratePromotionQR(promotionID string) ([]byte, error) {
	args := m.Called(promotionID)
	if png, ok := args.Get(0).([]byte); ok {
		return png, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockImageStorage struct {
	mock.Mock
}

func (m *mockImageStorage) Upload(ctx context.Context, key string, contentType string, r io.Reader) error {
	args := m.Called(ctx, key, contentType, r)

	return args.Error(0)
}

func (m *mockImageStorage) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	if rc, ok := args.Get(0).(io.ReadCloser); ok {
		return rc, args.String(1), args.Error(2)
	}

	return nil, args.String(1), args.Error(2)
}

func (m *mockImageStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	return args.Error(0)
}

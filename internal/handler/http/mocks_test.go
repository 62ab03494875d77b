// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/bistro-boss/internal/config"
	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/internal/service"
	"github.com/MKhiriev/bistro-boss/models"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	issueTokenFn func(ctx context.Context, payload map[string]any) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) IssueToken(ctx context.Context, payload map[string]any) (models.Token, error) {
	if m.issueTokenFn != nil {
		return m.issueTokenFn(ctx, payload)
	}
	return models.Token{SignedString: "signed"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{Identity: models.NewIdentity(map[string]any{"email": "a@x.io"})}, nil
}

// ---- Mock: UserService ----

type mockUserService struct {
	createUserFn  func(ctx context.Context, user models.User) (models.InsertResult, error)
	listUsersFn   func(ctx context.Context) ([]models.User, error)
	deleteUserFn  func(ctx context.Context, id string) (models.DeleteResult, error)
	promoteUserFn func(ctx context.Context, id string) (models.UpdateResult, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return models.InsertResult{Acknowledged: true}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, id)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *mockUserService) PromoteUser(ctx context.Context, id string) (models.UpdateResult, error) {
	if m.promoteUserFn != nil {
		return m.promoteUserFn(ctx, id)
	}
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

// ---- Mock: CatalogService ----

type mockCatalogService struct {
	listMenuFn    func(ctx context.Context) ([]models.MenuItem, error)
	listReviewsFn func(ctx context.Context) ([]models.Review, error)
}

func (m *mockCatalogService) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	if m.listMenuFn != nil {
		return m.listMenuFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalogService) ListReviews(ctx context.Context) ([]models.Review, error) {
	if m.listReviewsFn != nil {
		return m.listReviewsFn(ctx)
	}
	return nil, nil
}

// ---- Mock: CartService ----

type mockCartService struct {
	listFn   func(ctx context.Context, requester models.Identity, email string) ([]models.CartEntry, error)
	addFn    func(ctx context.Context, entry models.CartEntry) (models.InsertResult, error)
	deleteFn func(ctx context.Context, id string) (models.DeleteResult, error)
}

func (m *mockCartService) ListCartEntries(ctx context.Context, requester models.Identity, email string) ([]models.CartEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, requester, email)
	}
	return nil, nil
}

func (m *mockCartService) AddCartEntry(ctx context.Context, entry models.CartEntry) (models.InsertResult, error) {
	if m.addFn != nil {
		return m.addFn(ctx, entry)
	}
	return models.InsertResult{Acknowledged: true}, nil
}

func (m *mockCartService) DeleteCartEntry(ctx context.Context, id string) (models.DeleteResult, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helpers ----

// newTestServices fills every service the router needs with a default
// mock; non-nil arguments in override replace the defaults.
func newTestServices(override *service.Services) *service.Services {
	services := &service.Services{
		AuthService:    &mockAuthService{},
		UserService:    &mockUserService{},
		CatalogService: &mockCatalogService{},
		CartService:    &mockCartService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
	if override == nil {
		return services
	}
	if override.AuthService != nil {
		services.AuthService = override.AuthService
	}
	if override.UserService != nil {
		services.UserService = override.UserService
	}
	if override.CatalogService != nil {
		services.CatalogService = override.CatalogService
	}
	if override.CartService != nil {
		services.CartService = override.CartService
	}
	if override.AppInfoService != nil {
		services.AppInfoService = override.AppInfoService
	}
	return services
}

func newTestRouter(override *service.Services) http.Handler {
	return NewHandler(newTestServices(override), config.Server{}, logger.Nop()).Init()
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "bistro-boss",
		TokenDuration: time.Hour,
		Version:       "test-version",
	}
}

func testServerConfig() config.Server {
	return config.Server{HTTPAddress: ":0", RequestTimeout: 5 * time.Second}
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/bistro-boss/internal/config"
	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/internal/service"
	"github.com/MKhiriev/bistro-boss/internal/store"
	"github.com/MKhiriev/bistro-boss/internal/utils"
	"github.com/MKhiriev/bistro-boss/internal/validators"
	"github.com/MKhiriev/bistro-boss/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryUserRepository is an in-memory store.UserRepository with the same
// uniqueness and not-found semantics as the MongoDB implementation.
type memoryUserRepository struct {
	mu    sync.Mutex
	users []models.User
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return models.InsertResult{}, store.ErrEmailAlreadyExists
		}
	}
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, user)

	return models.InsertResult{Acknowledged: true, InsertedID: user.ID.Hex()}, nil
}

func (m *memoryUserRepository) ListUsers(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.User(nil), m.users...), nil
}

func (m *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *memoryUserRepository) DeleteUser(_ context.Context, id string) (models.DeleteResult, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, u := range m.users {
		if u.ID == objectID {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.DeleteResult{Acknowledged: true}, store.ErrUserNotFound
}

func (m *memoryUserRepository) PromoteUser(_ context.Context, id string) (models.UpdateResult, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, u := range m.users {
		if u.ID != objectID {
			continue
		}
		result := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
		if !u.IsAdmin() {
			m.users[i].Role = models.RoleAdmin
			result.ModifiedCount = 1
		}
		return result, nil
	}
	return models.UpdateResult{Acknowledged: true}, store.ErrUserNotFound
}

type memoryCatalog struct{}

func (memoryCatalog) ListMenu(context.Context) ([]models.MenuItem, error) {
	return []models.MenuItem{{"name": "Soup", "category": "soup", "price": 9.5}}, nil
}

func (memoryCatalog) ListReviews(context.Context) ([]models.Review, error) {
	return []models.Review{{"name": "Jane", "details": "great", "rating": int32(5)}}, nil
}

func newE2EServer(t *testing.T, cfg config.App) (*utils.HTTPClient, *memoryUserRepository) {
	t.Helper()

	users := &memoryUserRepository{}
	carts := &fakeCartRepository{}
	validator := validators.NewValidator()
	log := logger.Nop()

	services := &service.Services{
		AuthService:    service.NewAuthService(users, validator, cfg, log),
		UserService:    service.NewUserValidationService(validator).Wrap(service.NewUserService(users, log)),
		CatalogService: service.NewCatalogService(memoryCatalog{}, memoryCatalog{}, log),
		CartService:    service.NewCartService(carts, log),
	}
	appInfo, err := service.NewAppInfoService(cfg, log)
	require.NoError(t, err)
	services.AppInfoService = appInfo

	server := httptest.NewServer(NewHandler(services, config.Server{}, log).Init())
	t.Cleanup(server.Close)

	return utils.NewHTTPClient(server.URL, 5*time.Second), users
}

func TestE2E_UsersFlow(t *testing.T) {
	client, _ := newE2EServer(t, testAppConfig())

	var created models.InsertResult
	resp, err := client.R().
		SetBody(map[string]any{"name": "A", "email": "a@x.io", "role": "admin"}).
		SetResult(&created).
		Post("/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, created.InsertedID, 24)

	// duplicate registration
	var apiErr utils.ErrorResponse
	resp, err = client.R().
		SetBody(map[string]any{"name": "B", "email": "a@x.io"}).
		SetError(&apiErr).
		Post("/users")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, "user already exists", apiErr.Message)

	// the role sent at registration is ignored
	var users []models.User
	resp, err = client.R().SetResult(&users).Get("/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, users, 1)
	assert.False(t, users[0].IsAdmin())

	// promotion is idempotent
	for i, wantModified := range []int64{1, 0} {
		var updated models.UpdateResult
		resp, err = client.R().SetResult(&updated).Patch("/users/admin/" + created.InsertedID)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode(), "promotion #"+strconv.Itoa(i+1))
		assert.Equal(t, int64(1), updated.MatchedCount)
		assert.Equal(t, wantModified, updated.ModifiedCount)
	}

	resp, err = client.R().Patch("/users/admin/not-an-id")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	// delete, then delete again
	resp, err = client.R().Delete("/users/" + created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().Delete("/users/" + created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = client.R().Patch("/users/admin/" + created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
}

func TestE2E_TokenAndCarts(t *testing.T) {
	client, _ := newE2EServer(t, testAppConfig())

	var token struct {
		Token string `json:"token"`
	}
	resp, err := client.R().
		SetBody(map[string]any{"email": "a@x.io"}).
		SetResult(&token).
		Post("/jwt")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().
		SetBody(map[string]any{"menuItemId": "m1", "name": "Soup", "price": 9.5, "quantity": 2, "email": "a@x.io"}).
		Post("/carts")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	var entries []models.CartEntry
	resp, err = client.R().
		SetAuthToken(token.Token).
		SetQueryParam("email", "a@x.io").
		SetResult(&entries).
		Get("/carts")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, entries, 1)
	assert.Equal(t, "m1", entries[0]["menuItemId"])
	assert.Equal(t, 2.0, entries[0]["quantity"])

	resp, err = client.R().
		SetAuthToken(token.Token).
		SetQueryParam("email", "b@x.io").
		Get("/carts")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	resp, err = client.R().SetQueryParam("email", "a@x.io").Get("/carts")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}

func TestE2E_TokenRequiresRegisteredUser(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenRequireRegisteredUser = true
	client, users := newE2EServer(t, cfg)

	resp, err := client.R().SetBody(map[string]any{"email": "a@x.io"}).Post("/jwt")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	_, err = users.CreateUser(context.Background(), models.User{Email: "a@x.io"})
	require.NoError(t, err)

	resp, err = client.R().SetBody(map[string]any{"email": "a@x.io"}).Post("/jwt")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestE2E_PublicEndpoints(t *testing.T) {
	client, _ := newE2EServer(t, testAppConfig())

	resp, err := client.R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, rootMessage, resp.String())

	resp, err = client.R().Get("/version")
	require.NoError(t, err)
	assert.Equal(t, "test-version", resp.String())

	var menu []models.MenuItem
	resp, err = client.R().SetResult(&menu).Get("/menu")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Len(t, menu, 1)

	resp, err = client.R().Get("/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "bistroboss_http_request_duration_seconds")
}

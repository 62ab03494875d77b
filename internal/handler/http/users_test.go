// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/bistro-boss/internal/service"
	"github.com/MKhiriev/bistro-boss/internal/store"
	"github.com/MKhiriev/bistro-boss/internal/utils"
	"github.com/MKhiriev/bistro-boss/internal/validators"
	"github.com/MKhiriev/bistro-boss/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(router http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Error)
	return body
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "created", body: `{"name":"A","email":"a@x.io"}`, wantStatus: http.StatusOK},
		{name: "invalid JSON", body: `{"email":`, wantStatus: http.StatusBadRequest, wantMessage: ErrInvalidJSON.Error()},
		{
			name:        "duplicate email",
			body:        `{"email":"a@x.io"}`,
			serviceErr:  store.ErrEmailAlreadyExists,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "user already exists",
		},
		{
			name:       "invalid email",
			body:       `{"email":"nope"}`,
			serviceErr: errors.Join(service.ErrInvalidDataProvided, validators.ErrInvalidUser),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "datastore failure",
			body:        `{"email":"a@x.io"}`,
			serviceErr:  store.ErrInsertingDocument,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&service.Services{UserService: &mockUserService{
				createUserFn: func(_ context.Context, user models.User) (models.InsertResult, error) {
					if tt.serviceErr != nil {
						return models.InsertResult{}, tt.serviceErr
					}
					return models.InsertResult{Acknowledged: true, InsertedID: "64b7f0c2a1b2c3d4e5f60718"}, nil
				},
			}})

			rr := doRequest(router, http.MethodPost, "/users", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				body := decodeError(t, rr)
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, body.Message)
				}
				return
			}
			var res models.InsertResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
			assert.True(t, res.Acknowledged)
			assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", res.InsertedID)
		})
	}
}

func TestListUsers(t *testing.T) {
	t.Run("empty list encodes as array", func(t *testing.T) {
		rr := doRequest(newTestRouter(nil), http.MethodGet, "/users", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("users", func(t *testing.T) {
		router := newTestRouter(&service.Services{UserService: &mockUserService{
			listUsersFn: func(context.Context) ([]models.User, error) {
				return []models.User{{Name: "A", Email: "a@x.io", Role: models.RoleAdmin}}, nil
			},
		}})

		rr := doRequest(router, http.MethodGet, "/users", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"name":"A","email":"a@x.io","role":"admin"}]`, rr.Body.String())
	})

	t.Run("datastore failure", func(t *testing.T) {
		router := newTestRouter(&service.Services{UserService: &mockUserService{
			listUsersFn: func(context.Context) ([]models.User, error) {
				return nil, store.ErrFindingDocuments
			},
		}})

		rr := doRequest(router, http.MethodGet, "/users", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		decodeError(t, rr)
	})
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "not found", serviceErr: store.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid id", serviceErr: store.ErrInvalidID, wantStatus: http.StatusBadRequest},
		{name: "datastore failure", serviceErr: store.ErrDeletingDocument, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			router := newTestRouter(&service.Services{UserService: &mockUserService{
				deleteUserFn: func(_ context.Context, id string) (models.DeleteResult, error) {
					gotID = id
					if tt.serviceErr != nil {
						return models.DeleteResult{}, tt.serviceErr
					}
					return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
				},
			}})

			rr := doRequest(router, http.MethodDelete, "/users/64b7f0c2a1b2c3d4e5f60718", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", gotID)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rr.Body.String())
			}
		})
	}
}

func TestPromoteUser(t *testing.T) {
	tests := []struct {
		name        string
		result      models.UpdateResult
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "promoted",
			result:     models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1},
			wantStatus: http.StatusOK,
		},
		{
			name:       "already admin is still a success",
			result:     models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 0},
			wantStatus: http.StatusOK,
		},
		{name: "no such user", serviceErr: store.ErrUserNotFound, wantStatus: http.StatusBadRequest, wantMessage: "user not found"},
		{name: "invalid id", serviceErr: store.ErrInvalidID, wantStatus: http.StatusBadRequest},
		{name: "datastore failure", serviceErr: store.ErrUpdatingDocument, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&service.Services{UserService: &mockUserService{
				promoteUserFn: func(_ context.Context, _ string) (models.UpdateResult, error) {
					return tt.result, tt.serviceErr
				},
			}})

			rr := doRequest(router, http.MethodPatch, "/users/admin/64b7f0c2a1b2c3d4e5f60718", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				body := decodeError(t, rr)
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, body.Message)
				}
				return
			}
			var res models.UpdateResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
			assert.Equal(t, tt.result.ModifiedCount, res.ModifiedCount)
			assert.Equal(t, int64(1), res.MatchedCount)
		})
	}
}

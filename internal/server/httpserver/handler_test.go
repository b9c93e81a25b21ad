package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/usercatalog/internal/logging"
	"github.com/dmitrijs2005/usercatalog/internal/server/models"
	"github.com/dmitrijs2005/usercatalog/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	listQ   string
	listOut []models.User
	listErr error

	createIn  models.UserInput
	createErr error

	updateID  string
	updateErr error

	deleteID  string
	deleteErr error
}

func (f *fakeUsers) List(_ context.Context, q string) ([]models.User, error) {
	f.listQ = q
	return f.listOut, f.listErr
}

func (f *fakeUsers) Create(_ context.Context, in models.UserInput) (*models.User, error) {
	f.createIn = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.User{ID: "new", Name: in.Name, Email: in.Email, Role: in.Role}, nil
}

func (f *fakeUsers) Update(_ context.Context, id string, in models.UserInput) (*models.User, error) {
	f.updateID = id
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.User{ID: id, Name: in.Name, Email: in.Email, Role: in.Role}, nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) error {
	f.deleteID = id
	return f.deleteErr
}

func serve(t *testing.T, fu *fakeUsers, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	s := NewHTTPServer(":0", logging.Nop(), fu, []string{"*"})
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestListUsers(t *testing.T) {
	fu := &fakeUsers{listOut: []models.User{{ID: "1", Name: "Bob", Email: "b@x.com", Role: models.RoleUser}}}

	rec := serve(t, fu, http.MethodGet, "/users?q=b%26o", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b&o", fu.listQ)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":"1","name":"Bob","email":"b@x.com","role":"user"}]`, rec.Body.String())
}

func TestListUsers_EmptyArray(t *testing.T) {
	rec := serve(t, &fakeUsers{listOut: []models.User{}}, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{"created", `{"name":"Ann","email":"a@x.io","role":"admin"}`, nil, http.StatusCreated},
		{"bad json", `{"name":`, nil, http.StatusBadRequest},
		{"invalid", `{"name":"","email":"a@x.io"}`, fmt.Errorf("%w: name is required", models.ErrInvalidInput), http.StatusBadRequest},
		{"storage", `{"name":"Ann","email":"a@x.io"}`, errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fu := &fakeUsers{createErr: tt.err}
			rec := serve(t, fu, http.MethodPost, "/users", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusCreated {
				assert.JSONEq(t, `{"id":"new","name":"Ann","email":"a@x.io","role":"admin"}`, rec.Body.String())
				return
			}
			var e errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
			assert.NotEmpty(t, e.Error)
			assert.NotContains(t, e.Error, "db down")
		})
	}
}

func TestUpdateUser(t *testing.T) {
	fu := &fakeUsers{}
	rec := serve(t, fu, http.MethodPut, "/users/a%2Fb%20c", `{"name":"Ann","email":"a@x.io","role":"user"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a/b c", fu.updateID)

	fu = &fakeUsers{updateErr: fmt.Errorf("error updating user x: %w", users.ErrNotFound)}
	rec = serve(t, fu, http.MethodPut, "/users/x", `{"name":"Ann","email":"a@x.io"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	fu := &fakeUsers{}
	rec := serve(t, fu, http.MethodDelete, "/users/42", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "42", fu.deleteID)

	fu = &fakeUsers{deleteErr: users.ErrNotFound}
	rec = serve(t, fu, http.MethodDelete, "/users/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouting(t *testing.T) {
	assert.Equal(t, http.StatusMethodNotAllowed, serve(t, &fakeUsers{}, http.MethodPatch, "/users/1", "{}").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, &fakeUsers{}, http.MethodGet, "/nope", "").Code)
}

func TestCORSPreflight(t *testing.T) {
	s := NewHTTPServer(":0", logging.Nop(), &fakeUsers{}, []string{"http://ui.example"})

	req := httptest.NewRequest(http.MethodOptions, "/users/1", nil)
	req.Header.Set("Origin", "http://ui.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "http://ui.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)

	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

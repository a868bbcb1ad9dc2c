package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"community_survey/internal/models"
	"community_survey/internal/service"
)

func TestGetUser_UnknownReturnsOnlyID(t *testing.T) {
	s, users, _, _, _ := newMockService()
	users.profile = service.UserProfile{User: models.User{UserID: "user_new"}, Found: false}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/user_new", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body) != 1 || body["userId"] != "user_new" {
		t.Fatalf("expected only userId, got %v", body)
	}
	if users.lastGetID != "user_new" {
		t.Fatalf("service got id %q", users.lastGetID)
	}
}

func TestGetUser_KnownReturnsFullRecord(t *testing.T) {
	name := "Ada"
	s, users, _, _, _ := newMockService()
	users.profile = service.UserProfile{User: models.User{UserID: "user_1", Name: &name}, Found: true}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/user_1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["name"] != "Ada" {
		t.Fatalf("expected name, got %v", body)
	}
	if v, ok := body["email"]; !ok || v != nil {
		t.Fatalf("expected email:null, got %v", body)
	}
}

func TestGetUser_StorageFailure(t *testing.T) {
	s, users, _, _, _ := newMockService()
	users.getErr = errors.New("disk gone")
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/user_1", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), errLoadUser) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestSaveUser(t *testing.T) {
	s, users, _, _, _ := newMockService()
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/users/user_1",
		strings.NewReader(`{"name":"Ada","address":"12 High St"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if users.lastSaved.UserID != "user_1" || users.lastSaved.Name == nil || *users.lastSaved.Name != "Ada" {
		t.Fatalf("unexpected saved user %+v", users.lastSaved)
	}
	if users.lastSaved.Email != nil {
		t.Fatalf("missing field must clear the value, got %v", *users.lastSaved.Email)
	}
}

func TestSaveUser_EmptyBodyClearsProfile(t *testing.T) {
	s, users, _, _, _ := newMockService()
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/users/user_1", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if users.lastSaved.UserID != "user_1" || users.lastSaved.Name != nil {
		t.Fatalf("unexpected saved user %+v", users.lastSaved)
	}
}

func TestSaveUser_MalformedBody(t *testing.T) {
	s, _, _, _, _ := newMockService()
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/users/user_1", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

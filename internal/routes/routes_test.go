package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clinica/appointments-api/internal/auth"
	"github.com/clinica/appointments-api/internal/domain/center"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/infra/repository"
	"github.com/clinica/appointments-api/internal/models"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	centers := append([]models.Center{{Name: "Centro X", Address: "Calle X, 1"}}, center.Defaults...)
	if _, err := store.SeedCenters(context.Background(), centers); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r, Deps{
		Users:        store,
		Centers:      store,
		Appointments: store,
		Tokens:       auth.NewTokens("test-secret", time.Minute),
		Logger:       zap.NewNop(),
	})

	return &testServer{t: t, router: r}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(username, password string) string {
	s.t.Helper()

	w := s.do(http.MethodPost, "/register", "", gin.H{"username": username, "password": password})
	if w.Code != http.StatusOK {
		s.t.Fatalf("register %s: %d %s", username, w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/login", "", gin.H{"username": username, "password": password})
	if w.Code != http.StatusOK {
		s.t.Fatalf("login %s: %d %s", username, w.Code, w.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decode(s.t, w, &resp)
	if resp.AccessToken == "" {
		s.t.Fatal("missing access_token")
	}
	return resp.AccessToken
}

type appointmentView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Center    string `json:"center"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
	Cancel    int    `json:"cancel"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, w.Code, w.Body.String())
	}
	var body httperr.HTTPError
	decode(t, w, &body)
	if body.Code != code {
		t.Fatalf("expected error_code %s, got %+v", code, body)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice", "pw1")

	// centers
	w := s.do(http.MethodGet, "/centers", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("centers: %d %s", w.Code, w.Body.String())
	}
	var centers []models.Center
	decode(t, w, &centers)
	if len(centers) != 4 || centers[0].Name != "Centro X" {
		t.Fatalf("unexpected centers: %+v", centers)
	}

	// create
	slot := gin.H{"center": "Centro X", "date": "25/12/2025 14:00:00"}
	w = s.do(http.MethodPost, "/date/create", token, slot)
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		Msg string `json:"msg"`
		ID  string `json:"id"`
	}
	decode(t, w, &created)
	if created.ID == "" {
		t.Fatalf("create must return the id: %s", w.Body.String())
	}

	// same slot again
	expectError(t, s.do(http.MethodPost, "/date/create", token, slot), http.StatusConflict, httperr.CodeSlotTaken)

	// mine
	w = s.do(http.MethodGet, "/date/getByUser", token, nil)
	var mine []appointmentView
	decode(t, w, &mine)
	if len(mine) != 1 {
		t.Fatalf("expected one appointment, got %+v", mine)
	}
	got := mine[0]
	if got.ID != created.ID || got.Username != "alice" || got.Center != "Centro X" ||
		got.Date != "25/12/2025 14:00:00" || got.Cancel != 0 {
		t.Fatalf("unexpected appointment: %+v", got)
	}
	if _, err := time.Parse("02/01/2006 15:04:05", got.CreatedAt); err != nil {
		t.Fatalf("created_at %q: %v", got.CreatedAt, err)
	}

	// by day
	w = s.do(http.MethodPost, "/date/getByDay", token, gin.H{"day": "25/12/2025"})
	var day []appointmentView
	decode(t, w, &day)
	if len(day) != 1 {
		t.Fatalf("expected one appointment on the day, got %+v", day)
	}

	// cancel
	w = s.do(http.MethodPost, "/date/delete", token, slot)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/dates", token, nil)
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
	}

	// the slot is free again
	w = s.do(http.MethodPost, "/date/create", token, slot)
	if w.Code != http.StatusOK {
		t.Fatalf("rebook: %d %s", w.Code, w.Body.String())
	}
}

func TestCancelRules(t *testing.T) {
	s := newTestServer(t)
	alice := s.login("alice", "pw1")
	bob := s.login("bob", "pw2")

	slot := gin.H{"center": "Centro X", "date": "25/12/2025 14:00:00"}
	w := s.do(http.MethodPost, "/date/create", alice, slot)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, w, &created)

	expectError(t, s.do(http.MethodPost, "/date/delete", bob, slot), http.StatusForbidden, httperr.CodeUnauthorized)
	expectError(t, s.do(http.MethodPost, "/date/delete", bob, gin.H{"id": created.ID}), http.StatusForbidden, httperr.CodeUnauthorized)
	expectError(t,
		s.do(http.MethodPost, "/date/delete", alice, gin.H{"center": "Centro X", "date": "25/12/2025 15:00:00"}),
		http.StatusNotFound, httperr.CodeAppointmentNotFound,
	)

	w = s.do(http.MethodPost, "/date/delete", alice, gin.H{"id": created.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("delete by id: %d %s", w.Code, w.Body.String())
	}
	expectError(t, s.do(http.MethodPost, "/date/delete", alice, gin.H{"id": created.ID}), http.StatusNotFound, httperr.CodeAppointmentNotFound)
}

func TestCreateErrors(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice", "pw1")

	expectError(t, s.do(http.MethodPost, "/date/create", token, gin.H{"center": "Centro X"}), http.StatusBadRequest, httperr.CodeBadRequest)
	expectError(t,
		s.do(http.MethodPost, "/date/create", token, gin.H{"center": "Nope", "date": "25/12/2025 14:00:00"}),
		http.StatusBadRequest, httperr.CodeCenterNotFound,
	)
	expectError(t,
		s.do(http.MethodPost, "/date/create", token, gin.H{"center": "Centro X", "date": "2025-12-25T14:00"}),
		http.StatusBadRequest, httperr.CodeInvalidDateFormat,
	)
	expectError(t, s.do(http.MethodPost, "/date/getByDay", token, gin.H{"day": "25-12-2025"}), http.StatusBadRequest, httperr.CodeInvalidDateFormat)
	expectError(t, s.do(http.MethodPost, "/date/getByDay", token, gin.H{}), http.StatusBadRequest, httperr.CodeBadRequest)
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/centers"},
		{http.MethodGet, "/profile"},
		{http.MethodPost, "/date/create"},
		{http.MethodPost, "/date/getByDay"},
		{http.MethodGet, "/date/getByUser"},
		{http.MethodPost, "/date/delete"},
		{http.MethodGet, "/dates"},
	}

	for _, p := range paths {
		t.Run(p.path, func(t *testing.T) {
			expectError(t, s.do(p.method, p.path, "", nil), http.StatusUnauthorized, httperr.CodeUnauthenticated)
			expectError(t, s.do(p.method, p.path, "not-a-jwt", nil), http.StatusUnauthorized, httperr.CodeUnauthenticated)
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/register", "", gin.H{
		"username": "kike",
		"password": "kike1234",
		"name":     "Kike",
		"email":    "kike@joyfe.com",
		"date":     "01/01/2000",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}

	// idempotent, and the stored password is not replaced
	w = s.do(http.MethodPost, "/register", "", gin.H{"username": "kike", "password": "other"})
	var msg struct {
		Msg string `json:"msg"`
	}
	decode(t, w, &msg)
	if w.Code != http.StatusOK || msg.Msg != "user already exists" {
		t.Fatalf("re-register: %d %s", w.Code, w.Body.String())
	}
	expectError(t, s.do(http.MethodPost, "/login", "", gin.H{"username": "kike", "password": "other"}), http.StatusUnauthorized, httperr.CodeBadCredentials)

	expectError(t, s.do(http.MethodPost, "/register", "", gin.H{"username": "x"}), http.StatusBadRequest, httperr.CodeBadRequest)
	expectError(t,
		s.do(http.MethodPost, "/register", "", gin.H{"username": "x", "password": "y", "date": "2000-01-01"}),
		http.StatusBadRequest, httperr.CodeInvalidDateFormat,
	)
	expectError(t,
		s.do(http.MethodPost, "/register", "", gin.H{"username": "x", "password": "y", "email": "nope"}),
		http.StatusBadRequest, httperr.CodeBadRequest,
	)

	expectError(t, s.do(http.MethodPost, "/login", "", gin.H{"username": "ghost", "password": "x"}), http.StatusUnauthorized, httperr.CodeBadCredentials)
	expectError(t, s.do(http.MethodPost, "/login", "", gin.H{}), http.StatusUnauthorized, httperr.CodeBadCredentials)

	w = s.do(http.MethodPost, "/login", "", gin.H{"username": "kike", "password": "kike1234"})
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &tok)

	w = s.do(http.MethodGet, "/profile", tok.AccessToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile: %d %s", w.Code, w.Body.String())
	}
	var profile map[string]any
	decode(t, w, &profile)
	if profile["username"] != "kike" || profile["email"] != "kike@joyfe.com" {
		t.Fatalf("unexpected profile: %v", profile)
	}
	if _, leaked := profile["password"]; leaked {
		t.Fatal("password must not be exposed")
	}
}

func TestProfileForDeletedUser(t *testing.T) {
	s := newTestServer(t)
	token, err := auth.NewTokens("test-secret", time.Minute).Issue("ghost")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	expectError(t, s.do(http.MethodGet, "/profile", token, nil), http.StatusNotFound, httperr.CodeUserNotFound)
}

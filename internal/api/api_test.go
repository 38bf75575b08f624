package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/celerix-dev/gamingtech-store/internal/accounts"
	"github.com/celerix-dev/gamingtech-store/internal/catalog"
	"github.com/celerix-dev/gamingtech-store/internal/common"
	"github.com/celerix-dev/gamingtech-store/internal/engine"
	"github.com/celerix-dev/gamingtech-store/internal/logging"
	"github.com/celerix-dev/gamingtech-store/internal/vault"
	"github.com/celerix-dev/gamingtech-store/pkg/schema"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func setupAccountRouter(t *testing.T) (*gin.Engine, *engine.FileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := engine.Open(filepath.Join(t.TempDir(), "users.json"))
	svc := accounts.NewService(
		store,
		vault.NewPasswordHasher(bcrypt.MinCost),
		vault.NewTokenManager("test-secret", time.Hour),
		logging.Nop(),
	)
	return NewAccountRouter(svc, logging.Nop()), store
}

func setupCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewCatalogRouter(catalog.New(logging.Nop()), logging.Nop())
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, http.NoBody)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func expect(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("Expected status %d, got %d (%s)", status, w.Code, w.Body.String())
	}
	if message == "" {
		return
	}
	if got := decode(t, w)["message"]; got != message {
		t.Errorf("Expected message %q, got %v", message, got)
	}
}

const aliceJSON = `{"firstName":"Alice","lastName":"Liddell","email":"a@b.com","password":"abcdef"}`

func TestRegisterAndLogin(t *testing.T) {
	r, _ := setupAccountRouter(t)

	w := do(r, "POST", "/api/auth/register", aliceJSON)
	expect(t, w, http.StatusCreated, "User registered successfully")
	user := decode(t, w)["user"].(map[string]any)
	if user["email"] != "a@b.com" || user["role"] != "user" {
		t.Errorf("unexpected user %v", user)
	}
	if _, ok := user["password"]; ok {
		t.Error("register response leaks the password hash")
	}

	w = do(r, "POST", "/api/auth/login", `{"email":"a@b.com","password":"abcdef"}`)
	expect(t, w, http.StatusOK, "Login successful")
	body := decode(t, w)
	if _, ok := body["user"].(map[string]any)["password"]; ok {
		t.Error("login response leaks the password hash")
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("Expected a token")
	}

	w = do(r, "POST", "/api/auth/verify", fmt.Sprintf(`{"token":%q}`, token))
	expect(t, w, http.StatusOK, "")
	verified := decode(t, w)
	if verified["valid"] != true {
		t.Errorf("Expected valid token, got %v", verified)
	}
	claims := verified["user"].(map[string]any)
	if claims["email"] != "a@b.com" || claims["userId"] != user["id"] {
		t.Errorf("unexpected claims %v", claims)
	}

	req, _ := http.NewRequest("POST", "/api/auth/verify", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	expect(t, w, http.StatusOK, "")
}

func TestRegisterErrors(t *testing.T) {
	r, store := setupAccountRouter(t)
	expect(t, do(r, "POST", "/api/auth/register", aliceJSON), http.StatusCreated, "")

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"duplicate", aliceJSON, http.StatusConflict, MsgEmailTaken},
		{"missing field", `{"firstName":"A","lastName":"B","email":"x@b.com"}`, http.StatusBadRequest, MsgMissingFields},
		{"empty field", `{"firstName":"","lastName":"B","email":"x@b.com","password":"abcdef"}`, http.StatusBadRequest, MsgMissingFields},
		{"empty body", "", http.StatusBadRequest, MsgMissingFields},
		{"short password", `{"firstName":"A","lastName":"B","email":"x@b.com","password":"abcde"}`, http.StatusBadRequest, MsgPasswordTooShort},
		{"malformed", `{"firstName":`, http.StatusBadRequest, MsgInvalidBody},
		{"wrong type", `{"firstName":1,"lastName":"B","email":"x@b.com","password":"abcdef"}`, http.StatusBadRequest, MsgInvalidBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expect(t, do(r, "POST", "/api/auth/register", tt.body), tt.status, tt.message)
		})
	}

	file, err := store.Load(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(file.Users) != 1 {
		t.Errorf("Expected exactly one stored user, got %d", len(file.Users))
	}
}

func TestLoginErrors(t *testing.T) {
	r, _ := setupAccountRouter(t)
	expect(t, do(r, "POST", "/api/auth/register", aliceJSON), http.StatusCreated, "")

	wrong := do(r, "POST", "/api/auth/login", `{"email":"a@b.com","password":"nope12"}`)
	unknown := do(r, "POST", "/api/auth/login", `{"email":"ghost@b.com","password":"abcdef"}`)
	expect(t, wrong, http.StatusUnauthorized, MsgInvalidCredentials)
	expect(t, unknown, http.StatusUnauthorized, MsgInvalidCredentials)
	if wrong.Body.String() != unknown.Body.String() {
		t.Errorf("wrong password and unknown email differ: %s vs %s", wrong.Body, unknown.Body)
	}

	expect(t, do(r, "POST", "/api/auth/login", `{"email":"a@b.com"}`), http.StatusBadRequest, MsgMissingCredentials)
}

func TestVerifyErrors(t *testing.T) {
	r, _ := setupAccountRouter(t)

	expect(t, do(r, "POST", "/api/auth/verify", `{}`), http.StatusUnauthorized, MsgMissingToken)
	expect(t, do(r, "POST", "/api/auth/verify", ""), http.StatusUnauthorized, MsgMissingToken)

	w := do(r, "POST", "/api/auth/verify", `{"token":"not.a.jwt"}`)
	expect(t, w, http.StatusUnauthorized, MsgInvalidToken)
	if decode(t, w)["valid"] != false {
		t.Errorf("Expected valid=false, got %s", w.Body)
	}
}

func TestUsers(t *testing.T) {
	r, _ := setupAccountRouter(t)
	expect(t, do(r, "POST", "/api/auth/register", aliceJSON), http.StatusCreated, "")

	w := do(r, "GET", "/api/users", "")
	expect(t, w, http.StatusOK, "")
	users := decode(t, w)["users"].([]any)
	if len(users) != 1 {
		t.Fatalf("Expected 1 user, got %d", len(users))
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Error("user listing leaks password hashes")
	}
}

func TestStoreFailureIsMasked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewAccountRouter(failingAccounts{}, logging.Nop())

	w := do(r, "GET", "/api/users", "")
	expect(t, w, http.StatusInternalServerError, MsgInternalServerError)
	if strings.Contains(w.Body.String(), "disk") {
		t.Errorf("internal detail leaked: %s", w.Body)
	}
}

func TestProducts(t *testing.T) {
	r := setupCatalogRouter()

	w := do(r, "GET", "/api/products", "")
	expect(t, w, http.StatusOK, "")
	var all []map[string]any
	json.Unmarshal(w.Body.Bytes(), &all)
	if len(all) != 6 {
		t.Errorf("Expected 6 products, got %d", len(all))
	}

	w = do(r, "GET", "/api/products?category=KEYBOARD", "")
	var keyboards []map[string]any
	json.Unmarshal(w.Body.Bytes(), &keyboards)
	if len(keyboards) != 2 {
		t.Errorf("Expected 2 keyboards, got %d", len(keyboards))
	}

	w = do(r, "GET", "/api/products/2", "")
	expect(t, w, http.StatusOK, "")
	if decode(t, w)["name"] != "Corsair K100 RGB" {
		t.Errorf("unexpected product %s", w.Body)
	}

	expect(t, do(r, "GET", "/api/products/42", ""), http.StatusNotFound, MsgProductNotFound)
	expect(t, do(r, "GET", "/api/products/abc", ""), http.StatusNotFound, MsgProductNotFound)
}

func TestComponents(t *testing.T) {
	r := setupCatalogRouter()

	w := do(r, "GET", "/api/components", "")
	expect(t, w, http.StatusOK, "")
	table := decode(t, w)
	for _, kind := range []string{"cpu", "gpu", "ram", "storage"} {
		if list, ok := table[kind].([]any); !ok || len(list) != 3 {
			t.Errorf("Expected 3 %s components, got %v", kind, table[kind])
		}
	}

	w = do(r, "GET", "/api/components/RAM", "")
	expect(t, w, http.StatusOK, "")
	expect(t, do(r, "GET", "/api/components/psu", ""), http.StatusNotFound, MsgComponentNotFound)
}

func TestBuildPC(t *testing.T) {
	r := setupCatalogRouter()

	body := `{"cpu":{"name":"c","price":600},"gpu":{"name":"g","price":1600},"ram":{"name":"r","price":200},"storage":{"name":"s","price":200}}`
	w := do(r, "POST", "/api/build-pc", body)
	expect(t, w, http.StatusOK, catalog.BuildMessage)
	quote := decode(t, w)
	if quote["totalPrice"] != "2600.00" || quote["performance"] != catalog.TierHigh {
		t.Errorf("unexpected quote %v", quote)
	}

	expect(t, do(r, "POST", "/api/build-pc", `{"cpu":{"price":1}}`), http.StatusBadRequest, MsgMissingComponents)
	expect(t, do(r, "POST", "/api/build-pc", ""), http.StatusBadRequest, MsgMissingComponents)
	expect(t, do(r, "POST", "/api/build-pc", `{"cpu":{"price":"cheap"}}`), http.StatusBadRequest, MsgInvalidBody)
	expect(t, do(r, "POST", "/api/build-pc",
		`{"cpu":{"price":-1},"gpu":{"price":1},"ram":{"price":1},"storage":{"price":1}}`),
		http.StatusBadRequest, MsgNegativePrice)
}

func TestContact(t *testing.T) {
	r := setupCatalogRouter()

	w := do(r, "POST", "/api/contact", `{"name":"N","email":"n@x.com","subject":"S","message":"hi"}`)
	expect(t, w, http.StatusOK, catalog.ContactReply)
	if _, ok := decode(t, w)["timestamp"]; !ok {
		t.Error("Expected a timestamp")
	}

	expect(t, do(r, "POST", "/api/contact", `{"name":"N","email":"n@x.com","subject":"S"}`), http.StatusBadRequest, MsgMissingFields)
}

func TestCommonBehaviour(t *testing.T) {
	acct, _ := setupAccountRouter(t)
	for name, r := range map[string]*gin.Engine{"account": acct, "catalog": setupCatalogRouter()} {
		t.Run(name, func(t *testing.T) {
			w := do(r, "GET", "/api/health", "")
			expect(t, w, http.StatusOK, "")
			if decode(t, w)["status"] != "OK" {
				t.Errorf("unexpected health %s", w.Body)
			}
			if w.Header().Get("Access-Control-Allow-Origin") != "*" {
				t.Error("missing CORS header")
			}
			if w.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("missing nosniff header")
			}

			expect(t, do(r, "GET", "/api/nope", ""), http.StatusNotFound, MsgRouteNotFound)
			expect(t, do(r, "OPTIONS", "/api/health", ""), http.StatusNoContent, "")
		})
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{common.ErrEmailTaken, http.StatusConflict, MsgEmailTaken},
		{fmt.Errorf("wrapped: %w", common.ErrPasswordTooShort), http.StatusBadRequest, MsgPasswordTooShort},
		{errors.Join(common.ErrInvalidToken, errors.New("expired")), http.StatusUnauthorized, MsgInvalidToken},
		{fmt.Errorf("%w (gpu)", common.ErrNegativePrice), http.StatusBadRequest, MsgNegativePrice},
		{errors.New("disk on fire"), http.StatusInternalServerError, MsgInternalServerError},
	}
	for _, tt := range tests {
		status, msg := StatusOf(tt.err)
		if status != tt.status || msg != tt.msg {
			t.Errorf("StatusOf(%v) = %d %q, want %d %q", tt.err, status, msg, tt.status, tt.msg)
		}
	}
}

type failingAccounts struct{}

var errDisk = errors.New("disk unavailable")

func (failingAccounts) Register(context.Context, accounts.Registration) (schema.PublicUser, error) {
	return schema.PublicUser{}, errDisk
}

func (failingAccounts) Login(context.Context, string, string) (*accounts.Session, error) {
	return nil, errDisk
}

func (failingAccounts) Verify(string) (*schema.Claims, error) { return nil, common.ErrInvalidToken }

func (failingAccounts) Users(context.Context) ([]schema.PublicUser, error) { return nil, errDisk }

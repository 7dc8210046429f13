package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"comunidade/internal/handler"
	"comunidade/internal/middleware"
	"comunidade/internal/model"
	"comunidade/internal/pkg"
	"comunidade/internal/service"
)

var testSecret = []byte("test-secret")

// memoryUserStore enforces the e-mail uniqueness the real table's index
// guarantees.
type memoryUserStore struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[uint64]*model.User{}}
}

func (s *memoryUserStore) Create(user *model.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	s.nextID++
	user.ID = s.nextID
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *memoryUserStore) EmailExists(email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryUserStore) FindByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memoryUserStore) FindByID(id uint64) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memoryUserStore) List() ([]model.User, error) {
	var users []model.User
	for _, u := range s.users {
		users = append(users, *u)
	}
	return users, nil
}

func (s *memoryUserStore) UpdateRole(id uint64, role string) error {
	if u, ok := s.users[id]; ok {
		u.Role = role
	}
	return nil
}

func newAuthRouter(store service.UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewAuthHandler(service.NewAuthService(store, testSecret, pkg.SMTPConfig{}))
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", middleware.Authenticate(testSecret), h.Me)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_RegisterMissingFields(t *testing.T) {
	r := newAuthRouter(newMemoryUserStore())

	w := postJSON(r, "/auth/register", `{"first_name":"Ana","email":"ana@exemplo.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "last_name")
	assert.Contains(t, w.Body.String(), "birth_date")
	assert.Contains(t, w.Body.String(), "password")
}

func TestAuthHandler_RegisterAndLoginFlow(t *testing.T) {
	r := newAuthRouter(newMemoryUserStore())

	w := postJSON(r, "/auth/register", `{
		"first_name":"Ana","last_name":"Silva","birth_date":"1990-05-10",
		"email":"ana@exemplo.com","password":"senhaForte123"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var registered struct {
		Message string                 `json:"message"`
		User    map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.Equal(t, "Membro", registered.User["role"])
	assert.NotContains(t, registered.User, "password_hash")
	assert.NotContains(t, registered.User, "password")

	// same normalized e-mail again conflicts
	w = postJSON(r, "/auth/register", `{
		"first_name":"Ana","last_name":"Silva","birth_date":"1990-05-10",
		"email":" ANA@Exemplo.com ","password":"outraSenha"
	}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "E-mail já cadastrado.")

	w = postJSON(r, "/auth/login", `{"email":"ana@exemplo.com","password":"senhaForte123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var logged struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	require.NotEmpty(t, logged.Token)

	// the token works against /auth/me
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+logged.Token)
	me := httptest.NewRecorder()
	r.ServeHTTP(me, req)
	assert.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), "ana@exemplo.com")
}

func TestAuthHandler_LoginInvalidCredentialsIdenticalMessage(t *testing.T) {
	store := newMemoryUserStore()
	hash, err := pkg.HashPassword("senhaCerta")
	require.NoError(t, err)
	require.NoError(t, store.Create(&model.User{
		FirstName: "Ana", LastName: "Silva", Email: "ana@exemplo.com",
		PasswordHash: hash, Role: model.RoleMember,
	}))
	r := newAuthRouter(store)

	wrongPass := postJSON(r, "/auth/login", `{"email":"ana@exemplo.com","password":"senhaErrada"}`)
	unknown := postJSON(r, "/auth/login", `{"email":"ninguem@exemplo.com","password":"senhaCerta"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, wrongPass.Body.String(), unknown.Body.String())
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	r := newAuthRouter(newMemoryUserStore())

	w := postJSON(r, "/auth/login", `{"email":"ana@exemplo.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email e senha são obrigatórios.")
}

package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hanviet-cards/backend/app/controllers"
	"hanviet-cards/backend/app/dto"
	jwtutil "hanviet-cards/backend/app/jwt"
	"hanviet-cards/backend/app/middleware"
	"hanviet-cards/backend/app/models"
	"hanviet-cards/backend/app/repo"
	"hanviet-cards/backend/app/services"
	"hanviet-cards/backend/router"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type harness struct {
	srv *httptest.Server
	db  *gorm.DB
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Card{}))

	userSvc := services.NewUserService(repo.NewUserRepository(gdb))
	cardSvc := services.NewCardService(repo.NewCardRepository(gdb))
	seedSvc := services.NewSeedService(repo.NewCardRepository(gdb), zerolog.Nop())

	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "test", ExpMin: 60}
	mw := &middleware.Auth{Signer: signer, Users: userSvc}

	h := router.NewRouter(
		controllers.NewHTTPController(),
		controllers.NewAuthController(userSvc, signer),
		controllers.NewCardController(cardSvc),
		controllers.NewAdminController(seedSvc),
		mw,
	)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &harness{srv: srv, db: gdb}
}

func (h *harness) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, h.srv.URL+path, rd)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func (h *harness) register(t *testing.T, username, password string) dto.AuthResponse {
	t.Helper()
	resp, body := h.do(t, http.MethodPost, "/auth/register", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var out dto.AuthResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestRegisterAndLoginFlow(t *testing.T) {
	h := newHarness(t)

	alice := h.register(t, "alice", "secret1")
	assert.Equal(t, models.RoleAdmin, alice.User.Role)
	assert.NotEmpty(t, alice.AccessToken)

	bob := h.register(t, "bob", "secret2")
	assert.Equal(t, models.RoleUser, bob.User.Role)

	// duplicate username
	resp, _ := h.do(t, http.MethodPost, "/auth/register", "", map[string]string{"username": "alice", "password": "x"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// login ok
	resp, body := h.do(t, http.MethodPost, "/auth/login", "", map[string]string{"username": "alice", "password": "secret1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.AuthResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "alice", out.User.Username)

	// wrong password and unknown user produce identical responses
	respA, bodyA := h.do(t, http.MethodPost, "/auth/login", "", map[string]string{"username": "alice", "password": "wrong"})
	respB, bodyB := h.do(t, http.MethodPost, "/auth/login", "", map[string]string{"username": "nobody", "password": "x"})
	assert.Equal(t, http.StatusUnauthorized, respA.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respB.StatusCode)
	assert.Equal(t, string(bodyA), string(bodyB))

	// missing fields
	resp, _ = h.do(t, http.MethodPost, "/auth/register", "", map[string]string{"username": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCardEndpoints_GuardsAndErrors(t *testing.T) {
	h := newHarness(t)
	bob := h.register(t, "bob", "secret")

	// unauthenticated create rejected
	resp, _ := h.do(t, http.MethodPost, "/cards", "", map[string]string{"chinese": "猫", "vietnamese": "Con mèo"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// invalid token rejected
	resp, _ = h.do(t, http.MethodPost, "/cards", "garbage", map[string]string{"chinese": "猫", "vietnamese": "Con mèo"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// validation error
	resp, _ = h.do(t, http.MethodPost, "/cards", bob.AccessToken, map[string]string{"chinese": "猫"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// create ok
	resp, body := h.do(t, http.MethodPost, "/cards", bob.AccessToken, map[string]any{"chinese": "猫", "vietnamese": "Con mèo", "categories": []string{"Animals"}})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var card models.Card
	require.NoError(t, json.Unmarshal(body, &card))
	require.NotNil(t, card.AuthorID)
	assert.Equal(t, bob.User.ID, *card.AuthorID)
	assert.False(t, card.IsSystemCard)

	// public get by id
	resp, body = h.do(t, http.MethodGet, "/cards/"+card.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// unknown id
	resp, _ = h.do(t, http.MethodGet, "/cards/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// public list with category filter
	resp, body = h.do(t, http.MethodGet, "/cards?category=Animals", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cards []models.Card
	require.NoError(t, json.Unmarshal(body, &cards))
	assert.Len(t, cards, 1)

	resp, body = h.do(t, http.MethodGet, "/cards?category=Plants", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &cards))
	assert.Empty(t, cards)
}

func TestTokenForDeletedUserIsRejected(t *testing.T) {
	h := newHarness(t)
	h.register(t, "alice", "secret")
	bob := h.register(t, "bob", "secret")

	require.NoError(t, h.db.Where("username = ?", "bob").Delete(&models.User{}).Error)

	resp, _ := h.do(t, http.MethodPost, "/cards", bob.AccessToken, map[string]string{"chinese": "猫", "vietnamese": "Con mèo"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminSeedEndpoint(t *testing.T) {
	h := newHarness(t)
	alice := h.register(t, "alice", "secret")
	bob := h.register(t, "bob", "secret")

	// non-admin cannot seed
	resp, _ := h.do(t, http.MethodPost, "/admin/seed", bob.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// no token at all
	resp, _ = h.do(t, http.MethodPost, "/admin/seed", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// admin seeds; structured result
	resp, body := h.do(t, http.MethodPost, "/admin/seed", alice.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result dto.SeedResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)

	resp, body = h.do(t, http.MethodGet, "/cards", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cards []models.Card
	require.NoError(t, json.Unmarshal(body, &cards))
	assert.Len(t, cards, 15)
}

// The full study-app scenario: first registrant is admin, owners mutate their
// own cards, admins mutate anything.
func TestEndToEndScenario(t *testing.T) {
	h := newHarness(t)

	alice := h.register(t, "alice", "secret1")
	require.Equal(t, models.RoleAdmin, alice.User.Role)

	bob := h.register(t, "bob", "secret2")
	require.Equal(t, models.RoleUser, bob.User.Role)

	// seed the reference deck
	resp, _ := h.do(t, http.MethodPost, "/admin/seed", alice.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// bob creates a card
	resp, body := h.do(t, http.MethodPost, "/cards", bob.AccessToken, map[string]string{"chinese": "猫", "vietnamese": "Con mèo"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var bobCard models.Card
	require.NoError(t, json.Unmarshal(body, &bobCard))
	require.NotNil(t, bobCard.AuthorID)
	assert.Equal(t, bob.User.ID, *bobCard.AuthorID)
	assert.False(t, bobCard.IsSystemCard)

	// find a seeded system card
	resp, body = h.do(t, http.MethodGet, "/cards", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cards []models.Card
	require.NoError(t, json.Unmarshal(body, &cards))
	var sysCard *models.Card
	for i := range cards {
		if cards[i].IsSystemCard {
			sysCard = &cards[i]
			break
		}
	}
	require.NotNil(t, sysCard)
	assert.Nil(t, sysCard.AuthorID)

	// bob cannot delete a system card
	resp, _ = h.do(t, http.MethodDelete, "/cards/"+sysCard.ID, bob.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// alice can
	resp, body = h.do(t, http.MethodDelete, "/cards/"+sysCard.ID, alice.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var msg dto.MessageResponse
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.NotEmpty(t, msg.Message)

	// the card is gone from the list
	resp, body = h.do(t, http.MethodGet, "/cards", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &cards))
	for _, c := range cards {
		assert.NotEqual(t, sysCard.ID, c.ID)
	}
}

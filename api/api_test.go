package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nyumbani/listing-api/internal/model"
	"nyumbani/listing-api/pkg/middleware"
	"nyumbani/listing-api/pkg/security"
	"nyumbani/listing-api/pkg/util"
)

const testPassword = "secret123"

type gin_h = map[string]any

func newTestAPI(t *testing.T) *API {
	t.Helper()

	gin.SetMode(gin.TestMode)
	zap.ReplaceGlobals(zap.NewNop())

	d, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	require.NoError(t, d.AutoMigrate(model.User{}, model.Property{}))

	viper.Set("ratelimit.auth_rps", 1000)
	viper.Set("ratelimit.auth_burst", 1000)

	a := &API{
		DB:     d,
		Argon:  security.NewArgon(),
		Tokens: security.NewTokenCodec("test-secret", time.Hour),
	}

	a.Router = gin.New()
	a.Router.Use(middleware.NewRequestIDMiddleware())
	a.registerRoutes()

	return a
}

func doRequest(t *testing.T, a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

// seedUser inserts a user directly and returns it with a valid token,
// bypassing the register endpoint
func seedUser(t *testing.T, a *API, name, email, phone string, role model.Role) (*model.User, string) {
	t.Helper()

	hash, err := a.Argon.GenerateFromPassword(testPassword)
	require.NoError(t, err)

	user := &model.User{
		ID:           util.RandStr(16),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, a.DB.Create(user).Error)

	token, err := a.Tokens.Issue(user.ID, user.Role)
	require.NoError(t, err)

	return user, token
}

// newExpiredToken signs a token with the test secret that expired an
// hour ago
func newExpiredToken(a *API, user *model.User) (string, error) {
	codec := security.NewTokenCodec("test-secret", -time.Hour)
	return codec.Issue(user.ID, user.Role)
}

func seedProperty(t *testing.T, a *API, ownerID string) *model.Property {
	t.Helper()

	price := 45000.0
	property := &model.Property{
		ID:       util.RandStr(16),
		UserID:   ownerID,
		Title:    "Two bedroom in Kilimani",
		Location: "Nairobi",
		Type:     "Apartment",
		Price:    &price,
		Bedrooms: 2,
	}
	require.NoError(t, a.DB.Create(property).Error)

	return property
}

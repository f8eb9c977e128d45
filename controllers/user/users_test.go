package userControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/PhzzX0/esports-api/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}, &models.Product{}))

	r := gin.New()
	r.POST("/auth/register", Register(db))
	r.POST("/auth/login", Login(db))
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(t, r, "/auth/register", RegisterInput{
		Username: "ranielison",
		Email:    "user@teste.com",
		Password: "123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var registered map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered["token"])

	w = postJSON(t, r, "/auth/login", LoginInput{Username: "ranielison", Password: "123456"})
	require.Equal(t, http.StatusOK, w.Code)

	var logged map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	assert.NotEmpty(t, logged["token"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(t, r, "/auth/register", RegisterInput{
		Username: "sigano", Email: "sigano@teste.com", Password: "123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/auth/register", RegisterInput{
		Username: "sigano", Email: "outro@teste.com", Password: "123456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(t, r, "/auth/register", RegisterInput{
		Username: "cosern", Email: "cosern@teste.com", Password: "123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/auth/login", LoginInput{Username: "cosern", Password: "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	r, _ := newTestRouter(t)
	w := postJSON(t, r, "/auth/login", LoginInput{Username: "ghost", Password: "123456"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/core/appctx"
)

type staticValidator struct {
	operator *appctx.Operator
	err      error
}

func (v *staticValidator) ValidateToken(_ string) (*appctx.Operator, error) {
	return v.operator, v.err
}

func newTestRouter(validator TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	router.Use(Trace())
	router.Use(ErrorHandler())

	protected := router.Group("", Auth(validator))
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"operator": appctx.GetOperatorName(c.Request.Context())})
	})

	router.GET("/shortage", func(c *gin.Context) {
		_ = c.Error(apperror.NewInsufficientStock("stock-1", 150, 90))
		c.Abort()
	})
	router.GET("/boom", func(c *gin.Context) {
		panic("unexpected")
	})
	return router
}

func decodeError(t *testing.T, body []byte) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestAuthMissingHeader(t *testing.T) {
	router := newTestRouter(&staticValidator{operator: &appctx.Operator{Username: "admin"}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec.Body.Bytes())
	assert.Equal(t, apperror.CodeUnauthorized, resp.Error.Code)
}

func TestAuthMalformedHeader(t *testing.T) {
	router := newTestRouter(&staticValidator{operator: &appctx.Operator{Username: "admin"}})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	router := newTestRouter(&staticValidator{err: errors.New("expired")})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec.Body.Bytes())
	assert.Equal(t, apperror.CodeUnauthorized, resp.Error.Code)
}

func TestAuthBindsOperator(t *testing.T) {
	router := newTestRouter(&staticValidator{operator: &appctx.Operator{Username: "carol", SessionID: "s1"}})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "carol", body["operator"])
}

func TestErrorHandlerEnvelope(t *testing.T) {
	router := newTestRouter(&staticValidator{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shortage", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeError(t, rec.Body.Bytes())
	assert.Equal(t, apperror.CodeInsufficientStock, resp.Error.Code)
	assert.EqualValues(t, 150, resp.Error.Details["requested"])
	assert.EqualValues(t, 90, resp.Error.Details["available"])
	assert.NotEmpty(t, resp.Error.RequestID)
}

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	router := newTestRouter(&staticValidator{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec.Body.Bytes())
	assert.Equal(t, apperror.CodeInternal, resp.Error.Code)
}

func TestTracePropagatesRequestID(t *testing.T) {
	router := newTestRouter(&staticValidator{})

	req := httptest.NewRequest(http.MethodGet, "/shortage", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	resp := decodeError(t, rec.Body.Bytes())
	assert.Equal(t, "req-42", resp.Error.RequestID)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gan0622/DevForFun/pkg/apperror"
	"github.com/gan0622/DevForFun/pkg/auth"
	"github.com/gan0622/DevForFun/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newErrorRouter(failWith error) *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNop()))
	router.GET("/fail", func(c *gin.Context) {
		c.Error(failWith)
	})
	return router
}

func TestErrorHandler_MapsDomainErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "not found maps to 404",
			err:        apperror.NewNotFound("profile", uuid.New().String()),
			wantStatus: http.StatusNotFound,
			wantError:  "not found",
		},
		{
			name:       "unavailable maps to 503",
			err:        apperror.NewUnavailable("github", "repository lookup failed", errors.New("connection refused")),
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "service unavailable",
		},
		{
			name:       "invalid input maps to 400",
			err:        apperror.NewInvalidInput("invalid JSON body", errors.New("unexpected EOF")),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid input",
		},
		{
			name:       "conflict maps to 409",
			err:        apperror.NewConflict("profile", "owner_id", uuid.New().String()),
			wantStatus: http.StatusConflict,
			wantError:  "conflict",
		},
		{
			name:       "permission denied maps to 403",
			err:        apperror.NewPermissionDenied("ownerID not found in context"),
			wantStatus: http.StatusForbidden,
			wantError:  "permission denied",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newErrorRouter(tc.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantError, body["error"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestErrorHandler_UnknownErrorMapsTo500(t *testing.T) {
	router := newErrorRouter(errors.New("something unexpected"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])
}

func TestErrorHandler_LeavesWrittenResponsesAlone(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNop()))
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "done"})
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func newAuthRouter(jwtSvc *auth.JWTService) *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNop()))

	private := router.Group("/")
	private.Use(AuthMiddleware(jwtSvc))
	private.GET("/me", func(c *gin.Context) {
		ownerID, ok := GetOwnerIDFromGinContext(c)
		if !ok {
			c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"owner_id": ownerID.String()})
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	ownerID := uuid.New()

	token, err := jwtSvc.GenerateToken(ownerID)
	require.NoError(t, err)

	router := newAuthRouter(jwtSvc)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ownerID.String(), body["owner_id"])
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)

	foreignToken, err := auth.NewJWTService("other-secret", time.Hour).GenerateToken(uuid.New())
	require.NoError(t, err)

	// Signed with the right secret but carrying a zero owner id.
	nilOwnerToken, err := jwtSvc.GenerateToken(uuid.Nil)
	require.NoError(t, err)

	cases := []struct {
		name       string
		authHeader string
	}{
		{name: "missing header", authHeader: ""},
		{name: "not a bearer token", authHeader: "Basic abc123"},
		{name: "wrong secret", authHeader: "Bearer " + foreignToken},
		{name: "garbage token", authHeader: "Bearer not-a-token"},
		{name: "no owner identity", authHeader: "Bearer " + nilOwnerToken},
	}

	router := newAuthRouter(jwtSvc)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HealisPortal/util"
)

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString("userId"),
			"role":   c.GetString("role"),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func getProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestJWTAuth_MissingTokenIsUnauthorized(t *testing.T) {
	router := protectedRouter()

	recorder := getProtected(router, "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), util.AUTH_TOKEN_REQUIRED)
}

func TestJWTAuth_MangledTokenIsForbidden(t *testing.T) {
	router := protectedRouter()

	recorder := getProtected(router, "Bearer not-a-real-token")

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), util.INVALID_OR_EXPIRED_TOKEN)
}

func TestJWTAuth_SignedTokenPutsClaimsOnContext(t *testing.T) {
	router := protectedRouter()

	token, err := SignToken("user-42", util.RoleDoctor)
	require.NoError(t, err)

	recorder := getProtected(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"userId":"user-42"`)
	assert.Contains(t, recorder.Body.String(), `"role":"doctor"`)
}

func TestRequireRole_BlocksMismatchedRole(t *testing.T) {
	router := protectedRouter(RequireRole(util.RoleAdmin))

	token, err := SignToken("user-42", util.RoleDoctor)
	require.NoError(t, err)

	recorder := getProtected(router, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), util.ADMIN_ACCESS_REQUIRED)
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	router := protectedRouter(RequireRole(util.RoleAdmin))

	token, err := SignToken("admin-1", util.RoleAdmin)
	require.NoError(t, err)

	recorder := getProtected(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireRole_PharmacyOnlyMessage(t *testing.T) {
	router := protectedRouter(RequireRole(util.RolePharmacy))

	token, err := SignToken("user-42", util.RoleLab)
	require.NoError(t, err)

	recorder := getProtected(router, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), util.PHARMACY_ACCESS_REQUIRED)
}

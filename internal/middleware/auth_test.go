package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleTestContext(t *testing.T, claims *util.Claims) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/admin/assess-levels", nil)
	if claims != nil {
		c.Set("user", claims)
	}
	return c, w
}

func TestRoleMiddlewareAllowsAdmin(t *testing.T) {
	c, _ := roleTestContext(t, &util.Claims{UserID: 1, Role: model.Admin})

	RoleMiddleware(model.Admin)(c)

	assert.False(t, c.IsAborted())
}

func TestRoleMiddlewareForbidsLearner(t *testing.T) {
	c, w := roleTestContext(t, &util.Claims{UserID: 2, Role: model.Learner})

	RoleMiddleware(model.Admin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddlewareRejectsMissingClaims(t *testing.T) {
	c, w := roleTestContext(t, nil)

	RoleMiddleware(model.Admin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

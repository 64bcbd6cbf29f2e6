package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// 配方的三个复合主键路由都必须注册，ID非法时在进服务层之前就返回400
func TestCompositionCompositeKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/compositions/abc/2"},
		{http.MethodPut, "/compositions/7/xyz"},
		{http.MethodDelete, "/compositions/abc/xyz"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tt.method, tt.path)
		assert.JSONEq(t, `{"detail":"ID格式错误"}`, w.Body.String())
	}
}

func TestHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

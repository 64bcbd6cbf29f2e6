package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"pharmadmin/internal/fetcher"
	"pharmadmin/pkg/config"
	"pharmadmin/pkg/flash"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, backend *httptest.Server) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.LoadHTMLGlob("../../web/templates/*.html")

	api := fetcher.New(&config.APIConfig{BaseURL: backend.URL})
	notices := flash.NewStore(&config.RedisConfig{Host: "localhost", Port: 6379, Prefix: "test"})
	registerRoutes(router, NewHandler(api, notices))
	return router
}

func TestReportMissingRequiredInputBlocksRequest(t *testing.T) {
	var requests int64
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	router := newTestRouter(t, backend)

	// 必填的药剂类型为空：本地拦截，不发任何请求
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/clients-by-type?action=list&medication_type=&start_date=2024-01-01&end_date=2024-01-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), atomic.LoadInt64(&requests))
	assert.Contains(t, w.Body.String(), "请先填写")
}

func TestReportWithInputsIssuesRequest(t *testing.T) {
	var requests int64
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		assert.Equal(t, "/queries/clients/by-medication-type", r.URL.Path)
		assert.Equal(t, "manufactured", r.URL.Query().Get("medication_type"))
		w.Write([]byte(`[{"client_id":1,"surname":"王"}]`))
	}))
	defer backend.Close()

	router := newTestRouter(t, backend)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/clients-by-type?action=list&medication_type=manufactured&start_date=2024-01-01&end_date=2024-01-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), atomic.LoadInt64(&requests))
	assert.Contains(t, w.Body.String(), "王")
}

func TestReportCountAction(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/queries/clients/unclaimed-orders/count", r.URL.Path)
		w.Write([]byte(`{"count":3}`))
	}))
	defer backend.Close()

	router := newTestRouter(t, backend)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/unclaimed?action=count", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="count-result"`)
}

func TestUnknownReportCard(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer backend.Close()

	router := newTestRouter(t, backend)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/nonexistent", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestManagerCannotOpenClientsTable(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	router := newTestRouter(t, backend)

	// 管理员只看得到入库和盘点
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/roles/manager/tables/clients", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/roles/manager/tables/deliveries", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTableViewRendersFetchError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"查询失败"}`))
	}))
	defer backend.Close()

	router := newTestRouter(t, backend)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/roles/manager/tables/inventories", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// detail优先于传输层错误展示
	assert.Contains(t, w.Body.String(), "查询失败")
}

func TestCreateFailureKeepsDraftAndDetail(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"药品不存在"}`))
			return
		}
		w.Write([]byte(`{"data":[],"headers":{"medication_id":"药品编号","amount":"数量"}}`))
	}))
	defer backend.Close()

	router := newTestRouter(t, backend)

	form := "__field=medication_id&__field=amount&medication_id=999&amount=10"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/roles/manager/tables/deliveries/create", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	// 错误detail回显，草稿字段保持原值
	assert.Contains(t, body, "药品不存在")
	assert.Contains(t, body, `value="999"`)
	// 回显的表单沿用后端的字段标题，不退化成裸字段名
	assert.Contains(t, body, "药品编号")
}

func TestUpdateFailureKeepsLabels(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"到货记录不存在"}`))
			return
		}
		w.Write([]byte(`{"data":[],"headers":{"amount":"数量"}}`))
	}))
	defer backend.Close()

	router := newTestRouter(t, backend)

	form := "__field=amount&amount=5"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/roles/manager/tables/deliveries/update/1", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "到货记录不存在")
	assert.Contains(t, body, `value="5"`)
	assert.Contains(t, body, "数量")
}

package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"pharmadmin/internal/record"
	"pharmadmin/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return New(&config.APIConfig{BaseURL: server.URL})
}

func TestFetchCollectionBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clients", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"surname":"王"}]`))
	}))
	defer server.Close()

	collection, err := newTestClient(server).FetchCollection(context.Background(), "/clients")
	require.NoError(t, err)
	require.Len(t, collection.Records, 1)
	assert.Equal(t, []string{"id", "surname"}, collection.FirstKeys())
}

func TestFetchCollectionWrappedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":1}],"headers":{"id":"编号"}}`))
	}))
	defer server.Close()

	collection, err := newTestClient(server).FetchCollection(context.Background(), "/medications")
	require.NoError(t, err)
	require.Len(t, collection.Records, 1)
	assert.Equal(t, "编号", collection.Label("id"))
}

func TestServerDetailTakesPrecedence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"客户不存在"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).FetchCollection(context.Background(), "/clients")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "客户不存在", apiErr.Error())
}

func TestErrorWithoutDetailFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream down`))
	}))
	defer server.Close()

	_, err := newTestClient(server).FetchCollection(context.Background(), "/clients")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Contains(t, apiErr.Error(), "502")
}

func TestCreateSendsCoercedBody(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"id":9,"surname":"王"}`))
	}))
	defer server.Close()

	rec := record.New()
	rec.Set("surname", "王")
	rec.Set("phone_number", "0123")

	created, err := newTestClient(server).Create(context.Background(), "/clients", rec)
	require.NoError(t, err)

	assert.Equal(t, "王", received["surname"])
	assert.Equal(t, "0123", received["phone_number"])

	id, _ := created.Get("id")
	assert.Equal(t, json.Number("9"), id)
}

func TestUpdateAndDeletePaths(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.Update(context.Background(), "/clients", "1", record.New())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/clients/1", gotPath)

	require.NoError(t, client.Delete(context.Background(), "/compositions", "7/2"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	// 复合主键按路径段传递
	assert.Equal(t, "/compositions/7/2", gotPath)
}

func TestQueryRowsAndCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/queries/orders/producing":
			w.Write([]byte(`[{"order_id":1}]`))
		case "/queries/orders/producing/count":
			w.Write([]byte(`{"count":4}`))
		}
	}))
	defer server.Close()

	client := newTestClient(server)

	rows, err := client.QueryRows(context.Background(), "/queries/orders/producing", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	count, err := client.QueryCount(context.Background(), "/queries/orders/producing/count", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestQueryParamsEncoded(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	params := url.Values{}
	params.Set("medication_name", "水杨酸软膏")
	params.Set("start_date", "2024-01-01")

	_, err := newTestClient(server).QueryRows(context.Background(), "/queries/clients/by-medication-name", params)
	require.NoError(t, err)
	assert.Equal(t, "水杨酸软膏", gotQuery.Get("medication_name"))
	assert.Equal(t, "2024-01-01", gotQuery.Get("start_date"))
}

package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pharmadmin/internal/record"
	"pharmadmin/pkg/config"
)

// APIError 后端返回的结构化错误。
// detail文本优先于传输层的通用错误信息展示给用户。
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("请求失败，状态码 %d", e.StatusCode)
}

// Client 资源API的通用客户端
type Client struct {
	baseURL string
	http    *http.Client
}

// New 按配置创建客户端，超时为0时不限制
func New(cfg *config.APIConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// FetchCollection 拉取整张表并归一化两种响应形态
func (c *Client) FetchCollection(ctx context.Context, endpoint string) (*record.Collection, error) {
	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return record.DecodeCollection(body)
}

// Create POST一条记录
func (c *Client) Create(ctx context.Context, endpoint string, rec *record.Record) (*record.Record, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Update PUT一条记录
func (c *Client) Update(ctx context.Context, endpoint, id string, rec *record.Record) (*record.Record, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodPut, joinPath(endpoint, id), payload)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Delete DELETE一条记录
func (c *Client) Delete(ctx context.Context, endpoint, id string) error {
	_, err := c.do(ctx, http.MethodDelete, joinPath(endpoint, id), nil)
	return err
}

// QueryRows 报表查询，结果是行数组
func (c *Client) QueryRows(ctx context.Context, path string, params url.Values) ([]*record.Record, error) {
	body, err := c.do(ctx, http.MethodGet, withQuery(path, params), nil)
	if err != nil {
		return nil, err
	}
	collection, err := record.DecodeCollection(body)
	if err != nil {
		return nil, err
	}
	return collection.Records, nil
}

// QueryCount 报表统计，结果是{count: n}
func (c *Client) QueryCount(ctx context.Context, path string, params url.Values) (int64, error) {
	body, err := c.do(ctx, http.MethodGet, withQuery(path, params), nil)
	if err != nil {
		return 0, err
	}
	var result struct {
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("解析统计结果失败: %w", err)
	}
	return result.Count, nil
}

// do 发请求并处理错误。非2xx响应先试着从响应体提detail。
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil {
		apiErr.Detail = detail.Detail
	}
	return nil, apiErr
}

func decodeRecord(body []byte) (*record.Record, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	rec := record.New()
	if err := json.Unmarshal(body, rec); err != nil {
		return nil, fmt.Errorf("解析记录失败: %w", err)
	}
	return rec, nil
}

func joinPath(endpoint, id string) string {
	return strings.TrimRight(endpoint, "/") + "/" + id
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

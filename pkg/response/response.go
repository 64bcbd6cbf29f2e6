package response

import (
	"net/http"

	"pharmadmin/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorBody 错误返回格式，detail字段由前端原样展示
type ErrorBody struct {
	Detail string `json:"detail"`
}

// ListBody 集合返回格式：记录数组加字段标题字典
type ListBody struct {
	Data    interface{}       `json:"data"`
	Headers map[string]string `json:"headers"`
}

// CountBody 计数查询返回格式
type CountBody struct {
	Count int64 `json:"count"`
}

// OK 成功返回单条数据
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// List 成功返回集合和字段标题
func List(c *gin.Context, data interface{}, headers map[string]string) {
	c.JSON(http.StatusOK, ListBody{Data: data, Headers: headers})
}

// Count 成功返回计数
func Count(c *gin.Context, count int64) {
	c.JSON(http.StatusOK, CountBody{Count: count})
}

// NoContent 删除成功返回
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Detail 错误返回
func Detail(c *gin.Context, code int, detail string) {
	c.JSON(code, ErrorBody{Detail: detail})
}

// ========== 错误快捷方法 ==========

func BadRequest(c *gin.Context, detail string) {
	Detail(c, errors.CodeInvalidParam, detail)
}

func NotFound(c *gin.Context, detail string) {
	Detail(c, errors.CodeNotFound, detail)
}

func ServerError(c *gin.Context, detail string) {
	Detail(c, errors.CodeServerError, detail)
}

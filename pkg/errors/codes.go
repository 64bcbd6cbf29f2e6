package errors

// ========== HTTP状态码常量定义 ==========

const (
	CodeOK        = 200
	CodeCreated   = 201
	CodeNoContent = 204
)

const (
	CodeInvalidParam = 400
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeServerError  = 500
)

package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// bindDetail 把绑定错误转成可读的detail文案，校验错误只取第一条
func bindDetail(err error) string {
	if validationErr, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErr {
			if fieldErr.Tag() == "required" {
				return fmt.Sprintf("缺少必填字段 %s", fieldErr.Field())
			}
			return fmt.Sprintf("字段 %s 验证失败", fieldErr.Field())
		}
	}
	return "参数错误: " + err.Error()
}

package services

import "errors"

// 引用校验错误，由handler映射为404 detail
var (
	ErrMedicationNotFound   = errors.New("药品不存在")
	ErrMedicineNotFound     = errors.New("药剂不存在")
	ErrIngredientNotFound   = errors.New("原料不存在")
	ErrClientNotFound       = errors.New("客户不存在")
	ErrPrescriptionNotFound = errors.New("处方不存在")
	ErrTechnologyNotFound   = errors.New("制备工艺不存在")
)

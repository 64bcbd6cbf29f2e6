package main

import (
	"fmt"
	"time"

	"pharmadmin/internal/database"
	"pharmadmin/internal/models"
	"pharmadmin/pkg/logger"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// seedData 初始化种子数据
func seedData() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting seed data initialization...")

	db := database.GetDB()

	// 1. 制备工艺
	if err := seedTechnologies(db); err != nil {
		return fmt.Errorf("初始化制备工艺失败: %v", err)
	}

	// 2. 药品（原料和药剂）
	if err := seedMedications(db); err != nil {
		return fmt.Errorf("初始化药品失败: %v", err)
	}

	// 3. 配方
	if err := seedCompositions(db); err != nil {
		return fmt.Errorf("初始化配方失败: %v", err)
	}

	// 4. 客户、处方和订单
	if err := seedOrders(db); err != nil {
		return fmt.Errorf("初始化订单失败: %v", err)
	}

	appLogger.Info("Seed data initialization completed successfully")
	return nil
}

// seedTechnologies 创建制备工艺
func seedTechnologies(db *gorm.DB) error {
	var count int64
	db.Model(&models.Technology{}).Count(&count)
	if count > 0 {
		logger.GetLogger().Info("制备工艺已存在，跳过创建")
		return nil
	}

	technologies := []models.Technology{
		{Description: "粉末过筛混匀后分装，避光保存", PreparationTime: 1},
		{Description: "原料溶于纯化水，过滤灭菌后灌装", PreparationTime: 2},
		{Description: "基质水浴熔化，逐步加入原料研磨至均匀", PreparationTime: 3},
	}
	return db.Create(&technologies).Error
}

// seedMedications 创建药品：先写公共表，再写原料/药剂扩展表
func seedMedications(db *gorm.DB) error {
	var count int64
	db.Model(&models.Medication{}).Count(&count)
	if count > 0 {
		logger.GetLogger().Info("药品已存在，跳过创建")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		medications := []models.Medication{
			{Name: "葡萄糖", Manufacturer: "华北制药", CriticalNorm: 500, ShelfLife: 720, UnitOfMeasure: models.UnitGramms, UnitsPerPackage: 1, Price: 0.05, StorageConditions: "阴凉干燥处", CurrentAmount: 2000},
			{Name: "水杨酸", Manufacturer: "山东新华", CriticalNorm: 200, ShelfLife: 1080, UnitOfMeasure: models.UnitGramms, UnitsPerPackage: 1, Price: 0.30, StorageConditions: "避光密封", CurrentAmount: 800},
			{Name: "凡士林", Manufacturer: "南京同仁", CriticalNorm: 300, ShelfLife: 1440, UnitOfMeasure: models.UnitGramms, UnitsPerPackage: 1, Price: 0.10, StorageConditions: "常温密封", CurrentAmount: 1200},
			{Name: "纯化水", Manufacturer: "本地制备", CriticalNorm: 1000, ShelfLife: 30, UnitOfMeasure: models.UnitMilliliter, UnitsPerPackage: 1, Price: 0.01, StorageConditions: "无菌容器", CurrentAmount: 5000},
			{Name: "薄荷脑", Manufacturer: "安徽华润", CriticalNorm: 50, ShelfLife: 720, UnitOfMeasure: models.UnitGramms, UnitsPerPackage: 1, Price: 1.20, StorageConditions: "避光阴凉处", CurrentAmount: 60},
			{Name: "阿司匹林片", Manufacturer: "拜耳", CriticalNorm: 100, ShelfLife: 1080, UnitOfMeasure: models.UnitPieces, UnitsPerPackage: 20, Price: 15.00, StorageConditions: "常温干燥处", CurrentAmount: 400},
			{Name: "水杨酸软膏", Manufacturer: "本地药房", CriticalNorm: 20, ShelfLife: 180, UnitOfMeasure: models.UnitGramms, UnitsPerPackage: 30, Price: 25.00, StorageConditions: "阴凉处", CurrentAmount: 35},
			{Name: "葡萄糖口服液", Manufacturer: "本地药房", CriticalNorm: 30, ShelfLife: 90, UnitOfMeasure: models.UnitMilliliter, UnitsPerPackage: 100, Price: 18.00, StorageConditions: "冷藏", CurrentAmount: 25},
			{Name: "布洛芬缓释胶囊", Manufacturer: "中美史克", CriticalNorm: 80, ShelfLife: 1080, UnitOfMeasure: models.UnitPieces, UnitsPerPackage: 24, Price: 22.00, StorageConditions: "常温干燥处", CurrentAmount: 300},
			{Name: "薄荷散", Manufacturer: "本地药房", CriticalNorm: 15, ShelfLife: 120, UnitOfMeasure: models.UnitGramms, UnitsPerPackage: 10, Price: 12.00, StorageConditions: "避光密封", CurrentAmount: 40},
		}
		if err := tx.Create(&medications).Error; err != nil {
			return err
		}

		ingredients := []models.Ingredient{
			{ID: medications[0].ID, Type: "碳水化合物", Caution: "糖尿病患者慎用", Incompatibility: "强氧化剂"},
			{ID: medications[1].ID, Type: "有机酸", Caution: "对皮肤有刺激性", Incompatibility: "铁盐"},
			{ID: medications[2].ID, Type: "基质", Caution: "", Incompatibility: ""},
			{ID: medications[3].ID, Type: "溶剂", Caution: "", Incompatibility: ""},
			{ID: medications[4].ID, Type: "挥发性成分", Caution: "婴幼儿禁用", Incompatibility: "樟脑同研易液化"},
		}
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}

		tech1, tech2, tech3 := uint(1), uint(2), uint(3)
		medicines := []models.Medicine{
			{ID: medications[5].ID, Type: models.MedicineTypeFinished, Kind: models.MedicineKindPills, Application: models.ApplicationInternal},
			{ID: medications[6].ID, Type: models.MedicineTypeManufactured, Kind: models.MedicineKindOintment, Application: models.ApplicationExternal, TechPrepID: &tech3},
			{ID: medications[7].ID, Type: models.MedicineTypeManufactured, Kind: models.MedicineKindMixture, Application: models.ApplicationInternal, TechPrepID: &tech2},
			{ID: medications[8].ID, Type: models.MedicineTypeFinished, Kind: models.MedicineKindPills, Application: models.ApplicationInternal},
			{ID: medications[9].ID, Type: models.MedicineTypeManufactured, Kind: models.MedicineKindPowder, Application: models.ApplicationExternal, TechPrepID: &tech1},
		}
		return tx.Create(&medicines).Error
	})
}

// seedCompositions 创建药剂配方
func seedCompositions(db *gorm.DB) error {
	var count int64
	db.Model(&models.Composition{}).Count(&count)
	if count > 0 {
		logger.GetLogger().Info("配方已存在，跳过创建")
		return nil
	}

	compositions := []models.Composition{
		{MedicineID: 7, IngredientID: 2, Amount: 3},   // 水杨酸软膏：水杨酸
		{MedicineID: 7, IngredientID: 3, Amount: 27},  // 水杨酸软膏：凡士林
		{MedicineID: 8, IngredientID: 1, Amount: 10},  // 葡萄糖口服液：葡萄糖
		{MedicineID: 8, IngredientID: 4, Amount: 90},  // 葡萄糖口服液：纯化水
		{MedicineID: 10, IngredientID: 5, Amount: 2},  // 薄荷散：薄荷脑
		{MedicineID: 10, IngredientID: 1, Amount: 8},  // 薄荷散：葡萄糖（稀释剂）
	}
	return db.Create(&compositions).Error
}

// seedOrders 创建客户、处方和订单
func seedOrders(db *gorm.DB) error {
	var count int64
	db.Model(&models.Client{}).Count(&count)
	if count > 0 {
		logger.GetLogger().Info("客户已存在，跳过创建")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		patronymic := "建国"
		clients := []models.Client{
			{Surname: "王", Name: "伟", Patronymic: &patronymic, PhoneNumber: "13800138001"},
			{Surname: "李", Name: "娜", PhoneNumber: "13800138002"},
			{Surname: "张", Name: "强", PhoneNumber: "13800138003"},
		}
		if err := tx.Create(&clients).Error; err != nil {
			return err
		}

		prescriptions := []models.Prescription{
			{ClientID: clients[0].ID, MedicineID: 7, PrescriptionNumber: 10001, DoctorSurname: "陈", DoctorName: "静", Signature: true, Stamp: true, Age: 45, Diagnosis: "角质增生", Amount: 30, Application: "外用，每日两次"},
			{ClientID: clients[1].ID, MedicineID: 8, PrescriptionNumber: 10002, DoctorSurname: "刘", DoctorName: "洋", Signature: true, Stamp: true, Age: 8, Diagnosis: "低血糖", Amount: 100, Application: "口服，每日三次"},
			{ClientID: clients[2].ID, MedicineID: 6, PrescriptionNumber: 10003, DoctorSurname: "陈", DoctorName: "静", Signature: true, Stamp: true, Age: 60, Diagnosis: "发热", Amount: 20, Application: "口服，每日一次"},
		}
		if err := tx.Create(&prescriptions).Error; err != nil {
			return err
		}

		now := time.Now()
		expected1 := now.AddDate(0, 0, 3)
		expected2 := now.AddDate(0, 0, 2)
		issued := datatypes.Date(now)
		orders := []models.Order{
			{PrescriptionID: prescriptions[0].ID, ClientID: clients[0].ID, OrderNumber: 1, Status: models.OrderStatusProducing, StartData: &now, ExpectedDateOfIssue: &expected1, Cost: 25.00},
			{PrescriptionID: prescriptions[1].ID, ClientID: clients[1].ID, OrderNumber: 2, Status: models.OrderStatusReady, StartData: &now, ExpectedDateOfIssue: &expected2, Cost: 18.00},
			{PrescriptionID: prescriptions[2].ID, ClientID: clients[2].ID, OrderNumber: 3, Status: models.OrderStatusIssued, StartData: &now, ExpectedDateOfIssue: &now, DateOfIssue: &issued, Cost: 15.00},
		}
		return tx.Create(&orders).Error
	})
}

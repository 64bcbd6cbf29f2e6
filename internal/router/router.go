package router

import (
	"time"

	"pharmadmin/internal/handlers"
	"pharmadmin/internal/middleware"
	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

// SetupRouter 设置路由
func SetupRouter() *gin.Engine {
	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SetupCORS())

	// 注册路由
	registerRoutes(router)
	return router
}

// 注册所有路由
func registerRoutes(router *gin.Engine) {

	// 健康检查接口
	router.GET("/health", healthCheck)
	router.GET("/ping", ping)

	// 药品（含原料和药剂的父表）
	medicationHandler := handlers.NewMedicationHandler(services.NewMedicationService())
	medications := router.Group("/medications")
	{
		medications.GET("", medicationHandler.GetAll)
		medications.GET("/:id", medicationHandler.GetByID)
	}

	// 药剂（按medications+medicines联表展开）
	medicineHandler := handlers.NewMedicineHandler(services.NewMedicineService())
	medicines := router.Group("/medicines")
	{
		medicines.GET("", medicineHandler.GetAll)
		medicines.GET("/:id", medicineHandler.GetByID)
	}

	// 原料
	ingredientHandler := handlers.NewIngredientHandler(services.NewIngredientService())
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", ingredientHandler.GetAll)
		ingredients.GET("/:id", ingredientHandler.GetByID)
	}

	// 制备工艺
	technologyHandler := handlers.NewTechnologyHandler(services.NewTechnologyService())
	technologies := router.Group("/technologies")
	{
		technologies.GET("", technologyHandler.GetAll)
		technologies.GET("/:id", technologyHandler.GetByID)
		technologies.POST("", technologyHandler.Create)
		technologies.PUT("/:id", technologyHandler.Update)
		technologies.DELETE("/:id", technologyHandler.Delete)
	}

	// 配方（复合主键）
	compositionHandler := handlers.NewCompositionHandler(services.NewCompositionService())
	compositions := router.Group("/compositions")
	{
		compositions.GET("", compositionHandler.GetAll)
		compositions.GET("/medicine/:medicine_id", compositionHandler.GetByMedicine)
		compositions.GET("/:medicine_id/:ingredient_id", compositionHandler.Get)
		compositions.POST("", compositionHandler.Create)
		compositions.PUT("/:medicine_id/:ingredient_id", compositionHandler.Update)
		compositions.DELETE("/:medicine_id/:ingredient_id", compositionHandler.Delete)
	}

	// 客户
	clientHandler := handlers.NewClientHandler(services.NewClientService())
	clients := router.Group("/clients")
	{
		clients.GET("", clientHandler.GetAll)
		clients.GET("/:id", clientHandler.GetByID)
		clients.POST("", clientHandler.Create)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	// 处方（创建时自动查找或建立客户档案）
	clientService := services.NewClientService()
	prescriptionHandler := handlers.NewPrescriptionHandler(services.NewPrescriptionService(clientService))
	prescriptions := router.Group("/prescriptions")
	{
		prescriptions.GET("", prescriptionHandler.GetAll)
		prescriptions.GET("/:id", prescriptionHandler.GetByID)
		prescriptions.POST("", prescriptionHandler.Create)
		prescriptions.PUT("/:id", prescriptionHandler.Update)
		prescriptions.DELETE("/:id", prescriptionHandler.Delete)
	}

	// 订单（开始时间和预计发放日期由服务端计算）
	orderHandler := handlers.NewOrderHandler(services.NewOrderService())
	orders := router.Group("/orders")
	{
		orders.GET("", orderHandler.GetAll)
		orders.GET("/:id", orderHandler.GetByID)
		orders.POST("", orderHandler.Create)
		orders.PUT("/:id", orderHandler.Update)
		orders.DELETE("/:id", orderHandler.Delete)
	}

	// 药品入库
	deliveryHandler := handlers.NewDeliveryHandler(services.NewDeliveryService())
	deliveries := router.Group("/deliveries")
	{
		deliveries.GET("", deliveryHandler.GetAll)
		deliveries.GET("/:id", deliveryHandler.GetByID)
		deliveries.POST("", deliveryHandler.Create)
		deliveries.PUT("/:id", deliveryHandler.Update)
		deliveries.DELETE("/:id", deliveryHandler.Delete)
	}

	// 库存盘点
	inventoryHandler := handlers.NewInventoryHandler(services.NewInventoryService())
	inventories := router.Group("/inventories")
	{
		inventories.GET("", inventoryHandler.GetAll)
		inventories.GET("/:id", inventoryHandler.GetByID)
		inventories.POST("", inventoryHandler.Create)
		inventories.PUT("/:id", inventoryHandler.Update)
		inventories.DELETE("/:id", inventoryHandler.Delete)
	}

	// 报表分析
	queryHandler := handlers.NewQueryHandler(services.NewQueryService())
	queries := router.Group("/queries")
	{
		clientsQ := queries.Group("/clients")
		{
			clientsQ.GET("/unclaimed-orders", queryHandler.ClientsWithUnclaimedOrders)
			clientsQ.GET("/unclaimed-orders/count", queryHandler.CountClientsWithUnclaimedOrders)
			clientsQ.GET("/waiting-for-delivery", queryHandler.ClientsWaitingForDelivery)
			clientsQ.GET("/waiting-for-delivery/count", queryHandler.CountClientsWaitingForDelivery)
			clientsQ.GET("/waiting-for-delivery/count/:med_type", queryHandler.CountClientsWaitingForDeliveryByType)
			clientsQ.GET("/by-medication-name", queryHandler.ClientsByMedicationName)
			clientsQ.GET("/by-medication-name/count", queryHandler.CountClientsByMedicationName)
			clientsQ.GET("/by-medication-type", queryHandler.ClientsByMedicationType)
			clientsQ.GET("/by-medication-type/count", queryHandler.CountClientsByMedicationType)
			clientsQ.GET("/most-frequent", queryHandler.MostFrequentClients)
		}

		medicinesQ := queries.Group("/medicines")
		{
			medicinesQ.GET("/details", queryHandler.MedicineDetails)
			medicinesQ.GET("/details/:medicine_name", queryHandler.MedicineDetailsByName)
			medicinesQ.GET("/price-and-components/:medicine_name", queryHandler.MedicinePriceAndComponents)
		}

		medicationsQ := queries.Group("/medications")
		{
			medicationsQ.GET("/top", queryHandler.TopMedications)
			medicationsQ.GET("/top/:med_type", queryHandler.TopMedicationsByType)
			medicationsQ.GET("/critical", queryHandler.MedicationsAtCriticalLevel)
			medicationsQ.GET("/low-stock", queryHandler.LowStockMedications)
			medicationsQ.GET("/low-stock/:med_type", queryHandler.LowStockMedicationsByType)
		}

		ingredientsQ := queries.Group("/ingredients")
		{
			ingredientsQ.GET("/usage/:ingredient_name", queryHandler.IngredientUsage)
			ingredientsQ.GET("/for-producing-orders", queryHandler.IngredientsForProducingOrders)
			ingredientsQ.GET("/for-producing-orders/count", queryHandler.CountIngredientsForProducingOrders)
		}

		ordersQ := queries.Group("/orders")
		{
			ordersQ.GET("/producing", queryHandler.ProducingOrders)
			ordersQ.GET("/producing/count", queryHandler.CountProducingOrders)
		}

		queries.GET("/technologies", queryHandler.Technologies)
	}
}

func healthCheck(c *gin.Context) {
	data := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now(),
		"service":   "PharmAdmin API",
		"version":   "1.0.0",
	}
	response.OK(c, data)
}

func ping(c *gin.Context) {
	response.OK(c, gin.H{"message": "pong"})
}

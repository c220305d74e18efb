package handler

import (
	"shopadmin/internal/app/middleware"
	"shopadmin/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// ============ Категории (Categories) ============
	categories := api.Group("/categories")
	{
		// Публичные эндпоинты (без авторизации)
		categories.GET("", h.GetCategories)
		categories.GET("/:id", h.GetCategory)

		// Только для администраторов
		categories.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateCategory)
		categories.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateCategory)
		categories.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteCategory)
	}

	// ============ Товары (Products) ============
	products := api.Group("/products")
	{
		// Публичные эндпоинты
		products.GET("", h.GetProducts)
		products.GET("/:id", h.GetProduct)

		// Только для администраторов
		products.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateProduct)
		products.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateProduct)
		products.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteProduct)
		products.POST("/:id/image", authMiddleware.WithAuthCheck(role.Admin), h.UploadProductImage)
	}

	// ============ Заказы (Orders) ============
	orders := api.Group("/orders")
	{
		// Для всех авторизованных пользователей
		orders.POST("", authMiddleware.WithAuthCheck(role.Customer, role.Manager, role.Admin), h.CreateOrder)
		orders.GET("", authMiddleware.WithAuthCheck(role.Customer, role.Manager, role.Admin), h.GetOrders)

		// Статистика и удаление - только администраторы
		orders.GET("/stats", authMiddleware.WithAuthCheck(role.Admin), h.GetOrderStats)
		orders.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteOrder)

		orders.GET("/:id", authMiddleware.WithAuthCheck(role.Customer, role.Manager, role.Admin), h.GetOrder)

		// Смена статуса - администраторы и менеджеры
		orders.PUT("/:id/status", authMiddleware.WithAuthCheck(role.Manager, role.Admin), h.UpdateOrderStatus)
	}

	// ============ Пользователи (Users) - только администраторы ============
	users := api.Group("/users")
	users.Use(authMiddleware.WithAuthCheck(role.Admin))
	{
		users.GET("", h.GetUsers)
		users.GET("/stats", h.GetUserStats)
		users.GET("/:id", h.GetUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		// Защищенные эндпоинты
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Customer, role.Manager, role.Admin), h.AuthHandler.LogoutUser)
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Customer, role.Manager, role.Admin), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(role.Customer, role.Manager, role.Admin), h.AuthHandler.UpdateProfile)
	}

	// Swagger документация
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}

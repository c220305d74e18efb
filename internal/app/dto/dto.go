package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Категории (Categories) ============

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"omitempty,min=2,max=100"`
	Description string `json:"description"`
}

// ============ Товары (Products) ============

type ProductResponse struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         float64           `json:"price"`
	DiscountPrice *float64          `json:"discount_price,omitempty"`
	Stock         int               `json:"stock"`
	ImageURL      string            `json:"image_url"`
	CategoryID    uint              `json:"category_id"`
	Category      *CategoryResponse `json:"category,omitempty"` // Только для GET одного товара
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required,min=2,max=100"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	DiscountPrice *float64 `json:"discount_price" binding:"omitempty,gt=0"`
	Stock         int      `json:"stock" binding:"gte=0"`
	CategoryID    uint     `json:"category_id" binding:"required"`
}

type UpdateProductRequest struct {
	Name          string   `json:"name" binding:"omitempty,min=2,max=100"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" binding:"omitempty,gt=0"`
	DiscountPrice *float64 `json:"discount_price" binding:"omitempty,gt=0"`
	Stock         *int     `json:"stock" binding:"omitempty,gte=0"`
	CategoryID    *uint    `json:"category_id"`
}

// ============ Заказы (Orders) ============

type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	ShippingAddress string             `json:"shipping_address" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

type OrderItemResponse struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	SubTotal    float64 `json:"subtotal"`
}

type OrderResponse struct {
	ID              uint                `json:"id"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	DeliveredAt     *time.Time          `json:"delivered_at,omitempty"`
	Customer        string              `json:"customer"` // email заказчика
	ShippingAddress string              `json:"shipping_address"`
	TotalCost       float64             `json:"total_cost"`
	Items           []OrderItemResponse `json:"items,omitempty"` // Только для GET одного заказа
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

type OrderStatsResponse struct {
	OrderCount   int64   `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"` // только доставленные заказы
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type UserStatsResponse struct {
	UserCount int64 `json:"user_count"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     int    `json:"role"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

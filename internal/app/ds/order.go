package ds

import "time"

// Статусы заказа
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// ValidStatus проверяет что статус входит в допустимый набор
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Таблица заказов
type Order struct {
	ID              uint       `gorm:"primaryKey"`
	Status          string     `gorm:"type:varchar(20);not null"` // pending, processing, shipped, delivered, cancelled
	CreatedAt       time.Time  `gorm:"not null"`
	DeliveredAt     *time.Time `gorm:"default:null"`
	UserID          uint       `gorm:"not null;index"`
	ShippingAddress string     `gorm:"type:varchar(255);not null"`
	TotalCost       float64    `gorm:"type:decimal(12,2);default:0"` // рассчитывается на сервере

	User  User        `gorm:"foreignKey:UserID"`
	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

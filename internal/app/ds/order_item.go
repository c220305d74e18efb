package ds

// Таблица позиций заказа (многие-ко-многим заказы-товары)
type OrderItem struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"not null;index;uniqueIndex:idx_order_product"`
	ProductID uint    `gorm:"not null;index;uniqueIndex:idx_order_product"`
	Quantity  int     `gorm:"type:int;not null"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null"` // цена на момент заказа
	SubTotal  float64 `gorm:"type:decimal(12,2);not null"`

	Product Product `gorm:"foreignKey:ProductID"`
}

package ds

// Таблица категорий товаров - ТОЛЬКО справочная информация
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);unique;not null"`
	Description string `gorm:"type:text"`
}

package ds

// Таблица товаров
type Product struct {
	ID            uint     `gorm:"primaryKey"`
	Name          string   `gorm:"type:varchar(100);unique;not null"`
	Description   string   `gorm:"type:text"`
	Price         float64  `gorm:"type:decimal(10,2);not null"`         // базовая цена
	DiscountPrice *float64 `gorm:"type:decimal(10,2);default:null"`     // акционная цена (nullable)
	Stock         int      `gorm:"type:int;default:0;not null"`         // остаток на складе
	ImageURL      *string  `gorm:"type:varchar(255)"`                   // Nullable
	IsDeleted     bool     `gorm:"type:boolean;default:false;not null"` // логическое удаление
	CategoryID    uint     `gorm:"not null;index"`

	Category Category `gorm:"foreignKey:CategoryID"`
}

// EffectivePrice возвращает цену с учетом скидки
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}
	return p.Price
}

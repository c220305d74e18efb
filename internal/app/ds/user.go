package ds

// Таблица пользователей
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(100);not null"`
	Email    string `gorm:"type:varchar(100);unique;not null"`
	Password string `gorm:"type:varchar(255);not null"`  // bcrypt хеш
	Role     int    `gorm:"type:int;default:0;not null"` // 0 - customer, 1 - manager, 2 - admin
}

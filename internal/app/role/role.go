package role

// Role определяет уровень доступа пользователя
type Role int

const (
	Customer Role = iota // обычный покупатель
	Manager              // менеджер магазина
	Admin                // администратор
)

func (r Role) String() string {
	switch r {
	case Customer:
		return "customer"
	case Manager:
		return "manager"
	case Admin:
		return "admin"
	}
	return "unknown"
}

// IsValid проверяет что значение роли входит в допустимый диапазон
func (r Role) IsValid() bool {
	return r >= Customer && r <= Admin
}

package repository

import (
	"errors"

	"shopadmin/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByEmail(email string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(name, email, passwordHash string, userRole int) (*ds.User, error) {
	// Проверка уникальности email перед вставкой
	exists, err := r.UserExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	user := ds.User{
		Name:     name,
		Email:    email,
		Password: passwordHash,
		Role:     userRole,
	}

	err = r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) UpdateUser(id uint, name, passwordHash string) (*ds.User, error) {
	user, err := r.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if passwordHash != "" {
		user.Password = passwordHash
	}

	err = r.db.Save(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *Repository) GetAllUsers() ([]ds.User, error) {
	var users []ds.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

// DeleteUser удаляет пользователя, у которого нет заказов
func (r *Repository) DeleteUser(id uint) error {
	if _, err := r.GetUserByID(id); err != nil {
		return err
	}

	var orderCount int64
	err := r.db.Model(&ds.Order{}).Where("user_id = ?", id).Count(&orderCount).Error
	if err != nil {
		return err
	}
	if orderCount > 0 {
		return ErrUserHasOrders
	}

	return r.db.Delete(&ds.User{}, id).Error
}

func (r *Repository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Count(&count).Error
	return count, err
}

package repository

import (
	"errors"

	"shopadmin/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с категориями

// GetAllCategories возвращает категории, опционально с поиском по названию
func (r *Repository) GetAllCategories(query string) ([]ds.Category, error) {
	var categories []ds.Category
	db := r.db.Order("id")
	if query != "" {
		db = db.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	}
	err := db.Find(&categories).Error
	return categories, err
}

func (r *Repository) GetCategoryByID(id uint) (*ds.Category, error) {
	var category ds.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CategoryExistsByName проверяет занято ли имя (без учета регистра), excludeID игнорируется
func (r *Repository) CategoryExistsByName(name string, excludeID uint) (bool, error) {
	var count int64
	db := r.db.Model(&ds.Category{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		db = db.Where("id != ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateCategory(name, description string) (*ds.Category, error) {
	exists, err := r.CategoryExistsByName(name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	category := ds.Category{
		Name:        name,
		Description: description,
	}
	err = r.db.Create(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *Repository) UpdateCategory(id uint, name, description string) (*ds.Category, error) {
	category, err := r.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	if name != "" && name != category.Name {
		exists, err := r.CategoryExistsByName(name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicate
		}
		category.Name = name
	}
	if description != "" {
		category.Description = description
	}

	err = r.db.Save(category).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory удаляет категорию, на которую не ссылаются товары
func (r *Repository) DeleteCategory(id uint) error {
	if _, err := r.GetCategoryByID(id); err != nil {
		return err
	}

	var productCount int64
	err := r.db.Model(&ds.Product{}).
		Where("category_id = ? AND is_deleted = ?", id, false).
		Count(&productCount).Error
	if err != nil {
		return err
	}
	if productCount > 0 {
		return ErrCategoryInUse
	}

	return r.db.Delete(&ds.Category{}, id).Error
}

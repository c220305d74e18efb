package repository

import (
	"errors"

	"shopadmin/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с товарами

// ProductFilter параметры листинга товаров
type ProductFilter struct {
	Query      string
	CategoryID uint
	Page       int
	Limit      int
}

// GetProducts возвращает страницу товаров и общее количество
func (r *Repository) GetProducts(filter ProductFilter) ([]ds.Product, int64, error) {
	db := r.db.Model(&ds.Product{}).Where("is_deleted = ?", false)

	if filter.Query != "" {
		db = db.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Query+"%")
	}
	if filter.CategoryID != 0 {
		db = db.Where("category_id = ?", filter.CategoryID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	var products []ds.Product
	err := db.Order("id").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetProductByID возвращает товар вместе с категорией
func (r *Repository) GetProductByID(id uint) (*ds.Product, error) {
	var product ds.Product
	err := r.db.Preload("Category").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) ProductExistsByName(name string, excludeID uint) (bool, error) {
	var count int64
	db := r.db.Model(&ds.Product{}).
		Where("LOWER(name) = LOWER(?) AND is_deleted = ?", name, false)
	if excludeID != 0 {
		db = db.Where("id != ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateProduct(product *ds.Product) error {
	// Категория должна существовать
	if _, err := r.GetCategoryByID(product.CategoryID); err != nil {
		return err
	}

	exists, err := r.ProductExistsByName(product.Name, 0)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}

	return r.db.Create(product).Error
}

func (r *Repository) UpdateProduct(product *ds.Product) error {
	// Save без Omit записал бы предзагруженную категорию и вернул старый category_id
	return r.db.Omit("Category").Save(product).Error
}

func (r *Repository) UpdateProductImage(id uint, imageURL string) error {
	result := r.db.Model(&ds.Product{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("image_url", imageURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct выполняет логическое удаление
func (r *Repository) DeleteProduct(id uint) error {
	result := r.db.Model(&ds.Product{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

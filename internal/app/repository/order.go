package repository

import (
	"errors"
	"time"

	"shopadmin/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с заказами

// NewOrderItem позиция при создании заказа
type NewOrderItem struct {
	ProductID uint
	Quantity  int
}

// CreateOrder создает заказ в одной транзакции: проверяет остатки,
// списывает со склада и считает итоговую стоимость
func (r *Repository) CreateOrder(userID uint, shippingAddress string, items []NewOrderItem) (*ds.Order, error) {
	items = mergeOrderItems(items)

	order := ds.Order{
		Status:          ds.StatusPending,
		CreatedAt:       time.Now(),
		UserID:          userID,
		ShippingAddress: shippingAddress,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		orderItems := make([]ds.OrderItem, 0, len(items))

		for _, item := range items {
			var product ds.Product
			err := tx.Where("id = ? AND is_deleted = ?", item.ProductID, false).
				First(&product).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return ErrNotEnoughStock
			}

			// Списание со склада
			err = tx.Model(&ds.Product{}).Where("id = ?", product.ID).
				Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error
			if err != nil {
				return err
			}

			unitPrice := product.EffectivePrice()
			subTotal := unitPrice * float64(item.Quantity)
			total += subTotal

			orderItems = append(orderItems, ds.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: unitPrice,
				SubTotal:  subTotal,
			})
		}

		order.TotalCost = total
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		return tx.Create(&orderItems).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetOrderByID(order.ID)
}

// mergeOrderItems суммирует повторяющиеся позиции одного товара,
// чтобы не нарушать уникальность пары заказ-товар
func mergeOrderItems(items []NewOrderItem) []NewOrderItem {
	merged := make([]NewOrderItem, 0, len(items))
	index := make(map[uint]int, len(items))
	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

// GetOrders возвращает заказы с фильтрацией по статусу, датам и заказчику
func (r *Repository) GetOrders(status string, dateFrom, dateTo *time.Time, userID *uint) ([]ds.Order, error) {
	db := r.db.Preload("User").Order("created_at DESC")

	if status != "" {
		db = db.Where("status = ?", status)
	}
	if dateFrom != nil {
		db = db.Where("created_at >= ?", *dateFrom)
	}
	if dateTo != nil {
		db = db.Where("created_at <= ?", *dateTo)
	}
	if userID != nil {
		db = db.Where("user_id = ?", *userID)
	}

	var orders []ds.Order
	err := db.Find(&orders).Error
	return orders, err
}

// GetOrderByID возвращает заказ с заказчиком и позициями
func (r *Repository) GetOrderByID(id uint) (*ds.Order, error) {
	var order ds.Order
	err := r.db.Preload("User").
		Preload("Items").
		Preload("Items.Product").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus меняет статус заказа. Отмена до отгрузки возвращает товары на склад
func (r *Repository) UpdateOrderStatus(id uint, status string) (*ds.Order, error) {
	if !ds.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := r.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	// Из завершенных статусов обратного пути нет, иначе повторная отмена
	// вернула бы товары на склад второй раз
	if order.Status == ds.StatusCancelled || order.Status == ds.StatusDelivered {
		return nil, ErrOrderFinal
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		restock := status == ds.StatusCancelled &&
			(order.Status == ds.StatusPending || order.Status == ds.StatusProcessing)
		if restock {
			for _, item := range order.Items {
				err := tx.Model(&ds.Product{}).Where("id = ?", item.ProductID).
					Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error
				if err != nil {
					return err
				}
			}
		}

		updates := map[string]interface{}{"status": status}
		if status == ds.StatusDelivered {
			now := time.Now()
			updates["delivered_at"] = &now
		}
		return tx.Model(&ds.Order{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetOrderByID(id)
}

// DeleteOrder удаляет только завершенные заказы (отмененные или доставленные)
func (r *Repository) DeleteOrder(id uint) error {
	order, err := r.GetOrderByID(id)
	if err != nil {
		return err
	}

	if order.Status != ds.StatusCancelled && order.Status != ds.StatusDelivered {
		return ErrOrderNotFinal
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&ds.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Order{}, id).Error
	})
}

// OrderStats считает количество заказов и выручку по доставленным
func (r *Repository) OrderStats() (int64, float64, error) {
	var count int64
	err := r.db.Model(&ds.Order{}).Count(&count).Error
	if err != nil {
		return 0, 0, err
	}

	var revenue float64
	err = r.db.Model(&ds.Order{}).
		Where("status = ?", ds.StatusDelivered).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, 0, err
	}

	return count, revenue, nil
}

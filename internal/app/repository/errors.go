package repository

import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicate      = errors.New("duplicate resource")
	ErrCategoryInUse  = errors.New("category has products")
	ErrUserHasOrders  = errors.New("user has orders")
	ErrNotEnoughStock = errors.New("not enough stock available")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrOrderNotFinal  = errors.New("order is not in a final status")
	ErrOrderFinal     = errors.New("order is already in a final status")
)

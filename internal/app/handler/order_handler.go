package handler

import (
	"net/http"
	"strconv"
	"time"

	"shopadmin/internal/app/ds"
	"shopadmin/internal/app/dto"
	"shopadmin/internal/app/repository"
	"shopadmin/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ЗАКАЗЫ ============

func orderToDTO(o *ds.Order, withItems bool) dto.OrderResponse {
	customer := "unknown"
	if o.User.Email != "" {
		customer = o.User.Email
	}

	resp := dto.OrderResponse{
		ID:              o.ID,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		DeliveredAt:     o.DeliveredAt,
		Customer:        customer,
		ShippingAddress: o.ShippingAddress,
		TotalCost:       o.TotalCost,
	}

	if withItems {
		resp.Items = make([]dto.OrderItemResponse, len(o.Items))
		for i, item := range o.Items {
			resp.Items[i] = dto.OrderItemResponse{
				ProductID:   item.ProductID,
				ProductName: item.Product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				SubTotal:    item.SubTotal,
			}
		}
	}
	return resp
}

// CreateOrder создает заказ
// @Summary Создание заказа
// @Description Создает заказ из списка позиций, списывает товары со склада
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOrderRequest true "Позиции и адрес доставки"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/orders [post]
func (h *APIHandler) CreateOrder(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	items := make([]repository.NewOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = repository.NewOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	order, err := h.Repository.CreateOrder(userID, req.ShippingAddress, items)
	if err != nil {
		logrus.Error("Error creating order: ", err)
		h.errorResponse(c, repoErrorStatus(err), "Ошибка создания заказа: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, orderToDTO(order, true))
}

// GetOrders получает список заказов
// @Summary Получение списка заказов
// @Description Админы и менеджеры видят все заказы, покупатели - только свои
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу"
// @Param date_from query string false "Дата начала (формат: 2006-01-02)"
// @Param date_to query string false "Дата окончания (формат: 2006-01-02)"
// @Success 200 {object} dto.OrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders [get]
func (h *APIHandler) GetOrders(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !ds.ValidStatus(status) {
		h.errorResponse(c, http.StatusBadRequest, "Неверный статус заказа")
		return
	}

	var dateFrom, dateTo *time.Time
	if s := c.Query("date_from"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверный формат date_from, ожидается 2006-01-02")
			return
		}
		dateFrom = &parsed
	}
	if s := c.Query("date_to"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверный формат date_to, ожидается 2006-01-02")
			return
		}
		dateTo = &parsed
	}

	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		logrus.Error("Error getting user from context: ", err)
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	// Покупатель видит только свои заказы
	var creatorID *uint
	if userRole == role.Customer {
		creatorID = &userID
	}

	orders, err := h.Repository.GetOrders(status, dateFrom, dateTo, creatorID)
	if err != nil {
		logrus.Error("Error getting orders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения заказов")
		return
	}

	dtoOrders := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		dtoOrders[i] = orderToDTO(&orders[i], false)
	}

	c.JSON(http.StatusOK, dto.OrderListResponse{
		Orders: dtoOrders,
		Total:  len(dtoOrders),
	})
}

// GetOrder получает один заказ
// @Summary Получение заказа по ID
// @Description Возвращает заказ с заказчиком и позициями
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id} [get]
func (h *APIHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заказа")
		return
	}

	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	order, err := h.Repository.GetOrderByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Заказ не найден")
		return
	}

	// Покупатель может смотреть только свои заказы
	if userRole == role.Customer && order.UserID != userID {
		h.errorResponse(c, http.StatusForbidden, "Нет доступа к этому заказу")
		return
	}

	c.JSON(http.StatusOK, orderToDTO(order, true))
}

// UpdateOrderStatus меняет статус заказа
// @Summary Изменение статуса заказа
// @Description Меняет статус заказа. Отмена до отгрузки возвращает товары на склад
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заказа"
// @Param request body dto.UpdateOrderStatusRequest true "Новый статус"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id}/status [put]
func (h *APIHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заказа")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный статус: "+err.Error())
		return
	}

	order, err := h.Repository.UpdateOrderStatus(uint(id), req.Status)
	if err != nil {
		logrus.Error("Error updating order status: ", err)
		h.errorResponse(c, repoErrorStatus(err), "Ошибка изменения статуса: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, orderToDTO(order, true))
}

// DeleteOrder удаляет заказ
// @Summary Удаление заказа
// @Description Удаляет отмененный или доставленный заказ (только для администраторов)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/orders/{id} [delete]
func (h *APIHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заказа")
		return
	}

	if err := h.Repository.DeleteOrder(uint(id)); err != nil {
		logrus.Error("Error deleting order: ", err)
		h.errorResponse(c, repoErrorStatus(err), "Нельзя удалить заказ: "+err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Заказ удален", nil)
}

// GetOrderStats статистика по заказам
// @Summary Статистика заказов
// @Description Количество заказов и выручка по доставленным (только для администраторов)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrderStatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders/stats [get]
func (h *APIHandler) GetOrderStats(c *gin.Context) {
	count, revenue, err := h.Repository.OrderStats()
	if err != nil {
		logrus.Error("Error getting order stats: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения статистики")
		return
	}

	c.JSON(http.StatusOK, dto.OrderStatsResponse{
		OrderCount:   count,
		TotalRevenue: revenue,
	})
}

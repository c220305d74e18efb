package handler

import (
	"net/http"
	"strconv"

	"shopadmin/internal/app/ds"
	"shopadmin/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КАТЕГОРИИ ============

func categoryToDTO(c *ds.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// GetCategories получает список категорий
// @Summary Получение списка категорий
// @Description Возвращает все категории с возможностью поиска по названию
// @Tags Categories
// @Produce json
// @Param query query string false "Поиск по названию категории"
// @Success 200 {object} dto.CategoryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/categories [get]
func (h *APIHandler) GetCategories(c *gin.Context) {
	categories, err := h.Repository.GetAllCategories(c.Query("query"))
	if err != nil {
		logrus.Error("Error getting categories: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения категорий")
		return
	}

	dtoCategories := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		dtoCategories[i] = categoryToDTO(&categories[i])
	}

	c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: dtoCategories,
		Total:      len(dtoCategories),
	})
}

// GetCategory получает одну категорию
// @Summary Получение категории по ID
// @Tags Categories
// @Produce json
// @Param id path int true "ID категории"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/categories/{id} [get]
func (h *APIHandler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID категории")
		return
	}

	category, err := h.Repository.GetCategoryByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Категория не найдена")
		return
	}

	c.JSON(http.StatusOK, categoryToDTO(category))
}

// CreateCategory создает новую категорию
// @Summary Создание категории
// @Description Создает новую категорию (только для администраторов)
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "Данные категории"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/categories [post]
func (h *APIHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	category, err := h.Repository.CreateCategory(req.Name, req.Description)
	if err != nil {
		logrus.Error("Error creating category: ", err)
		h.errorResponse(c, repoErrorStatus(err), "Категория с таким названием уже существует")
		return
	}

	c.JSON(http.StatusCreated, categoryToDTO(category))
}

// UpdateCategory изменяет категорию
// @Summary Изменение категории
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID категории"
// @Param request body dto.UpdateCategoryRequest true "Данные для обновления"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/categories/{id} [put]
func (h *APIHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID категории")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	category, err := h.Repository.UpdateCategory(uint(id), req.Name, req.Description)
	if err != nil {
		logrus.Error("Error updating category: ", err)
		h.errorResponse(c, repoErrorStatus(err), "Ошибка обновления категории")
		return
	}

	c.JSON(http.StatusOK, categoryToDTO(category))
}

// DeleteCategory удаляет категорию
// @Summary Удаление категории
// @Description Удаляет категорию без товаров (только для администраторов)
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID категории"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/categories/{id} [delete]
func (h *APIHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID категории")
		return
	}

	err = h.Repository.DeleteCategory(uint(id))
	if err != nil {
		logrus.Error("Error deleting category: ", err)
		h.errorResponse(c, repoErrorStatus(err), "Нельзя удалить категорию: "+err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Категория удалена", nil)
}

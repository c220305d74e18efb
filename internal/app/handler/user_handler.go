package handler

import (
	"net/http"
	"strconv"

	"shopadmin/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ПОЛЬЗОВАТЕЛИ (администрирование) ============

// GetUsers получает список пользователей
// @Summary Получение списка пользователей
// @Description Возвращает всех пользователей (только для администраторов)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users [get]
func (h *APIHandler) GetUsers(c *gin.Context) {
	users, err := h.Repository.GetAllUsers()
	if err != nil {
		logrus.Error("Error getting users: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения пользователей")
		return
	}

	dtoUsers := make([]dto.UserResponse, len(users))
	for i := range users {
		dtoUsers[i] = userToDTO(&users[i])
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Users: dtoUsers,
		Total: len(dtoUsers),
	})
}

// GetUser получает одного пользователя
// @Summary Получение пользователя по ID
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [get]
func (h *APIHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	user, err := h.Repository.GetUserByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Пользователь не найден")
		return
	}

	c.JSON(http.StatusOK, userToDTO(user))
}

// DeleteUser удаляет пользователя
// @Summary Удаление пользователя
// @Description Удаляет пользователя без заказов (только для администраторов)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/users/{id} [delete]
func (h *APIHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	if err := h.Repository.DeleteUser(uint(id)); err != nil {
		logrus.Error("Error deleting user: ", err)
		h.errorResponse(c, repoErrorStatus(err), "Нельзя удалить пользователя: "+err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Пользователь удален", nil)
}

// GetUserStats статистика по пользователям
// @Summary Статистика пользователей
// @Description Общее количество пользователей (только для администраторов)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserStatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users/stats [get]
func (h *APIHandler) GetUserStats(c *gin.Context) {
	count, err := h.Repository.CountUsers()
	if err != nil {
		logrus.Error("Error counting users: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения статистики")
		return
	}

	c.JSON(http.StatusOK, dto.UserStatsResponse{UserCount: count})
}

package handler

import (
	"io"
	"net/http"
	"strconv"

	"shopadmin/internal/app/ds"
	"shopadmin/internal/app/dto"
	"shopadmin/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ТОВАРЫ ============

const defaultProductImage = "placeholder.png"

func productToDTO(p *ds.Product, withCategory bool) dto.ProductResponse {
	imageURL := defaultProductImage
	if p.ImageURL != nil && *p.ImageURL != "" {
		imageURL = *p.ImageURL
	}

	resp := dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Stock:         p.Stock,
		ImageURL:      imageURL,
		CategoryID:    p.CategoryID,
	}
	if withCategory {
		category := categoryToDTO(&p.Category)
		resp.Category = &category
	}
	return resp
}

// GetProducts получает список товаров
// @Summary Получение списка товаров
// @Description Возвращает товары с поиском, фильтром по категории и пагинацией
// @Tags Products
// @Produce json
// @Param query query string false "Поиск по названию товара"
// @Param category_id query int false "Фильтр по категории"
// @Param page query int false "Номер страницы"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/products [get]
func (h *APIHandler) GetProducts(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 32)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	products, total, err := h.Repository.GetProducts(repository.ProductFilter{
		Query:      c.Query("query"),
		CategoryID: uint(categoryID),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		logrus.Error("Error getting products: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения товаров")
		return
	}

	dtoProducts := make([]dto.ProductResponse, len(products))
	for i := range products {
		dtoProducts[i] = productToDTO(&products[i], false)
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Products: dtoProducts,
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}

// GetProduct получает один товар
// @Summary Получение товара по ID
// @Description Возвращает товар вместе с категорией
// @Tags Products
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [get]
func (h *APIHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID товара")
		return
	}

	product, err := h.Repository.GetProductByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Товар не найден")
		return
	}

	c.JSON(http.StatusOK, productToDTO(product, true))
}

// CreateProduct создает новый товар
// @Summary Создание товара
// @Description Создает новый товар (только для администраторов)
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProductRequest true "Данные товара"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/products [post]
func (h *APIHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	// Скидочная цена не может превышать базовую
	if req.DiscountPrice != nil && *req.DiscountPrice >= req.Price {
		h.errorResponse(c, http.StatusBadRequest, "Акционная цена должна быть меньше базовой")
		return
	}

	product := ds.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		CategoryID:    req.CategoryID,
	}

	if err := h.Repository.CreateProduct(&product); err != nil {
		logrus.Error("Error creating product: ", err)
		h.errorResponse(c, repoErrorStatus(err), "Ошибка создания товара: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, productToDTO(&product, false))
}

// UpdateProduct изменяет товар
// @Summary Изменение товара
// @Description Частичное обновление товара (только для администраторов)
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param request body dto.UpdateProductRequest true "Данные для обновления"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/products/{id} [put]
func (h *APIHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID товара")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	product, err := h.Repository.GetProductByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Товар не найден")
		return
	}

	if req.Name != "" && req.Name != product.Name {
		exists, err := h.Repository.ProductExistsByName(req.Name, product.ID)
		if err != nil {
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления товара")
			return
		}
		if exists {
			h.errorResponse(c, http.StatusConflict, "Товар с таким названием уже существует")
			return
		}
		product.Name = req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.DiscountPrice != nil {
		product.DiscountPrice = req.DiscountPrice
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.CategoryID != nil {
		if _, err := h.Repository.GetCategoryByID(*req.CategoryID); err != nil {
			h.errorResponse(c, http.StatusNotFound, "Категория не найдена")
			return
		}
		product.CategoryID = *req.CategoryID
	}

	if product.DiscountPrice != nil && *product.DiscountPrice >= product.Price {
		h.errorResponse(c, http.StatusBadRequest, "Акционная цена должна быть меньше базовой")
		return
	}

	if err := h.Repository.UpdateProduct(product); err != nil {
		logrus.Error("Error updating product: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления товара")
		return
	}

	c.JSON(http.StatusOK, productToDTO(product, false))
}

// DeleteProduct удаляет товар
// @Summary Удаление товара
// @Description Логическое удаление товара (только для администраторов)
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [delete]
func (h *APIHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID товара")
		return
	}

	if err := h.Repository.DeleteProduct(uint(id)); err != nil {
		h.errorResponse(c, repoErrorStatus(err), "Товар не найден")
		return
	}

	h.successResponse(c, http.StatusOK, "Товар удален", nil)
}

// UploadProductImage загружает изображение товара
// @Summary Загрузка изображения товара
// @Description Загружает изображение в MinIO и сохраняет ссылку (только для администраторов)
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/products/{id}/image [post]
func (h *APIHandler) UploadProductImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID товара")
		return
	}

	product, err := h.Repository.GetProductByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Товар не найден")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не найден в запросе")
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}
	defer openedFile.Close()

	fileData, err := io.ReadAll(openedFile)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}

	// Удаляем старое изображение из MinIO (если есть)
	if h.MinIOClient != nil && product.ImageURL != nil && *product.ImageURL != "" {
		if err := h.MinIOClient.DeleteFile(*product.ImageURL); err != nil {
			logrus.Warnf("Failed to delete old image %s: %v", *product.ImageURL, err)
		}
	}

	var imageURL string
	if h.MinIOClient != nil {
		imageURL, err = h.MinIOClient.UploadFile(fileData, file.Filename)
		if err != nil {
			logrus.Error("Error uploading to MinIO: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки изображения")
			return
		}
	} else {
		// Fallback если MinIO не настроен
		imageURL = "uploaded_" + file.Filename
	}

	if err := h.Repository.UpdateProductImage(uint(id), imageURL); err != nil {
		logrus.Error("Error updating product image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления изображения")
		return
	}

	h.successResponse(c, http.StatusOK, "Изображение успешно загружено", gin.H{
		"image_url": imageURL,
	})
}

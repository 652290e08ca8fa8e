package admin

import (
	"errors"
	"strconv"

	"github.com/maison-next/internal/http/response"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductUpsertRequest 商品创建/更新请求
type ProductUpsertRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       *models.Money `json:"price"`
	Category    string        `json:"category"`
	Stock       *int          `json:"stock"`
	ThemeColor  string        `json:"theme_color"`
	Images      []string      `json:"images"`
	Colors      []string      `json:"colors"`
	Sizes       []string      `json:"sizes"`
	IsActive    *bool         `json:"is_active"`
}

func (r ProductUpsertRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Stock:       r.Stock,
		ThemeColor:  r.ThemeColor,
		Images:      r.Images,
		Colors:      r.Colors,
		Sizes:       r.Sizes,
		IsActive:    r.IsActive,
	}
}

// GetAdminProducts 获取后台商品列表
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	products, total, err := h.ProductService.ListAdmin(c.Query("category"), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetAdminProduct 获取后台商品详情
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	product, err := h.ProductService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProduct):
			respondError(c, response.CodeBadRequest, "error.invalid_product", nil)
		default:
			respondError(c, response.CodeInternal, "error.product_create_failed", err)
		}
		return
	}

	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		case errors.Is(err, service.ErrInvalidProduct):
			respondError(c, response.CodeBadRequest, "error.invalid_product", nil)
		default:
			respondError(c, response.CodeInternal, "error.product_update_failed", err)
		}
		return
	}

	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.product_delete_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"deleted": true,
	})
}

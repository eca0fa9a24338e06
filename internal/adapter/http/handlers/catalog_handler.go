package handlers

import (
	"errors"
	"net/http"

	request "lab_management/internal/adapter/http/dto/request"
	"lab_management/internal/usecase"
	"lab_management/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves test categories and test types.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c, err)
		return
	}
	created, err := h.usecase.CreateCategory(c.Request.Context(), payload.ToEntity())
	if err != nil {
		abortWithError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	list, err := h.usecase.ListCategories(c.Request.Context())
	if err != nil {
		abortWithError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) CreateTestType(c *gin.Context) {
	var payload request.TestTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c, err)
		return
	}
	created, err := h.usecase.CreateTestType(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		abortWithError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListTestTypes accepts an optional category_id query filter.
func (h *CatalogHandler) ListTestTypes(c *gin.Context) {
	list, err := h.usecase.ListTestTypes(c.Request.Context(), c.Query("category_id"))
	if err != nil {
		abortWithError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) GetTestType(c *gin.Context) {
	t, err := h.usecase.GetTestType(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *CatalogHandler) UpdateTestType(c *gin.Context) {
	var payload request.TestTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c, err)
		return
	}
	updated, err := h.usecase.UpdateTestType(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		abortWithError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteTestType(c *gin.Context) {
	if err := h.usecase.DeleteTestType(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTestTypeNotFound):
		return pkg.NewDomainErrorSimple("TEST_TYPE_NOT_FOUND", "Test type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Test category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTestTypeInUse):
		return pkg.NewDomainError("TEST_TYPE_IN_USE", "Test type is selected on existing results", err, http.StatusConflict)
	}
	if appErr, ok := mapDomainError(err); ok {
		return appErr
	}
	return internalError(err)
}

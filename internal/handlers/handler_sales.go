package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.POST("", h.createSale)
		sales.GET("/:id", h.getSale)
		sales.PUT("/:id", h.updateSale)
		sales.DELETE("/:id", h.deleteSale)
	}
}

// listSales godoc
// @Summary List sales
// @Description Returns every recorded sale, oldest first.
// @Tags sales
// @Produce json
// @Success 200 {array} domain.Sale
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sales, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Sale not found", "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, sales)
}

// createSale godoc
// @Summary Record a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create sale request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Sale not found", "Failed to create sale")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{Success: true, ID: sale.ID})
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} domain.Sale
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger.With(slog.Int64("sale_id", id)), err, "Sale not found", "Failed to get sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}

// updateSale godoc
// @Summary Update a sale
// @Description Merges the supplied fields into the stored sale.
// @Tags sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param sale body dto.UpdateSaleRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [put]
func (h *saleHandler) updateSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("sale_id", id))

	var req dto.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind update sale request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	if _, err := h.saleService.UpdateSale(c.Request.Context(), id, req); err != nil {
		respondError(c, logger, err, "Sale not found", "Failed to update sale")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// deleteSale godoc
// @Summary Delete a sale
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger)
	if !ok {
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		respondError(c, logger.With(slog.Int64("sale_id", id)), err, "Sale not found", "Failed to delete sale")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

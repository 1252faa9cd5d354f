package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests related to purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes registers routes related to purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.GET("", h.listPurchases)
		purchases.POST("", h.createPurchase)
		purchases.GET("/:id", h.getPurchase)
		purchases.PUT("/:id", h.updatePurchase)
		purchases.DELETE("/:id", h.deletePurchase)
	}
}

// listPurchases godoc
// @Summary List purchases
// @Description Returns every recorded purchase, oldest first.
// @Tags purchases
// @Produce json
// @Success 200 {array} domain.Purchase
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	purchases, err := h.purchaseService.ListPurchases(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Purchase not found", "Failed to list purchases")
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// createPurchase godoc
// @Summary Record a purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create purchase request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Purchase not found", "Failed to create purchase")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{Success: true, ID: purchase.ID})
}

// getPurchase godoc
// @Summary Get a purchase
// @Tags purchases
// @Produce json
// @Param id path int true "Purchase ID"
// @Success 200 {object} domain.Purchase
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger.With(slog.Int64("purchase_id", id)), err, "Purchase not found", "Failed to get purchase")
		return
	}
	c.JSON(http.StatusOK, purchase)
}

// updatePurchase godoc
// @Summary Update a purchase
// @Description Merges the supplied fields into the stored purchase.
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path int true "Purchase ID"
// @Param purchase body dto.UpdatePurchaseRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [put]
func (h *purchaseHandler) updatePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("purchase_id", id))

	var req dto.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind update purchase request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	if _, err := h.purchaseService.UpdatePurchase(c.Request.Context(), id, req); err != nil {
		respondError(c, logger, err, "Purchase not found", "Failed to update purchase")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Tags purchases
// @Produce json
// @Param id path int true "Purchase ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger)
	if !ok {
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), id); err != nil {
		respondError(c, logger.With(slog.Int64("purchase_id", id)), err, "Purchase not found", "Failed to delete purchase")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

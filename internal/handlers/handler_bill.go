package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/SscSPs/freelanceos/internal/middleware"
	"github.com/gin-gonic/gin"
)

// billHandler handles HTTP requests related to project bills.
type billHandler struct {
	billService portssvc.BillSvcFacade
}

func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade) {
	h := &billHandler{billService: billService}

	rg.POST("", h.createBill)
	rg.GET("", h.listBills)
	rg.PATCH("/:billID/status", h.updateBillStatus)
}

// createBill godoc
// @Summary Raise a bill for a project
// @Description Creates a bill. The invoice number is assigned by the server.
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 409 {object} map[string]string "Invoice number clash"
// @Failure 500 {object} map[string]string "Failed to create bill"
// @Security BearerAuth
// @Router /api/v1/projects/{projectID}/bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("project_id", projectID))
	logger.Info("Received request to create bill", slog.String("amount", req.Amount.String()))

	bill, err := h.billService.CreateBill(c.Request.Context(), userID, projectID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create bill")
		return
	}

	logger.Info("Bill created successfully", slog.String("bill_id", bill.BillID), slog.String("invoice_number", bill.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// listBills godoc
// @Summary List the bills of a project
// @Tags bills
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Success 200 {object} dto.ListBillsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to list bills"
// @Security BearerAuth
// @Router /api/v1/projects/{projectID}/bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bills, err := h.billService.ListBills(c.Request.Context(), userID, projectID)
	if err != nil {
		writeServiceError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to list bills")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillsResponse(bills))
}

// updateBillStatus godoc
// @Summary Mark a bill paid or pending
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   billID path string true "Bill ID"
// @Param   status body dto.UpdateBillStatusRequest true "New status"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project or bill not found"
// @Failure 500 {object} map[string]string "Failed to update bill"
// @Security BearerAuth
// @Router /api/v1/projects/{projectID}/bills/{billID}/status [patch]
func (h *billHandler) updateBillStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")
	billID := c.Param("billID")

	var req dto.UpdateBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBillStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("project_id", projectID), slog.String("bill_id", billID))

	bill, err := h.billService.UpdateBillStatus(c.Request.Context(), userID, projectID, billID, req.Status)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update bill")
		return
	}

	logger.Info("Bill status updated", slog.String("status", string(bill.Status)))
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

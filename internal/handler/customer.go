// internal/handler/customer.go
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"salon-manager/internal/domain"
	"salon-manager/internal/notify"
	"salon-manager/internal/storage"
)

type CustomerHandler struct {
	store    storage.CustomerStorage
	notifier notify.Notifier
}

func NewCustomerHandler(store storage.CustomerStorage, notifier notify.Notifier) *CustomerHandler {
	return &CustomerHandler{store: store, notifier: notifier}
}

type addCustomerRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	PaymentMode string           `json:"paymentMode" validate:"required,paymentmode"`
	StaffName   string           `json:"staffName" validate:"required,notblank"`
	Date        string           `json:"date" validate:"required,dateonly"`
	Time        string           `json:"time" validate:"required,clocktime"`
}

func (h *CustomerHandler) Add(c *gin.Context) {
	var req addCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a valid positive number"})
		return
	}

	dateTime, err := domain.CombineDateTime(req.Date, req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time format"})
		return
	}

	tx := &domain.CustomerTransaction{
		Amount:      *req.Amount,
		PaymentMode: req.PaymentMode,
		StaffName:   strings.TrimSpace(req.StaffName),
		Date:        req.Date,
		Time:        req.Time,
		DateTime:    dateTime,
	}
	id, err := h.store.CreateCustomer(c.Request.Context(), tx)
	if err != nil {
		slog.Error("add customer failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add customer"})
		return
	}

	h.notifier.TransactionRecorded(*tx)

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Customer added successfully"})
}

func (h *CustomerHandler) List(c *gin.Context) {
	f := customerFilterFromQuery(c)
	page, err := h.store.ListCustomers(c.Request.Context(), f)
	if err != nil {
		slog.Error("list customers failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer ID is required"})
		return
	}
	if err := h.store.DeleteCustomer(c.Request.Context(), id); err != nil {
		slog.Error("delete customer failed", "error", err, "customer_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

func customerFilterFromQuery(c *gin.Context) domain.CustomerFilter {
	return domain.CustomerFilter{
		Search:      c.Query("search"),
		PaymentMode: c.Query("paymentMode"),
		StaffName:   c.Query("staffName"),
		DateFrom:    c.Query("dateFrom"),
		DateTo:      c.Query("dateTo"),
		Page:        intQuery(c, "page", 1),
		Limit:       intQuery(c, "limit", 10),
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

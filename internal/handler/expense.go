// internal/handler/expense.go
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"salon-manager/internal/domain"
	"salon-manager/internal/notify"
	"salon-manager/internal/storage"
)

type ExpenseHandler struct {
	store    storage.ExpenseStorage
	notifier notify.Notifier
}

func NewExpenseHandler(store storage.ExpenseStorage, notifier notify.Notifier) *ExpenseHandler {
	return &ExpenseHandler{store: store, notifier: notifier}
}

type expenseItemRequest struct {
	Name   string           `json:"name" validate:"required,notblank"`
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}

type saveExpenseRequest struct {
	Date        string               `json:"date" validate:"required,dateonly"`
	Time        string               `json:"time" validate:"required,clocktime"`
	Items       []expenseItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount *decimal.Decimal     `json:"totalAmount" validate:"required"`
	DateTime    string               `json:"dateTime"`
}

// toRecord validates item amounts and the combined date-time and builds the
// record. TotalAmount is taken exactly as supplied; it is never recomputed
// from the item list.
func (req *saveExpenseRequest) toRecord() (*domain.ExpenseRecord, string) {
	items := make([]domain.ExpenseItem, 0, len(req.Items))
	for _, item := range req.Items {
		if !item.Amount.IsPositive() {
			return nil, "Each item must have a valid name and positive amount"
		}
		items = append(items, domain.ExpenseItem{
			Name:   strings.TrimSpace(item.Name),
			Amount: *item.Amount,
		})
	}

	dateTime := req.DateTime
	if dateTime == "" {
		var err error
		dateTime, err = domain.CombineDateTime(req.Date, req.Time)
		if err != nil {
			return nil, "Invalid date or time format"
		}
	} else if _, err := domain.ParseDateTime(dateTime); err != nil {
		return nil, "Invalid date or time format"
	}

	return &domain.ExpenseRecord{
		Date:        req.Date,
		Time:        req.Time,
		DateTime:    dateTime,
		Items:       items,
		TotalAmount: *req.TotalAmount,
	}, ""
}

func (h *ExpenseHandler) Add(c *gin.Context) {
	var req saveExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, msg := req.toRecord()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	id, err := h.store.CreateExpense(c.Request.Context(), record)
	if err != nil {
		slog.Error("add expense failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add expense"})
		return
	}

	h.notifier.ExpenseRecorded(*record)

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Expense added successfully"})
}

func (h *ExpenseHandler) List(c *gin.Context) {
	f := expenseFilterFromQuery(c)
	page, err := h.store.ListExpenses(c.Request.Context(), f)
	if err != nil {
		slog.Error("list expenses failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// Update replaces date, time, items and total wholesale.
func (h *ExpenseHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expense ID is required"})
		return
	}

	var req saveExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, msg := req.toRecord()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.store.UpdateExpense(c.Request.Context(), id, record); err != nil {
		slog.Error("update expense failed", "error", err, "expense_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense updated successfully"})
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expense ID is required"})
		return
	}
	if err := h.store.DeleteExpense(c.Request.Context(), id); err != nil {
		slog.Error("delete expense failed", "error", err, "expense_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

func expenseFilterFromQuery(c *gin.Context) domain.ExpenseFilter {
	return domain.ExpenseFilter{
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
		Page:     intQuery(c, "page", 1),
		Limit:    intQuery(c, "limit", 10),
	}
}

// internal/handler/export.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"salon-manager/internal/export"
	"salon-manager/internal/storage"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	customers storage.CustomerStorage
	expenses  storage.ExpenseStorage
}

func NewExportHandler(customers storage.CustomerStorage, expenses storage.ExpenseStorage) *ExportHandler {
	return &ExportHandler{customers: customers, expenses: expenses}
}

// Customers streams an .xlsx of every transaction matching the same filter
// params as the list endpoint, without pagination.
func (h *ExportHandler) Customers(c *gin.Context) {
	f := customerFilterFromQuery(c)
	f.Page, f.Limit = 0, 0 // export is never paginated

	page, err := h.customers.ListCustomers(c.Request.Context(), f)
	if err != nil {
		slog.Error("export customers: list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export customers"})
		return
	}

	book, err := export.Customers(page.Customers)
	if err != nil {
		slog.Error("export customers: workbook failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export customers"})
		return
	}
	writeWorkbook(c, book, "customers.xlsx")
}

func (h *ExportHandler) Expenses(c *gin.Context) {
	f := expenseFilterFromQuery(c)
	f.Page, f.Limit = 0, 0

	page, err := h.expenses.ListExpenses(c.Request.Context(), f)
	if err != nil {
		slog.Error("export expenses: list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export expenses"})
		return
	}

	book, err := export.Expenses(page.Expenses)
	if err != nil {
		slog.Error("export expenses: workbook failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export expenses"})
		return
	}
	writeWorkbook(c, book, "expenses.xlsx")
}

func writeWorkbook(c *gin.Context, book *excelize.File, name string) {
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	if err := book.Write(c.Writer); err != nil {
		slog.Error("export: write failed", "error", err, "file", name)
	}
}

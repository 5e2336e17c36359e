// internal/handler/staff.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"salon-manager/internal/auth"
	"salon-manager/internal/domain"
	"salon-manager/internal/storage"
)

type StaffHandler struct {
	store storage.StaffStorage
}

func NewStaffHandler(store storage.StaffStorage) *StaffHandler {
	return &StaffHandler{store: store}
}

type addStaffRequest struct {
	FullName     string                          `json:"fullName" validate:"required,notblank"`
	Salary       *decimal.Decimal                `json:"salary" validate:"required"`
	JoiningDate  string                          `json:"joiningDate" validate:"required,dateonly"`
	Password     string                          `json:"password" validate:"required,min=6"`
	SalaryStatus map[string]domain.PaymentEntry  `json:"salaryStatus"`
}

func (h *StaffHandler) Add(c *gin.Context) {
	var req addStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Salary.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Salary must be a valid non-negative number"})
		return
	}
	if err := validateMonthKeys(req.SalaryStatus); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("add staff: hash failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add staff member"})
		return
	}

	st := &domain.Staff{
		FullName:     strings.TrimSpace(req.FullName),
		Salary:       *req.Salary,
		JoiningDate:  req.JoiningDate,
		PasswordHash: hash,
		SalaryStatus: req.SalaryStatus,
	}
	id, err := h.store.CreateStaff(c.Request.Context(), st)
	if err != nil {
		slog.Error("add staff failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add staff member"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Staff member added successfully"})
}

func (h *StaffHandler) List(c *gin.Context) {
	staff, err := h.store.ListStaff(c.Request.Context())
	if err != nil {
		slog.Error("list staff failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

type updateSalaryRequest struct {
	Salary       *decimal.Decimal               `json:"salary"`
	SalaryStatus map[string]domain.PaymentEntry `json:"salaryStatus"`
}

// UpdateSalary is a partial update: supplied fields overwrite, omitted fields
// are untouched. The salaryStatus map is replaced wholesale, so a caller must
// send the full map to add or edit a single month's entry.
func (h *StaffHandler) UpdateSalary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Staff ID is required"})
		return
	}

	var req updateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.Salary != nil && req.Salary.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Salary must be a valid non-negative number"})
		return
	}
	if err := validateMonthKeys(req.SalaryStatus); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdateStaffSalary(c.Request.Context(), id, req.Salary, req.SalaryStatus); err != nil {
		slog.Error("update staff salary failed", "error", err, "staff_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff salary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff salary updated successfully"})
}

func (h *StaffHandler) UpdatePassword(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Staff ID is required"})
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("update staff password: hash failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff password"})
		return
	}
	if err := h.store.UpdateStaffPassword(c.Request.Context(), id, hash); err != nil {
		slog.Error("update staff password failed", "error", err, "staff_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff password updated successfully"})
}

// Delete is unconditional; a missing id still returns 200.
func (h *StaffHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Staff ID is required"})
		return
	}
	if err := h.store.DeleteStaff(c.Request.Context(), id); err != nil {
		slog.Error("delete staff failed", "error", err, "staff_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}

var errBadMonthKey = errors.New(`salaryStatus keys must look like "January, 2024"`)

func validateMonthKeys(status map[string]domain.PaymentEntry) error {
	for key := range status {
		if !domain.ValidMonthKey(key) {
			return errBadMonthKey
		}
	}
	return nil
}

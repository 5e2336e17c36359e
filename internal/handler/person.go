// internal/handler/person.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-manager/internal/domain"
	"salon-manager/internal/storage"
)

type PersonHandler struct {
	store storage.PersonStorage
}

func NewPersonHandler(store storage.PersonStorage) *PersonHandler {
	return &PersonHandler{store: store}
}

func (h *PersonHandler) Add(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	id, err := h.store.CreatePerson(c.Request.Context(), &domain.Person{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		slog.Error("add person failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add person"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Person added successfully"})
}

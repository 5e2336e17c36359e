// internal/handler/auth.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-manager/internal/auth"
	"salon-manager/internal/storage"
)

type AuthHandler struct {
	creds  storage.CredentialStorage
	staff  storage.StaffStorage
	tokens *auth.TokenService
}

func NewAuthHandler(creds storage.CredentialStorage, staff storage.StaffStorage, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{creds: creds, staff: staff, tokens: tokens}
}

// Login checks the supplied password against the singleton credential and
// issues a bearer token for the shared admin session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	cred, err := h.creds.GetCredential(c.Request.Context())
	if err != nil {
		slog.Error("login: credential lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if cred == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login configuration not found"})
		return
	}

	if !auth.CheckPassword(cred.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := h.tokens.GenerateToken(auth.Session{Role: auth.RoleAdmin})
	if err != nil {
		slog.Error("login: token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

// StaffLogin authenticates a staff member by exact full-name match.
func (h *AuthHandler) StaffLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	st, err := h.staff.FindStaffByName(c.Request.Context(), req.Username)
	if err != nil {
		slog.Error("staff login: lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if st == nil || !auth.CheckPassword(st.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := h.tokens.GenerateToken(auth.Session{Role: auth.RoleStaff, StaffID: st.ID})
	if err != nil {
		slog.Error("staff login: token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"role":    auth.RoleStaff,
		"staffId": st.ID,
		"token":   token,
	})
}

// ChangePassword rotates the shared login password. The length check runs
// before the current-password check, so a short new password is rejected
// regardless of whether the current one is correct.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password and new password are required"})
		return
	}
	if len(req.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password must be at least 6 characters long"})
		return
	}

	cred, err := h.creds.GetCredential(c.Request.Context())
	if err != nil {
		slog.Error("change password: credential lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}
	if cred == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Password configuration not found"})
		return
	}

	if !auth.CheckPassword(cred.PasswordHash, req.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("change password: hash failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}
	if err := h.creds.UpdateCredential(c.Request.Context(), hash); err != nil {
		slog.Error("change password: update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

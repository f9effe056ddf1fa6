package handlers

import (
	"errors"
	"net/http"
	"time"

	"astromarket/models"
	"astromarket/services/customer"
	"astromarket/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminCredentials is the single configured admin account.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// AdminHandler encapsulates the customers admin operations.
type AdminHandler struct {
	Customers   customer.CustomerAdminService
	Credentials AdminCredentials
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(cs customer.CustomerAdminService, creds AdminCredentials) *AdminHandler {
	return &AdminHandler{Customers: cs, Credentials: creds}
}

// LoginHandler exchanges admin credentials for an admin token.
func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if ah.Credentials.PasswordHash == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "Admin login is not configured", "")
		return
	}
	if input.Username != ah.Credentials.Username ||
		bcrypt.CompareHashAndPassword([]byte(ah.Credentials.PasswordHash), []byte(input.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(input.Username, utils.RoleAdmin, adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}
	getLogger(c).Info("Admin logged in", zap.String("username", input.Username))
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}

// ListCustomersHandler returns the filtered roster and stats over the full roster.
func (ah *AdminHandler) ListCustomersHandler(c *gin.Context) {
	var filter models.CustomerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	result, err := ah.Customers.Search(c.Request.Context(), filter)
	if errors.Is(err, customer.ErrInvalidStatus) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status filter", filter.Status)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch customers", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ah *AdminHandler) CustomerStatsHandler(c *gin.Context) {
	stats, err := ah.Customers.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute customer stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (ah *AdminHandler) GetCustomerHandler(c *gin.Context) {
	detail, err := ah.Customers.GetCustomer(c.Request.Context(), c.Param("id"))
	if errors.Is(err, customer.ErrCustomerNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Customer not found", c.Param("id"))
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (ah *AdminHandler) ExportCustomersHandler(c *gin.Context) {
	var filter models.CustomerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	data, err := ah.Customers.Export(c.Request.Context(), filter)
	if errors.Is(err, customer.ErrInvalidStatus) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status filter", filter.Status)
		return
	}
	if errors.Is(err, customer.ErrExportUnavailable) {
		utils.JSONError(c, http.StatusNotImplemented, "Export is not available yet", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to export customers", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/csv", data)
}

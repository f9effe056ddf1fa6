package handlers

import (
	"errors"
	"net/http"

	catalogRepo "astromarket/database/repository/catalog"
	"astromarket/services/catalog"
	"astromarket/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the problem and astrologer catalogs.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// GetProblemsHandler returns problems grouped by category.
func (h *CatalogHandler) GetProblemsHandler(c *gin.Context) {
	groups, err := h.Service.GroupedProblems(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load problems", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": groups})
}

func (h *CatalogHandler) GetAstrologersHandler(c *gin.Context) {
	astrologers, err := h.Service.ListAstrologers(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load astrologers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"astrologers": astrologers})
}

func (h *CatalogHandler) GetAstrologerHandler(c *gin.Context) {
	astrologer, err := h.Service.GetAstrologer(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalogRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Astrologer not found", c.Param("id"))
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load astrologer", err.Error())
		return
	}
	c.JSON(http.StatusOK, astrologer)
}

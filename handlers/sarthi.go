package handlers

import (
	"errors"
	"net/http"

	"astromarket/middleware"
	"astromarket/services/sarthi"
	"astromarket/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SarthiHandler serves problem selection.
type SarthiHandler struct {
	Service sarthi.SarthiService
}

func NewSarthiHandler(svc sarthi.SarthiService) *SarthiHandler {
	return &SarthiHandler{Service: svc}
}

type customTextInput struct {
	Text string `json:"text"`
}

// selectionInput is either {problemId} or {custom: true, text}.
type selectionInput struct {
	ProblemID string `json:"problemId"`
	Custom    bool   `json:"custom"`
	Text      string `json:"text"`
}

// CheckCustomHandler reports the word count indicator for custom text.
func (h *SarthiHandler) CheckCustomHandler(c *gin.Context) {
	var input customTextInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Service.CheckCustom(input.Text))
}

func (h *SarthiHandler) SubmitSelectionHandler(c *gin.Context) {
	var input selectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	userID := middleware.CurrentUserID(c)
	ctx := c.Request.Context()

	var err error
	var out any
	switch {
	case input.Custom:
		out, err = h.Service.SubmitCustom(ctx, userID, input.Text)
	case input.ProblemID != "":
		out, err = h.Service.SelectProblem(ctx, userID, input.ProblemID)
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "problemId or custom text is required")
		return
	}

	switch {
	case errors.Is(err, sarthi.ErrUnknownProblem):
		utils.JSONError(c, http.StatusNotFound, "Problem not found", input.ProblemID)
	case errors.Is(err, sarthi.ErrCannotSubmit):
		check := h.Service.CheckCustom(input.Text)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"message": err.Error(),
			"check":   check,
		})
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record selection", err.Error())
	default:
		getLogger(c).Debug("Sarthi selection recorded", zap.String("userId", userID))
		c.JSON(http.StatusCreated, out)
	}
}

func (h *SarthiHandler) ListRequestsHandler(c *gin.Context) {
	requests, err := h.Service.ListRequests(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load requests", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

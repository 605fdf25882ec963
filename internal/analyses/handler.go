package analyses

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumescore-backend/internal/shared/server/middleware"
	"resumescore-backend/internal/shared/server/respond"
)

// Handler exposes the analysis HTTP surface.
type Handler struct {
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches analysis routes to an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/analysis/:id", h.get)
	rg.GET("/user/history", h.history)
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrNoFile.Error(), err)
		return
	}

	opened, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Analysis failed. Please try again.", err)
		return
	}
	defer opened.Close()

	data, err := io.ReadAll(io.LimitReader(opened, MaxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Analysis failed. Please try again.", err)
		return
	}

	analysis, err := h.service.Analyze(c.Request.Context(), userID, UploadedFile{
		Name:      fileHeader.Filename,
		MediaType: fileHeader.Header.Get("Content-Type"),
		Size:      fileHeader.Size,
		Data:      data,
	})
	if err != nil {
		if IsValidationError(err) {
			respond.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Analysis failed. Please try again.", err)
		return
	}

	c.Set("analysisId", analysis.ID)
	c.Set("resumeId", analysis.ResumeID)
	respond.OK(c, gin.H{
		"success":  true,
		"analysis": analysis,
	})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "Analysis not found", nil)
		return
	}

	analysis, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Analysis not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to load analysis", err)
		return
	}

	respond.OK(c, gin.H{"analysis": analysis})
}

func (h *Handler) history(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	history, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to load history", err)
		return
	}

	respond.OK(c, gin.H{"history": history})
}

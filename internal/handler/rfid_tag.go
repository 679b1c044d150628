package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HenricoTaiete/trabalho-Scar/internal/models"
	"github.com/HenricoTaiete/trabalho-Scar/internal/service"
)

type RFIDTagHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Delete(c *gin.Context)
}

type rfidTagHandler struct {
	tagService service.RFIDTagService
	log        *zap.Logger
}

func NewRFIDTagHandler(tagService service.RFIDTagService, log *zap.Logger) RFIDTagHandler {
	return &rfidTagHandler{tagService: tagService, log: log}
}

type CreateTagRequest struct {
	TagUID string `json:"tag_uid" binding:"required"`
	UserID *int64 `json:"user_id"`
}

type tagResponse struct {
	ID     int64  `json:"id"`
	TagUID string `json:"tag_uid"`
	UserID *int64 `json:"user_id"`
}

func toTagResponse(t *models.RFIDTag) tagResponse {
	resp := tagResponse{ID: t.ID, TagUID: t.TagUID}
	if t.UserID.Valid {
		id := t.UserID.Int64
		resp.UserID = &id
	}
	return resp
}

func (h *rfidTagHandler) Create(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.RegisterTag(req.TagUID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTagAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Tag already registered"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tag uid is required"})
		default:
			h.log.Error("Failed to create tag", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
		}
		return
	}

	c.JSON(http.StatusCreated, toTagResponse(tag))
}

func (h *rfidTagHandler) Get(c *gin.Context) {
	tag, err := h.tagService.GetTag(c.Param("uid"))
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
			return
		}
		h.log.Error("Failed to get tag", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tag"})
		return
	}

	c.JSON(http.StatusOK, toTagResponse(tag))
}

func (h *rfidTagHandler) List(c *gin.Context) {
	tags, err := h.tagService.ListTags()
	if err != nil {
		h.log.Error("Failed to list tags", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tags"})
		return
	}

	resp := make([]tagResponse, 0, len(tags))
	for i := range tags {
		resp = append(resp, toTagResponse(&tags[i]))
	}
	c.JSON(http.StatusOK, gin.H{"tags": resp})
}

func (h *rfidTagHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag id"})
		return
	}

	if err := h.tagService.DeleteTag(id); err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
			return
		}
		h.log.Error("Failed to delete tag", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

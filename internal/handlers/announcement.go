package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/underdogsx/coordination-api/internal/errors"
	"github.com/underdogsx/coordination-api/internal/middleware"
	"github.com/underdogsx/coordination-api/internal/models"
	"github.com/underdogsx/coordination-api/internal/repository"
	"github.com/underdogsx/coordination-api/internal/utils"
)

type AnnouncementHandler struct {
	announcementRepo repository.AnnouncementRepository
}

func NewAnnouncementHandler(announcementRepo repository.AnnouncementRepository) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementRepo: announcementRepo,
	}
}

// ListAnnouncements returns announcements, pinned first then newest first.
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	announcements, err := h.announcementRepo.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch announcements")
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement creates an announcement authored by the caller.
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateAnnouncementRequest struct {
		Title    string          `json:"title" binding:"required"`
		Content  string          `json:"content" binding:"required"`
		Priority models.Priority `json:"priority"`
		Pinned   bool            `json:"pinned"`
	}

	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		apierrors.BadRequest(c, "Invalid priority")
		return
	}

	announcement := models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: userID,
		Priority: priority,
		Pinned:   req.Pinned,
	}

	if err := h.announcementRepo.Create(&announcement); err != nil {
		apierrors.InternalError(c, "Failed to create announcement")
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

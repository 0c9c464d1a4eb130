package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apierrors "github.com/underdogsx/coordination-api/internal/errors"
	"github.com/underdogsx/coordination-api/internal/middleware"
	"github.com/underdogsx/coordination-api/internal/models"
	"github.com/underdogsx/coordination-api/internal/repository"
)

type CommentHandler struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
}

func NewCommentHandler(commentRepo repository.CommentRepository, taskRepo repository.TaskRepository) *CommentHandler {
	return &CommentHandler{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
	}
}

// ListTaskComments returns a task's comments oldest first.
func (h *CommentHandler) ListTaskComments(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	comments, err := h.commentRepo.ListByTask(taskID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment adds a comment authored by the caller to an existing task.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateCommentRequest struct {
		Content string `json:"content" binding:"required"`
		TaskID  uint64 `json:"task_id" binding:"required"`
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.taskRepo.FindByID(req.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to check task")
		return
	}

	comment := models.Comment{
		Content:  req.Content,
		AuthorID: userID,
		TaskID:   req.TaskID,
	}

	if err := h.commentRepo.Create(&comment); err != nil {
		apierrors.InternalError(c, "Failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

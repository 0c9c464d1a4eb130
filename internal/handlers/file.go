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

// FileHandler exposes file metadata records. The bytes themselves live
// elsewhere; only name/type/size/url are tracked.
type FileHandler struct {
	fileRepo repository.FileRepository
}

func NewFileHandler(fileRepo repository.FileRepository) *FileHandler {
	return &FileHandler{
		fileRepo: fileRepo,
	}
}

// ListFiles returns file records with pagination.
func (h *FileHandler) ListFiles(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	files, err := h.fileRepo.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch files")
		return
	}

	c.JSON(http.StatusOK, files)
}

// CreateFile stores a file record with the caller as uploader.
func (h *FileHandler) CreateFile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateFileRequest struct {
		Name        string  `json:"name" binding:"required"`
		FileType    string  `json:"file_type"`
		Size        *int64  `json:"size"`
		URL         *string `json:"url"`
		Description *string `json:"description"`
	}

	var req CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	fileType := req.FileType
	if fileType == "" {
		fileType = "file"
	}

	file := models.File{
		Name:        req.Name,
		FileType:    fileType,
		Size:        req.Size,
		URL:         req.URL,
		Description: req.Description,
		UploaderID:  userID,
	}

	if err := h.fileRepo.Create(&file); err != nil {
		apierrors.InternalError(c, "Failed to create file record")
		return
	}

	c.JSON(http.StatusCreated, file)
}

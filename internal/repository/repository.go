package repository

import (
	"time"

	"github.com/underdogsx/coordination-api/internal/models"
	"github.com/underdogsx/coordination-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// UpdatePresence sets the presence status and last-active timestamp
	UpdatePresence(id uint64, status models.UserStatus, lastActive time.Time) error

	// List retrieves users with pagination
	List(params utils.PaginationParams) ([]models.User, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	Status   *models.TaskStatus
	Priority *models.Priority
	Offset   int
	Limit    int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update persists all fields of a task
	Update(task *models.Task) error
}

// AnnouncementRepository defines the interface for announcement data access
type AnnouncementRepository interface {
	// Create creates a new announcement
	Create(announcement *models.Announcement) error

	// List retrieves announcements, pinned first then newest first
	List(params utils.PaginationParams) ([]models.Announcement, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// ListByTask retrieves a task's comments oldest first
	ListByTask(taskID uint64) ([]models.Comment, error)
}

// FileRepository defines the interface for file metadata access
type FileRepository interface {
	// Create stores a new file record
	Create(file *models.File) error

	// List retrieves file records with pagination
	List(params utils.PaginationParams) ([]models.File, error)
}

package repository

import (
	"gorm.io/gorm"

	"github.com/underdogsx/coordination-api/internal/database"
	"github.com/underdogsx/coordination-api/internal/models"
	"github.com/underdogsx/coordination-api/internal/utils"
)

// GormFileRepository is a GORM implementation of FileRepository
type GormFileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(db *gorm.DB) FileRepository {
	return &GormFileRepository{db: db}
}

// Create stores a new file record
func (r *GormFileRepository) Create(file *models.File) error {
	return r.db.Create(file).Error
}

// List retrieves file records with pagination
func (r *GormFileRepository) List(params utils.PaginationParams) ([]models.File, error) {
	var files []models.File
	err := r.db.
		Scopes(database.Paginate(params)).
		Order("files.id ASC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

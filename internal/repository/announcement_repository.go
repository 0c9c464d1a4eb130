package repository

import (
	"gorm.io/gorm"

	"github.com/underdogsx/coordination-api/internal/database"
	"github.com/underdogsx/coordination-api/internal/models"
	"github.com/underdogsx/coordination-api/internal/utils"
)

// GormAnnouncementRepository is a GORM implementation of AnnouncementRepository
type GormAnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &GormAnnouncementRepository{db: db}
}

// Create creates a new announcement
func (r *GormAnnouncementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// List retrieves announcements, pinned first then newest first
func (r *GormAnnouncementRepository) List(params utils.PaginationParams) ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.
		Order("announcements.pinned DESC, announcements.created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

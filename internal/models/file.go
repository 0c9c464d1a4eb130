package models

import "time"

type File struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	FileType    string    `gorm:"type:varchar(100);not null;default:'file'" json:"file_type"`
	Size        *int64    `json:"size"`
	URL         *string   `gorm:"type:varchar(512)" json:"url"`
	Description *string   `gorm:"type:text" json:"description"`
	UploaderID  uint64    `gorm:"not null;index" json:"uploader_id"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	// Relations
	Uploader *User `gorm:"foreignKey:UploaderID" json:"uploader,omitempty"`
}

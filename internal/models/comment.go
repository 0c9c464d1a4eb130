package models

import "time"

type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	TaskID    uint64    `gorm:"not null;index" json:"task_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Task   *Task `gorm:"foreignKey:TaskID" json:"-"`
}

package models

import "time"

type UserStatus string

const (
	UserStatusOnline  UserStatus = "online"
	UserStatusAway    UserStatus = "away"
	UserStatusBusy    UserStatus = "busy"
	UserStatusOffline UserStatus = "offline"
)

// Valid reports whether the value is a known presence status.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusOnline, UserStatusAway, UserStatusBusy, UserStatusOffline:
		return true
	}
	return false
}

type User struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Role         string     `gorm:"type:varchar(100);not null;default:'user'" json:"role"`
	Department   string     `gorm:"type:varchar(100)" json:"department"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'offline'" json:"status"`
	Avatar       *string    `gorm:"type:varchar(255)" json:"avatar,omitempty"`
	JoinedAt     time.Time  `json:"joined_at"`
	LastActive   time.Time  `json:"last_active"`
	Skills       string     `gorm:"type:text" json:"skills"`
	Location     *string    `gorm:"type:varchar(255)" json:"location"`
	Phone        *string    `gorm:"type:varchar(50)" json:"phone"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`

	// Relations
	CreatedTasks  []Task         `gorm:"foreignKey:CreatorID" json:"-"`
	AssignedTasks []Task         `gorm:"foreignKey:AssigneeID" json:"-"`
	Announcements []Announcement `gorm:"foreignKey:AuthorID" json:"-"`
	Comments      []Comment      `gorm:"foreignKey:AuthorID" json:"-"`
	Files         []File         `gorm:"foreignKey:UploaderID" json:"-"`
}

package main

import (
	"log"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/underdogsx/coordination-api/internal/config"
	"github.com/underdogsx/coordination-api/internal/database"
	"github.com/underdogsx/coordination-api/internal/logger"
	"github.com/underdogsx/coordination-api/internal/models"
)

// Seeds a demo team for local development. Skips entirely if any users
// already exist.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		zlog.Fatal("Failed to count users", zap.Error(err))
	}
	if count > 0 {
		zlog.Info("Database already seeded, nothing to do", zap.Int64("users", count))
		return
	}

	if err := seed(db); err != nil {
		zlog.Fatal("Seeding failed", zap.Error(err))
	}
	zlog.Info("Demo data seeded")
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	return string(hash)
}

func strPtr(s string) *string { return &s }

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		users := []models.User{
			{
				Username:     "admin",
				Email:        "admin@example.com",
				PasswordHash: mustHash("admin123"),
				Role:         "admin",
				Department:   "Management",
				Status:       models.UserStatusOnline,
				JoinedAt:     now.AddDate(0, -6, 0),
				LastActive:   now,
				Skills:       "Leadership,Strategy,Project Management",
				Location:     strPtr("New York, NY"),
				Phone:        strPtr("+1 (555) 000-0001"),
				IsActive:     true,
			},
			{
				Username:     "john_doe",
				Email:        "john@example.com",
				PasswordHash: mustHash("password123"),
				Role:         "Lead Developer",
				Department:   "Engineering",
				Status:       models.UserStatusOnline,
				JoinedAt:     now.AddDate(0, 0, -30),
				LastActive:   now,
				Skills:       "React,Node.js,TypeScript,AWS",
				Location:     strPtr("San Francisco, CA"),
				Phone:        strPtr("+1 (555) 123-4567"),
				IsActive:     true,
			},
			{
				Username:     "jane_smith",
				Email:        "jane@example.com",
				PasswordHash: mustHash("password123"),
				Role:         "Designer",
				Department:   "Design",
				Status:       models.UserStatusAway,
				JoinedAt:     now.AddDate(0, 0, -45),
				LastActive:   now.Add(-2 * time.Hour),
				Skills:       "Figma,UI/UX,Prototyping",
				Location:     strPtr("Austin, TX"),
				IsActive:     true,
			},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		dueSoon := now.AddDate(0, 0, 7)
		tasks := []models.Task{
			{
				Title:       "Set up CI pipeline",
				Description: "Build, lint, and test on every push",
				Status:      models.TaskStatusInProgress,
				Priority:    models.PriorityHigh,
				AssigneeID:  &users[1].ID,
				CreatorID:   users[0].ID,
				DueDate:     &dueSoon,
				Tags:        "infra,ci",
			},
			{
				Title:       "Design onboarding flow",
				Description: "Wireframes for the first-run experience",
				Status:      models.TaskStatusPending,
				Priority:    models.PriorityMedium,
				AssigneeID:  &users[2].ID,
				CreatorID:   users[1].ID,
				Tags:        "design",
			},
		}
		if err := tx.Create(&tasks).Error; err != nil {
			return err
		}

		announcements := []models.Announcement{
			{
				Title:    "Welcome to the team workspace",
				Content:  "Tasks, announcements, and files all live here now.",
				AuthorID: users[0].ID,
				Priority: models.PriorityHigh,
				Pinned:   true,
			},
			{
				Title:    "Standup moved to 9:30",
				Content:  "Starting next Monday.",
				AuthorID: users[0].ID,
				Priority: models.PriorityMedium,
			},
		}
		if err := tx.Create(&announcements).Error; err != nil {
			return err
		}

		comments := []models.Comment{
			{
				Content:  "Runner image is ready, wiring up the workflow next.",
				AuthorID: users[1].ID,
				TaskID:   tasks[0].ID,
			},
			{
				Content:  "Ping me when the lint step is in, I want to add the style rules.",
				AuthorID: users[2].ID,
				TaskID:   tasks[0].ID,
			},
		}
		if err := tx.Create(&comments).Error; err != nil {
			return err
		}

		size := int64(482133)
		files := []models.File{
			{
				Name:        "brand-guidelines.pdf",
				FileType:    "pdf",
				Size:        &size,
				URL:         strPtr("https://files.example.com/brand-guidelines.pdf"),
				Description: strPtr("Current brand palette and typography"),
				UploaderID:  users[2].ID,
			},
		}
		return tx.Create(&files).Error
	})
}

package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/underdogsx/coordination-api/internal/models"
	"github.com/underdogsx/coordination-api/internal/utils"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

// The pinned-first/newest-first ordering must be part of the query itself,
// not sorted in memory.
func TestAnnouncementRepository_List_OrderingClause(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnnouncementRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "content", "author_id", "priority", "pinned", "created_at", "updated_at"}).
		AddRow(3, "pinned one", "c", 1, "high", true, now, now).
		AddRow(2, "newer", "b", 1, "medium", false, now, now).
		AddRow(1, "older", "a", 1, "medium", false, now.Add(-time.Hour), now)

	mock.ExpectQuery("SELECT (.+) FROM `announcements` ORDER BY announcements.pinned DESC, announcements.created_at DESC LIMIT(.*)").
		WillReturnRows(rows)

	announcements, err := repo.List(utils.PaginationParams{Offset: 0, Limit: 100})
	require.NoError(t, err)
	require.Len(t, announcements, 3)
	require.Equal(t, "pinned one", announcements[0].Title)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnnouncementRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `announcements`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	announcement := &models.Announcement{
		Title:    "Release",
		Content:  "v2 is out",
		AuthorID: 1,
		Priority: models.PriorityMedium,
	}
	require.NoError(t, repo.Create(announcement))
	require.Equal(t, uint64(7), announcement.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

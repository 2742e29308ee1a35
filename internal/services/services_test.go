package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/moim/internal/database"
	"github.com/example/moim/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func createMember(t *testing.T, db *gorm.DB, phone, nickname string) *models.Member {
	t.Helper()

	member, err := NewMemberService(db).FindOrCreate(phone)
	require.NoError(t, err)

	if nickname != "" {
		require.NoError(t, db.Model(member).Update("nickname", nickname).Error)
		member.Nickname = &nickname
	}

	return member
}

package services

import (
	"fmt"
	"strings"
	"testing"

	"hanviet-cards/backend/app/models"
	"hanviet-cards/backend/app/repo"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Card{}))
	return gdb
}

func newCardService(t *testing.T) (*CardService, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	return NewCardService(repo.NewCardRepository(gdb)), gdb
}

func mustUser(t *testing.T, gdb *gorm.DB, username, role string) *models.User {
	t.Helper()
	u := &models.User{Username: username, PasswordHash: "x", Role: role}
	require.NoError(t, gdb.Create(u).Error)
	return u
}

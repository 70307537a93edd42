package repo

import (
	"testing"

	"hanviet-cards/backend/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	r := NewUserRepository(newTestDB(t))

	u := &models.User{Username: "alice", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, r.Create(u))
	assert.NotEmpty(t, u.ID, "BeforeCreate should assign a uuid")

	got, err := r.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	byID, err := r.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	count, err := r.CountByUsername("alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, err = r.FindByUsername("nobody")
	assert.Error(t, err)
}

func TestUserRepository_UsernameIsCaseSensitive(t *testing.T) {
	r := NewUserRepository(newTestDB(t))

	require.NoError(t, r.Create(&models.User{Username: "Alice", PasswordHash: "x", Role: models.RoleUser}))

	count, err := r.CountByUsername("alice")
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestUserRepository_CreateFirstAware(t *testing.T) {
	r := NewUserRepository(newTestDB(t))

	first := &models.User{Username: "alice", PasswordHash: "x"}
	require.NoError(t, r.CreateFirstAware(first))
	assert.Equal(t, models.RoleAdmin, first.Role)

	second := &models.User{Username: "bob", PasswordHash: "x"}
	require.NoError(t, r.CreateFirstAware(second))
	assert.Equal(t, models.RoleUser, second.Role)

	third := &models.User{Username: "carol", PasswordHash: "x"}
	require.NoError(t, r.CreateFirstAware(third))
	assert.Equal(t, models.RoleUser, third.Role)
}

func TestUserRepository_DuplicateUsernameRejected(t *testing.T) {
	r := NewUserRepository(newTestDB(t))

	require.NoError(t, r.Create(&models.User{Username: "alice", PasswordHash: "x", Role: models.RoleUser}))
	err := r.Create(&models.User{Username: "alice", PasswordHash: "y", Role: models.RoleUser})
	assert.Error(t, err, "unique index on username should reject duplicates")
}

package services

import (
	"testing"

	"github.com/dilshan-mv/coindeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmailAvailable(t *testing.T) {
	conn := setupTestDB(t)
	userS := User{Conn: conn}

	_, available, _, err := userS.IsEmailAvailable("fresh@example.com")
	require.NoError(t, err)
	assert.True(t, available)

	user := seedUser(t, conn, "taken@example.com", "correct horse battery staple")

	ownerID, available, verified, err := userS.IsEmailAvailable("taken@example.com")
	require.NoError(t, err)
	assert.False(t, available)
	assert.False(t, verified)
	require.NotNil(t, ownerID)
	assert.Equal(t, *user.ID, *ownerID)

	require.NoError(t, userS.MarkVerified(*user.ID))

	_, available, verified, err = userS.IsEmailAvailable("taken@example.com")
	require.NoError(t, err)
	assert.False(t, available)
	assert.True(t, verified)
}

func TestCreateAssignsAnIDWhenAbsent(t *testing.T) {
	conn := setupTestDB(t)
	userS := User{Conn: conn}

	newUser, err := userS.Create(models.User{
		Email:    "new@example.com",
		Username: "new@example.com",
		Password: "hash",
	})
	require.NoError(t, err)
	require.NotNil(t, newUser.ID)

	fetched, err := userS.GetUserWithID(*newUser.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", fetched.Email)
}

func TestDeleteUserReclaimsTheEmail(t *testing.T) {
	conn := setupTestDB(t)
	userS := User{Conn: conn}

	user := seedUser(t, conn, "orphan@example.com", "correct horse battery staple")
	require.NoError(t, userS.DeleteUser(user))

	_, available, _, err := userS.IsEmailAvailable("orphan@example.com")
	require.NoError(t, err)
	assert.True(t, available)
}

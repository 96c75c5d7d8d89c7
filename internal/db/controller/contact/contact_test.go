package contact

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Contact{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func newContact(subject string) *models.Contact {
	return (&models.ContactInput{
		Name:    "Sana",
		Email:   "sana@example.com",
		Subject: subject,
		Message: "How can my school host a collection drive?",
	}).Record()
}

func TestCreateAndGetAll(t *testing.T) {
	db := setupTestDB(t)

	stored, err := Create(db, newContact("Collection drive"))
	require.NoError(t, err)

	assert.NotZero(t, stored.ID)
	assert.NotZero(t, stored.CreatedAt)
	assert.Equal(t, models.ContactStatusUnread, stored.Status)

	contacts, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Collection drive", contacts[0].Subject)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	stored, err := Create(db, newContact("Collection drive"))
	require.NoError(t, err)

	require.NoError(t, Delete(db, stored.ID))
	require.ErrorIs(t, Delete(db, stored.ID), ErrContactNotFound)
}

func TestUpdateStatus(t *testing.T) {
	db := setupTestDB(t)

	stored, err := Create(db, newContact("Collection drive"))
	require.NoError(t, err)

	updated, err := UpdateStatus(db, stored.ID, models.ContactStatusRead)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusRead, updated.Status)

	updated, err = UpdateStatus(db, stored.ID, models.ContactStatusUnread)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusUnread, updated.Status)

	_, err = UpdateStatus(db, 999, models.ContactStatusRead)
	require.ErrorIs(t, err, ErrContactNotFound)
}

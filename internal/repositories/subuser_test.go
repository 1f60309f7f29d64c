package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubuserReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewSubuserReadRepository(db)

	var parentID int64
	assert.NoError(t, db.Get(&parentID, `
		INSERT INTO users (email, name, password_hash, private_api_enabled)
		VALUES ('owner@example.com', 'Owner', 'hash', TRUE)
		RETURNING user_id
	`))
	_, err := db.Exec(`
		INSERT INTO subusers (email, name, password_hash, parent_user_id)
		VALUES ('child@example.com', 'Child', 'subhash', $1)
	`, parentID)
	assert.NoError(t, err)

	t.Run("GetByEmail resolves the parent email", func(t *testing.T) {
		subuser, err := repo.GetByEmail(ctx, "child@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, subuser)
		assert.Equal(t, "child@example.com", subuser.Email)
		assert.Equal(t, "Child", subuser.Name)
		assert.Equal(t, parentID, subuser.ParentUserID)
		assert.Equal(t, "owner@example.com", subuser.ParentEmail)
	})

	t.Run("GetByEmail missing", func(t *testing.T) {
		subuser, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.NoError(t, err)
		assert.Nil(t, subuser)
	})

	t.Run("ExistsByEmail", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "child@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "ghost@example.com")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

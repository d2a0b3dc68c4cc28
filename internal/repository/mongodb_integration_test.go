//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := NewMongoDB(getSharedContainerURI(), sanitizeDBName(t.Name()))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.NotNil(t, db.Jobs)
	})

	t.Run("health check", func(t *testing.T) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		assert.NoError(t, db.HealthCheck(pingCtx))
	})

	t.Run("set jobs TTL is repeatable", func(t *testing.T) {
		assert.NoError(t, db.SetJobsTTL(ctx, 30))
		assert.NoError(t, db.SetJobsTTL(ctx, 60))
		assert.NoError(t, db.SetJobsTTL(ctx, 0))
	})

	t.Run("invalid uri fails", func(t *testing.T) {
		_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "x", MongoConfig{
			MaxPoolSize:            1,
			ConnectTimeout:         500 * time.Millisecond,
			ServerSelectionTimeout: 500 * time.Millisecond,
			SocketTimeout:          500 * time.Millisecond,
		})
		assert.Error(t, err)
	})
}

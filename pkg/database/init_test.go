package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDBMissingURI(t *testing.T) {
	_, err := InitDB(context.Background(), "", "termfolio")
	assert.ErrorIs(t, err, ErrMissingURI)
}

func TestInitDB(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := InitDB(ctx, uri, "termfolio_init_test")
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.Equal(t, "termfolio_init_test", db.Name())
	assert.NoError(t, db.Client().Disconnect(ctx))
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/store"
	"github.com/campushire/placement-api/internal/store/kv"
)

// newTestStore loads the default dataset into a memory-backed store.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(kv.NewMemory(), zap.NewNop(), true)
	require.NoError(t, st.Load(context.Background()))
	return st
}

func seededUser(t *testing.T, st *store.Store, id string) models.User {
	t.Helper()
	user, ok := st.UserByID(id)
	require.True(t, ok, "expected seeded user %s", id)
	return user
}

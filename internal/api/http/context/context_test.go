package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/asconalumni/alumni-server/internal/model"
)

func TestManager_SetAndGetClaims(t *testing.T) {
	m := NewManager()
	claims := model.Claims{AccountID: uuid.New(), IsAdmin: true}
	ctx := m.SetClaimsToContext(stdctx.Background(), claims)

	got, ok := m.GetClaimsFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, claims, got)
}

func TestManager_GetClaims_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetClaimsFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetClaims_EmptyAccount(t *testing.T) {
	m := NewManager()
	ctx := m.SetClaimsToContext(stdctx.Background(), model.Claims{IsAdmin: true, CanEdit: true})
	_, ok := m.GetClaimsFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_OverwritesClaims(t *testing.T) {
	m := NewManager()
	first := model.Claims{AccountID: uuid.New()}
	second := model.Claims{AccountID: uuid.New(), IsAdmin: true, CanEdit: true}

	ctx := m.SetClaimsToContext(m.SetClaimsToContext(stdctx.Background(), first), second)
	got, ok := m.GetClaimsFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, second, got)
}

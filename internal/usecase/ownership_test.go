package usecase

import (
	"testing"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeOwner(t *testing.T) {
	alice := entity.NewIdentity(map[string]any{"email": "a@x.com"})

	tests := []struct {
		name     string
		identity *entity.Identity
		owner    string
		wantErr  error
	}{
		{name: "owner", identity: alice, owner: "a@x.com"},
		{name: "other owner", identity: alice, owner: "b@x.com", wantErr: domainerrors.ErrForbiddenAccess},
		{name: "case differs", identity: alice, owner: "A@x.com", wantErr: domainerrors.ErrForbiddenAccess},
		{name: "empty owner", identity: alice, owner: "", wantErr: domainerrors.ErrForbiddenAccess},
		{name: "no email claim", identity: entity.NewIdentity(map[string]any{}), owner: "", wantErr: domainerrors.ErrForbiddenAccess},
		{name: "no identity", identity: nil, owner: "a@x.com", wantErr: domainerrors.ErrUnauthorizedAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeOwner(tt.identity, tt.owner)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolveOwner(t *testing.T) {
	alice := entity.NewIdentity(map[string]any{"email": "a@x.com"})

	owner, err := ResolveOwner(nil, "anyone@x.com")
	require.NoError(t, err)
	assert.Equal(t, "anyone@x.com", owner)

	owner, err = ResolveOwner(alice, "")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", owner)

	owner, err = ResolveOwner(alice, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", owner)

	_, err = ResolveOwner(alice, "b@x.com")
	assert.ErrorIs(t, err, domainerrors.ErrForbiddenAccess)
}

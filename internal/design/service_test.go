package design

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedDesignIDRejectedBeforeQuery(t *testing.T) {
	// A nil query layer would panic if any lookup ran; malformed ids have
	// to be rejected before the database is touched.
	s := NewService(nil)
	ctx := context.Background()

	_, err := s.Get(ctx, "not-a-design-id", "user_x")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Delete(ctx, "designs/../etc", "user_x")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.InviteByEmail(ctx, "42", "user_x", "friend@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.RemoveMember(ctx, "", "user_x", "user_y")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.LoadDocument(ctx, "item_01h455vb4pex5vsknk084sn02q")
	assert.ErrorIs(t, err, ErrNotFound)
}

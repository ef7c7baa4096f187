package cart_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylerdean1/devons-handyman-backend/internal/cart"
)

func TestStore_CreateGetUpdate(t *testing.T) {
	t.Parallel()

	st := cart.NewStore(time.Minute)
	id := st.Create()
	require.NotEmpty(t, id)

	items, err := st.Get(id)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = st.Update(id, func(c *cart.Cart) error {
		c.Add(svc(t, "1"), 2)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestStore_UnknownID(t *testing.T) {
	t.Parallel()

	st := cart.NewStore(time.Minute)

	_, err := st.Get("nope")
	assert.ErrorIs(t, err, cart.ErrNotFound)

	_, err = st.Update("nope", func(*cart.Cart) error { return nil })
	assert.ErrorIs(t, err, cart.ErrNotFound)
}

func TestStore_UpdateErrorPropagates(t *testing.T) {
	t.Parallel()

	st := cart.NewStore(time.Minute)
	id := st.Create()

	boom := errors.New("boom")
	_, err := st.Update(id, func(*cart.Cart) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	st := cart.NewStore(time.Minute)
	id := st.Create()

	st.Delete(id)
	st.Delete("nope") // no-op

	_, err := st.Get(id)
	assert.ErrorIs(t, err, cart.ErrNotFound)
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	// TTL short enough to expire within the test without real waiting games.
	st := cart.NewStore(10 * time.Millisecond)
	id := st.Create()

	time.Sleep(20 * time.Millisecond)

	_, err := st.Get(id)
	assert.ErrorIs(t, err, cart.ErrNotFound, "stale carts expire lazily on access")
}

func TestStore_Sweep(t *testing.T) {
	t.Parallel()

	st := cart.NewStore(10 * time.Millisecond)
	st.Create()
	st.Create()

	time.Sleep(20 * time.Millisecond)
	fresh := st.Create()

	assert.Equal(t, 2, st.Sweep(time.Now()))

	_, err := st.Get(fresh)
	assert.NoError(t, err, "fresh carts survive the sweep")
}

package cart

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreCreateGetDelete(t *testing.T) {
	s := NewStore()

	id, err := s.CreateCart()
	require.NoError(t, err)
	require.NotEmpty(t, id)

	c, err := s.GetCart(id)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, id, c.ID)
	require.True(t, c.IsEmpty(), "fresh cart is empty but fetchable")

	ok, err := s.DeleteCart(id)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.DeleteCart(id)
	require.NoError(t, err)
	require.False(t, ok, "second delete reports absence")

	c, err = s.GetCart(id)
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestStoreGetUnknownCart(t *testing.T) {
	s := NewStore()
	c, err := s.GetCart("no-such-cart")
	require.NoError(t, err)
	require.Nil(t, c, "unknown id is not an error")
}

func TestStoreWithCartMutatesInPlace(t *testing.T) {
	s := NewStore()
	id, err := s.CreateCart()
	require.NoError(t, err)

	snap, err := s.WithCart(id, func(c *Cart) {
		c.AddItem("SKU001", "Widget", 2, dec("19.99"))
	})
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, 2, snap.ItemCount())

	// Mutating the returned snapshot does not touch store state.
	snap.Clear()
	got, err := s.GetCart(id)
	require.NoError(t, err)
	require.Equal(t, 2, got.ItemCount())
}

func TestStoreWithCartUnknownID(t *testing.T) {
	s := NewStore()
	called := false
	snap, err := s.WithCart("missing", func(c *Cart) { called = true })
	require.NoError(t, err)
	require.Nil(t, snap)
	require.False(t, called)
}

func TestStoreSaveCartUpserts(t *testing.T) {
	s := NewStore()

	restored := NewWithID("cart-1")
	restored.AddItem("SKU001", "Widget", 1, dec("5.00"))
	require.NoError(t, s.SaveCart(restored))

	// Saving again under the same id replaces the prior entry.
	replacement := NewWithID("cart-1")
	replacement.AddItem("SKU002", "Gadget", 3, dec("7.00"))
	require.NoError(t, s.SaveCart(replacement))

	got, err := s.GetCart("cart-1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, "SKU002", got.Items[0].SKU)

	// The store keeps its own copy, detached from the caller's cart.
	replacement.Clear()
	got, err = s.GetCart("cart-1")
	require.NoError(t, err)
	require.Equal(t, 3, got.ItemCount())
}

func TestStoreClosed(t *testing.T) {
	s := NewStore()
	id, err := s.CreateCart()
	require.NoError(t, err)

	s.Close()

	_, err = s.CreateCart()
	require.ErrorIs(t, err, ErrStoreClosed)
	_, err = s.GetCart(id)
	require.ErrorIs(t, err, ErrStoreClosed)
	_, err = s.WithCart(id, func(*Cart) {})
	require.ErrorIs(t, err, ErrStoreClosed)
	err = s.SaveCart(New())
	require.ErrorIs(t, err, ErrStoreClosed)
	_, err = s.DeleteCart(id)
	require.ErrorIs(t, err, ErrStoreClosed)
}

func TestStoreConcurrentAddsNoLostUpdates(t *testing.T) {
	s := NewStore()
	id, err := s.CreateCart()
	require.NoError(t, err)

	const workers = 64
	const qtyEach = 3

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sku := fmt.Sprintf("SKU%03d", n)
			_, err := s.WithCart(id, func(c *Cart) {
				c.AddItem(sku, "Item "+sku, qtyEach, dec("1.50"))
			})
			if err != nil {
				t.Errorf("WithCart: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := s.GetCart(id)
	require.NoError(t, err)
	require.Len(t, got.Items, workers)
	require.Equal(t, workers*qtyEach, got.ItemCount())
	want := dec("1.50").Mul(dec(fmt.Sprint(workers * qtyEach)))
	require.True(t, want.Equal(got.Subtotal()), "want %s got %s", want, got.Subtotal())
}

func TestStoreConcurrentMergeOnSameSKU(t *testing.T) {
	s := NewStore()
	id, err := s.CreateCart()
	require.NoError(t, err)

	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.WithCart(id, func(c *Cart) {
				c.AddItem("SKU001", "Widget", 1, dec("2.00"))
			})
			if err != nil {
				t.Errorf("WithCart: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := s.GetCart(id)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, workers, got.ItemCount())
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/fulldump/biff"
)

func TestMemoryCacher_RememberAndGet(t *testing.T) {

	c := NewMemoryCacher()
	ctx := context.Background()

	err := c.Remember(ctx, "key", "value", time.Hour)
	biff.AssertNil(err)

	v, err := c.Get(ctx, "key")
	biff.AssertNil(err)
	biff.AssertEqual(v, "value")
}

func TestMemoryCacher_MissingKey(t *testing.T) {

	c := NewMemoryCacher()

	_, err := c.Get(context.Background(), "missing")
	biff.AssertEqual(err, ErrNoEntry)
}

func TestMemoryCacher_Expiry(t *testing.T) {

	c := NewMemoryCacher()
	ctx := context.Background()

	c.Remember(ctx, "key", "value", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, err := c.Get(ctx, "key")
	biff.AssertEqual(err, ErrEntryExpired)

	// expired entries are gone, not resurrected
	_, err = c.Get(ctx, "key")
	biff.AssertEqual(err, ErrNoEntry)
}

func TestMemoryCacher_ExpiryDoesNotEvictRefreshedEntry(t *testing.T) {

	c := NewMemoryCacher()
	ctx := context.Background()

	// a Get on an expired entry racing a Remember must never evict the
	// fresh value, whichever order they land in
	for i := 0; i < 200; i++ {
		c.Remember(ctx, "key", "stale", time.Nanosecond)
		time.Sleep(50 * time.Microsecond)

		done := make(chan struct{})
		go func() {
			c.Get(ctx, "key")
			close(done)
		}()
		c.Remember(ctx, "key", "fresh", time.Hour)
		<-done

		v, err := c.Get(ctx, "key")
		biff.AssertNil(err)
		biff.AssertEqual(v, "fresh")

		c.Forget(ctx, "key")
	}
}

func TestMemoryCacher_Forget(t *testing.T) {

	c := NewMemoryCacher()
	ctx := context.Background()

	c.Remember(ctx, "key", "value", time.Hour)
	c.Forget(ctx, "key")

	_, err := c.Get(ctx, "key")
	biff.AssertEqual(err, ErrNoEntry)
}

func TestNoopCacher(t *testing.T) {

	c := NewNoopCacher()
	ctx := context.Background()

	biff.AssertNil(c.Remember(ctx, "key", "value", time.Hour))

	_, err := c.Get(ctx, "key")
	biff.AssertEqual(err, ErrNoEntry)
}

package cache

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStorage(t *testing.T) (*ResponseStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return NewResponseStorage(rds), mr
}

func TestKeyDeterministic(t *testing.T) {
	s, _ := newTestStorage(t)

	a := url.Values{}
	a.Set("status", "for_sale")
	a.Set("page", "2")

	b := url.Values{}
	b.Set("page", "2")
	b.Set("status", "for_sale")

	if s.Key(PrefixPropertyList, a) != s.Key(PrefixPropertyList, b) {
		t.Fatal("same params in different order produced different keys")
	}

	c := url.Values{}
	c.Set("status", "for_rent")
	c.Set("page", "2")
	if s.Key(PrefixPropertyList, a) == s.Key(PrefixPropertyList, c) {
		t.Fatal("different params produced the same key")
	}
}

func TestKeyBarePrefix(t *testing.T) {
	s, _ := newTestStorage(t)
	if got := s.Key(PrefixPropertyStats, url.Values{}); got != PrefixPropertyStats {
		t.Fatalf("empty params key = %q, want bare prefix", got)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	type payload struct {
		Count int `json:"count"`
	}
	s.Set(ctx, "property_stats", payload{Count: 7}, time.Minute)

	data, ok := s.Get(ctx, "property_stats")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(data) != `{"count":7}` {
		t.Fatalf("payload = %s", data)
	}

	if _, ok := s.Get(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestSetHonorsTTL(t *testing.T) {
	s, mr := newTestStorage(t)
	ctx := context.Background()

	s.Set(ctx, "property_list", "x", 5*time.Minute)
	mr.FastForward(6 * time.Minute)

	if _, ok := s.Get(ctx, "property_list"); ok {
		t.Fatal("entry survived its TTL")
	}
}

func TestDeletePrefix(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	params := url.Values{}
	params.Set("page", "1")
	s.Set(ctx, PrefixPropertyList, "bare", time.Minute)
	s.Set(ctx, s.Key(PrefixPropertyList, params), "paged", time.Minute)
	s.Set(ctx, PrefixReviewList, "other", time.Minute)

	s.DeletePrefix(ctx, PrefixPropertyList)

	if _, ok := s.Get(ctx, PrefixPropertyList); ok {
		t.Fatal("bare prefix key survived invalidation")
	}
	if _, ok := s.Get(ctx, s.Key(PrefixPropertyList, params)); ok {
		t.Fatal("parameterized key survived invalidation")
	}
	if _, ok := s.Get(ctx, PrefixReviewList); !ok {
		t.Fatal("unrelated prefix was invalidated")
	}
}

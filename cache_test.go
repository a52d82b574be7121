package linkscan_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"linkscan"
)

func TestCacheStoreAndGet(t *testing.T) {
	t.Parallel()
	target := "https://example.com"
	cache := linkscan.NewCache()
	report, ok := cache.Get(target)
	if ok {
		t.Fatalf("cache should be empty but %v was found", report)
	}
	want := &linkscan.Report{Results: []linkscan.Result{
		{URL: "https://example.com/missing", StatusCode: 404},
	}}
	cache.Store(target, want)
	got, ok := cache.Get(target)
	if !ok {
		t.Fatal("fail to retrieve stored report")
	}
	if !cmp.Equal(want, got) {
		t.Errorf(cmp.Diff(want, got))
	}
}

func TestCacheExpiration(t *testing.T) {
	t.Parallel()
	target := "https://example.com"
	cache := linkscan.NewCache()
	cache.SetTTL(1)
	cache.Store(target, linkscan.NewReport())
	_, ok := cache.Get(target)
	if !ok {
		t.Fatal("fail to retrieve stored report")
	}
	time.Sleep(1 * time.Second)
	got, ok := cache.Get(target)
	if ok {
		t.Fatalf("cache entry should have expired but %v was found", got)
	}
}

package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"ember/internal/driver"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	res := driver.TokenizeBytes("cached.em", []byte("let x = 0b"), 10)
	payload := driver.CacheTokenization(res, []byte("dump"))
	key := driver.Digest(res.File.Hash)

	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got driver.CachedTokenization
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}

	if got.Path != "cached.em" {
		t.Errorf("path = %q", got.Path)
	}
	if got.TokenCount != res.Buffer.NumTokens() {
		t.Errorf("token count = %d, want %d", got.TokenCount, res.Buffer.NumTokens())
	}
	if !got.HasErrors {
		t.Error("error flag lost in round trip")
	}
	if string(got.Dump) != "dump" {
		t.Errorf("dump = %q", got.Dump)
	}
	if len(got.Diagnostics) != res.Bag.Len() {
		t.Errorf("diagnostics = %d, want %d", len(got.Diagnostics), res.Bag.Len())
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	var out driver.CachedTokenization
	hit, err := cache.Get(driver.Digest{1, 2, 3}, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Error("hit on empty cache")
	}
}

func TestTokenizeWithCache(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	src := t.TempDir()
	path := filepath.Join(src, "w.em")
	if err := os.WriteFile(path, []byte("fn w() {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, payload, err := driver.TokenizeWithCache(path, cache, 10)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if payload != nil {
		t.Fatal("first call must be a miss")
	}
	if res.Buffer == nil {
		t.Fatal("miss must lex")
	}
	wantTokens := res.Buffer.NumTokens()

	res, payload, err = driver.TokenizeWithCache(path, cache, 10)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if payload == nil {
		t.Fatal("second call must hit the cache")
	}
	if res.Buffer != nil {
		t.Error("hit must not lex")
	}
	if payload.TokenCount != wantTokens {
		t.Errorf("cached token count = %d, want %d", payload.TokenCount, wantTokens)
	}
	if len(payload.Dump) == 0 {
		t.Error("cached dump is empty")
	}
}

func TestRestoreDiagnostics(t *testing.T) {
	res := driver.TokenizeBytes("r.em", []byte("0x"), 10)
	payload := driver.CacheTokenization(res, nil)

	bag := driver.RestoreDiagnostics(payload, res.File.ID, 10)
	if bag.Len() != res.Bag.Len() {
		t.Fatalf("restored %d diagnostics, want %d", bag.Len(), res.Bag.Len())
	}

	orig := res.Bag.Items()[0]
	restored := bag.Items()[0]
	if restored.Code != orig.Code || restored.Severity != orig.Severity {
		t.Errorf("restored = %+v, orig = %+v", restored, orig)
	}
	if restored.Primary.Start != orig.Primary.Start || restored.Primary.End != orig.Primary.End {
		t.Errorf("span lost: %v vs %v", restored.Primary, orig.Primary)
	}
	if restored.Primary.File != res.File.ID {
		t.Errorf("file attribution = %d", restored.Primary.File)
	}
	if !bag.HasErrors() {
		t.Error("restored bag lost error severity")
	}
}

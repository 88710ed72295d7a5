package cache

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestTermKey(t *testing.T) {
	key := TermKey("India Pakistan conflict")
	if !strings.HasPrefix(key, "truthscan:v1:") {
		t.Errorf("expected truthscan:v1: prefix, got %q", key)
	}
	if len(key) != len("truthscan:v1:")+64 {
		t.Errorf("expected sha256 hex suffix, got length %d", len(key))
	}

	if TermKey("India Pakistan conflict") != key {
		t.Error("key must be stable for the same term")
	}
	if TermKey("other term") == key {
		t.Error("different terms must produce different keys")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if val, found := c.Get("k"); !found || !bytes.Equal(val, []byte("v")) {
		t.Errorf("expected hit with v, got %q found=%v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("expected miss after TTL expiry")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	key := TermKey("term")
	if err := c.Set(key, []byte(`[{"user":"@a"}]`), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get(key)
	if !found {
		t.Fatal("expected hit")
	}
	if !bytes.Equal(val, []byte(`[{"user":"@a"}]`)) {
		t.Errorf("unexpected value %q", val)
	}

	// A fresh instance over the same dir sees the entry
	c2 := NewDiskCache(dir, time.Hour)
	if _, found := c2.Get(key); !found {
		t.Error("expected persisted entry to survive across instances")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	key := TermKey("term")
	if err := c.Set(key, []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get(key); found {
		t.Error("expected miss after TTL expiry")
	}
}

func TestLayeredCache_Promotion(t *testing.T) {
	dir := t.TempDir()
	key := TermKey("term")

	// Seed only the disk layer
	disk := NewDiskCache(dir, time.Hour)
	if err := disk.Set(key, []byte("v"), time.Hour); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	layered := NewLayeredCache(time.Minute, dir, time.Hour)

	val, found := layered.Get(key)
	if !found || !bytes.Equal(val, []byte("v")) {
		t.Fatalf("expected disk hit through the layered cache, got %q found=%v", val, found)
	}

	// The disk hit is now promoted into memory
	if val, found := layered.memory.Get(key); !found || !bytes.Equal(val, []byte("v")) {
		t.Error("expected promotion into the memory layer")
	}
}

func TestLayeredCache_SetAndClear(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Hour)
	key := TermKey("term")

	if err := layered.Set(key, []byte("v"), time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, found := layered.disk.Get(key); !found {
		t.Error("expected write-through to disk")
	}

	if err := layered.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, found := layered.Get(key); found {
		t.Error("expected miss after clear")
	}
}

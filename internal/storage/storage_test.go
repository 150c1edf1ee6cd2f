package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "quotype.db"))
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() {
		_ = kv.Close()
	})
	return kv
}

func TestGetSetRoundTrip(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := kv.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(value) != `{"a":1}` {
		t.Fatalf("value = %s", value)
	}

	// Upsert replaces.
	if err := kv.Set(ctx, "k", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("set again: %v", err)
	}
	value, _, _ = kv.Get(ctx, "k")
	if string(value) != `{"a":2}` {
		t.Fatalf("after upsert: %s", value)
	}
}

func TestRemoveAndClear(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	if err := kv.Remove(ctx, "absent"); err != nil {
		t.Fatalf("remove absent key: %v", err)
	}
	for _, key := range []string{"a", "b"} {
		if err := kv.Set(ctx, key, []byte(`1`)); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}
	if err := kv.Remove(ctx, "a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "a"); ok {
		t.Fatalf("key a survived removal")
	}
	if err := kv.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "b"); ok {
		t.Fatalf("key b survived clear")
	}
}

package host

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "watch.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.Get("garden/plant"); err != nil || ok {
		t.Fatalf("missing key should read as absent, ok=%v err=%v", ok, err)
	}

	record := []byte{1, 2, 3, 4, 5}
	if err := s.Put("garden/plant", record); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get("garden/plant")
	if err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, record) {
		t.Fatalf("Get = %v, want %v", got, record)
	}

	// Overwrite replaces.
	if err := s.Put("garden/plant", []byte{9}); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, _, _ = s.Get("garden/plant")
	if !bytes.Equal(got, []byte{9}) {
		t.Fatalf("overwrite not applied, got %v", got)
	}

	if err := s.Delete("garden/plant"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get("garden/plant"); ok {
		t.Fatalf("deleted key should be absent")
	}
	if err := s.Delete("garden/plant"); err != nil {
		t.Fatalf("deleting absent key should be fine: %v", err)
	}
}

func TestStoreBoolSettings(t *testing.T) {
	s := openTestStore(t)

	if got := s.GetBool("settings/low_power", true); !got {
		t.Fatalf("absent bool should return default")
	}
	if err := s.PutBool("settings/low_power", false); err != nil {
		t.Fatalf("PutBool: %v", err)
	}
	if got := s.GetBool("settings/low_power", true); got {
		t.Fatalf("stored false should override default true")
	}
	if err := s.PutBool("settings/vibes", true); err != nil {
		t.Fatalf("PutBool: %v", err)
	}
	if got := s.GetBool("settings/vibes", false); !got {
		t.Fatalf("stored true should read back true")
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watch.db")

	s, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	if err := s.Put("k", []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := OpenStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, ok, err := s2.Get("k")
	if err != nil || !ok || string(got) != "v" {
		t.Fatalf("value should survive reopen, got %q ok=%v err=%v", got, ok, err)
	}
}

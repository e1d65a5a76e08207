package process

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreReadAbsent(t *testing.T) {
	dir := t.TempDir()
	s := Store{Path: filepath.Join(dir, "missing.pid"), Prober: aliveAll{}}
	if pid, ok := s.Read(); ok {
		t.Fatalf("missing file should be absent, got pid %d", pid)
	}
}

func TestStoreReadGarbage(t *testing.T) {
	dir := t.TempDir()
	for _, content := range []string{"", "abc", "12.5", "-7", "0", "1 2"} {
		path := filepath.Join(dir, "p.pid")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		s := Store{Path: path, Prober: aliveAll{}}
		if pid, ok := s.Read(); ok {
			t.Fatalf("content %q should be absent, got pid %d", content, pid)
		}
	}
}

func TestStoreReadDeadPID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.pid")
	if err := os.WriteFile(path, []byte("4242\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := Store{Path: path, Prober: fakeProber{alive: map[int]bool{}}}
	if _, ok := s.Read(); ok {
		t.Fatalf("dead pid should collapse to absent")
	}
}

func TestStoreWriteReadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	s := Store{Path: filepath.Join(dir, "nested", "p.pid"), Prober: fakeProber{alive: map[int]bool{4242: true}}}
	if err := s.Write(4242); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "4242" {
		t.Fatalf("record must be a single textual integer, got %q", string(b))
	}
	pid, ok := s.Read()
	if !ok || pid != 4242 {
		t.Fatalf("read: got %d %v, want 4242 true", pid, ok)
	}
}

func TestStoreWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	s := Store{Path: filepath.Join(dir, "p.pid"), Prober: aliveAll{}}
	if err := s.Write(1); err != nil {
		t.Fatal(err)
	}
	if err := s.Write(99); err != nil {
		t.Fatal(err)
	}
	pid, ok := s.Read()
	if !ok || pid != 99 {
		t.Fatalf("got %d %v, want 99 true", pid, ok)
	}
}

func TestStoreClearIdempotent(t *testing.T) {
	dir := t.TempDir()
	s := Store{Path: filepath.Join(dir, "p.pid"), Prober: aliveAll{}}
	if err := s.Write(7); err != nil {
		t.Fatal(err)
	}
	s.Clear()
	if _, ok := s.Read(); ok {
		t.Fatalf("cleared record should be absent")
	}
	s.Clear() // clearing an absent record is not an error
}

package store

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/zhubert/navigator/internal/errors"
)

// failingStore fails every operation selected by its flags.
type failingStore struct {
	*Memory
	failGet, failSet, failRemove bool
}

var errDisk = stderrors.New("disk failure")

func (f *failingStore) Get(key string) (string, bool, error) {
	if f.failGet {
		return "", false, errDisk
	}
	return f.Memory.Get(key)
}

func (f *failingStore) Set(key, value string) error {
	if f.failSet {
		return errDisk
	}
	return f.Memory.Set(key, value)
}

func (f *failingStore) Remove(key string) error {
	if f.failRemove {
		return errDisk
	}
	return f.Memory.Remove(key)
}

// storeContract exercises the Store contract against any implementation.
func storeContract(t *testing.T, s Store) {
	t.Helper()

	if _, ok, err := s.Get(KeyHistory); err != nil || ok {
		t.Fatalf("Get(absent) = ok=%v err=%v, want absent", ok, err)
	}
	if err := s.Set(KeyHistory, `["a"]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(KeyHistory, `["b"]`); err != nil {
		t.Fatalf("Set(overwrite) error = %v", err)
	}
	v, ok, err := s.Get(KeyHistory)
	if err != nil || !ok || v != `["b"]` {
		t.Fatalf("Get() = %q ok=%v err=%v, want overwritten value", v, ok, err)
	}
	if err := s.Remove(KeyHistory); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := s.Remove(KeyHistory); err != nil {
		t.Fatalf("Remove(absent) error = %v", err)
	}
	if _, ok, _ := s.Get(KeyHistory); ok {
		t.Error("key still present after Remove")
	}
}

func TestMemory_Contract(t *testing.T) {
	storeContract(t, NewMemory())
}

func TestSQLite_Contract(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "navigator.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	storeContract(t, s)
}

func TestSQLite_InMemory(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite(:memory:) error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	storeContract(t, s)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navigator.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := s.Set(KeyCredential, "secret"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	v, ok, err := s.Get(KeyCredential)
	if err != nil || !ok || v != "secret" {
		t.Errorf("Get() after reopen = %q ok=%v err=%v", v, ok, err)
	}
}

func TestSQLite_ClosedStore(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if err := s.Set(KeyHistory, "x"); !stderrors.Is(err, ErrClosed) {
		t.Errorf("Set() on closed store = %v, want ErrClosed", err)
	}
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite("  "); err == nil {
		t.Error("OpenSQLite(\"\") expected error")
	}
}

func TestLoadJSON_Missing(t *testing.T) {
	got, err := LoadJSON(NewMemory(), KeyHistory, []string{})
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("LoadJSON() = %v, want empty fallback", got)
	}
}

func TestLoadJSON_Valid(t *testing.T) {
	s := NewMemory()
	s.Set(KeyHistory, `["https://a.example","https://b.example"]`)

	got, err := LoadJSON(s, KeyHistory, []string{})
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if len(got) != 2 || got[0] != "https://a.example" {
		t.Errorf("LoadJSON() = %v", got)
	}
}

func TestLoadJSON_CorruptEntryIsCleared(t *testing.T) {
	s := NewMemory()
	s.Set(KeyBookmarks, `[{"id":`)

	got, err := LoadJSON(s, KeyBookmarks, []string{})
	if !errors.Is(err, errors.KindPersistenceRead) {
		t.Errorf("LoadJSON() error = %v, want persistence read failure", err)
	}
	if len(got) != 0 {
		t.Errorf("LoadJSON() = %v, want fallback", got)
	}
	if _, ok, _ := s.Get(KeyBookmarks); ok {
		t.Error("corrupt entry was not removed")
	}
}

func TestLoadJSON_ReadError(t *testing.T) {
	s := &failingStore{Memory: NewMemory(), failGet: true}

	got, err := LoadJSON(s, KeyHistory, []string{"fallback"})
	if !errors.Is(err, errors.KindPersistenceRead) {
		t.Errorf("LoadJSON() error = %v, want persistence read failure", err)
	}
	if len(got) != 1 || got[0] != "fallback" {
		t.Errorf("LoadJSON() = %v, want fallback", got)
	}
}

func TestSaveJSON_WriteFailure(t *testing.T) {
	s := &failingStore{Memory: NewMemory(), failSet: true}

	err := SaveJSON(s, KeyHistory, []string{"a"})
	if !errors.Is(err, errors.KindPersistenceWrite) {
		t.Errorf("SaveJSON() error = %v, want persistence write failure", err)
	}
	if !stderrors.Is(err, errDisk) {
		t.Error("SaveJSON() should wrap the store error")
	}
}

func TestSaveJSON_Encodes(t *testing.T) {
	s := NewMemory()
	if err := SaveJSON(s, KeyHistory, []string{"a", "b"}); err != nil {
		t.Fatalf("SaveJSON() error = %v", err)
	}
	raw, _, _ := s.Get(KeyHistory)
	if raw != `["a","b"]` {
		t.Errorf("stored %q", raw)
	}
}

func TestDelete_Failure(t *testing.T) {
	s := &failingStore{Memory: NewMemory(), failRemove: true}
	if err := Delete(s, KeyCredential); !errors.Is(err, errors.KindPersistenceWrite) {
		t.Errorf("Delete() error = %v, want persistence write failure", err)
	}
}

func TestClear(t *testing.T) {
	s := NewMemory()
	for _, k := range AllKeys {
		s.Set(k, "x")
	}
	s.Set("unrelated", "y")

	if err := Clear(s); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	keys := s.Keys()
	if len(keys) != 1 || keys[0] != "unrelated" {
		t.Errorf("Keys() after Clear = %v, want [unrelated]", keys)
	}
}

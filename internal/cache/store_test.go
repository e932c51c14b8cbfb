package cache

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	raw := "PMID- 15924077\nTI  - A title.\n"
	if err := store.Put("15924077", raw); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get("15924077")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != raw {
		t.Errorf("Get = %q, want %q", got, raw)
	}
	if !store.Exists("15924077") {
		t.Error("Exists = false after Put")
	}
}

func TestStoreMissIsNotAnError(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	got, err := store.Get("99999999")
	if err != nil {
		t.Fatalf("Get on miss: %v", err)
	}
	if got != "" {
		t.Errorf("Get on miss = %q, want empty", got)
	}
	if store.Exists("99999999") {
		t.Error("Exists = true for missing id")
	}
}

func TestStorePathLowercased(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if name := filepath.Base(store.Path("15924077")); name != "pmid_15924077.txt" {
		t.Errorf("Path base = %q", name)
	}
}

func TestStoreListSkipsSidecars(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	for _, id := range []string{"222222", "111111"} {
		if err := store.Put(id, "x"); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	if err := store.PutTranslatedAbstract("111111", "résumé"); err != nil {
		t.Fatalf("PutTranslatedAbstract: %v", err)
	}

	ids, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if want := []string{"111111", "222222"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("List = %v, want %v", ids, want)
	}
}

func TestStoreTranslatedAbstract(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if got := store.TranslatedAbstract("111111"); got != "" {
		t.Errorf("missing sidecar = %q, want empty", got)
	}
	if err := store.PutTranslatedAbstract("111111", "Un résumé.\n"); err != nil {
		t.Fatalf("PutTranslatedAbstract: %v", err)
	}
	if got := store.TranslatedAbstract("111111"); got != "Un résumé." {
		t.Errorf("TranslatedAbstract = %q", got)
	}
}

func TestStoreClearKeepsDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Put("111111", "x"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if store.Exists("111111") {
		t.Error("record survived Clear")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory removed by Clear: %v", err)
	}
}

func TestStoreRemoveDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.RemoveDir(); err != nil {
		t.Fatalf("RemoveDir: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("directory still present: %v", err)
	}
}

package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/touchline/touchline/internal/storage"
	"github.com/touchline/touchline/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "touchline.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func writeJSONL(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadEvents(t *testing.T) {
	st := newTestStore(t)
	loader := NewLoader(st, LoaderConfig{BatchSize: 2})

	path := writeJSONL(t,
		`{"customer_org_id":"org-1","account_id":"acct-1","touchpoint_id":"tp-1","timestamp":1700000000000,"activity":"Email received","channel":"Email","direction":"IN"}`,
		``,
		`{"customer_org_id":"org-1","account_id":"acct-1","touchpoint_id":"tp-2","timestamp":"2023-11-14T22:13:20Z","activity":"Call","channel":"Phone","direction":"OUT"}`,
		`{"customer_org_id":"org-1","account_id":"acct-1","touchpoint_id":"tp-3","timestamp":1700000100000,"activity":"Meeting","channel":"Video","direction":"IN"}`,
	)

	res, err := loader.LoadEvents(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadEvents failed: %v", err)
	}

	if res.Lines != 3 {
		t.Errorf("expected 3 lines, got %d", res.Lines)
	}
	if res.Inserted != 3 {
		t.Errorf("expected 3 inserted, got %d", res.Inserted)
	}
	if res.Skipped != 0 || res.Duplicates != 0 || res.BadLines != 0 {
		t.Errorf("unexpected counters: %+v", res)
	}

	// Loading the same file again trips the natural-key constraint.
	res, err = loader.LoadEvents(context.Background(), path)
	if err != nil {
		t.Fatalf("second LoadEvents failed: %v", err)
	}
	if res.Inserted != 0 {
		t.Errorf("expected 0 inserted on reload, got %d", res.Inserted)
	}
	if res.Skipped != 3 {
		t.Errorf("expected 3 skipped on reload, got %d", res.Skipped)
	}
}

func TestLoadEvents_DuplicateLines(t *testing.T) {
	st := newTestStore(t)
	loader := NewLoader(st, LoaderConfig{})

	line := `{"customer_org_id":"org-1","account_id":"acct-1","touchpoint_id":"tp-1","timestamp":1700000000000,"activity":"Email","channel":"Email","direction":"IN"}`
	path := writeJSONL(t, line, line, line)

	res, err := loader.LoadEvents(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadEvents failed: %v", err)
	}
	if res.Inserted != 1 {
		t.Errorf("expected 1 inserted, got %d", res.Inserted)
	}
	if res.Duplicates != 2 {
		t.Errorf("expected 2 duplicate lines, got %d", res.Duplicates)
	}
}

func TestLoadEvents_BadLine(t *testing.T) {
	good := `{"customer_org_id":"org-1","account_id":"acct-1","touchpoint_id":"tp-1","timestamp":1700000000000,"activity":"Email","channel":"Email","direction":"IN"}`
	bad := `{"customer_org_id":"org-1","account_id":"acct-1"}`

	t.Run("aborts by default", func(t *testing.T) {
		st := newTestStore(t)
		loader := NewLoader(st, LoaderConfig{})
		path := writeJSONL(t, good, bad)

		if _, err := loader.LoadEvents(context.Background(), path); err == nil {
			t.Fatal("expected error for bad line")
		}
	})

	t.Run("skips with IgnoreErrors", func(t *testing.T) {
		st := newTestStore(t)
		loader := NewLoader(st, LoaderConfig{IgnoreErrors: true})
		path := writeJSONL(t, good, bad, `not json at all`)

		res, err := loader.LoadEvents(context.Background(), path)
		if err != nil {
			t.Fatalf("LoadEvents failed: %v", err)
		}
		if res.Inserted != 1 {
			t.Errorf("expected 1 inserted, got %d", res.Inserted)
		}
		if res.BadLines != 2 {
			t.Errorf("expected 2 bad lines, got %d", res.BadLines)
		}
	})
}

func TestLoadEvents_StoreFailureAbortsDespiteIgnoreErrors(t *testing.T) {
	st := newTestStore(t)
	st.Close()

	loader := NewLoader(st, LoaderConfig{BatchSize: 1, IgnoreErrors: true})
	path := writeJSONL(t,
		`{"customer_org_id":"org-1","account_id":"acct-1","touchpoint_id":"tp-1","timestamp":1700000000000,"activity":"Email","channel":"Email","direction":"IN"}`,
		`{"customer_org_id":"org-1","account_id":"acct-1","touchpoint_id":"tp-2","timestamp":1700000100000,"activity":"Call","channel":"Phone","direction":"IN"}`,
	)

	res, err := loader.LoadEvents(context.Background(), path)
	if err == nil {
		t.Fatal("expected store failure to abort the run")
	}
	if res.BadLines != 0 {
		t.Errorf("store failures must not count as bad lines, got %d", res.BadLines)
	}
}

func TestLoadPersons_StoreFailureAbortsDespiteIgnoreErrors(t *testing.T) {
	st := newTestStore(t)
	st.Close()

	loader := NewLoader(st, LoaderConfig{BatchSize: 1, IgnoreErrors: true})
	path := writeJSONL(t,
		`{"id":"p-1","customer_org_id":"org-1","first_name":"Ada","last_name":"Lovelace"}`,
	)

	res, err := loader.LoadPersons(context.Background(), path)
	if err == nil {
		t.Fatal("expected store failure to abort the run")
	}
	if res.BadLines != 0 {
		t.Errorf("store failures must not count as bad lines, got %d", res.BadLines)
	}
}

func TestLoadEvents_MissingFile(t *testing.T) {
	st := newTestStore(t)
	loader := NewLoader(st, LoaderConfig{})

	if _, err := loader.LoadEvents(context.Background(), filepath.Join(t.TempDir(), "nope.jsonl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadPersons(t *testing.T) {
	st := newTestStore(t)
	loader := NewLoader(st, LoaderConfig{})

	path := writeJSONL(t,
		`{"id":"p-1","customer_org_id":"org-1","first_name":"Ada","last_name":"Lovelace","email_address":"ada@example.com","job_title":"Engineer"}`,
		`{"id":"p-2","customer_org_id":"org-1","first_name":"Grace","last_name":"Hopper","email_address":"grace@example.com"}`,
	)

	res, err := loader.LoadPersons(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadPersons failed: %v", err)
	}
	if res.Inserted != 2 {
		t.Errorf("expected 2 inserted, got %d", res.Inserted)
	}

	persons, err := st.PersonsByID(context.Background(), []string{"p-1", "p-2"})
	if err != nil {
		t.Fatalf("PersonsByID failed: %v", err)
	}
	if persons["p-1"].FullName() != "Ada Lovelace" {
		t.Errorf("unexpected person: %+v", persons["p-1"])
	}
}

func TestLoadEvents_Archive(t *testing.T) {
	st := newTestStore(t)
	archive, err := storage.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create archive storage: %v", err)
	}
	loader := NewLoader(st, LoaderConfig{Archive: archive})

	line := `{"customer_org_id":"org-1","account_id":"acct-1","touchpoint_id":"tp-1","timestamp":1700000000000,"activity":"Email","channel":"Email","direction":"IN"}`
	path := writeJSONL(t, line)

	res, err := loader.LoadEvents(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadEvents failed: %v", err)
	}
	if res.ArchiveKey == "" {
		t.Fatal("expected an archive key")
	}
	if !strings.HasPrefix(res.ArchiveKey, "archive/events/") {
		t.Errorf("unexpected archive key: %s", res.ArchiveKey)
	}

	// The archived object must decompress back to the source file.
	dst := filepath.Join(t.TempDir(), "archived.snappy")
	if err := archive.Download(context.Background(), res.ArchiveKey, dst); err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	compressed, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("failed to read archived object: %v", err)
	}
	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		t.Fatalf("snappy decode failed: %v", err)
	}
	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read source: %v", err)
	}
	if string(raw) != string(original) {
		t.Error("archived content does not match source file")
	}
}

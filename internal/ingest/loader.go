package ingest

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/snappy"
	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"
	"github.com/touchline/touchline/internal/errors"
	"github.com/touchline/touchline/internal/storage"
	"github.com/touchline/touchline/internal/store"
	"github.com/touchline/touchline/pkg/types"
)

// maxLineBytes caps a single JSONL line. Event lines with large people
// arrays stay well under this.
const maxLineBytes = 16 * 1024 * 1024

// LoaderConfig controls batching and error handling for a load run.
type LoaderConfig struct {
	// BatchSize is the number of decoded records flushed per transaction.
	BatchSize int
	// IgnoreErrors skips malformed lines instead of aborting the run.
	IgnoreErrors bool
	// Archive, when non-nil, receives a snappy-compressed copy of each
	// ingested file.
	Archive storage.ObjectStorage
}

// Loader reads JSON-Lines files and writes their records to the store
// in batches.
type Loader struct {
	store *store.Store
	cfg   LoaderConfig
}

// Result summarizes a completed load run.
type Result struct {
	Lines      int    // non-blank lines seen
	Inserted   int    // rows written
	Skipped    int    // rows rejected by the natural-key constraint
	Duplicates int    // identical lines repeated within this run
	BadLines   int    // lines skipped under IgnoreErrors
	ArchiveKey string // object path of the archived copy, if archiving
}

// NewLoader returns a Loader bound to the given store.
func NewLoader(st *store.Store, cfg LoaderConfig) *Loader {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1000
	}
	return &Loader{store: st, cfg: cfg}
}

// flushError marks a store-side batch failure. IgnoreErrors covers only
// per-line decode problems; a failed flush always aborts the run.
type flushError struct {
	err error
}

func (e *flushError) Error() string { return e.err.Error() }

func (e *flushError) Unwrap() error { return e.err }

// LoadEvents ingests an event JSONL file.
func (l *Loader) LoadEvents(ctx context.Context, path string) (*Result, error) {
	res := &Result{}
	batch := make([]types.ActivityEvent, 0, l.cfg.BatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		inserted, skipped, err := l.store.InsertEvents(ctx, batch)
		if err != nil {
			return err
		}
		res.Inserted += inserted
		res.Skipped += skipped
		batch = batch[:0]
		return nil
	}

	err := l.eachLine(path, res, func(lineNo int, line []byte) error {
		ev, err := decodeEvent(line)
		if err != nil {
			return err
		}
		batch = append(batch, ev)
		if len(batch) >= l.cfg.BatchSize {
			if err := flush(); err != nil {
				return &flushError{err: err}
			}
		}
		return nil
	})
	if err != nil {
		return res, err
	}
	if err := flush(); err != nil {
		return res, err
	}
	return res, l.archive(ctx, "events", path, res)
}

// LoadPersons ingests a person JSONL file.
func (l *Loader) LoadPersons(ctx context.Context, path string) (*Result, error) {
	res := &Result{}
	batch := make([]types.Person, 0, l.cfg.BatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		inserted, err := l.store.InsertPersons(ctx, batch)
		if err != nil {
			return err
		}
		res.Inserted += inserted
		batch = batch[:0]
		return nil
	}

	err := l.eachLine(path, res, func(lineNo int, line []byte) error {
		p, err := decodePerson(line)
		if err != nil {
			return err
		}
		batch = append(batch, p)
		if len(batch) >= l.cfg.BatchSize {
			if err := flush(); err != nil {
				return &flushError{err: err}
			}
		}
		return nil
	})
	if err != nil {
		return res, err
	}
	if err := flush(); err != nil {
		return res, err
	}
	return res, l.archive(ctx, "persons", path, res)
}

// eachLine walks the file, skipping blanks and repeated lines, and
// hands every remaining line to fn. Decode errors from fn abort the
// run unless IgnoreErrors is set; flush failures abort unconditionally.
func (l *Loader) eachLine(path string, res *Result, fn func(lineNo int, line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.NewIngestError(errors.CodeFileNotFound,
			fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	seen := make(map[[2]uint64]struct{})
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		res.Lines++

		h1, h2 := murmur3.Sum128(line)
		key := [2]uint64{h1, h2}
		if _, dup := seen[key]; dup {
			res.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		if err := fn(lineNo, line); err != nil {
			var fatal *flushError
			if stderrors.As(err, &fatal) {
				return fatal.err
			}
			if l.cfg.IgnoreErrors {
				res.BadLines++
				log.Printf("Skipping line %d: %v", lineNo, err)
				continue
			}
			return errors.NewIngestError(errors.CodeBadLine,
				fmt.Sprintf("line %d: %v", lineNo, err), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.NewIngestError(errors.CodeBadLine,
			fmt.Sprintf("reading %s", path), err)
	}
	return nil
}

// archive compresses the source file with snappy and uploads it under
// archive/<kind>/<date>/<uuid>.jsonl.snappy. No-op when archiving is
// disabled.
func (l *Loader) archive(ctx context.Context, kind, path string, res *Result) error {
	if l.cfg.Archive == nil {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.NewArchiveError(errors.CodeUploadFailed,
			fmt.Sprintf("reading %s for archive", path), err)
	}
	compressed := snappy.Encode(nil, raw)

	tmp, err := os.CreateTemp("", "touchline-archive-*.snappy")
	if err != nil {
		return errors.NewArchiveError(errors.CodeUploadFailed, "creating archive temp file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(compressed); err != nil {
		tmp.Close()
		return errors.NewArchiveError(errors.CodeUploadFailed, "writing archive temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewArchiveError(errors.CodeUploadFailed, "closing archive temp file", err)
	}

	objectPath := filepath.ToSlash(filepath.Join(
		"archive", kind, time.Now().UTC().Format("2006-01-02"),
		uuid.New().String()+".jsonl.snappy"))
	if err := l.cfg.Archive.Upload(ctx, tmpPath, objectPath); err != nil {
		return errors.NewArchiveError(errors.CodeUploadFailed,
			fmt.Sprintf("uploading archive copy of %s", path), err)
	}
	res.ArchiveKey = objectPath
	return nil
}

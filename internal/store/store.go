// Package store persists the paper collection to a single JSON file.
// The whole collection lives in memory and the file is rewritten after
// every mutation, so memory and disk never disagree after a successful
// call.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"openpages/internal/logger"
	"openpages/internal/paper"
)

// ErrOutOfRange reports a position that does not address any record.
// The collection is left unchanged when it is returned.
var ErrOutOfRange = errors.New("position out of range")

// Draft carries the free-text field values a front end collects for a
// new paper. List-valued fields are comma-separated and split on Add.
type Draft struct {
	Title    string
	Status   string
	Tags     string
	Summary  string
	Abstract string
	TOC      string
	GitHub   string
	PDF      string
	Purchase string
}

// Store holds the ordered paper collection and mirrors it to disk.
// Records are addressed by zero-based position; insertion order is the
// only identity the front ends use, the UUID exists so a record keeps
// its identity across reordering in the file.
type Store struct {
	mu     sync.RWMutex
	path   string
	papers []paper.Paper
	log    logger.Logger
}

// Open loads the collection persisted at path. A missing file yields
// an empty store; malformed content is a fatal parse error for the
// caller. Records persisted before the id field existed get one
// assigned in memory (written back on the next mutation).
func Open(path string, log logger.Logger) (*Store, error) {
	s := &Store{path: path, log: log}
	if err := s.load(); err != nil {
		return nil, err
	}
	s.log.Info("store", "library loaded", map[string]interface{}{
		"path":   path,
		"papers": len(s.papers),
	})
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.papers = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read library %s: %w", s.path, err)
	}

	var papers []paper.Paper
	if err := json.Unmarshal(data, &papers); err != nil {
		return fmt.Errorf("parse library %s: %w", s.path, err)
	}

	for i := range papers {
		if papers[i].ID == "" {
			papers[i].ID = uuid.NewString()
		}
	}
	s.papers = papers
	return nil
}

// Reload discards the in-memory collection and reads the file again.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// save rewrites the whole file. It writes to a temp file in the same
// directory and renames it over the target so a crash mid-write cannot
// truncate the library. Callers must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.papers, "", "    ")
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}
	if s.papers == nil {
		data = []byte("[]")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".papers-*.json")
	if err != nil {
		return fmt.Errorf("create temp library: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp library: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp library: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace library %s: %w", s.path, err)
	}
	return nil
}

// Path returns the library file the store mirrors to.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of papers in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.papers)
}

// Get returns the paper at the zero-based position.
func (s *Store) Get(pos int) (paper.Paper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos < 0 || pos >= len(s.papers) {
		return paper.Paper{}, fmt.Errorf("%w: %d", ErrOutOfRange, pos)
	}
	return s.papers[pos], nil
}

// List yields (position, record) pairs in collection order. The
// sequence is restartable and reflects the collection at the moment
// List was called.
func (s *Store) List() iter.Seq2[int, paper.Paper] {
	s.mu.RLock()
	snapshot := make([]paper.Paper, len(s.papers))
	copy(snapshot, s.papers)
	s.mu.RUnlock()

	return func(yield func(int, paper.Paper) bool) {
		for i, p := range snapshot {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Add appends a record built from the draft and rewrites the file.
// Comma-separated list fields are split and trimmed, the status is
// lower-cased.
func (s *Store) Add(d Draft) (paper.Paper, error) {
	p := paper.Paper{
		ID:       uuid.NewString(),
		Title:    d.Title,
		Status:   paper.NormalizeStatus(d.Status),
		Tags:     paper.SplitList(d.Tags),
		Summary:  d.Summary,
		Abstract: d.Abstract,
		TOC:      paper.SplitList(d.TOC),
		GitHub:   d.GitHub,
		PDF:      d.PDF,
		Purchase: d.Purchase,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.papers = append(s.papers, p)
	if err := s.save(); err != nil {
		s.papers = s.papers[:len(s.papers)-1]
		return paper.Paper{}, err
	}
	s.log.Info("store", "paper added", map[string]interface{}{
		"title":  p.Title,
		"status": p.Status,
	})
	return p, nil
}

// UpdateStatus replaces the status of the record at pos with the
// lower-cased value and rewrites the file. Out-of-range positions
// change nothing.
func (s *Store) UpdateStatus(pos int, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos < 0 || pos >= len(s.papers) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, pos)
	}

	previous := s.papers[pos].Status
	s.papers[pos].Status = paper.NormalizeStatus(status)
	if err := s.save(); err != nil {
		s.papers[pos].Status = previous
		return err
	}
	s.log.Info("store", "status updated", map[string]interface{}{
		"position": pos,
		"status":   s.papers[pos].Status,
	})
	return nil
}

// Delete removes the record at pos, shifting later records down by
// one, and rewrites the file. Out-of-range positions change nothing.
func (s *Store) Delete(pos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos < 0 || pos >= len(s.papers) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, pos)
	}

	removed := s.papers[pos]
	remaining := make([]paper.Paper, 0, len(s.papers)-1)
	remaining = append(remaining, s.papers[:pos]...)
	remaining = append(remaining, s.papers[pos+1:]...)

	previous := s.papers
	s.papers = remaining
	if err := s.save(); err != nil {
		s.papers = previous
		return err
	}
	s.log.Info("store", "paper deleted", map[string]interface{}{
		"position": pos,
		"title":    removed.Title,
	})
	return nil
}

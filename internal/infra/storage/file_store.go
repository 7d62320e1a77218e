package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"school_register/internal/domain/record"
)

// FileStore persists the whole register to a single CSV file. Every save is
// a full rewrite; there is no append path.
type FileStore struct {
	path string
	log  *logrus.Entry
}

func NewFileStore(path string, log *logrus.Entry) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load reads the data file and returns the records in file order. A
// missing file is not an error: the register simply starts empty. The
// header line is discarded, blank lines are ignored and malformed rows are
// skipped with a warning.
func (s *FileStore) Load() ([]*record.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.WithField("path", s.path).Info("No existing data file, starting with an empty register")
			return nil, nil
		}
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	var records []*record.Record
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 { // header
			continue
		}
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		r, err := Decode(text)
		if err != nil {
			s.log.WithFields(logrus.Fields{"line": line, "error": err}).Warn("Skipping malformed row")
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	s.log.WithFields(logrus.Fields{"path": s.path, "records": len(records)}).Debug("Data file loaded")
	return records, nil
}

// Save rewrites the data file: the header line first, then one encoded row
// per record in the given order.
func (s *FileStore) Save(records []*record.Record) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create data file: %w", err)
	}
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, Header)
	for _, r := range records {
		fmt.Fprintln(w, Encode(r))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write data file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close data file: %w", err)
	}
	s.log.WithField("records", len(records)).Debug("Register saved")
	return nil
}

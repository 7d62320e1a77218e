package app

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"school_register/internal/domain/record"
	"school_register/internal/export"
	"school_register/internal/infra/storage"
)

// RegisterService owns the register lifecycle: it pulls the record set from
// the store at startup, applies mutations through the repository and
// persists the whole file after each one.
type RegisterService struct {
	repo  record.Repository
	store *storage.FileStore
	log   *logrus.Entry
}

func NewRegisterService(repo record.Repository, store *storage.FileStore, log *logrus.Entry) *RegisterService {
	return &RegisterService{repo: repo, store: store, log: log}
}

// Load pulls the persisted record set into the repository. I/O failures are
// reported and treated as an empty register; the process keeps running.
func (s *RegisterService) Load() {
	records, err := s.store.Load()
	if err != nil {
		s.log.WithError(err).Error("Could not read data file, starting with an empty register")
		records = nil
	}
	s.repo.Reset(records)
	s.log.WithField("records", s.repo.Len()).Info("Register loaded")
}

// NewRecord constructs a record of the given role with a freshly assigned
// id. The caller fills in the remaining fields and hands it to Add.
func (s *RegisterService) NewRecord(role record.Role) *record.Record {
	return record.New(role, s.repo.NextID())
}

// Add inserts the record and persists the register. The record stays in the
// repository even when the save fails.
func (s *RegisterService) Add(r *record.Record) error {
	s.repo.Insert(r)
	s.log.WithFields(logrus.Fields{"id": r.ID, "role": r.Role}).Info("Record added")
	return s.persist()
}

func (s *RegisterService) Get(id int) (*record.Record, error) {
	return s.repo.FindByID(id)
}

func (s *RegisterService) List() []*record.Record {
	return s.repo.ListAll()
}

// ListByRole filters by role name, ignoring case. Unknown role names simply
// yield an empty result.
func (s *RegisterService) ListByRole(role string) []*record.Record {
	return s.repo.FilterByRole(role)
}

// Update persists the register after in-place edits to a record the
// repository already owns.
func (s *RegisterService) Update(r *record.Record) error {
	s.log.WithField("id", r.ID).Info("Record updated")
	return s.persist()
}

// Delete removes the record with the given id and persists the register.
// The removed record is returned so the caller can report what went away;
// storage.ErrRecordNotFound propagates on a miss.
func (s *RegisterService) Delete(id int) (*record.Record, error) {
	r, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Remove(id); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"id": r.ID, "role": r.Role}).Info("Record deleted")
	return r, s.persist()
}

// Persist writes the register out once more; called at shutdown.
func (s *RegisterService) Persist() error {
	return s.persist()
}

// ExportExcel writes the current record set to an xlsx workbook using the
// same column layout as the data file.
func (s *RegisterService) ExportExcel(path string) error {
	records := s.repo.ListAll()
	sheet := export.Sheet{
		Title:  "Records",
		Header: strings.Split(storage.Header, ","),
		Rows:   make([][]string, 0, len(records)),
	}
	for _, r := range records {
		sheet.Rows = append(sheet.Rows, storage.Columns(r))
	}
	if err := export.WriteFile(path, sheet); err != nil {
		return fmt.Errorf("export register: %w", err)
	}
	s.log.WithFields(logrus.Fields{"path": path, "records": len(records)}).Info("Register exported")
	return nil
}

func (s *RegisterService) persist() error {
	if err := s.store.Save(s.repo.ListAll()); err != nil {
		return fmt.Errorf("persist register: %w", err)
	}
	return nil
}

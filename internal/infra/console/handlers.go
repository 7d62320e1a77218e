package console

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"school_register/internal/domain/record"
	"school_register/internal/infra/storage"
)

const listHeader = "ID    Role     Name                 Telephone       Email"

func (m *Menu) handleAdd() {
	log := m.log.WithField("action", "add")

	role, ok := m.promptRole()
	if !ok {
		return
	}
	r := m.svc.NewRecord(role)

	name, _ := m.prompt("Name: ")
	r.SetName(name)
	tel, _ := m.prompt("Telephone: ")
	r.SetTelephone(tel)
	email, _ := m.prompt("Email: ")
	r.SetEmail(email)

	switch role {
	case record.Teacher:
		r.SetSalary(m.promptFloat("Salary: ", 0))
		s1, _ := m.prompt("Subject 1: ")
		r.SetSubject1(s1)
		s2, _ := m.prompt("Subject 2: ")
		r.SetSubject2(s2)
	case record.Admin:
		r.SetSalary(m.promptFloat("Salary: ", 0))
		et, _ := m.prompt("Employment type: ")
		r.SetEmploymentType(et)
		r.SetWorkingHours(m.promptInt("Working hours: ", 0))
	case record.Student:
		s1, _ := m.prompt("Subject 1: ")
		r.SetSubject1(s1)
		s2, _ := m.prompt("Subject 2: ")
		r.SetSubject2(s2)
		s3, _ := m.prompt("Subject 3: ")
		r.SetSubject3(s3)
	}

	if err := m.svc.Add(r); err != nil {
		log.WithError(err).Error("Failed to save register")
		fmt.Fprintf(m.out, "Warning: record added but saving the file failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Record %d (%s) added.\n", r.ID, r.Role)
}

func (m *Menu) handleViewAll() {
	records := m.svc.List()
	if len(records) == 0 {
		fmt.Fprintln(m.out, "No records found.")
		return
	}
	fmt.Fprintln(m.out, listHeader)
	for _, r := range records {
		fmt.Fprintln(m.out, r.Describe())
	}
}

func (m *Menu) handleViewByRole() {
	role, ok := m.promptRole()
	if !ok {
		return
	}
	records := m.svc.ListByRole(string(role))
	if len(records) == 0 {
		fmt.Fprintf(m.out, "No records found for role %s.\n", role)
		return
	}
	fmt.Fprintln(m.out, listHeader)
	for _, r := range records {
		fmt.Fprintln(m.out, r.Describe())
	}
}

func (m *Menu) handleEdit() {
	log := m.log.WithField("action", "edit")

	id, ok := m.promptID()
	if !ok {
		return
	}
	r, err := m.svc.Get(id)
	if err != nil {
		m.reportLookup(log, id, err)
		return
	}

	fmt.Fprintln(m.out, "Blank input keeps the current value.")
	r.SetName(m.promptKeep("Name", r.Name))
	r.SetTelephone(m.promptKeep("Telephone", r.Telephone))
	r.SetEmail(m.promptKeep("Email", r.Email))

	switch r.Role {
	case record.Teacher:
		r.SetSalary(m.promptFloat(fmt.Sprintf("Salary [%v]: ", r.Salary), r.Salary))
		r.SetSubject1(m.promptKeep("Subject 1", r.Subject1))
		r.SetSubject2(m.promptKeep("Subject 2", r.Subject2))
	case record.Admin:
		r.SetSalary(m.promptFloat(fmt.Sprintf("Salary [%v]: ", r.Salary), r.Salary))
		r.SetEmploymentType(m.promptKeep("Employment type", r.EmploymentType))
		r.SetWorkingHours(m.promptInt(fmt.Sprintf("Working hours [%d]: ", r.WorkingHours), r.WorkingHours))
	case record.Student:
		r.SetSubject1(m.promptKeep("Subject 1", r.Subject1))
		r.SetSubject2(m.promptKeep("Subject 2", r.Subject2))
		r.SetSubject3(m.promptKeep("Subject 3", r.Subject3))
	}

	if err := m.svc.Update(r); err != nil {
		log.WithError(err).Error("Failed to save register")
		fmt.Fprintf(m.out, "Warning: record updated but saving the file failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Record %d updated.\n", id)
}

func (m *Menu) handleDelete() {
	log := m.log.WithField("action", "delete")

	id, ok := m.promptID()
	if !ok {
		return
	}
	r, err := m.svc.Get(id)
	if err != nil {
		m.reportLookup(log, id, err)
		return
	}

	fmt.Fprintln(m.out, listHeader)
	fmt.Fprintln(m.out, r.Describe())
	if !m.confirm("Delete this record?") {
		fmt.Fprintln(m.out, "Delete cancelled.")
		return
	}

	if _, err := m.svc.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete record")
		fmt.Fprintf(m.out, "Delete failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Record %d deleted.\n", id)
}

func (m *Menu) reportLookup(log *logrus.Entry, id int, err error) {
	if errors.Is(err, storage.ErrRecordNotFound) {
		log.WithField("id", id).Warn("Record not found")
		fmt.Fprintf(m.out, "No record with id %d.\n", id)
		return
	}
	fmt.Fprintf(m.out, "Lookup failed: %v\n", err)
}

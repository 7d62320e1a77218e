package record

import (
	"fmt"
	"strings"
)

// Role identifies which variant of Record an entry represents.
type Role string

const (
	Teacher Role = "Teacher"
	Admin   Role = "Admin"
	Student Role = "Student"
)

// ParseRole matches s against the known roles, ignoring case and
// surrounding whitespace.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "teacher":
		return Teacher, true
	case "admin":
		return Admin, true
	case "student":
		return Student, true
	}
	return "", false
}

// Record is one register entry. Role determines which of the specialised
// fields are meaningful; the rest stay at their zero values and persist as
// empty columns.
type Record struct {
	ID   int
	Role Role

	Name      string
	Telephone string
	Email     string

	// Teacher and Admin
	Salary float64
	// Teacher and Student
	Subject1 string
	Subject2 string
	// Student only
	Subject3 string
	// Admin only
	EmploymentType string
	WorkingHours   int
}

// New constructs a record of the given variant. ID and Role are fixed for
// the record's lifetime; everything else starts at its zero value.
func New(role Role, id int) *Record {
	return &Record{ID: id, Role: role}
}

// SetName trims the value and falls back to "Unknown" when nothing is left.
func (r *Record) SetName(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = "Unknown"
	}
	r.Name = s
}

func (r *Record) SetTelephone(s string) { r.Telephone = strings.TrimSpace(s) }

func (r *Record) SetEmail(s string) { r.Email = strings.TrimSpace(s) }

// SetSalary clamps negative values to zero for teachers. Admin salaries are
// stored as given.
func (r *Record) SetSalary(v float64) {
	if r.Role == Teacher && v < 0 {
		v = 0
	}
	r.Salary = v
}

// SetSubject1 stores the subject, trimmed for teachers. Student subjects
// are kept verbatim.
func (r *Record) SetSubject1(s string) {
	if r.Role == Teacher {
		s = strings.TrimSpace(s)
	}
	r.Subject1 = s
}

func (r *Record) SetSubject2(s string) {
	if r.Role == Teacher {
		s = strings.TrimSpace(s)
	}
	r.Subject2 = s
}

func (r *Record) SetSubject3(s string) { r.Subject3 = s }

func (r *Record) SetEmploymentType(s string) { r.EmploymentType = s }

func (r *Record) SetWorkingHours(n int) { r.WorkingHours = n }

// Describe renders the record as a column-aligned common line followed by
// one role-specific detail line.
func (r *Record) Describe() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-5d %-8s %-20s %-15s %-25s\n", r.ID, r.Role, r.Name, r.Telephone, r.Email))
	switch r.Role {
	case Teacher:
		b.WriteString(fmt.Sprintf("      salary: %.2f, subjects: %s / %s", r.Salary, r.Subject1, r.Subject2))
	case Admin:
		b.WriteString(fmt.Sprintf("      salary: %.2f, employment: %s, hours: %d", r.Salary, r.EmploymentType, r.WorkingHours))
	case Student:
		b.WriteString(fmt.Sprintf("      subjects: %s / %s / %s", r.Subject1, r.Subject2, r.Subject3))
	}
	return b.String()
}

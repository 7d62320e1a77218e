package storage

import (
	"fmt"
	"strconv"
	"strings"

	"school_register/internal/domain/record"
)

// Header is the first line of every data file. Column order is contractual:
// reordering breaks compatibility with files written by earlier versions.
const Header = "Id,Role,Name,Telephone,Email,Salary,Subject1,Subject2,Subject3,EmploymentType,WorkingHours"

const columnCount = 11

// Indices into the shared column layout.
const (
	colID = iota
	colRole
	colName
	colTelephone
	colEmail
	colSalary
	colSubject1
	colSubject2
	colSubject3
	colEmploymentType
	colWorkingHours
)

// ErrMalformedRow marks rows that cannot identify a record: too few
// columns, a non-numeric id, or an unknown role.
var ErrMalformedRow = fmt.Errorf("malformed record row")

// Columns lays the record out over the shared 11-column schema. Columns
// that do not belong to the record's role stay empty.
func Columns(r *record.Record) []string {
	cols := make([]string, columnCount)
	cols[colID] = strconv.Itoa(r.ID)
	cols[colRole] = string(r.Role)
	cols[colName] = r.Name
	cols[colTelephone] = r.Telephone
	cols[colEmail] = r.Email
	switch r.Role {
	case record.Teacher:
		cols[colSalary] = formatSalary(r.Salary)
		cols[colSubject1] = r.Subject1
		cols[colSubject2] = r.Subject2
	case record.Admin:
		cols[colSalary] = formatSalary(r.Salary)
		cols[colEmploymentType] = r.EmploymentType
		cols[colWorkingHours] = strconv.Itoa(r.WorkingHours)
	case record.Student:
		cols[colSubject1] = r.Subject1
		cols[colSubject2] = r.Subject2
		cols[colSubject3] = r.Subject3
	}
	return cols
}

// Encode renders one data-file row. Fields are joined verbatim: the
// historical format performs no quoting, so a value containing a comma
// corrupts its row. Kept for byte compatibility with existing files.
func Encode(r *record.Record) string {
	return strings.Join(Columns(r), ",")
}

// Decode reconstructs a record from one data-file row. Rows that cannot
// identify a record return ErrMalformedRow. Rows too short for their role's
// columns keep the defaults for the missing fields, and numeric fields that
// fail to parse are silently left untouched.
func Decode(line string) (*record.Record, error) {
	cols := strings.Split(line, ",")
	if len(cols) <= colEmail {
		return nil, fmt.Errorf("%w: %d columns", ErrMalformedRow, len(cols))
	}
	id, err := strconv.Atoi(cols[colID])
	if err != nil {
		return nil, fmt.Errorf("%w: bad id %q", ErrMalformedRow, cols[colID])
	}
	role, ok := record.ParseRole(cols[colRole])
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrMalformedRow, cols[colRole])
	}

	r := record.New(role, id)
	r.SetName(cols[colName])
	r.SetTelephone(cols[colTelephone])
	r.SetEmail(cols[colEmail])

	switch role {
	case record.Teacher:
		if len(cols) > colSubject2 {
			if v, err := strconv.ParseFloat(cols[colSalary], 64); err == nil {
				r.SetSalary(v)
			}
			r.SetSubject1(cols[colSubject1])
			r.SetSubject2(cols[colSubject2])
		}
	case record.Admin:
		if len(cols) > colWorkingHours {
			if v, err := strconv.ParseFloat(cols[colSalary], 64); err == nil {
				r.SetSalary(v)
			}
			r.SetEmploymentType(cols[colEmploymentType])
			if n, err := strconv.Atoi(cols[colWorkingHours]); err == nil {
				r.SetWorkingHours(n)
			}
		}
	case record.Student:
		if len(cols) > colSubject3 {
			r.SetSubject1(cols[colSubject1])
			r.SetSubject2(cols[colSubject2])
			r.SetSubject3(cols[colSubject3])
		}
	}
	return r, nil
}

func formatSalary(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

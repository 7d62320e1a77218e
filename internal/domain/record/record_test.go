package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in    string
		want  Role
		valid bool
	}{
		{"Teacher", Teacher, true},
		{"teacher", Teacher, true},
		{"ADMIN", Admin, true},
		{"  Student  ", Student, true},
		{"parent", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		assert.Equal(t, tc.valid, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestSetNameNormalization(t *testing.T) {
	r := New(Teacher, 1)

	r.SetName("  Alice  ")
	assert.Equal(t, "Alice", r.Name)

	r.SetName("   ")
	assert.Equal(t, "Unknown", r.Name)

	r.SetName("")
	assert.Equal(t, "Unknown", r.Name)
}

func TestSetTelephoneAndEmailTrim(t *testing.T) {
	r := New(Admin, 1)
	r.SetTelephone(" 555-0100 ")
	r.SetEmail(" a@example.com ")
	assert.Equal(t, "555-0100", r.Telephone)
	assert.Equal(t, "a@example.com", r.Email)

	r.SetTelephone("")
	assert.Empty(t, r.Telephone)
}

func TestTeacherSalaryClamped(t *testing.T) {
	r := New(Teacher, 1)
	r.SetSalary(-50)
	assert.Equal(t, 0.0, r.Salary)

	r.SetSalary(1200.5)
	assert.Equal(t, 1200.5, r.Salary)
}

func TestAdminSalaryUnclamped(t *testing.T) {
	r := New(Admin, 2)
	r.SetSalary(-50)
	assert.Equal(t, -50.0, r.Salary)
}

func TestSubjectTrimmingPerRole(t *testing.T) {
	teacher := New(Teacher, 1)
	teacher.SetSubject1("  Maths ")
	teacher.SetSubject2(" Physics")
	assert.Equal(t, "Maths", teacher.Subject1)
	assert.Equal(t, "Physics", teacher.Subject2)

	student := New(Student, 2)
	student.SetSubject1("  Maths ")
	student.SetSubject3(" Art ")
	assert.Equal(t, "  Maths ", student.Subject1)
	assert.Equal(t, " Art ", student.Subject3)
}

func TestDescribe(t *testing.T) {
	r := New(Teacher, 7)
	r.SetName("Alice")
	r.SetTelephone("555-0100")
	r.SetEmail("alice@example.com")
	r.SetSalary(1500)
	r.SetSubject1("Maths")
	r.SetSubject2("Physics")

	lines := strings.Split(r.Describe(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "7")
	assert.Contains(t, lines[0], "Teacher")
	assert.Contains(t, lines[0], "Alice")
	assert.Contains(t, lines[0], "alice@example.com")
	assert.Contains(t, lines[1], "1500.00")
	assert.Contains(t, lines[1], "Maths")
	assert.Contains(t, lines[1], "Physics")
}

func TestDescribeAdminDetailLine(t *testing.T) {
	r := New(Admin, 3)
	r.SetName("Bob")
	r.SetSalary(900)
	r.SetEmploymentType("Full-time")
	r.SetWorkingHours(40)

	lines := strings.Split(r.Describe(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Full-time")
	assert.Contains(t, lines[1], "40")
}

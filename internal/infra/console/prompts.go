package console

import (
	"fmt"
	"strconv"
	"strings"

	"school_register/internal/domain/record"
)

// prompt prints the label and reads one line. ok is false once input ends.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// promptRole re-prompts until the user names a known role.
func (m *Menu) promptRole() (record.Role, bool) {
	for {
		line, ok := m.prompt("Role (Teacher/Admin/Student): ")
		if !ok {
			return "", false
		}
		if role, valid := record.ParseRole(line); valid {
			return role, true
		}
		fmt.Fprintln(m.out, "Unknown role, try again.")
	}
}

// promptID reads a record id; ok is false when the input is not a number.
func (m *Menu) promptID() (int, bool) {
	line, ok := m.prompt("Record id: ")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(m.out, "Id must be a number.")
		return 0, false
	}
	return id, true
}

// promptKeep reads a replacement for an existing value; blank input keeps
// the current one.
func (m *Menu) promptKeep(label, current string) string {
	line, ok := m.prompt(fmt.Sprintf("%s [%s]: ", label, current))
	if !ok || strings.TrimSpace(line) == "" {
		return current
	}
	return line
}

// promptFloat parses the input as a number; blank or unparseable input
// keeps the given current value.
func (m *Menu) promptFloat(label string, current float64) float64 {
	line, ok := m.prompt(label)
	if !ok {
		return current
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Fprintf(m.out, "Not a number, keeping %v.\n", current)
		return current
	}
	return v
}

func (m *Menu) promptInt(label string, current int) int {
	line, ok := m.prompt(label)
	if !ok {
		return current
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintf(m.out, "Not a number, keeping %d.\n", current)
		return current
	}
	return n
}

// confirm asks a y/n question; anything except y/yes counts as no.
func (m *Menu) confirm(label string) bool {
	line, ok := m.prompt(label + " (y/n): ")
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

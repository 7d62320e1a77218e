package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"school_register/internal/app"
)

const menuText = `
===== School Register =====
1. Add record
2. View all records
3. View records by role
4. Edit record
5. Delete record
6. Exit
`

// Menu drives the interactive loop: it renders the numbered menu, reads one
// choice per iteration and dispatches to the matching handler.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer
	svc *app.RegisterService
	log *logrus.Entry
}

func NewMenu(in io.Reader, out io.Writer, svc *app.RegisterService, log *logrus.Entry) *Menu {
	return &Menu{in: bufio.NewScanner(in), out: out, svc: svc, log: log}
}

// Run blocks until the user selects Exit or input ends. Invalid choices
// re-prompt without touching any state.
func (m *Menu) Run() {
	for {
		fmt.Fprint(m.out, menuText)
		choice, ok := m.prompt("Select an option: ")
		if !ok {
			m.log.Info("Input closed, leaving menu")
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			m.handleAdd()
		case "2":
			m.handleViewAll()
		case "3":
			m.handleViewByRole()
		case "4":
			m.handleEdit()
		case "5":
			m.handleDelete()
		case "6":
			fmt.Fprintln(m.out, "Goodbye.")
			return
		default:
			fmt.Fprintln(m.out, "Invalid option, please choose 1-6.")
		}
	}
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mmr-tortoise/courseplanner/internal/catalog"
	"github.com/mmr-tortoise/courseplanner/internal/model"
)

// Menu choices.
const (
	choiceLoad    = 1
	choiceDisplay = 2
	choiceSearch  = 3
	choiceFile    = 4
	choiceAdd     = 5
	choiceSave    = 6
	choiceExit    = 9
)

// menu is the interactive advising loop. Input is read one line at a time
// so that file names and titles may contain spaces.
type menu struct {
	in      *bufio.Scanner
	out     io.Writer
	session *catalog.Session
}

// runMenu runs the interactive menu until the user exits or the input ends.
// Load and save failures are printed and the loop continues.
func runMenu(in io.Reader, out io.Writer, s *catalog.Session) error {
	m := &menu{
		in:      bufio.NewScanner(in),
		out:     out,
		session: s,
	}

	for {
		m.printMenu()

		line, ok := m.readLine()
		if !ok {
			break
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(m.out, "%q is not a valid option.\n\n", line)
			continue
		}

		if choice == choiceExit {
			break
		}
		if !m.dispatch(choice) {
			break
		}
	}

	fmt.Fprintln(m.out, "Good bye.")
	return m.in.Err()
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out, "Menu:")
	fmt.Fprintln(m.out, "  1. Load Courses")
	fmt.Fprintln(m.out, "  2. Display All Courses")
	fmt.Fprintln(m.out, "  3. Search for courses")
	fmt.Fprintln(m.out, "  4. Change file")
	fmt.Fprintln(m.out, "  5. Add course")
	fmt.Fprintln(m.out, "  6. Save file")
	fmt.Fprintln(m.out, "  9. Exit")
	fmt.Fprintf(m.out, "Current file: %s\n", m.session.Path())
	fmt.Fprint(m.out, "Enter choice: ")
}

// readLine returns the next trimmed input line, or false at end of input.
func (m *menu) readLine() (string, bool) {
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// prompt prints label and reads the answer.
func (m *menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

// dispatch runs one menu choice. It returns false when input ended in the
// middle of the choice.
func (m *menu) dispatch(choice int) bool {
	switch choice {
	case choiceLoad:
		m.load()
	case choiceDisplay:
		m.display()
	case choiceSearch:
		return m.search()
	case choiceFile:
		return m.changeFile()
	case choiceAdd:
		return m.add()
	case choiceSave:
		m.save()
	default:
		fmt.Fprintf(m.out, "%d is not a valid option.\n\n", choice)
	}
	return true
}

func (m *menu) load() {
	start := time.Now()

	fmt.Fprintf(m.out, "Loading CSV file %s\n", m.session.Path())
	res, err := m.session.Load("")
	if err != nil {
		m.printError(loadError(err))
		return
	}
	printDiagnostics(m.out, res.Skipped)
	m.session.Sort()

	fmt.Fprintf(m.out, "%d courses read and sorted\n", m.session.Len())
	m.printElapsed(start)
}

func (m *menu) display() {
	for _, c := range m.session.Courses() {
		fmt.Fprintln(m.out, catalog.DisplayCourse(c))
	}
	fmt.Fprintln(m.out)
}

func (m *menu) search() bool {
	start := time.Now()

	fmt.Fprintln(m.out, "Enter course number:")
	key, ok := m.readLine()
	if !ok {
		return false
	}

	if c, found := m.session.Find(key); found {
		fmt.Fprintln(m.out, catalog.DisplayCourse(c))
	} else {
		fmt.Fprintln(m.out, "Course not found")
	}

	m.printElapsed(start)
	return true
}

func (m *menu) changeFile() bool {
	start := time.Now()

	fmt.Fprintln(m.out, "Enter new file name:")
	path, ok := m.readLine()
	if !ok {
		return false
	}
	if path == "" {
		fmt.Fprintln(m.out, "File name unchanged.")
	} else {
		m.session.SetPath(path)
	}

	m.printElapsed(start)
	return true
}

func (m *menu) add() bool {
	var answers [4]string
	labels := [4]string{"Enter Id: ", "Enter title: ", "Enter first prereq: ", "Enter second prereq: "}
	for i, label := range labels {
		answer, ok := m.prompt(label)
		if !ok {
			return false
		}
		answers[i] = answer
	}

	course := model.NewCourse(answers[0], answers[1], answers[2], answers[3])
	if err := m.session.AddCourse(course); err != nil {
		m.printError(err)
		return true
	}
	m.session.Sort()

	fmt.Fprintf(m.out, "Added %s\n\n", catalog.DisplayCourse(course))
	return true
}

func (m *menu) save() {
	if err := m.session.Save(""); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Saved %d row(s) to %s\n\n", m.session.Table().RowCount(), m.session.Path())
}

func (m *menu) printElapsed(start time.Time) {
	fmt.Fprintf(m.out, "time: %s\n\n", time.Since(start))
}

func (m *menu) printError(err error) {
	fmt.Fprintf(m.out, "Error: %v\n\n", err)
}

// Package console implements the line-based monkey finder menu.
package console

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/sahilchouksey/todo-monkeys/model"
	"github.com/sahilchouksey/todo-monkeys/services/metrics"
	"go.uber.org/zap"
)

// MonkeyService is what the menu needs from services/monkey.Service
type MonkeyService interface {
	All() []model.Monkey
	FindByName(name string) (model.Monkey, bool)
	Search(query string) []model.Monkey
	FuzzySearch(query string, maxDistance int) []model.MonkeyMatch
	Random() (model.Monkey, bool)
	AccessCount(name string) int64
	PickCounts() map[string]int64
	Metrics() *metrics.Recorder
}

// Options controls the menu behaviour
type Options struct {
	MaxDistance int
	NoColor     bool
	Logger      *zap.Logger
}

const genericFailure = "Something went wrong while running that command. Please try again."

var menuOptions = []string{
	"List all monkeys",
	"Search monkeys by name",
	"Fuzzy search",
	"Random monkey",
	"Exit",
	"Performance",
}

// Menu reads choices from in and writes results to out
type Menu struct {
	svc         MonkeyService
	in          *bufio.Scanner
	out         io.Writer
	styles      styles
	maxDistance int
	logger      *zap.Logger
}

func NewMenu(svc MonkeyService, in io.Reader, out io.Writer, opts Options) *Menu {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		svc:         svc,
		in:          bufio.NewScanner(in),
		out:         out,
		styles:      newStyles(opts.NoColor),
		maxDistance: opts.MaxDistance,
		logger:      logger,
	}
}

// Run shows the menu until the user exits or input ends
func (m *Menu) Run() error {
	m.println(m.styles.title.Render("🐒 Monkey Finder"))

	for {
		m.printMenu()
		line, ok := m.readLine("Choose an option (1-6): ")
		if !ok {
			m.println("")
			m.println("Goodbye!")
			return m.in.Err()
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(menuOptions) {
			m.println(m.styles.warning.Render(fmt.Sprintf("Invalid option %q. Enter a number between 1 and %d.", line, len(menuOptions))))
			continue
		}

		if choice == 5 {
			m.println("Goodbye!")
			return nil
		}

		if !m.run(choice) {
			m.println("")
			m.println("Goodbye!")
			return m.in.Err()
		}
	}
}

// run executes one command. It returns false when input ended mid-command.
func (m *Menu) run(choice int) (more bool) {
	more = true
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("console command panicked", zap.Int("choice", choice), zap.Any("panic", r))
			m.println(m.styles.warning.Render(genericFailure))
		}
	}()

	switch choice {
	case 1:
		m.listAll()
	case 2:
		query, ok := m.readLine("Enter part of a monkey name: ")
		if !ok {
			return false
		}
		m.search(query)
	case 3:
		query, ok := m.readLine("Enter a monkey name (typos welcome): ")
		if !ok {
			return false
		}
		m.fuzzySearch(query)
	case 4:
		m.random()
	case 6:
		m.performance()
	}
	return true
}

func (m *Menu) listAll() {
	monkeys := m.svc.All()
	m.println(m.styles.title.Render(fmt.Sprintf("All monkeys (%d)", len(monkeys))))
	for _, monkey := range monkeys {
		m.printMonkey(monkey)
	}
}

func (m *Menu) search(query string) {
	if query == "" {
		m.println(m.styles.warning.Render("Please enter a name to search for."))
		return
	}

	exact, found := m.svc.FindByName(query)
	if found {
		m.println(m.styles.title.Render("Exact match"))
		m.printMonkey(exact)
	}

	var others []model.Monkey
	for _, monkey := range m.svc.Search(query) {
		if found && monkey.Name == exact.Name {
			continue
		}
		others = append(others, monkey)
	}

	switch {
	case len(others) == 0 && !found:
		m.println(m.styles.empty.Render(fmt.Sprintf("No monkeys match %q.", query)))
		return
	case len(others) == 0:
		return
	case found:
		m.println(m.styles.title.Render(fmt.Sprintf("%d other monkey(s) contain %q", len(others), query)))
	default:
		m.println(m.styles.title.Render(fmt.Sprintf("%d monkey(s) match %q", len(others), query)))
	}
	for _, monkey := range others {
		m.printMonkey(monkey)
	}
}

func (m *Menu) fuzzySearch(query string) {
	if query == "" {
		m.println(m.styles.warning.Render("Please enter a name to search for."))
		return
	}
	matches := m.svc.FuzzySearch(query, m.maxDistance)
	if len(matches) == 0 {
		m.println(m.styles.empty.Render(fmt.Sprintf("No monkeys within distance %d of %q.", m.maxDistance, query)))
		return
	}
	m.println(m.styles.title.Render(fmt.Sprintf("Closest matches for %q", query)))
	for _, match := range matches {
		m.println(fmt.Sprintf("%s %s",
			m.styles.name.Render(match.Monkey.Name),
			m.styles.label.Render(fmt.Sprintf("(distance %d)", match.Distance))))
	}
}

func (m *Menu) random() {
	monkey, ok := m.svc.Random()
	if !ok {
		m.println(m.styles.empty.Render("No monkeys available."))
		return
	}
	m.println(m.styles.title.Render("Your random monkey"))
	m.printMonkey(monkey)
	m.println(m.styles.label.Render(fmt.Sprintf("  Picked %d time(s) this session", m.svc.AccessCount(monkey.Name))))
}

func (m *Menu) performance() {
	snapshot := m.svc.Metrics().Snapshot()
	m.println(m.styles.title.Render("Performance"))
	m.println(fmt.Sprintf("%s %.1fs", m.styles.label.Render("Uptime:"), snapshot.UptimeSecs))
	m.println(fmt.Sprintf("%s %d", m.styles.label.Render("Total calls:"), snapshot.TotalCalls))
	for _, op := range snapshot.Operations {
		m.println(fmt.Sprintf("  %-14s calls=%d avg=%.3fms", op.Name, op.Count, op.AverageMs))
	}

	picks := m.svc.PickCounts()
	if len(picks) == 0 {
		m.println(m.styles.empty.Render("No random picks yet."))
		return
	}
	names := make([]string, 0, len(picks))
	for name := range picks {
		names = append(names, name)
	}
	slices.Sort(names)
	m.println(m.styles.label.Render("Random picks:"))
	for _, name := range names {
		m.println(fmt.Sprintf("  %s: %d", name, picks[name]))
	}
}

func (m *Menu) printMenu() {
	m.println("")
	for i, option := range menuOptions {
		m.println(m.styles.option.Render(fmt.Sprintf("%d. %s", i+1, option)))
	}
}

func (m *Menu) printMonkey(monkey model.Monkey) {
	m.println("")
	m.println(m.styles.name.Render(monkey.Name))
	m.println(fmt.Sprintf("  %s %s", m.styles.label.Render("Location:"), monkey.Location))
	m.println(fmt.Sprintf("  %s %d", m.styles.label.Render("Population:"), monkey.Population))
	m.println(fmt.Sprintf("  %s %.6f, %.6f", m.styles.label.Render("Coordinates:"), monkey.Latitude, monkey.Longitude))
	m.println("  " + m.styles.detail.Render(monkey.Details))
}

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, m.styles.prompt.Render(prompt))
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

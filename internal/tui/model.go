// Package tui implements the interactive component gallery: a sectioned
// bubbletea program that showcases every component of the kit.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tesserakit/tessera/internal/logger"
	"github.com/tesserakit/tessera/pkg/components"
	"github.com/tesserakit/tessera/pkg/dategrid"
)

// Section identifies one page of the gallery.
type Section int

const (
	SectionCalendar Section = iota
	SectionPaginator
	SectionForms
	SectionFeedback
	SectionMarketing

	sectionCount
)

// Title returns the tab label of a section.
func (s Section) Title() string {
	switch s {
	case SectionCalendar:
		return "Calendar"
	case SectionPaginator:
		return "Paginator"
	case SectionForms:
		return "Forms"
	case SectionFeedback:
		return "Feedback"
	case SectionMarketing:
		return "Marketing"
	default:
		return "Unknown"
	}
}

// Model contains the bubbletea state for the gallery.
type Model struct {
	section   Section
	calendar  components.Calendar
	paginator components.Paginator
	accordion *components.Accordion
	dialog    *components.Dialog
	field     components.Field
	loader    components.Loader
	rangeMode bool

	keymap KeyMap
	help   help.Model

	width    int
	height   int
	tooSmall bool

	log *logger.Logger
}

// NewModel constructs the gallery model. The clock is read once here so
// the calendar engine itself stays clock-free.
func NewModel(log *logger.Logger) Model {
	today := dategrid.DateOf(time.Now())

	cal := components.NewCalendar(today).WithRules(dategrid.Rules{
		MinDate: ptrDate(today.AddDays(-365)),
		MaxDate: ptrDate(today.AddDays(365)),
	})

	accordion := components.NewAccordion(
		components.AccordionSection{Title: "What is Tessera?", Body: "A theme-aware component kit for terminal applications."},
		components.AccordionSection{Title: "Theming", Body: "Ship a YAML theme file and load it with --theme."},
		components.AccordionSection{Title: "Components", Body: "Buttons, badges, alerts, cards, dialogs, calendars, paginators and more."},
	)

	field := components.NewField("Project name", "my-project").
		WithValidate(nonEmpty("project name"))

	m := Model{
		section:   SectionCalendar,
		calendar:  cal,
		paginator: components.NewPaginator(42).WithSiblings(1),
		accordion: accordion,
		dialog:    components.NewDialog("Reset form", "Discard the current values?"),
		field:     field,
		loader:    components.NewLoader("Fetching component metadata"),
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
		log:       log,
	}
	return m
}

func ptrDate(d dategrid.Date) *dategrid.Date {
	return &d
}

func nonEmpty(what string) components.ValidateFunc {
	return func(value string) error {
		if value == "" {
			return errEmpty(what)
		}
		return nil
	}
}

type errEmpty string

func (e errEmpty) Error() string {
	return string(e) + " must not be empty"
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loader.Tick()
}

// Section returns the active gallery section.
func (m Model) Section() Section {
	return m.section
}

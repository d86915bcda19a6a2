// Package tui is an interactive terminal viewer for analysis reports: the
// four report tables behind tab navigation, with a spinner while the trace
// loads and the analysis runs.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/table"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/harlens/harlens/harlog"
	"github.com/harlens/harlens/lens"
	"github.com/harlens/harlens/report"
)

type LoadState int

const (
	LoadStateLoading LoadState = iota
	LoadStateLoaded
	LoadStateError
)

const tableVerticalPadding = 5

type analysisCompleteMsg struct {
	result   *lens.Report
	tables   []report.Table
	duration time.Duration
}

type analysisErrorMsg struct {
	err error
}

// ReportModel drives the report viewer: one tab per report table.
type ReportModel struct {
	fileName string

	loadState      LoadState
	loadingSpinner spinner.Model
	analysisTime   time.Duration
	err            error

	result *lens.Report
	tables []report.Table

	activeTab int
	table     table.Model

	width  int
	height int
	ready  bool
}

func NewReportModel(fileName string) *ReportModel {
	return &ReportModel{
		fileName:       fileName,
		loadState:      LoadStateLoading,
		loadingSpinner: createLoadingSpinner(),
	}
}

func (m *ReportModel) Init() tea.Cmd {
	return tea.Batch(
		m.loadingSpinner.Tick,
		m.startAnalysis(),
	)
}

func (m *ReportModel) startAnalysis() tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		doc, err := harlog.Load(m.fileName)
		if err != nil {
			return analysisErrorMsg{err: err}
		}

		result := lens.Analyze(doc)

		return analysisCompleteMsg{
			result:   result,
			tables:   report.BuildTables(result),
			duration: time.Since(start),
		}
	}
}

func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if m.loadState == LoadStateLoading {
		m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	switch msg := msg.(type) {
	case analysisCompleteMsg:
		m.loadState = LoadStateLoaded
		m.result = msg.result
		m.tables = msg.tables
		m.analysisTime = msg.duration

		if m.width > 0 && m.height > 0 {
			m.initializeTable()
			m.ready = true
		}
		return m, nil

	case analysisErrorMsg:
		m.loadState = LoadStateError
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if m.loadState == LoadStateLoaded && !m.ready {
			m.initializeTable()
			m.ready = true
		} else if m.ready {
			m.initializeTable()
		}

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "tab", "right", "l":
			if m.ready {
				m.switchTab((m.activeTab + 1) % len(m.tables))
			}
			return m, nil

		case "shift+tab", "left", "h":
			if m.ready {
				m.switchTab((m.activeTab + len(m.tables) - 1) % len(m.tables))
			}
			return m, nil

		case "1", "2", "3", "4":
			if m.ready {
				m.switchTab(int(msg.String()[0] - '1'))
			}
			return m, nil
		}
	}

	if m.ready {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *ReportModel) switchTab(tab int) {
	if tab < 0 || tab >= len(m.tables) || tab == m.activeTab {
		return
	}
	m.activeTab = tab
	m.initializeTable()
}

func (m *ReportModel) initializeTable() {
	columns, rows := buildTableContent(m.tables[m.activeTab], m.width)

	tableHeight := m.height - tableVerticalPadding
	if tableHeight < 3 {
		tableHeight = 3
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
		table.WithWidth(m.width),
	)

	m.table = ApplyTableStyles(m.table)
}

func createLoadingSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(RGBPink)
	return s
}

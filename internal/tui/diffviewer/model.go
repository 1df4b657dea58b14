// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     diffviewer
// Description: Bubbletea model for browsing the differences of two dumps
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package diffviewer is an interactive terminal browser over the
// comparison of two NV item dumps.
package diffviewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/nvdiff/foundation/core/log"
	"github.com/msto63/nvdiff/internal/compare"
	"github.com/msto63/nvdiff/internal/dictionary"
	"github.com/msto63/nvdiff/internal/dump"
	"github.com/msto63/nvdiff/internal/nvitem"
	"github.com/msto63/nvdiff/internal/report"
)

// KindFilter tracks which pair kinds are shown
type KindFilter struct {
	Changed   bool
	LeftOnly  bool
	RightOnly bool
}

func (f KindFilter) allows(k compare.Kind) bool {
	switch k {
	case compare.Changed:
		return f.Changed
	case compare.LeftOnly:
		return f.LeftOnly
	default:
		return f.RightOnly
	}
}

// Config holds diff viewer configuration
type Config struct {
	LeftPath       string
	RightPath      string
	DictionaryPath string
	Mode           compare.Mode
	Version        string
	Logger         *log.Logger

	// Watch reloads the comparison whenever one of the dumps is written
	Watch bool
}

// Model is the main Bubbletea model for the diff viewer
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	loadSeq int // generation of the newest load, older results are dropped
	err     error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Comparison state
	left     *dump.Dump
	right    *dump.Dump
	dict     *dictionary.Dictionary
	mode     compare.Mode
	pairs    []compare.Pair
	visible  []compare.Pair
	filter   KindFilter
	enriched int

	cfg     Config
	logger  *log.Logger
	watcher *fileWatcher
}

// New creates a new diff viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(report.ColorPrimary)

	logger := cfg.Logger
	if logger == nil {
		logger = log.Discard()
	}

	return Model{
		loading: true,
		spinner: sp,
		mode:    cfg.Mode,
		filter:  KindFilter{Changed: true, LeftOnly: true, RightOnly: true},
		cfg:     cfg,
		logger:  logger.WithName("browse"),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.loadDumps}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.wait())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 5 // Title panel + filter bar
		footerHeight := 4 // Status bar + help
		viewportHeight := max(msg.Height-headerHeight-footerHeight, 3)

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case dumpsLoadedMsg:
		if msg.seq != m.loadSeq {
			m.logger.Debug("stale load result dropped", log.Fields{"seq": msg.seq, "current": m.loadSeq})
			break
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.left, m.right, m.dict = msg.left, msg.right, msg.dict
			m.recompute()
		}

	case reloadMsg:
		cmds = append(cmds, m.reload()...)

	case fileChangedMsg:
		m.logger.Info("dump changed, reloading", log.Fields{"file": msg.name})
		cmds = append(cmds, m.reload()...)
		if m.watcher != nil {
			cmds = append(cmds, m.watcher.wait())
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Kind filters
		case "1":
			m.filter.Changed = !m.filter.Changed
			m.applyFilter()
		case "2":
			m.filter.LeftOnly = !m.filter.LeftOnly
			m.applyFilter()
		case "3":
			m.filter.RightOnly = !m.filter.RightOnly
			m.applyFilter()
		case "0":
			m.filter = KindFilter{Changed: true, LeftOnly: true, RightOnly: true}
			m.applyFilter()

		// Comparison mode
		case "p":
			m.setMode(compare.Present)
		case "m":
			m.setMode(compare.Missing)
		case "b":
			m.setMode(compare.Both)

		case "r":
			return m, func() tea.Msg { return reloadMsg{} }

		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
	case tea.KeyPgDown:
		m.viewport.ViewDown()
	case tea.KeyUp:
		m.viewport.LineUp(1)
	case tea.KeyDown:
		m.viewport.LineDown(1)
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading nvdiff..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")

	b.WriteString(m.renderPairArea())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title with both file names
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		FileLeftStyle.Render(m.fileName(m.left, m.cfg.LeftPath)),
		HelpDescStyle.Render("  vs  "),
		FileRightStyle.Render(m.fileName(m.right, m.cfg.RightPath)),
	)
	return TitlePanelStyle.Width(max(m.width-4, 0)).Render(header)
}

// renderFilterBar renders the kind filters and the active mode
func (m Model) renderFilterBar() string {
	filters := []string{
		fmt.Sprintf("1:%s", RenderFilterStatus("CHANGED", m.filter.Changed)),
		fmt.Sprintf("2:%s", RenderFilterStatus("LEFT ONLY", m.filter.LeftOnly)),
		fmt.Sprintf("3:%s", RenderFilterStatus("RIGHT ONLY", m.filter.RightOnly)),
	}

	modeStr := HelpDescStyle.Render("mode: ") + FilterActiveStyle.Render(m.mode.String())
	countStr := HelpDescStyle.Render(fmt.Sprintf("[%d/%d pairs]", len(m.visible), len(m.pairs)))

	content := strings.Join(filters, "  ") + "  " + modeStr + "  " + countStr
	return FilterBarStyle.Width(max(m.width-2, 0)).Render(content)
}

// renderPairArea renders the main viewport
func (m Model) renderPairArea() string {
	style := PairPanelStyle.Width(max(m.width-2, 0)).Height(m.viewport.Height + 2)
	return style.Render(m.viewport.View())
}

// renderStatusBar renders summary counts and load state
func (m Model) renderStatusBar() string {
	var leftPart string
	switch {
	case m.err != nil:
		leftPart = ErrorStyle.Render(errorLine(m.err))
	default:
		s := compare.Summarize(m.pairs)
		leftPart = HelpDescStyle.Render(fmt.Sprintf("Found %d non matching items (%d changed, %d left only, %d right only)",
			s.Total(), s.Changed, s.LeftOnly, s.RightOnly))
	}

	var rightPart string
	switch {
	case m.loading:
		rightPart = m.spinner.View() + " Loading..."
	case m.dict != nil:
		rightPart = FilterActiveStyle.Render(fmt.Sprintf("%d annotated", m.enriched))
	default:
		rightPart = FilterInactiveStyle.Render("no dictionary")
	}
	if m.cfg.Version != "" {
		rightPart += HelpDescStyle.Render("  v" + m.cfg.Version)
	}

	padding := max(m.width-lipgloss.Width(leftPart)-lipgloss.Width(rightPart)-4, 2)
	content := leftPart + strings.Repeat(" ", padding) + rightPart

	return StatusBarStyle.Width(max(m.width-2, 0)).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-3", "Filter"),
		RenderKeyHint("0", "All"),
		RenderKeyHint("p/m/b", "Mode"),
		RenderKeyHint("r", "Reload"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// setMode switches the comparison mode and recomputes the pairs
func (m *Model) setMode(mode compare.Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	m.recompute()
}

// recompute compares the loaded dumps and annotates the result
func (m *Model) recompute() {
	if m.left == nil || m.right == nil {
		return
	}
	m.pairs = compare.Compare(m.left.Items, m.right.Items, m.mode)
	m.enriched = compare.Enrich(m.pairs, m.dict)
	m.logger.Debug("comparison updated", log.Fields{
		"mode":      m.mode.String(),
		"pairs":     len(m.pairs),
		"annotated": m.enriched,
	})
	m.applyFilter()
}

// applyFilter selects the visible pairs and refreshes the viewport
func (m *Model) applyFilter() {
	m.visible = make([]compare.Pair, 0, len(m.pairs))
	for _, p := range m.pairs {
		if m.filter.allows(p.Kind()) {
			m.visible = append(m.visible, p)
		}
	}
	m.updateViewportContent()
}

// updateViewportContent renders every visible pair side by side
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	columnWidth := max((m.viewport.Width-3)/2, 20)

	var content strings.Builder
	for _, p := range m.visible {
		content.WriteString(RenderKindBadge(p.Kind()))
		content.WriteString(" ")
		content.WriteString(CodeStyle.Render(fmt.Sprintf("%04d", p.Code())))
		content.WriteString("\n")

		left := renderRecord(p.Left, columnWidth)
		right := renderRecord(p.Right, columnWidth)
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " | ", right))
		content.WriteString("\n\n")
	}

	if len(m.visible) == 0 && !m.loading && m.err == nil {
		content.WriteString(HelpDescStyle.Render("No differences."))
	}

	m.viewport.SetContent(content.String())
}

// renderRecord renders one side of a pair in a fixed width column
func renderRecord(rec nvitem.Record, width int) string {
	column := lipgloss.NewStyle().Width(width)
	if rec.IsSentinel() {
		return column.Render(AbsentStyle.Render("(absent)"))
	}

	lines := []string{HeadingStyle.Render(rec.Heading())}
	for _, line := range rec.PayloadLines() {
		lines = append(lines, PayloadStyle.Render(line))
	}
	return column.Render(strings.Join(lines, "\n"))
}

// fileName prefers the loaded base name over the configured path
func (m Model) fileName(d *dump.Dump, path string) string {
	if d != nil {
		return d.Name
	}
	return path
}

// errorLine flattens a load error into one status line
func errorLine(err error) string {
	var parts []string
	for _, e := range dump.FileErrors(err) {
		if file, ok := dump.FileOf(e); ok {
			parts = append(parts, file+": "+e.Error())
			continue
		}
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// reload starts a new load generation. Results of loads still in flight
// are ignored when they arrive.
func (m *Model) reload() []tea.Cmd {
	m.loadSeq++
	m.loading = true
	return []tea.Cmd{m.spinner.Tick, m.loadDumps}
}

// loadDumps reads both dumps and the dictionary off the UI loop
func (m Model) loadDumps() tea.Msg {
	left, right, err := dump.NewLoader(m.logger).LoadPair(m.cfg.LeftPath, m.cfg.RightPath)
	if err != nil {
		return dumpsLoadedMsg{seq: m.loadSeq, err: err}
	}

	var dict *dictionary.Dictionary
	if m.cfg.DictionaryPath != "" {
		dict, err = dictionary.Load(m.cfg.DictionaryPath)
		if err != nil {
			m.logger.WarnWithErr("dictionary not loaded", err, log.Fields{"path": m.cfg.DictionaryPath})
			dict = nil
		}
	}

	return dumpsLoadedMsg{seq: m.loadSeq, left: left, right: right, dict: dict}
}

// Run starts the diff viewer TUI
func Run(cfg Config) error {
	m := New(cfg)
	if cfg.Watch {
		fw, err := newFileWatcher(m.logger, cfg.LeftPath, cfg.RightPath)
		if err != nil {
			m.logger.WarnWithErr("file watching disabled", err)
		} else {
			defer fw.Close()
			m.watcher = fw
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

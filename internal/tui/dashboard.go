// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/northstarhouse/strategyhub/internal/quarterly"
	"github.com/northstarhouse/strategyhub/internal/syncer"
	"github.com/northstarhouse/strategyhub/models"
)

type tab int

const (
	tabTodos tab = iota
	tabEvents
	tabQuarterly
	tabMarketing
	tabBookings
)

var tabLabels = []string{"To-dos", "Events", "Quarterly", "Marketing", "Bookings"}

type dashboardModel struct {
	ctx       context.Context
	services  *syncer.Services
	quarterly *quarterly.Service

	activeTab tab
	idx       map[tab]int

	adding        bool
	input         textinput.Model
	confirming    bool
	pendingDelete string

	syncing bool
	spinner spinner.Model
	status  string
	lastErr error

	warning   string
	sheetLink string

	quitByUser bool
}

func newDashboardModel(ctx context.Context, services *syncer.Services, qs *quarterly.Service, warning, sheetLink string) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	input := textinput.New()
	input.Placeholder = "new to-do"
	input.CharLimit = 200

	return dashboardModel{
		ctx:       ctx,
		services:  services,
		quarterly: qs,
		idx:       map[tab]int{},
		input:     input,
		spinner:   s,
		warning:   warning,
		sheetLink: sheetLink,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		pollTick(),
		waitForConfirmation(m.services.Todos.Confirmations()),
		waitForConfirmation(m.services.Events.Confirmations()),
	)
}

// waitForConfirmation surfaces the outcome of one background write; it is
// re-armed every time a confirmation arrives.
func waitForConfirmation(ch <-chan syncer.Confirmation) tea.Cmd {
	return func() tea.Msg {
		conf, ok := <-ch
		if !ok {
			return nil
		}
		return confirmationMsg{conf: conf}
	}
}

func (m dashboardModel) refreshCmd() tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		refreshCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		return refreshDoneMsg{err: services.Refresh(refreshCtx)}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pollTickMsg:
		// collections refresh themselves in the background; the tick just
		// redraws so their results become visible
		return m, pollTick()

	case refreshDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.lastErr = msg.err
			m.status = ""
		} else {
			m.lastErr = nil
			m.status = "synced"
		}
		return m, clearStatusAfter(3 * time.Second)

	case confirmationMsg:
		conf := msg.conf
		if conf.Err != nil {
			m.status = fmt.Sprintf("%s %s failed, kept locally", conf.Collection, conf.Op)
		} else {
			m.status = fmt.Sprintf("%s %s saved", conf.Collection, conf.Op)
		}
		var ch <-chan syncer.Confirmation
		switch conf.Collection {
		case "events":
			ch = m.services.Events.Confirmations()
		default:
			ch = m.services.Todos.Confirmations()
		}
		return m, tea.Batch(waitForConfirmation(ch), clearStatusAfter(3*time.Second))

	case copiedMsg:
		if msg.err != nil {
			m.status = "clipboard unavailable"
		} else {
			m.status = "link copied"
		}
		return m, clearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		switch {
		case key.Matches(msg, keys.enter):
			text := strings.TrimSpace(m.input.Value())
			m.adding = false
			m.input.Reset()
			if text != "" {
				m.services.Todos.Add(models.Todo{
					Text:      text,
					CreatedAt: time.Now().Format("2006-01-02"),
				})
			}
			return m, nil
		case key.Matches(msg, keys.esc):
			m.adding = false
			m.input.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if m.confirming {
		switch {
		case key.Matches(msg, keys.yes):
			m.services.Todos.Remove(m.pendingDelete)
			m.confirming = false
			m.pendingDelete = ""
			m.idx[tabTodos] = clampIndex(m.idx[tabTodos], m.services.Todos.Len())
		case key.Matches(msg, keys.no):
			m.confirming = false
			m.pendingDelete = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit

	case key.Matches(msg, keys.left):
		if m.activeTab > 0 {
			m.activeTab--
		}
	case key.Matches(msg, keys.right):
		if int(m.activeTab) < len(tabLabels)-1 {
			m.activeTab++
		}

	case key.Matches(msg, keys.up):
		if m.idx[m.activeTab] > 0 {
			m.idx[m.activeTab]--
		}
	case key.Matches(msg, keys.down):
		m.idx[m.activeTab] = clampIndex(m.idx[m.activeTab]+1, m.tabLen())

	case key.Matches(msg, keys.refresh):
		if !m.syncing {
			m.syncing = true
			return m, m.refreshCmd()
		}

	case key.Matches(msg, keys.copy):
		link := m.sheetLink
		if m.activeTab == tabEvents {
			if event, ok := m.currentEvent(); ok {
				if url := m.services.FlyerURL(event.ID); url != "" {
					link = url
				}
			}
		}
		return m, func() tea.Msg { return copiedMsg{err: clipboard.WriteAll(link)} }

	case key.Matches(msg, keys.newItem):
		if m.activeTab == tabTodos {
			m.adding = true
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.toggle):
		if m.activeTab == tabTodos {
			if todo, ok := m.currentTodo(); ok {
				m.services.Todos.Update(todo.ID, func(td models.Todo) models.Todo {
					td.Done = !td.Done
					if td.Done {
						td.CompletedAt = time.Now().Format("2006-01-02")
					} else {
						td.CompletedAt = ""
					}
					return td
				})
			}
		}

	case key.Matches(msg, keys.delete):
		if m.activeTab == tabTodos {
			if todo, ok := m.currentTodo(); ok {
				m.confirming = true
				m.pendingDelete = todo.ID
			}
		}

	case key.Matches(msg, keys.seen):
		if m.activeTab == tabBookings {
			for id, unread := range m.services.Watcher.Unread() {
				if unread {
					m.services.Watcher.MarkSeen(id)
				}
			}
		}
	}
	return m, nil
}

func clampIndex(idx, length int) int {
	if length == 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	if idx < 0 {
		return 0
	}
	return idx
}

func (m dashboardModel) tabLen() int {
	switch m.activeTab {
	case tabTodos:
		return m.services.Todos.Len()
	case tabEvents:
		return m.services.Events.Len()
	case tabQuarterly:
		updates, _ := m.services.QuarterlyUpdates.Value()
		return len(updates)
	case tabMarketing:
		return m.services.Newsletter.Len()
	case tabBookings:
		return m.services.Bookings.Len()
	}
	return 0
}

func (m dashboardModel) currentTodo() (models.Todo, bool) {
	items := m.services.Todos.Items()
	idx := m.idx[tabTodos]
	if len(items) == 0 || idx < 0 || idx >= len(items) {
		return models.Todo{}, false
	}
	return items[idx], true
}

func (m dashboardModel) currentEvent() (models.Event, bool) {
	items := m.services.Events.Items()
	idx := m.idx[tabEvents]
	if len(items) == 0 || idx < 0 || idx >= len(items) {
		return models.Event{}, false
	}
	return items[idx], true
}

func (m dashboardModel) View() string {
	var b strings.Builder

	header := titleStyle.Render("North Star House — Strategy Hub")
	if m.syncing {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header + "\n")

	if m.warning != "" {
		b.WriteString(warningStyle.Render(m.warning) + "\n")
	}

	var tabs []string
	for i, label := range tabLabels {
		if tab(i) == tabBookings && m.anyUnread() {
			label += " *"
		}
		if tab(i) == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	switch m.activeTab {
	case tabTodos:
		b.WriteString(m.viewTodos())
	case tabEvents:
		b.WriteString(m.viewEvents())
	case tabQuarterly:
		b.WriteString(m.viewQuarterly())
	case tabMarketing:
		b.WriteString(m.viewMarketing())
	case tabBookings:
		b.WriteString(m.viewBookings())
	}

	if m.confirming {
		b.WriteString("\nDelete this item? (y/n)\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n" + errorStyle.Render("error: "+m.lastErr.Error()) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(m.helpLine()))
	return appStyle.Render(b.String())
}

func (m dashboardModel) helpLine() string {
	switch m.activeTab {
	case tabTodos:
		return "n new  x toggle  d delete  s sync  c copy link  q quit"
	case tabBookings:
		return "m mark seen  s sync  c copy link  q quit"
	default:
		return "←/→ tabs  s sync  c copy link  q quit"
	}
}

func (m dashboardModel) anyUnread() bool {
	for _, unread := range m.services.Watcher.Unread() {
		if unread {
			return true
		}
	}
	return false
}

func (m dashboardModel) viewTodos() string {
	var b strings.Builder

	items := m.services.Todos.Items()
	if len(items) == 0 && !m.adding {
		b.WriteString("Nothing on the list.\n")
	}
	for i, todo := range items {
		cursor := "  "
		if i == m.idx[tabTodos] {
			cursor = "> "
		}
		box := "[ ]"
		line := todo.Text
		if todo.Done {
			box = "[x]"
			line = doneStyle.Render(line)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, box, line))
	}

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
	}
	return b.String()
}

func (m dashboardModel) viewEvents() string {
	var b strings.Builder

	events := m.services.Events.Items()
	if len(events) == 0 {
		return "No events planned.\n"
	}
	for i, event := range events {
		cursor := "  "
		if i == m.idx[tabEvents] {
			cursor = "> "
		}
		date := event.Date
		if event.IsTBD || date == "" {
			date = "TBD"
		}
		done := 0
		for _, checked := range event.PlanningChecklist {
			if checked {
				done++
			}
		}
		flyer := ""
		if m.services.FlyerURL(event.ID) != "" {
			flyer = "  flyer"
		}
		b.WriteString(fmt.Sprintf("%s%-30s %-12s planning %d/%d%s\n",
			cursor, event.Name, date, done, len(event.PlanningChecklist), flyer))
	}
	return b.String()
}

func (m dashboardModel) viewQuarterly() string {
	updates, loaded := m.services.QuarterlyUpdates.Value()
	if !loaded || len(updates) == 0 {
		return "No quarterly reports yet.\n"
	}

	var b strings.Builder
	latest := updates[0].Quarter
	reported := map[string]bool{}
	for i, update := range updates {
		cursor := "  "
		if i == m.idx[tabQuarterly] {
			cursor = "> "
		}
		review := "pending review"
		if r := update.Payload.Review; r != nil {
			review = r.StatusAfterReview
		}
		if update.Quarter == latest {
			reported[update.FocusArea] = true
		}
		b.WriteString(fmt.Sprintf("%s%-20s %-6s %s  [%s]\n",
			cursor, update.FocusArea, update.Quarter, update.SubmittedDate, review))
	}

	if idx := m.idx[tabQuarterly]; idx >= 0 && idx < len(updates) {
		byStatus := map[string]int{}
		for _, goal := range updates[idx].Payload.Goals {
			if goal.Goal != "" {
				byStatus[strings.ToLower(goal.Status)]++
			}
		}
		var parts []string
		for _, status := range models.Statuses {
			if n := byStatus[strings.ToLower(status)]; n > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", n, status))
			}
		}
		if len(parts) > 0 {
			b.WriteString("\nGoals: " + strings.Join(parts, ", ") + "\n")
		}

		if next := models.NextQuarter(updates[idx].Quarter); m.quarterly != nil && next != "" {
			if suggestion, ok := m.quarterly.Suggestion(updates[idx].FocusArea, next); ok && suggestion.PrimaryFocus != "" {
				b.WriteString(fmt.Sprintf("\n%s focus carried forward: %s\n", next, suggestion.PrimaryFocus))
			}
		}
	}

	var awaiting []string
	for _, area := range models.FocusAreas {
		if !reported[area] {
			awaiting = append(awaiting, area)
		}
	}
	if len(awaiting) > 0 {
		b.WriteString("\nAwaiting " + latest + ": " + strings.Join(awaiting, ", ") + "\n")
	}
	return b.String()
}

func (m dashboardModel) viewMarketing() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Newsletter") + "\n")
	for i, entry := range m.services.Newsletter.Items() {
		cursor := "  "
		if i == m.idx[tabMarketing] {
			cursor = "> "
		}
		mark := " "
		if entry.Published {
			mark = "x"
		}
		b.WriteString(fmt.Sprintf("%s[%s] %-10s %s\n", cursor, mark, monthName(entry.Month), entry.MainFeature))
	}

	b.WriteString("\n" + titleStyle.Render("Press releases") + "\n")
	for _, entry := range m.services.PressReleases.Items() {
		mark := " "
		if entry.Published {
			mark = "x"
		}
		b.WriteString(fmt.Sprintf("  [%s] %-10s %s\n", mark, monthName(entry.Month), entry.Headline))
	}
	return b.String()
}

func (m dashboardModel) viewBookings() string {
	bookings := m.services.Bookings.Items()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d bookings on record\n\n", m.services.BookingsCount()))
	for i, booking := range bookings {
		cursor := "  "
		if i == m.idx[tabBookings] {
			cursor = "> "
		}
		social := " "
		if booking.PostedToSocials {
			social = "x"
		}
		b.WriteString(fmt.Sprintf("%s%-24s %-12s %-12s socials [%s]\n",
			cursor, booking.Name, booking.Type, booking.Date, social))
	}
	return b.String()
}

func monthName(month int) string {
	if month < 1 || month > 12 {
		return "?"
	}
	return time.Month(month).String()[:3]
}

// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package nickui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ani-nick/nickview/lib/netutil"
	"github.com/ani-nick/nickview/lib/nickname"
	"github.com/ani-nick/nickview/lib/tui"
)

// FocusRegion identifies which part of the UI receives keyboard input.
type FocusRegion int

const (
	// FocusGrid means keys navigate and act on cards.
	FocusGrid FocusRegion = iota
	// FocusUserPicker means keys go to the owner filter dropdown.
	FocusUserPicker
	// FocusConfirmDelete means the delete confirmation is open.
	FocusConfirmDelete
	// FocusAlert means a failure dialog is waiting to be dismissed.
	FocusAlert
)

// allUsersLabel is the picker entry for [nickname.NoFilter].
const allUsersLabel = "All Users"

// defaultRequestTimeout bounds each store request when Config leaves
// RequestTimeout unset.
const defaultRequestTimeout = 15 * time.Second

// noticeFadeDelay is how long a status notice stays visible.
const noticeFadeDelay = 3 * time.Second

// headerHeight is the title line plus the rule under it.
const headerHeight = 2

// usersResultMsg carries the one-time user list fetch.
type usersResultMsg struct {
	users []nickname.UserRef
	err   error
}

// fetchResultMsg carries the outcome of the nickname fetch cycle seq.
type fetchResultMsg struct {
	seq     uint64
	filter  string
	records []nickname.Record
	err     error
}

// deleteResultMsg carries the outcome of deleting id.
type deleteResultMsg struct {
	id  string
	err error
}

// navigateResultMsg carries the outcome of an edit hand-off.
type navigateResultMsg struct {
	path string
	err  error
}

// noticeFadeMsg clears the status notice unless a newer one replaced
// it.
type noticeFadeMsg struct {
	generation int
}

// Config holds the dependencies of a Model.
type Config struct {
	Store     Store
	Navigator Navigator

	// RequestTimeout bounds each store request. Zero means 15s.
	RequestTimeout time.Duration

	// Logger receives diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Theme and Keys default to tui.DefaultTheme and DefaultKeyMap
	// when zero.
	Theme *tui.Theme
	Keys  *KeyMap
}

// Model is the bubbletea model for the nickname list.
type Model struct {
	store     Store
	navigator Navigator
	timeout   time.Duration
	logger    *slog.Logger
	theme     tui.Theme
	keys      KeyMap

	state nickname.ViewState

	users       []nickname.UserRef
	usersLoaded bool
	usersFailed bool

	// cursor indexes the rendered cards; len(Rendered()) selects the
	// Load More button when it is shown.
	cursor int

	// deleting holds the ids with a delete request in flight.
	deleting map[string]bool

	focus         FocusRegion
	picker        tui.DropdownOverlay
	confirmTarget nickname.Record
	alerts        []tui.Dialog

	spinner  spinner.Model
	viewport viewport.Model
	layout   gridLayout
	showHelp bool

	width  int
	height int
	ready  bool

	logLine         string
	logLevel        slog.Level
	logGeneration   int
	notice          string
	noticeGenerated int
}

// NewModel creates the list model and starts the first fetch cycle
// (no filter). The cycle's request is issued by Init.
func NewModel(config Config) Model {
	theme := tui.DefaultTheme
	if config.Theme != nil {
		theme = *config.Theme
	}
	keys := DefaultKeyMap
	if config.Keys != nil {
		keys = *config.Keys
	}
	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	loading := spinner.New()
	loading.Spinner = spinner.Dot
	loading.Style = lipgloss.NewStyle().Foreground(theme.SpinnerForeground)

	state := nickname.NewViewState()
	state.SetFilter(nickname.NoFilter)

	return Model{
		store:     config.Store,
		navigator: config.Navigator,
		timeout:   timeout,
		logger:    logger,
		theme:     theme,
		keys:      keys,
		state:     state,
		deleting:  make(map[string]bool),
		spinner:   loading,
	}
}

// Init loads the user list and the first nickname page.
func (model Model) Init() tea.Cmd {
	return tea.Batch(
		model.fetchUsers(),
		model.fetchNicknames(model.state.Seq(), model.state.Filter()),
		model.spinner.Tick,
	)
}

// State returns the current view state.
func (model Model) State() nickname.ViewState {
	return model.state
}

// Focus returns the region that currently receives keys.
func (model Model) Focus() FocusRegion {
	return model.focus
}

// Cursor returns the index of the selected item.
func (model Model) Cursor() int {
	return model.cursor
}

// Deleting reports whether a delete request for id is in flight.
func (model Model) Deleting(id string) bool {
	return model.deleting[id]
}

func (model Model) fetchUsers() tea.Cmd {
	store, timeout := model.store, model.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		users, err := store.Users(ctx)
		return usersResultMsg{users: users, err: err}
	}
}

// fetchNicknames requests the records for filter as cycle seq: the
// whole collection under NoFilter, the user-scoped listing otherwise.
func (model Model) fetchNicknames(seq uint64, filter string) tea.Cmd {
	store, timeout := model.store, model.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		var records []nickname.Record
		var err error
		if filter == nickname.NoFilter {
			records, err = store.Nicknames(ctx)
		} else {
			records, err = store.NicknamesByUser(ctx, filter)
		}
		return fetchResultMsg{seq: seq, filter: filter, records: records, err: err}
	}
}

func (model Model) deleteNickname(id string) tea.Cmd {
	store, timeout := model.store, model.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return deleteResultMsg{id: id, err: store.DeleteNickname(ctx, id)}
	}
}

func (model Model) navigate(path string) tea.Cmd {
	navigator := model.navigator
	return func() tea.Msg {
		if navigator == nil {
			return navigateResultMsg{path: path, err: errors.New("no edit surface configured")}
		}
		return navigateResultMsg{path: path, err: navigator.Navigate(path)}
	}
}

// Update processes messages and returns the updated model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := model.update(message)
	updated.syncViewport()
	return updated, cmd
}

func (model Model) update(message tea.Msg) (Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)

	case spinner.TickMsg:
		// The tick chain stops while nothing is loading and is
		// restarted by the next fetch cycle.
		if !model.state.Loading() {
			return model, nil
		}
		var cmd tea.Cmd
		model.spinner, cmd = model.spinner.Update(message)
		return model, cmd

	case usersResultMsg:
		model.usersLoaded = true
		if message.err != nil {
			model.usersFailed = true
			model.logger.Warn("loading users failed", "error", message.err)
			return model, nil
		}
		model.users = message.users
		return model, nil

	case fetchResultMsg:
		return model.handleFetchResult(message)

	case deleteResultMsg:
		return model.handleDeleteResult(message)

	case navigateResultMsg:
		if message.err != nil {
			model.logger.Warn("opening edit form failed", "path", message.path, "error", message.err)
			return model, nil
		}
		return model.setNotice("Edit: " + message.path)

	case logRecordMsg:
		model.logGeneration++
		model.logLine = message.Summary
		model.logLevel = message.Level
		generation := model.logGeneration
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{generation: generation}
		})

	case logRecordFadeMsg:
		if message.generation == model.logGeneration {
			model.logLine = ""
		}

	case noticeFadeMsg:
		if message.generation == model.noticeGenerated {
			model.notice = ""
		}
	}
	return model, nil
}

func (model Model) handleFetchResult(message fetchResultMsg) (Model, tea.Cmd) {
	applied, duplicates := model.state.ApplyFetch(message.seq, message.records, message.err)
	if !applied {
		model.logger.Debug("dropping stale nickname response",
			"seq", message.seq,
			"latest", model.state.Seq(),
			"filter", message.filter,
		)
		return model, nil
	}
	if message.err != nil {
		model.logger.Error("fetching nicknames failed", "filter", message.filter, "error", message.err)
		return model, nil
	}
	if len(duplicates) > 0 {
		model.logger.Warn("store returned duplicate nickname ids", "ids", strings.Join(duplicates, ","))
	}
	model.clampCursor()
	return model, nil
}

func (model Model) handleDeleteResult(message deleteResultMsg) (Model, tea.Cmd) {
	model.deleting = model.withDeleting(message.id, false)
	if message.err != nil {
		model.logger.Error("deleting nickname failed", "id", message.id, "error", message.err)
		model.alerts = append(model.alerts, tui.Dialog{
			Kind:   tui.DialogAlert,
			Title:  "Failed to delete nickname.",
			Body:   describeError(message.err),
			Footer: "enter/esc dismiss",
		})
		if model.focus == FocusGrid {
			model.focus = FocusAlert
		}
		return model, nil
	}
	record, _ := model.state.Lookup(message.id)
	if !model.state.RemoveRecord(message.id) {
		model.logger.Debug("deleted nickname no longer cached", "id", message.id)
		return model, nil
	}
	model.clampCursor()
	return model.setNotice(fmt.Sprintf("Deleted %q", record.Nickname))
}

// withDeleting returns a copy of the pending-delete set with id marked
// or cleared. Earlier Model values keep their own set.
func (model Model) withDeleting(id string, pending bool) map[string]bool {
	deleting := maps.Clone(model.deleting)
	if deleting == nil {
		deleting = make(map[string]bool)
	}
	if pending {
		deleting[id] = true
	} else {
		delete(deleting, id)
	}
	return deleting
}

// describeError phrases a store failure for a dialog or panel.
func describeError(err error) string {
	if netutil.IsUnreachable(err) {
		return "The nickname store could not be reached: " + err.Error()
	}
	return err.Error()
}

func (model Model) setNotice(notice string) (Model, tea.Cmd) {
	model.noticeGenerated++
	model.notice = notice
	generation := model.noticeGenerated
	return model, tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{generation: generation}
	})
}

// itemCount is the number of selectable grid items: rendered cards
// plus the Load More button when shown.
func (model Model) itemCount() int {
	count := len(model.state.Rendered())
	if model.showLoadMore() {
		count++
	}
	return count
}

// showLoadMore reports whether the Load More button is offered: more
// records exist and no fetch is outstanding.
func (model Model) showLoadMore() bool {
	return model.state.Phase() == nickname.PhaseLoaded && model.state.HasMore()
}

func (model *Model) clampCursor() {
	if count := model.itemCount(); model.cursor >= count {
		model.cursor = count - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
}

// selectedRecord returns the record under the cursor, if the cursor is
// on a card.
func (model Model) selectedRecord() (nickname.Record, bool) {
	if model.state.Phase() != nickname.PhaseLoaded {
		return nickname.Record{}, false
	}
	rendered := model.state.Rendered()
	if model.cursor < 0 || model.cursor >= len(rendered) {
		return nickname.Record{}, false
	}
	return rendered[model.cursor], true
}

func (model Model) onLoadMore() bool {
	return model.showLoadMore() && model.cursor == len(model.state.Rendered())
}

func (model Model) handleKey(message tea.KeyMsg) (Model, tea.Cmd) {
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}
	switch model.focus {
	case FocusUserPicker:
		return model.handlePickerKey(message)
	case FocusConfirmDelete:
		return model.handleConfirmKey(message)
	case FocusAlert:
		return model.handleAlertKey(message)
	}
	return model.handleGridKey(message)
}

func (model Model) handleGridKey(message tea.KeyMsg) (Model, tea.Cmd) {
	keys := model.keys
	switch {
	case key.Matches(message, keys.Quit):
		return model, tea.Quit

	case key.Matches(message, keys.Help):
		model.showHelp = !model.showHelp

	case key.Matches(message, keys.Up):
		model.moveCursor(-model.layout.columnsOrOne())
	case key.Matches(message, keys.Down):
		model.moveCursor(model.layout.columnsOrOne())
	case key.Matches(message, keys.Left):
		model.moveCursor(-1)
	case key.Matches(message, keys.Right):
		model.moveCursor(1)
	case key.Matches(message, keys.Home):
		model.cursor = 0
	case key.Matches(message, keys.End):
		model.cursor = max(model.itemCount()-1, 0)
	case key.Matches(message, keys.PageUp):
		model.viewport.SetYOffset(model.viewport.YOffset - model.viewport.Height)
	case key.Matches(message, keys.PageDown):
		model.viewport.SetYOffset(model.viewport.YOffset + model.viewport.Height)

	case key.Matches(message, keys.FilterUser):
		model.openPicker()

	case key.Matches(message, keys.Refresh):
		return model.startFetch(model.state.Refresh())

	case key.Matches(message, keys.LoadMore):
		return model.loadMore()

	case key.Matches(message, keys.Activate):
		if model.onLoadMore() {
			return model.loadMore()
		}
		return model.editSelected()

	case key.Matches(message, keys.Edit):
		return model.editSelected()

	case key.Matches(message, keys.Delete):
		return model.confirmDelete()
	}
	return model, nil
}

func (layout gridLayout) columnsOrOne() int {
	return max(layout.columns, 1)
}

func (model *Model) moveCursor(delta int) {
	count := model.itemCount()
	if count == 0 {
		return
	}
	target := model.cursor + delta
	// Moving down from the last row lands on Load More even when the
	// row is not full.
	if target >= count {
		target = count - 1
	}
	if target < 0 {
		target = 0
	}
	model.cursor = target
}

// startFetch issues the request for cycle seq and restarts the spinner.
func (model Model) startFetch(seq uint64) (Model, tea.Cmd) {
	model.logger.Debug("fetching nicknames", "seq", seq, "filter", model.state.Filter())
	return model, tea.Batch(model.fetchNicknames(seq, model.state.Filter()), model.spinner.Tick)
}

func (model Model) loadMore() (Model, tea.Cmd) {
	if !model.showLoadMore() {
		return model, nil
	}
	before := len(model.state.Rendered())
	model.state.Reveal()
	// Select the first newly revealed card.
	model.cursor = before
	model.clampCursor()
	return model, nil
}

func (model Model) editSelected() (Model, tea.Cmd) {
	record, ok := model.selectedRecord()
	if !ok {
		return model, nil
	}
	if !record.Editable() {
		return model.setNotice("This nickname has no id and cannot be edited.")
	}
	return model, model.navigate(EditPath(record.ID))
}

func (model Model) confirmDelete() (Model, tea.Cmd) {
	record, ok := model.selectedRecord()
	if !ok {
		return model, nil
	}
	if !record.Editable() {
		return model.setNotice("This nickname has no id and cannot be deleted.")
	}
	if model.deleting[record.ID] {
		return model.setNotice("Already deleting this nickname.")
	}
	model.confirmTarget = record
	model.focus = FocusConfirmDelete
	return model, nil
}

func (model Model) handleConfirmKey(message tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Confirm):
		target := model.confirmTarget
		model.confirmTarget = nickname.Record{}
		model.focus = model.nextFocus()
		if model.deleting[target.ID] {
			return model, nil
		}
		model.deleting = model.withDeleting(target.ID, true)
		model.logger.Debug("deleting nickname", "id", target.ID)
		return model, model.deleteNickname(target.ID)

	case key.Matches(message, model.keys.Cancel):
		model.confirmTarget = nickname.Record{}
		model.focus = model.nextFocus()
	}
	return model, nil
}

func (model Model) handleAlertKey(message tea.KeyMsg) (Model, tea.Cmd) {
	if message.Type == tea.KeyEnter || message.Type == tea.KeyEsc || key.Matches(message, model.keys.Quit) {
		if len(model.alerts) > 0 {
			model.alerts = model.alerts[1:]
		}
		model.focus = model.nextFocus()
	}
	return model, nil
}

// nextFocus is the focus after a modal closes: a queued alert if there
// is one, the grid otherwise.
func (model Model) nextFocus() FocusRegion {
	if len(model.alerts) > 0 {
		return FocusAlert
	}
	return FocusGrid
}

// pickerOptions is "All Users" followed by every known user.
func (model Model) pickerOptions() []tui.DropdownOption {
	options := []tui.DropdownOption{{Label: allUsersLabel, Value: nickname.NoFilter}}
	for _, user := range model.users {
		label := user.Username
		if label == "" {
			label = nickname.CleanText(user.ID, false)
		}
		options = append(options, tui.DropdownOption{Label: label, Value: user.ID})
	}
	return options
}

func (model *Model) openPicker() {
	title := "Filter by user"
	switch {
	case model.usersFailed:
		title += " (users unavailable)"
	case !model.usersLoaded:
		title += " (loading users)"
	}
	model.picker = tui.NewDropdown(title, model.pickerOptions())
	model.picker.SelectValue(model.state.Filter())
	model.picker.AnchorX = 1
	model.picker.AnchorY = headerHeight
	model.picker.MaxRows = max(min(10, model.height-headerHeight-3), 1)
	model.focus = FocusUserPicker
}

func (model Model) handlePickerKey(message tea.KeyMsg) (Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEsc:
		model.focus = model.nextFocus()
	case tea.KeyUp, tea.KeyCtrlP, tea.KeyShiftTab:
		model.picker.MoveUp()
	case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
		model.picker.MoveDown()
	case tea.KeyBackspace:
		model.picker.HandleBackspace()
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			model.picker.HandleRune(character)
		}
	case tea.KeyEnter:
		option, ok := model.picker.Selected()
		if !ok {
			return model, nil
		}
		model.focus = model.nextFocus()
		return model.selectFilter(option.Value)
	}
	return model, nil
}

// selectFilter makes filter active. Choosing the active filter again
// does nothing.
func (model Model) selectFilter(filter string) (Model, tea.Cmd) {
	seq, started := model.state.SetFilter(filter)
	if !started {
		return model, nil
	}
	model.cursor = 0
	model.viewport.GotoTop()
	return model.startFetch(seq)
}

// filterLabel names the active filter for the header.
func (model Model) filterLabel() string {
	filter := model.state.Filter()
	if filter == nickname.NoFilter {
		return allUsersLabel
	}
	for _, user := range model.users {
		if user.ID == filter && user.Username != "" {
			return user.Username
		}
	}
	return nickname.CleanText(filter, false)
}

// bodySize is the area below the header and above the footer.
func (model Model) bodySize(footer string) (int, int) {
	return max(model.width-1, 1), max(model.height-headerHeight-lipgloss.Height(footer), 1)
}

// syncViewport rebuilds the grid content and scrolls the viewport so
// the selected item is visible.
func (model *Model) syncViewport() {
	if !model.ready {
		return
	}
	width, height := model.bodySize(model.renderFooter())
	model.viewport.Width = width
	model.viewport.Height = height

	if model.state.Phase() != nickname.PhaseLoaded {
		model.layout = gridLayout{}
		model.viewport.SetContent("")
		model.viewport.GotoTop()
		return
	}

	rendered := model.state.Rendered()
	cards := make([]cardView, len(rendered))
	for index, record := range rendered {
		cards[index] = cardView{
			record:   record,
			selected: index == model.cursor,
			deleting: model.deleting[record.ID],
		}
	}
	remaining := len(model.state.Visible()) - len(rendered)
	model.layout = renderGrid(model.theme, cards, model.showLoadMore(), model.onLoadMore(), remaining, width)
	model.viewport.SetContent(model.layout.content)

	if model.cursor < len(model.layout.spans) {
		span := model.layout.spans[model.cursor]
		if span.top < model.viewport.YOffset {
			model.viewport.SetYOffset(span.top)
		} else if span.bottom > model.viewport.YOffset+height {
			model.viewport.SetYOffset(min(span.top, span.bottom-height))
		}
	}
}

// View renders the list.
func (model Model) View() string {
	if !model.ready {
		return "Initializing..."
	}

	footer := model.renderFooter()
	_, bodyHeight := model.bodySize(footer)

	var body string
	switch model.state.Phase() {
	case nickname.PhaseIdle, nickname.PhaseLoading:
		body = model.renderLoading(bodyHeight)
	case nickname.PhaseFailed:
		body = model.renderFailure(bodyHeight)
	default:
		if len(model.state.Visible()) == 0 {
			body = model.renderEmpty(bodyHeight)
		} else {
			scrollbar := tui.RenderScrollbar(model.theme, bodyHeight,
				model.viewport.TotalLineCount(), bodyHeight, model.viewport.YOffset)
			content := lipgloss.NewStyle().Width(model.viewport.Width).Height(bodyHeight).
				Render(model.viewport.View())
			body = lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
		}
	}

	view := model.renderHeader() + "\n" + body + "\n" + footer

	switch model.focus {
	case FocusUserPicker:
		view = tui.SpliceOverlay(view, model.picker.Render(model.theme), model.picker.AnchorX, model.picker.AnchorY)
	case FocusConfirmDelete:
		dialog := tui.Dialog{
			Kind:   tui.DialogConfirm,
			Title:  "Delete nickname?",
			Body:   fmt.Sprintf("Delete %q (%s from %s)? This cannot be undone.", model.confirmTarget.Nickname, model.confirmTarget.Character, model.confirmTarget.Anime),
			Footer: "y delete  n/esc cancel",
		}
		lines, x, y := dialog.Render(model.theme, model.width, model.height)
		view = tui.SpliceOverlay(view, lines, x, y)
	case FocusAlert:
		if len(model.alerts) > 0 {
			lines, x, y := model.alerts[0].Render(model.theme, model.width, model.height)
			view = tui.SpliceOverlay(view, lines, x, y)
		}
	}
	return view
}

// renderHeader draws the title, the active filter and the counts.
func (model Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	filterStyle := lipgloss.NewStyle().Foreground(model.theme.CharacterForeground)
	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	left := titleStyle.Render(" Nicknames") + faintStyle.Render("  user: ") + filterStyle.Render(model.filterLabel())

	var right string
	switch model.state.Phase() {
	case nickname.PhaseLoaded:
		right = fmt.Sprintf("%d of %d shown ", len(model.state.Rendered()), len(model.state.Visible()))
	case nickname.PhaseFailed:
		right = "load failed "
	default:
		right = "loading "
	}
	right = faintStyle.Render(right)

	gap := max(model.width-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	line := left + strings.Repeat(" ", gap) + right
	rule := lipgloss.NewStyle().Foreground(model.theme.BorderColor).Render(strings.Repeat("─", max(model.width, 1)))
	return ansi.Truncate(line, max(model.width, 1), "") + "\n" + rule
}

func (model Model) renderLoading(height int) string {
	text := model.spinner.View() + " Loading..."
	return lipgloss.Place(model.width, height, lipgloss.Center, lipgloss.Center, text)
}

func (model Model) renderFailure(height int) string {
	errorStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.ErrorForeground)
	detailStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText).Width(max(min(model.width-4, 70), 10))
	hintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	var err error = model.state.Err()
	detail := ""
	if err != nil {
		detail = describeError(err)
	}
	panel := lipgloss.JoinVertical(lipgloss.Center,
		errorStyle.Render("Could not load nicknames."),
		"",
		detailStyle.Render(detail),
		"",
		hintStyle.Render("Press r to retry."),
	)
	return lipgloss.Place(model.width, height, lipgloss.Center, lipgloss.Center, panel)
}

func (model Model) renderEmpty(height int) string {
	message := "No nicknames yet."
	if model.state.Filter() != nickname.NoFilter {
		message = "No nicknames for " + model.filterLabel() + "."
	}
	text := lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(message)
	return lipgloss.Place(model.width, height, lipgloss.Center, lipgloss.Center, text)
}

// renderFooter is the help bar, replaced by the latest log record or
// notice while one is showing.
func (model Model) renderFooter() string {
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	if model.showHelp {
		return helpStyle.Render(renderFullHelp(model.keys.fullHelp(), model.width))
	}

	var status string
	switch {
	case model.logLine != "":
		style := lipgloss.NewStyle().Bold(true).Foreground(model.theme.WarningForeground)
		if model.logLevel >= slog.LevelError {
			style = style.Foreground(model.theme.ErrorForeground)
		}
		status = style.Render(model.logLine)
	case model.notice != "":
		status = lipgloss.NewStyle().Bold(true).Foreground(model.theme.SuccessForeground).Render(model.notice)
	}
	if len(model.deleting) > 0 {
		pending := lipgloss.NewStyle().Foreground(model.theme.PendingForeground).
			Render(fmt.Sprintf("deleting %d…", len(model.deleting)))
		if status == "" {
			status = pending
		} else {
			status = pending + "  " + status
		}
	}
	if status != "" {
		return ansi.Truncate(" "+status, max(model.width, 1), "…")
	}
	return helpStyle.Render(ansi.Truncate(" "+renderShortHelp(model.keys.shortHelp()), max(model.width, 1), "…"))
}

// renderShortHelp joins bindings as "key desc" pairs.
func renderShortHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

// renderFullHelp lays out binding columns side by side, falling back to
// one column per line when they do not fit.
func renderFullHelp(columns [][]key.Binding, width int) string {
	var rendered []string
	for _, column := range columns {
		var lines []string
		for _, binding := range column {
			help := binding.Help()
			lines = append(lines, fmt.Sprintf(" %-6s %s", help.Key, help.Desc))
		}
		rendered = append(rendered, strings.Join(lines, "\n"))
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Top, padColumns(rendered)...)
	if lipgloss.Width(joined) <= width {
		return joined
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func padColumns(columns []string) []string {
	padded := make([]string, len(columns))
	for index, column := range columns {
		padded[index] = lipgloss.NewStyle().PaddingRight(2).Render(column)
	}
	return padded
}

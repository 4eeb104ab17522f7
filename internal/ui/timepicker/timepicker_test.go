// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package timepicker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chrono-tui/internal/chrono"
	"github.com/jeranaias/chrono-tui/internal/dial"
	"github.com/jeranaias/chrono-tui/internal/ui/components"
	"github.com/jeranaias/chrono-tui/internal/ui/styles"
)

func newTestPicker() Model {
	m := New(Config{Theme: styles.NewTheme(), Label: "Time"})
	m.width = 80
	m.height = 30
	return m
}

// typeString feeds a string into the picker one keystroke at a time and
// returns the model plus the command from the final keystroke.
func typeString(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	m, _ = m.Focus()
	for _, r := range s {
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m, cmd
}

// collectMsgs executes a command tree and flattens batches into messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findTimeChanged(msgs []tea.Msg) (TimeChangedMsg, bool) {
	for _, msg := range msgs {
		if changed, ok := msg.(TimeChangedMsg); ok {
			return changed, true
		}
	}
	return TimeChangedMsg{}, false
}

// =============================================================================
// TYPED INPUT
// =============================================================================

func TestTypedValidTimeCommitsLive(t *testing.T) {
	m, cmd := typeString(t, newTestPicker(), "04:20 PM")

	want := chrono.Time{Hour: 4, Minute: 20, Period: chrono.PM}
	got, ok := m.Value()
	if !ok || got != want {
		t.Fatalf("Value() = %v, %v, want %v committed", got, ok, want)
	}
	if m.field.Error() != "" {
		t.Errorf("valid input should clear the validation message, got %q", m.field.Error())
	}

	changed, found := findTimeChanged(collectMsgs(cmd))
	if !found {
		t.Fatal("valid typed input should emit TimeChangedMsg without dialog confirmation")
	}
	if changed.Value != want {
		t.Errorf("TimeChangedMsg.Value = %v, want %v", changed.Value, want)
	}
}

func TestTypedInvalidTimeShowsErrorWithoutCommit(t *testing.T) {
	m, cmd := typeString(t, newTestPicker(), "13:61 AM")

	if _, ok := m.Value(); ok {
		t.Error("invalid input should not commit a value")
	}
	if m.field.Error() != "Invalid Time Format" {
		t.Errorf("error = %q, want %q", m.field.Error(), "Invalid Time Format")
	}
	if _, found := findTimeChanged(collectMsgs(cmd)); found {
		t.Error("invalid input should not emit TimeChangedMsg")
	}
	if m.field.Value() != "13:61 AM" {
		t.Errorf("typed text should be retained for display, got %q", m.field.Value())
	}
}

// =============================================================================
// DIALOG LIFECYCLE
// =============================================================================

func TestOpenSeedsInProgressFromValidValue(t *testing.T) {
	m := newTestPicker()
	m = m.SetValue(chrono.Time{Hour: 7, Minute: 45, Period: chrono.PM})

	m = m.Open()
	if m.tmp != m.value {
		t.Errorf("open should seed in-progress time from the committed value, got %v", m.tmp)
	}
	if m.face != FaceHours {
		t.Error("dialog should open on the hours face")
	}
}

func TestOpenWithoutValueRetainsInProgress(t *testing.T) {
	m := newTestPicker()
	before := m.tmp

	m = m.Open()
	if m.tmp != before {
		t.Errorf("open without a committed value should retain tmp %v, got %v", before, m.tmp)
	}
}

func TestConfirmCommitsAndCloses(t *testing.T) {
	m := newTestPicker().Open()
	m.tmp = chrono.Time{Hour: 9, Minute: 15, Period: chrono.AM}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsOpen() {
		t.Error("OK should close the dialog")
	}
	got, ok := m.Value()
	if !ok || got != (chrono.Time{Hour: 9, Minute: 15, Period: chrono.AM}) {
		t.Errorf("Value() = %v, %v after confirm", got, ok)
	}
	if m.field.Value() != "09:15 AM" {
		t.Errorf("field text = %q, want %q", m.field.Value(), "09:15 AM")
	}
	if _, found := findTimeChanged(collectMsgs(cmd)); !found {
		t.Error("confirm should emit TimeChangedMsg")
	}
}

func TestConfirmInvalidKeepsDialogOpen(t *testing.T) {
	m := newTestPicker().Open()
	m.tmp = chrono.Time{Hour: 0, Minute: 99}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsOpen() {
		t.Error("invalid in-progress time should keep the dialog open")
	}
	if cmd != nil {
		t.Error("invalid confirm should be a no-op")
	}
}

func TestCancelDiscardsEdits(t *testing.T) {
	m := newTestPicker()
	m = m.SetValue(chrono.Time{Hour: 3, Minute: 0, Period: chrono.AM})
	m = m.Open()
	m.tmp.Hour = 11

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsOpen() {
		t.Error("cancel should close the dialog")
	}
	if cmd != nil {
		t.Error("cancel should not emit a commit")
	}
	got, _ := m.Value()
	if got.Hour != 3 {
		t.Errorf("cancel should leave the committed value untouched, got %v", got)
	}
}

// =============================================================================
// FACE SWITCH / ANIMATION
// =============================================================================

func TestSwitchFaceStartsSweep(t *testing.T) {
	m := newTestPicker().Open()
	m.tmp = chrono.Time{Hour: 3, Minute: 30, Period: chrono.AM}

	m, cmd := m.switchFace(FaceMinutes)
	if !m.animating {
		t.Fatal("face switch should start the hand animation")
	}
	if cmd == nil {
		t.Fatal("face switch should schedule animation timers")
	}
	if m.face != FaceMinutes {
		t.Error("face should advance to minutes")
	}

	from := dial.Angle(3, dial.HourCount)
	to := dial.Angle(30, dial.MinuteCount)
	wantLen := to - from + 1
	if wantLen < 0 {
		wantLen = from - to + 1
	}
	if len(m.animPath) != wantLen {
		t.Errorf("sweep path has %d points, want one per degree = %d", len(m.animPath), wantLen)
	}
}

func TestAnimDoneClearsFlag(t *testing.T) {
	m := newTestPicker().Open()
	m, _ = m.switchFace(FaceMinutes)

	m, _ = m.Update(animDoneMsg{})
	if m.animating {
		t.Error("animDoneMsg should clear the animating flag")
	}

	// A stale timer firing again is harmless.
	m, _ = m.Update(animDoneMsg{})
	if m.animating {
		t.Error("repeated animDoneMsg should stay cleared")
	}
}

// =============================================================================
// KEYBOARD ADJUSTMENT
// =============================================================================

func TestAdjustWrapsHoursAndMinutes(t *testing.T) {
	m := newTestPicker().Open()

	m.tmp.Hour = 12
	m.adjust(1)
	if m.tmp.Hour != 1 {
		t.Errorf("hour 12 +1 = %d, want 1", m.tmp.Hour)
	}

	m.tmp.Hour = 1
	m.adjust(-1)
	if m.tmp.Hour != 12 {
		t.Errorf("hour 1 -1 = %d, want 12", m.tmp.Hour)
	}

	m.face = FaceMinutes
	m.tmp.Minute = 59
	m.adjust(1)
	if m.tmp.Minute != 0 {
		t.Errorf("minute 59 +1 = %d, want 0", m.tmp.Minute)
	}
}

func TestNowKeySetsCurrentTime(t *testing.T) {
	m := newTestPicker().Open()
	m.tmp = chrono.Time{Hour: 1, Minute: 1, Period: chrono.AM}

	// Bracket the keystroke so a minute rollover mid-test cannot flake.
	before := chrono.Now()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	after := chrono.Now()

	if m.tmp != before && m.tmp != after {
		t.Errorf("n set %v, want the current time %v", m.tmp, after)
	}
	if !m.IsOpen() {
		t.Error("jumping to now should keep the dialog open")
	}
}

// =============================================================================
// POINTER SELECTION
// =============================================================================

// faceAbs converts a face-canvas cell to absolute terminal coordinates,
// the inverse of faceLocal.
func faceAbs(m Model, p dial.Point) (int, int) {
	box := m.dialogView()
	ox, oy := components.OverlayOrigin(m.width, m.height, lipgloss.Width(box), lipgloss.Height(box))
	return ox + faceLeft + p.X, oy + faceTop + p.Y
}

func TestPressSnapsToNearestHour(t *testing.T) {
	m := newTestPicker().Open()

	pos := dial.Positions(dial.HourCount)[6]
	x, y := faceAbs(m, pos.Point)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: x, Y: y})
	if !m.dragging {
		t.Error("press over the clock should start a drag")
	}
	if m.tmp.Hour != 6 {
		t.Errorf("press at hour 6 position selected hour %d", m.tmp.Hour)
	}
}

func TestPressAtTopSelectsTwelve(t *testing.T) {
	m := newTestPicker().Open()

	pos := dial.Positions(dial.HourCount)[0]
	x, y := faceAbs(m, pos.Point)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: x, Y: y})
	if m.tmp.Hour != 12 {
		t.Errorf("press at the top position selected hour %d, want 12", m.tmp.Hour)
	}
}

func TestReleaseOverClockAdvancesToMinutes(t *testing.T) {
	m := newTestPicker().Open()

	pos := dial.Positions(dial.HourCount)[3]
	x, y := faceAbs(m, pos.Point)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: x, Y: y})
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, X: x, Y: y})

	if m.face != FaceMinutes {
		t.Error("release over the clock on the hours face should advance to minutes")
	}
	if !m.animating {
		t.Error("the advance should start the hand animation")
	}
	if m.dragging {
		t.Error("release should end the drag")
	}
}

func TestBackdropPressCancels(t *testing.T) {
	m := newTestPicker().Open()

	m, cmd := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 0, Y: 0})
	if m.IsOpen() {
		t.Error("press outside the dialog should close it")
	}
	if cmd != nil {
		t.Error("backdrop cancel should not emit a commit")
	}
}

// buttonAbs finds an absolute cell on the given action-row button by
// scanning the row.
func buttonAbs(t *testing.T, m Model, index int) (int, int) {
	t.Helper()
	box := m.dialogView()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	ox, oy := components.OverlayOrigin(m.width, m.height, w, h)
	y := oy + h - 3
	for x := ox; x < ox+w; x++ {
		if m.buttonHit(x, y) == index {
			return x, y
		}
	}
	t.Fatalf("button %d not found on the action row", index)
	return 0, 0
}

func TestClickOKConfirms(t *testing.T) {
	m := newTestPicker().Open()
	m.tmp = chrono.Time{Hour: 4, Minute: 20, Period: chrono.PM}

	x, y := buttonAbs(t, m, buttonOK)
	m, cmd := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: x, Y: y})

	if m.IsOpen() {
		t.Error("clicking OK should close the dialog")
	}
	want := chrono.Time{Hour: 4, Minute: 20, Period: chrono.PM}
	if got, ok := m.Value(); !ok || got != want {
		t.Errorf("clicking OK committed %v, %v, want %v", got, ok, want)
	}
	if _, found := findTimeChanged(collectMsgs(cmd)); !found {
		t.Error("clicking OK should publish the commit")
	}
}

func TestClickCancelDiscards(t *testing.T) {
	m := newTestPicker().Open()
	m.tmp = chrono.Time{Hour: 4, Minute: 20, Period: chrono.PM}

	x, y := buttonAbs(t, m, buttonCancel)
	m, cmd := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: x, Y: y})

	if m.IsOpen() {
		t.Error("clicking Cancel should close the dialog")
	}
	if _, ok := m.Value(); ok {
		t.Error("clicking Cancel should not commit")
	}
	if cmd != nil {
		t.Error("clicking Cancel should not emit a commit")
	}
}

func TestFieldPressOpensDialog(t *testing.T) {
	m := newTestPicker().SetFieldOrigin(2, 4)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 3, Y: 5})
	if !m.IsOpen() {
		t.Error("press on the inline field should open the dialog")
	}
}

func TestFieldPressElsewhereStaysClosed(t *testing.T) {
	m := newTestPicker().SetFieldOrigin(2, 4)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 60, Y: 20})
	if m.IsOpen() {
		t.Error("press away from the field should not open the dialog")
	}
}

func TestFieldPressIgnoredUntilPlaced(t *testing.T) {
	m := newTestPicker()

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 0, Y: 0})
	if m.IsOpen() {
		t.Error("an unplaced field should never match a press")
	}
}

// =============================================================================
// VIEW
// =============================================================================

func TestOverlayEmptyWhileClosed(t *testing.T) {
	m := newTestPicker()
	if m.Overlay() != "" {
		t.Error("closed picker should render no overlay")
	}
}

func TestOverlayShowsInProgressValue(t *testing.T) {
	m := newTestPicker().Open()
	m.tmp = chrono.Time{Hour: 4, Minute: 20, Period: chrono.PM}

	overlay := m.Overlay()
	if !strings.Contains(overlay, "04:20 PM") {
		t.Error("overlay should show the in-progress value")
	}
	if !strings.Contains(overlay, "Select time") {
		t.Error("overlay should show the dialog title")
	}
}

func TestLiftWrapsCommitMessage(t *testing.T) {
	type hostMsg struct{ inner tea.Msg }

	m := New(Config{
		Theme: styles.NewTheme(),
		Label: "Time",
		Lift:  func(msg tea.Msg) tea.Msg { return hostMsg{inner: msg} },
	})
	m.width = 80
	m.height = 30

	m, cmd := typeString(t, m, "04:20 PM")
	var wrapped *hostMsg
	for _, msg := range collectMsgs(cmd) {
		if h, ok := msg.(hostMsg); ok {
			wrapped = &h
		}
	}
	if wrapped == nil {
		t.Fatal("lifted picker should emit the host message type")
	}
	if _, ok := wrapped.inner.(TimeChangedMsg); !ok {
		t.Errorf("lifted message should carry the commit, got %T", wrapped.inner)
	}
}

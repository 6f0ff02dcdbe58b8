// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielhkuo/fee-referendum/pledge"
	"github.com/danielhkuo/fee-referendum/simulator"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []pledge.Request
	err  error
}

func (s *recordingSender) Send(_ context.Context, req pledge.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, req)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(sender pledge.Sender) Model {
	return New(pledge.NewFlow(sender))
}

func TestModelStartsAtProposedFee(t *testing.T) {
	m := newModel(&recordingSender{})

	if m.fee != simulator.ProposedFee {
		t.Errorf("Expected fee %d, got %d", simulator.ProposedFee, m.fee)
	}
	if m.result.Phase != simulator.PhaseFull {
		t.Errorf("Expected full phase, got %s", m.result.Phase)
	}
	if m.view != viewSimulator {
		t.Error("Expected simulator view")
	}
	if m.Init() == nil {
		t.Error("Expected Init to start the cursor blink")
	}
}

func TestSliderKeys(t *testing.T) {
	m := newModel(&recordingSender{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.fee != 7 {
		t.Errorf("Expected fee 7 after left, got %d", m.fee)
	}

	m, _ = press(t, m, runes("2"))
	if m.fee != 2 {
		t.Errorf("Expected fee 2 after '2', got %d", m.fee)
	}
	if m.result.Phase != simulator.PhaseCritical {
		t.Errorf("Expected critical phase, got %s", m.result.Phase)
	}

	m, _ = press(t, m, runes("h"))
	m, _ = press(t, m, runes("h"))
	if m.fee != simulator.MinFee {
		t.Errorf("Expected slider to stop at %d, got %d", simulator.MinFee, m.fee)
	}

	m, _ = press(t, m, runes("9"))
	if m.fee != simulator.MaxFee {
		t.Errorf("Expected '9' to clamp to %d, got %d", simulator.MaxFee, m.fee)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.fee != simulator.MaxFee {
		t.Errorf("Expected slider to stop at %d, got %d", simulator.MaxFee, m.fee)
	}
}

func TestSimulatorViewContent(t *testing.T) {
	m := newModel(&recordingSender{})
	m, _ = press(t, m, runes("3"))

	out := m.View()
	for _, want := range []string{
		"At Risk: Significant reductions required",
		"$400,000+",
		"~$195,000",
		"Consequences at This Funding Level:",
		"Move slider left to see 2 more consequences...",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected view to contain %q\n%s", want, out)
		}
	}
}

func TestQuitFromSimulator(t *testing.T) {
	m := newModel(&recordingSender{})

	m, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quitting")
	}
}

func TestTypingIntoPledgeForm(t *testing.T) {
	m := newModel(&recordingSender{})

	m, _ = press(t, m, runes("p"))
	if m.view != viewPledge {
		t.Fatal("Expected pledge view")
	}

	// 'q' is text here, not quit
	m, _ = press(t, m, runes("qi"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runes("qi@sfu.ca"))

	form := m.flow.Form()
	if form.Name != "qi" || form.Email != "qi@sfu.ca" {
		t.Errorf("Expected form synced from inputs, got %+v", form)
	}
	if m.quitting {
		t.Error("Typing 'q' in a field should not quit")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewSimulator {
		t.Error("Expected esc to return to the simulator")
	}
}

func TestInterestAndVoteRows(t *testing.T) {
	m := newModel(&recordingSender{})
	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.focus != fieldInterest {
		t.Fatalf("Expected interest row focus, got %d", m.focus)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.flow.Form().InterestArea; got != pledge.AreaVolunteering {
		t.Errorf("Expected volunteering, got %q", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.flow.Form().InterestArea; got != pledge.AreaStrategy {
		t.Errorf("Expected wrap-around to strategy, got %q", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.flow.Form().PledgeToVote {
		t.Error("Expected space to untick the vote pledge")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != fieldInterest {
		t.Errorf("Expected shift+tab to move back, got %d", m.focus)
	}
}

func focusSubmit(t *testing.T, m Model) Model {
	t.Helper()
	for m.focus != fieldSubmit {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	return m
}

func TestSubmitEmptyFormShowsNotice(t *testing.T) {
	sender := &recordingSender{}
	m := newModel(sender)
	m, _ = press(t, m, runes("p"))
	m = focusSubmit(t, m)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Expected no command for an invalid form")
	}
	if m.notice != "Please enter your name. Please enter your email." {
		t.Errorf("Unexpected notice %q", m.notice)
	}
	if m.flow.State().Status != pledge.StatusIdle {
		t.Errorf("Expected idle state, got %s", m.flow.State().Status)
	}
	if sender.count() != 0 {
		t.Error("Expected nothing sent")
	}
}

func fillForm(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, runes("Sam"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, runes("sam@sfu.ca"))
	return focusSubmit(t, m)
}

func TestSubmitSuccess(t *testing.T) {
	sender := &recordingSender{}
	m := fillForm(t, newModel(sender))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected submit command")
	}
	if !m.submitting {
		t.Error("Expected submitting flag")
	}
	if !strings.Contains(m.View(), "Submitting...") {
		t.Error("Expected button to read Submitting...")
	}

	// Trigger is disabled until the outcome arrives
	m, again := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if again != nil {
		t.Error("Expected second enter to be ignored")
	}

	updated, _ := m.Update(cmd())
	m = updated.(Model)

	if sender.count() != 1 {
		t.Fatalf("Expected one send, got %d", sender.count())
	}
	if got := sender.sent[0]; got.Name != "Sam" || got.Email != "sam@sfu.ca" || !got.PledgeToVote {
		t.Errorf("Unexpected request %+v", got)
	}
	if m.submitting {
		t.Error("Expected submitting flag cleared")
	}
	if !strings.Contains(m.View(), "Pledge Confirmed") {
		t.Errorf("Expected confirmation panel\n%s", m.View())
	}
	if m.name.Value() != "" || m.email.Value() != "" {
		t.Error("Expected inputs cleared after success")
	}

	m, _ = press(t, m, runes("r"))
	if m.flow.State().Status != pledge.StatusIdle {
		t.Errorf("Expected idle after reset, got %s", m.flow.State().Status)
	}
	if m.focus != fieldName {
		t.Error("Expected focus back on name")
	}
}

func TestSubmitFailureKeepsForm(t *testing.T) {
	sender := &recordingSender{err: &pledge.RemoteError{StatusCode: 409, Detail: "Email already pledged"}}
	m := fillForm(t, newModel(sender))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	updated, _ := m.Update(cmd())
	m = updated.(Model)

	if m.flow.State().Status != pledge.StatusError {
		t.Fatalf("Expected error state, got %s", m.flow.State().Status)
	}
	if !strings.Contains(m.View(), "Email already pledged") {
		t.Errorf("Expected detail in view\n%s", m.View())
	}
	if m.name.Value() != "Sam" {
		t.Errorf("Expected name kept, got %q", m.name.Value())
	}

	// Retry is allowed from the error state
	sender.err = nil
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected retry command")
	}
	updated, _ = m.Update(cmd())
	m = updated.(Model)
	if m.flow.State().Status != pledge.StatusSuccess {
		t.Errorf("Expected success on retry, got %s", m.flow.State().Status)
	}
}

func TestCtrlCQuitsFromPledgeView(t *testing.T) {
	m := newModel(&recordingSender{})
	m, _ = press(t, m, runes("p"))

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

func TestNoticeSurvivesFailedSubmit(t *testing.T) {
	sender := &recordingSender{err: errors.New("no pledge service configured")}
	m := New(pledge.NewFlow(sender)).WithNotice("Pledging is unavailable: backend URL required")
	m = fillForm(t, m)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	updated, _ := m.Update(cmd())
	m = updated.(Model)

	out := m.View()
	if !strings.Contains(out, "Pledging is unavailable: backend URL required") {
		t.Errorf("Expected config notice in view\n%s", out)
	}
	if !strings.Contains(out, pledge.MsgUnexpected) {
		t.Errorf("Expected generic failure message\n%s", out)
	}
}

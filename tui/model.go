// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/fee-referendum/pledge"
	"github.com/danielhkuo/fee-referendum/simulator"
)

type view int

const (
	viewSimulator view = iota
	viewPledge
)

type field int

const (
	fieldName field = iota
	fieldEmail
	fieldInterest
	fieldVote
	fieldSubmit
	fieldCount
)

// submittedMsg carries the outcome of a background Flow.Submit
type submittedMsg struct {
	state pledge.State
	err   error
}

// Model is the terminal rendition of the landing page: the fee slider and
// the pledge form, sharing one pledge.Flow.
type Model struct {
	ctx  context.Context
	flow *pledge.Flow

	view   view
	fee    simulator.FeeAmount
	result simulator.Result

	focus      field
	name       textinput.Model
	email      textinput.Model
	areaIdx    int
	notice     string
	banner     string
	submitting bool

	styles   Styles
	width    int
	quitting bool
}

// New starts on the simulator at the proposed fee
func New(flow *pledge.Flow) Model {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 120
	name.Width = 40
	name.Prompt = ""

	email := textinput.New()
	email.Placeholder = "you@sfu.ca"
	email.CharLimit = 254
	email.Width = 40
	email.Prompt = ""

	m := Model{
		ctx:    context.Background(),
		flow:   flow,
		name:   name,
		email:  email,
		styles: NewStyles(),
	}
	m.setFee(simulator.ProposedFee)
	m.syncFromFlow()
	return m
}

// WithContext sets the context passed to pledge submissions
func (m Model) WithContext(ctx context.Context) Model {
	m.ctx = ctx
	return m
}

// WithNotice pins msg above the pledge form, e.g. why pledging is offline
func (m Model) WithNotice(msg string) Model {
	m.banner = msg
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 20; w > 10 {
			m.name.Width = min(w, 60)
			m.email.Width = min(w, 60)
		}
		return m, nil

	case submittedMsg:
		return m.handleSubmitted(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.view == viewPledge {
			return m.updatePledge(msg)
		}
		return m.updateSimulator(msg)
	}

	return m, nil
}

func (m Model) updateSimulator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		m.setFee(m.fee - 1)
	case "right", "l":
		m.setFee(m.fee + 1)
	case "home":
		m.setFee(simulator.MinFee)
	case "end":
		m.setFee(simulator.MaxFee)
	case "p", "tab", "enter":
		m.view = viewPledge
		return m, m.setFocus(m.focus)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.setFee(simulator.FeeAmount(key[0] - '0'))
		}
	}
	return m, nil
}

func (m Model) updatePledge(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.flow.State().Status == pledge.StatusSuccess {
		switch msg.String() {
		case "r", "enter":
			m.flow.Reset()
			m.syncFromFlow()
			m.notice = ""
			return m, m.setFocus(fieldName)
		case "esc":
			m.view = viewSimulator
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.view = viewSimulator
		m.name.Blur()
		m.email.Blur()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case tea.KeyEnter:
		if m.focus == fieldSubmit {
			return m.submit()
		}
		return m, m.setFocus(m.focus + 1)
	}

	switch m.focus {
	case fieldName, fieldEmail:
		return m.updateInput(msg)
	case fieldInterest:
		areas := pledge.InterestAreas()
		switch msg.Type {
		case tea.KeyLeft:
			m.areaIdx = (m.areaIdx + len(areas) - 1) % len(areas)
		case tea.KeyRight, tea.KeySpace:
			m.areaIdx = (m.areaIdx + 1) % len(areas)
		default:
			return m, nil
		}
		area := areas[m.areaIdx]
		m.flow.Edit(func(r pledge.Request) pledge.Request { return r.WithInterestArea(area) })
	case fieldVote:
		if msg.Type == tea.KeySpace {
			m.flow.Edit(func(r pledge.Request) pledge.Request { return r.WithPledgeToVote(!r.PledgeToVote) })
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == fieldName {
		m.name, cmd = m.name.Update(msg)
		value := m.name.Value()
		m.flow.Edit(func(r pledge.Request) pledge.Request { return r.WithName(value) })
	} else {
		m.email, cmd = m.email.Update(msg)
		value := m.email.Value()
		m.flow.Edit(func(r pledge.Request) pledge.Request { return r.WithEmail(value) })
	}
	return m, cmd
}

// submit validates locally and hands the send to a tea.Cmd. Enter is a no-op
// while an attempt is outstanding.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting || !m.flow.CanSubmit() {
		return m, nil
	}
	if err := m.flow.Form().Validate(); err != nil {
		m.notice = validationNotice(err)
		return m, nil
	}

	m.submitting = true
	m.notice = ""
	ctx, flow := m.ctx, m.flow
	return m, func() tea.Msg {
		state, err := flow.Submit(ctx)
		return submittedMsg{state: state, err: err}
	}
}

func (m Model) handleSubmitted(msg submittedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	switch {
	case errors.Is(msg.err, pledge.ErrSubmitInProgress):
		return m, nil
	case msg.err != nil:
		m.notice = validationNotice(msg.err)
		return m, nil
	}

	if msg.state.Status == pledge.StatusSuccess {
		m.syncFromFlow()
		m.name.Blur()
		m.email.Blur()
	}
	return m, nil
}

func (m *Model) setFee(fee simulator.FeeAmount) {
	m.fee = simulator.Clamp(int(fee))
	result, err := simulator.Simulate(m.fee)
	if err != nil {
		return
	}
	m.result = result
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	m.name.Blur()
	m.email.Blur()
	switch f {
	case fieldName:
		return m.name.Focus()
	case fieldEmail:
		return m.email.Focus()
	}
	return nil
}

// syncFromFlow copies the flow's form back into the widgets
func (m *Model) syncFromFlow() {
	form := m.flow.Form()
	m.name.SetValue(form.Name)
	m.email.SetValue(form.Email)
	m.areaIdx = 0
	for i, a := range pledge.InterestAreas() {
		if a == form.InterestArea {
			m.areaIdx = i
			break
		}
	}
}

func validationNotice(err error) string {
	var parts []string
	if errors.Is(err, pledge.ErrNameRequired) {
		parts = append(parts, "Please enter your name.")
	}
	if errors.Is(err, pledge.ErrEmailRequired) {
		parts = append(parts, "Please enter your email.")
	}
	if errors.Is(err, pledge.ErrInvalidArea) {
		parts = append(parts, "Please choose how you'd like to help.")
	}
	if len(parts) == 0 {
		return err.Error()
	}
	return strings.Join(parts, " ")
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("SFSS Fee Referendum"))
	b.WriteString("\n\n")

	if m.view == viewPledge {
		b.WriteString(m.pledgeView())
	} else {
		b.WriteString(m.simulatorView())
	}
	return b.String()
}

func (m Model) simulatorView() string {
	s := m.styles
	r := m.result
	var b strings.Builder

	b.WriteString(s.Title.Render("Fee Impact Simulator"))
	b.WriteString("\n")

	steps := make([]string, 0, simulator.MaxFee)
	for _, fee := range simulator.Steps() {
		label := fmt.Sprintf("$%d", fee)
		if fee == m.fee {
			steps = append(steps, s.StepOn.Render(label))
		} else {
			steps = append(steps, s.Step.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, steps...))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("$%d per semester (proposed: $%d)", m.fee, simulator.ProposedFee)))
	b.WriteString("\n\n")

	b.WriteString(s.Tone(r.Status.Tone).Render(r.Status.Label))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", s.Bold.Render("Deficit:"), r.Status.Deficit)
	fmt.Fprintf(&b, "%s %s\n", s.Bold.Render("Club funding:"), r.Status.ClubFunding)
	fmt.Fprintf(&b, "%s %s\n", s.Bold.Render("Events:"), r.Status.Events)
	fmt.Fprintf(&b, "%s %s per year\n", s.Bold.Render("Estimated revenue:"), r.RevenueDisplay())
	b.WriteString(s.Muted.Render(r.RevenueNote))
	b.WriteString("\n\n")

	b.WriteString(s.Bold.Render(r.Heading()))
	b.WriteString("\n")
	for _, item := range r.Visible() {
		fmt.Fprintf(&b, "  • %s: %s\n", s.Tone(r.Status.Tone).Render(item.Title), item.Description)
	}
	if hint := r.DisclosureHint(); hint != "" {
		b.WriteString(s.Muted.Render(hint))
		b.WriteString("\n")
	}

	b.WriteString(s.Footer.Render("←/→ adjust • 1-8 jump • p pledge • q quit"))
	return b.String()
}

func (m Model) pledgeView() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("Pledge to Vote YES"))
	b.WriteString("\n")

	state := m.flow.State()
	if state.Status == pledge.StatusSuccess {
		b.WriteString(s.Panel.Render(s.Success.Render("Pledge Confirmed") +
			"\nThanks for standing up for student services.\nWe'll be in touch before voting opens."))
		b.WriteString(s.Footer.Render("r new pledge • esc back • ctrl+c quit"))
		return b.String()
	}

	if m.banner != "" {
		b.WriteString(s.Error.Render(m.banner) + "\n\n")
	}

	form := m.flow.Form()
	b.WriteString(m.row(fieldName, "Name", m.name.View()))
	b.WriteString(m.row(fieldEmail, "Email", m.email.View()))
	b.WriteString(m.row(fieldInterest, "How can you help?", "< "+form.InterestArea.Label()+" >"))

	check := "[ ]"
	if form.PledgeToVote {
		check = "[x]"
	}
	b.WriteString(m.row(fieldVote, "", check+" I pledge to vote YES in the referendum"))
	b.WriteString("\n")

	switch {
	case m.submitting || state.Submitting():
		b.WriteString(s.Disabled.Render("Submitting..."))
	case m.focus == fieldSubmit:
		b.WriteString(s.Button.Render("> Submit Pledge <"))
	default:
		b.WriteString(s.Button.Render("Submit Pledge"))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n" + s.Error.Render(m.notice) + "\n")
	} else if state.Status == pledge.StatusError {
		b.WriteString("\n" + s.Error.Render(state.Message) + "\n")
	}

	b.WriteString(s.Footer.Render("tab/↑/↓ move • ←/→ choose • space toggle • enter submit • esc back"))
	return b.String()
}

func (m Model) row(f field, label, value string) string {
	cursor := "  "
	if m.focus == f {
		cursor = m.styles.Focused.Render("> ")
	}
	if label != "" {
		label = m.styles.Bold.Render(label+":") + " "
	}
	return cursor + label + value + "\n"
}

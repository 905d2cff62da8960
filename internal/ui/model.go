package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"scooper/internal/config"
	"scooper/internal/eventbus"
	"scooper/internal/logic"
	"scooper/internal/ui/filter"
	"scooper/internal/ui/handlers"
	"scooper/internal/ui/input"
	inputtypes "scooper/internal/ui/input/types"
	"scooper/internal/ui/state"
	"scooper/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.PanelState
	control *filter.Control

	width  int
	height int
	help   help.Model

	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	helpOps      *HelpOps
}

// NewModel creates a new UI model. Commits from the panel go to applier.
func NewModel(bus eventbus.EventBus, applier logic.FilterApplier, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	panelState := state.NewPanelState()
	control := filter.New(applier)

	return &Model{
		bus:          bus,
		config:       cfg,
		state:        panelState,
		control:      control,
		help:         help.New(),
		renderer:     views.NewRenderer(cfg.UI),
		eventHandler: handlers.NewEventHandler(panelState, control),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps.SetProgram(p)
}

// Control exposes the filter control
func (m *Model) Control() *filter.Control {
	return m.control
}

// Focus returns the focused panel control
func (m *Model) Focus() inputtypes.Focus {
	return m.inputHandler.Focus()
}

// State returns the panel state
func (m *Model) State() *state.PanelState {
	return m.state
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{Control: m.control}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	for _, action := range m.inputHandler.Start(m.context()) {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.ClearStatusMsg:
		m.eventHandler.HandleClearStatus(msg)
		return m, nil

	case tickMsg:
		// Don't keep ticking while ov owns the terminal
		if m.state.InPagerMode {
			return m, nil
		}
		return m, tick()

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, tick()

	default:
		// Cursor blink and other text input messages
		return m, m.control.UpdateQuery(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.render().Content
}

// render lays out the panel for the current state
func (m *Model) render() views.Frame {
	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Focus:         m.inputHandler.Focus(),
		BucketLabel:   m.control.BucketLabel(),
		BucketStale:   m.control.SelectionStale(),
		Dropdown:      m.control.Dropdown(),
		Checked:       m.control.SelectedOption(),
		OptionLabels:  views.OptionLabels(m.control),
		QueryView:     m.control.QueryView,
		Results:       m.state.Results,
		Total:         m.state.Total,
		Applied:       m.state.Applied,
		Scanning:      m.state.Scanning,
		Buckets:       m.state.BucketCount,
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
		HelpModel:     m.help,
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := m.context()
	actions, consumed := m.inputHandler.HandleKey(msg, ctx)

	cmds := m.processActions(actions)

	// Keys the query mode passes on belong to the text field
	if !consumed && m.inputHandler.Focus() == inputtypes.FocusQuery && !m.control.IsOpen() {
		cmds = append(cmds, m.control.UpdateQuery(msg))
	}

	return tea.Batch(cmds...)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	frame := m.render()
	hits := frame.Hits

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.control.IsOpen() {
			if idx, ok := hits.OptionAt(msg.X, msg.Y); ok {
				m.control.SetHover(idx)
			}
		}
		return nil

	case tea.MouseActionPress:
	default:
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.control.IsOpen() {
			m.control.MoveHover(-1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if m.control.IsOpen() {
			m.control.MoveHover(1)
		}
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	if m.control.IsOpen() {
		if idx, ok := hits.OptionAt(msg.X, msg.Y); ok {
			m.control.Choose(idx)
			return nil
		}
		// Any click off the list closes it; a click on the selector only closes it
		m.control.Dismiss()
		if hits.Selector.Contains(msg.X, msg.Y) {
			return nil
		}
	}

	var actions []inputtypes.Action
	switch {
	case hits.Selector.Contains(msg.X, msg.Y):
		actions = []inputtypes.Action{
			inputtypes.ChangeFocusAction{Focus: inputtypes.FocusSelector},
			inputtypes.OpenDropdownAction{},
		}
	case hits.Field.Contains(msg.X, msg.Y):
		actions = []inputtypes.Action{inputtypes.ChangeFocusAction{Focus: inputtypes.FocusQuery}}
	case hits.Button.Contains(msg.X, msg.Y):
		actions = []inputtypes.Action{
			inputtypes.ChangeFocusAction{Focus: inputtypes.FocusButton},
			inputtypes.SubmitAction{Source: inputtypes.SourceButton},
		}
	}

	return tea.Batch(m.processActions(m.inputHandler.Resolve(actions, m.context()))...)
}

func (m *Model) processActions(actions []inputtypes.Action) []tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.FocusQueryAction:
		if a.Focused {
			return m.control.FocusQuery()
		}
		m.control.BlurQuery()

	case inputtypes.OpenDropdownAction:
		m.control.Open()

	case inputtypes.DismissDropdownAction:
		m.control.Dismiss()

	case inputtypes.MoveHoverAction:
		m.control.MoveHover(a.Delta)

	case inputtypes.HoverOptionAction:
		m.control.SetHover(a.Index)

	case inputtypes.ChooseOptionAction:
		if a.Index == inputtypes.HoveredOption {
			m.control.ChooseHovered()
		} else {
			m.control.Choose(a.Index)
		}

	case inputtypes.SubmitAction:
		q := m.control.Submit()
		log.Printf("Filter submitted from %s: text=%q bucket=%q", a.Source, q.Text, q.Bucket)

	case inputtypes.RescanAction:
		if m.bus != nil {
			m.bus.Publish(eventbus.ScanRequestedEvent{Reason: "manual"})
		}
		m.state.SetStatus("Rescanning...")

	case inputtypes.ShowHelpAction:
		content := NewHelpRenderer(inputtypes.Keys).RenderHelpContent()
		if m.helpOps.program == nil {
			m.state.SetStatus("Help is unavailable")
			return nil
		}
		return m.fetchHelpPager(content)

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	program := m.helpOps.program
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

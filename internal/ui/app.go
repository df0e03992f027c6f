package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"fasguide/internal/browser"
	"fasguide/internal/config"
	"fasguide/internal/scheme"
	"fasguide/internal/viewselect"
)

// Dimensions used until the first WindowSizeMsg arrives (and in tests).
const (
	defaultWidth  = 80
	defaultHeight = 40
	minBodyHeight = 3
)

// Options configures NewAppModel. Zero values select defaults.
type Options struct {
	Opener   browser.Opener  // nil = OS default browser
	Tracer   trace.Tracer    // nil = noop
	Logger   *zerolog.Logger // nil = discard
	MaxWidth int             // 0 = unlimited
}

// AppModel is the root model. It owns the view selector and hands the current
// projection to the renderers on every mode change.
type AppModel struct {
	Selector *viewselect.Selector
	Keys     *KeyDispatcher
	Overlays OverlayStack
	Opener   browser.Opener
	Tracer   trace.Tracer
	Logger   zerolog.Logger
	MaxWidth int

	// Status is a one-line message shown above the key hints.
	Status    string
	StatusErr bool

	viewport      viewport.Model
	width, height int
	renderedWidth int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model in overview mode.
func NewAppModel(opts Options) *AppModel {
	a := &AppModel{
		Selector: viewselect.New(),
		Keys:     NewKeyDispatcher(newKeymap()),
		Opener:   opts.Opener,
		Tracer:   opts.Tracer,
		MaxWidth: opts.MaxWidth,
		viewport: viewport.New(defaultWidth, defaultHeight),
	}
	if a.Opener == nil {
		a.Opener = browser.NewCommandOpener(nil)
	}
	if a.Tracer == nil {
		a.Tracer = noop.NewTracerProvider().Tracer("")
	}
	if opts.Logger != nil {
		a.Logger = opts.Logger.With().Str("component", "ui").Logger()
	} else {
		a.Logger = zerolog.Nop()
	}
	a.layout()
	return a
}

func newKeymap() *Keymap {
	var (
		procedureOnly = []viewselect.ViewMode{viewselect.ModeProcedure}
		toOverview    = msgCmd(SetModeMsg{Mode: viewselect.ModeOverview})
		toProcedure   = msgCmd(SetModeMsg{Mode: viewselect.ModeProcedure})
		showApply     = msgCmd(ShowApplyConfirmMsg{})
	)

	km := NewKeymap()
	for _, b := range []Binding{
		{Seq: "q", Cmd: tea.Quit, Desc: "Quit"},
		{Seq: "ctrl+c", Cmd: tea.Quit, Desc: "Quit"},
		{Seq: "tab", Cmd: msgCmd(NextModeMsg{}), Desc: "Next view"},
		{Seq: "shift+tab", Cmd: msgCmd(PrevModeMsg{}), Desc: "Previous view"},
		{Seq: "1", Cmd: toOverview, Desc: viewselect.ModeOverview.Title()},
		{Seq: "2", Cmd: toProcedure, Desc: viewselect.ModeProcedure.Title()},
		{Seq: "a", Cmd: showApply, Desc: "Apply online", Modes: procedureOnly},

		{Seq: "SPC o", Cmd: toOverview, Desc: viewselect.ModeOverview.Title()},
		{Seq: "SPC p", Cmd: toProcedure, Desc: viewselect.ModeProcedure.Title()},
		{Seq: "SPC a", Cmd: showApply, Desc: "Apply online", Modes: procedureOnly},
		{Seq: "SPC q", Cmd: tea.Quit, Desc: "Quit"},
	} {
		km.Add(b)
	}
	return km
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Mode returns the current view mode.
func (a *AppModel) Mode() viewselect.ViewMode {
	return a.Selector.Mode()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.layout()
	return a, cmd
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return nil
	case SetModeMsg:
		a.setMode(msg.Mode)
		return nil
	case NextModeMsg:
		a.setMode(viewselect.Next(a.Selector.Mode()))
		return nil
	case PrevModeMsg:
		a.setMode(viewselect.Prev(a.Selector.Mode()))
		return nil
	case ShowApplyConfirmMsg:
		if a.Selector.Mode() != viewselect.ModeProcedure || a.Overlays.Len() > 0 {
			return nil
		}
		a.Overlays.Push(Overlay{View: NewApplyConfirmModal(scheme.ApplyURL), DismissKeys: []string{"esc"}})
		return nil
	case OpenApplyMsg:
		a.Overlays.Pop()
		a.setStatus("Opening "+scheme.ApplyURL+"…", false)
		return openURLCmd(a.Opener, scheme.ApplyURL)
	case ApplyOpenedMsg:
		if msg.Err != nil {
			a.Logger.Warn().Err(msg.Err).Str("url", msg.URL).Msg("failed to open browser")
			a.setStatus("Could not open browser: "+msg.Err.Error()+". Visit "+msg.URL, true)
			return nil
		}
		a.Logger.Info().Str("url", msg.URL).Msg("opened application link")
		a.setStatus("Opened "+msg.URL+" in your browser", false)
		return nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return nil
	case tea.KeyMsg:
		if a.Overlays.Len() > 0 {
			if msg.String() == "ctrl+c" {
				return tea.Quit
			}
			return a.Overlays.HandleKey(msg)
		}
		if consumed, cmd := a.Keys.Dispatch(msg, a.Selector.Mode()); consumed {
			return cmd
		}
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return cmd
}

// setMode switches the selector and re-projects the body. Setting the
// current mode again only re-projects.
func (a *AppModel) setMode(m viewselect.ViewMode) {
	prev := a.Selector.Mode()
	if err := a.Selector.SetMode(m); err != nil {
		a.Logger.Error().Err(err).Msg("ignoring view mode")
		return
	}
	if prev != m {
		_, span := a.Tracer.Start(context.Background(), "view.select",
			trace.WithAttributes(
				attribute.String("fasguide.view.from", prev.String()),
				attribute.String("fasguide.view.to", m.String()),
			),
		)
		span.End()
		a.Logger.Debug().Str("from", prev.String()).Str("to", m.String()).Msg("view mode changed")
		a.Status = ""
		a.viewport.GotoTop()
	}
	a.refresh()
}

func (a *AppModel) setStatus(s string, isErr bool) {
	a.Status = s
	a.StatusErr = isErr
}

// refresh re-renders the current projection into the viewport.
func (a *AppModel) refresh() {
	w := a.contentWidth()
	a.viewport.SetContent(renderProjection(a.Selector.Projection(), w))
	a.renderedWidth = w
}

// layout sizes the viewport to the space left by the header and footer.
func (a *AppModel) layout() {
	w := a.contentWidth()
	h := a.height
	if h <= 0 {
		h = defaultHeight
	}
	chrome := lipgloss.Height(a.renderTop(w)) + lipgloss.Height(a.renderBottom(w))
	a.viewport.Width = w
	a.viewport.Height = max(h-chrome, minBodyHeight)
	if a.renderedWidth != w {
		a.refresh()
	}
}

func (a *AppModel) contentWidth() int {
	w := a.width
	if w <= 0 {
		w = defaultWidth
	}
	if a.MaxWidth > 0 && w > a.MaxWidth {
		w = a.MaxWidth
	}
	return max(w, config.MinWidth)
}

// tooNarrow reports a terminal narrower than the layout supports.
func (a *AppModel) tooNarrow() bool {
	return a.width > 0 && a.width < config.MinWidth
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.tooNarrow() {
		msg := fmt.Sprintf("Terminal too narrow. Widen to %d columns.", config.MinWidth)
		return Styles.Warning.Width(a.width).Render(msg)
	}

	w := a.contentWidth()

	body := a.Overlays.Render(a.viewport.View(), w, a.viewport.Height)

	page := lipgloss.JoinVertical(lipgloss.Left, a.renderTop(w), body, a.renderBottom(w))
	if a.width > w {
		page = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, page)
	}
	return page
}

func (a *AppModel) renderTop(w int) string {
	return renderHeader(w) + "\n\n" + renderTabs(a.Selector.Mode(), w) + "\n"
}

func (a *AppModel) renderBottom(w int) string {
	mode := a.Selector.Mode()
	lines := []string{""}
	if a.Status != "" {
		style := Styles.Status
		if a.StatusErr {
			style = Styles.Error
		}
		lines = append(lines, style.Width(w).Render(a.Status))
	}
	if a.Keys.Pending() {
		lines = append(lines, RenderKeybindHelp(a.Keys, mode, w))
	} else {
		lines = append(lines, RenderShortHelp(mode, w))
	}
	lines = append(lines, renderFooter(w))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

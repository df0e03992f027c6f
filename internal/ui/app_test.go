package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"fasguide/internal/browser"
	"fasguide/internal/scheme"
	"fasguide/internal/telemetry"
	"fasguide/internal/viewselect"
)

type testApp struct {
	*appModelAdapter
	opener   *browser.RecordingOpener
	recorder *tracetest.SpanRecorder
	logs     *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	opener := &browser.RecordingOpener{}
	rec := tracetest.NewSpanRecorder()
	logs := &bytes.Buffer{}
	logger := zerolog.New(logs)

	a := NewAppModel(Options{
		Opener:   opener,
		Tracer:   telemetry.NewWithSpanProcessor(rec).Tracer(),
		Logger:   &logger,
		MaxWidth: 100,
	})
	return &testApp{
		appModelAdapter: &appModelAdapter{AppModel: a},
		opener:          opener,
		recorder:        rec,
		logs:            logs,
	}
}

// send delivers msg and then every message produced by the resulting
// commands, the way the Bubble Tea runtime would.
func (ta *testApp) send(msg tea.Msg) {
	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0 && i < 32; i++ {
		next := queue[0]
		queue = queue[1:]
		_, cmd := ta.Update(next)
		queue = append(queue, runCmd(cmd)...)
	}
}

func (ta *testApp) press(keys ...string) {
	for _, k := range keys {
		ta.send(keyMsg(k))
	}
}

func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil, tea.QuitMsg:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, runCmd(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

func TestAppModel_StartsInOverview(t *testing.T) {
	ta := newTestApp(t)

	assert.Equal(t, viewselect.ModeOverview, ta.Mode())
	out := ta.View()
	assert.Contains(t, out, scheme.Title)
	assert.Contains(t, out, "Scheme Overview")
	assert.Contains(t, out, "Tier 1 Term FA")
	assert.Contains(t, out, "Tier 2 Term FA")
}

func TestAppModel_TabCyclesModes(t *testing.T) {
	ta := newTestApp(t)

	ta.press("tab")
	assert.Equal(t, viewselect.ModeProcedure, ta.Mode())
	assert.Contains(t, ta.View(), "Initial Request")

	ta.press("tab")
	assert.Equal(t, viewselect.ModeOverview, ta.Mode())

	ta.press("shift+tab")
	assert.Equal(t, viewselect.ModeProcedure, ta.Mode())
}

func TestAppModel_NumberKeysSelectMode(t *testing.T) {
	ta := newTestApp(t)

	ta.press("2")
	assert.Equal(t, viewselect.ModeProcedure, ta.Mode())
	ta.press("2")
	assert.Equal(t, viewselect.ModeProcedure, ta.Mode())
	ta.press("1")
	assert.Equal(t, viewselect.ModeOverview, ta.Mode())
}

func TestAppModel_LeaderSelectsMode(t *testing.T) {
	ta := newTestApp(t)

	ta.press(" ")
	assert.True(t, ta.Keys.Pending())
	assert.Contains(t, ta.View(), "cancel")

	ta.press("p")
	assert.False(t, ta.Keys.Pending())
	assert.Equal(t, viewselect.ModeProcedure, ta.Mode())

	ta.press(" ", "o")
	assert.Equal(t, viewselect.ModeOverview, ta.Mode())
}

func TestAppModel_RoundTripRestoresOverview(t *testing.T) {
	ta := newTestApp(t)
	initialView := ta.View()
	initialProjection := ta.Selector.Projection()

	ta.press("tab", "tab")

	assert.Equal(t, initialProjection, ta.Selector.Projection())
	assert.Equal(t, initialView, ta.View())
}

func TestAppModel_ModeChangesAreTracedAndLogged(t *testing.T) {
	ta := newTestApp(t)

	ta.press("1") // already overview: no span
	assert.Empty(t, ta.recorder.Ended())

	ta.press("2")
	spans := ta.recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "view.select", spans[0].Name())

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, "overview", attrs["fasguide.view.from"])
	assert.Equal(t, "procedure", attrs["fasguide.view.to"])

	assert.Contains(t, ta.logs.String(), "view mode changed")
	assert.Contains(t, ta.logs.String(), `"component":"ui"`)
}

func TestAppModel_UnknownModeIgnored(t *testing.T) {
	ta := newTestApp(t)
	ta.send(SetModeMsg{Mode: viewselect.ViewMode(99)})

	assert.Equal(t, viewselect.ModeOverview, ta.Mode())
	assert.Contains(t, ta.logs.String(), "ignoring view mode")
}

func TestAppModel_ApplyOnlyInProcedure(t *testing.T) {
	ta := newTestApp(t)

	ta.press("a")
	assert.Equal(t, 0, ta.Overlays.Len(), "a does nothing on the overview")

	ta.send(ShowApplyConfirmMsg{})
	assert.Equal(t, 0, ta.Overlays.Len())
}

func TestAppModel_ApplyConfirmOpensBrowser(t *testing.T) {
	ta := newTestApp(t)
	ta.press("2", "a")

	require.Equal(t, 1, ta.Overlays.Len())
	top, _ := ta.Overlays.Top()
	require.IsType(t, &ConfirmModal{}, top.View)
	assert.Contains(t, ta.View(), "Open application form?")

	ta.press("y")

	assert.Equal(t, 0, ta.Overlays.Len())
	assert.Equal(t, []string{scheme.ApplyURL}, ta.opener.Opened())
	assert.False(t, ta.StatusErr)
	assert.Contains(t, ta.Status, "Opened")
	assert.Equal(t, viewselect.ModeProcedure, ta.Mode())
}

func TestAppModel_ApplyCancel(t *testing.T) {
	ta := newTestApp(t)
	ta.press("2", "a")
	require.Equal(t, 1, ta.Overlays.Len())

	ta.press("esc")
	assert.Equal(t, 0, ta.Overlays.Len())

	ta.press("a", "n")
	assert.Equal(t, 0, ta.Overlays.Len())
	assert.Empty(t, ta.opener.Opened())
}

func TestAppModel_OverlaySwallowsKeys(t *testing.T) {
	ta := newTestApp(t)
	ta.press("2", "a", "tab", "1")

	assert.Equal(t, viewselect.ModeProcedure, ta.Mode(), "mode keys are ignored while the modal is open")
	assert.Equal(t, 1, ta.Overlays.Len())
}

func TestAppModel_ApplyFailureShowsStatus(t *testing.T) {
	ta := newTestApp(t)
	ta.opener.Err = errors.New("xdg-open: not found")

	ta.press("2", "a", "enter")

	assert.True(t, ta.StatusErr)
	assert.Contains(t, ta.Status, "Could not open browser")
	assert.Contains(t, ta.Status, scheme.ApplyURL)
	assert.Contains(t, ta.logs.String(), "failed to open browser")
	assert.Equal(t, viewselect.ModeProcedure, ta.Mode())
}

func TestAppModel_StatusClearedOnModeChange(t *testing.T) {
	ta := newTestApp(t)
	ta.press("2", "a", "y")
	require.NotEmpty(t, ta.Status)

	ta.press("1")
	assert.Empty(t, ta.Status)
}

func TestAppModel_WindowSizeCapsWidth(t *testing.T) {
	ta := newTestApp(t)
	ta.send(tea.WindowSizeMsg{Width: 160, Height: 50})

	assert.Equal(t, 100, ta.contentWidth())
	for _, line := range strings.Split(ta.View(), "\n") {
		assert.LessOrEqual(t, lipglossWidth(line), 160)
	}
	assert.LessOrEqual(t, ta.viewport.Height, 50)
}

func TestAppModel_ScrollResetsOnModeChange(t *testing.T) {
	ta := newTestApp(t)
	ta.send(tea.WindowSizeMsg{Width: 80, Height: 20})
	ta.press("2")

	ta.press("down", "down", "down")
	assert.Positive(t, ta.viewport.YOffset)

	ta.press("1")
	assert.Zero(t, ta.viewport.YOffset)
}

func TestAppModel_Quit(t *testing.T) {
	ta := newTestApp(t)
	_, cmd := ta.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_LinesFitTerminalWidth(t *testing.T) {
	widths := []int{40, 41, 52, 59, 83, 84, 100, 140}
	states := map[string][]string{
		"overview":         {"1"},
		"procedure":        {"2"},
		"leader overview":  {"1", " "},
		"leader procedure": {"2", " "},
		"apply modal":      {"2", "a"},
	}
	for name, keys := range states {
		for _, w := range widths {
			ta := newTestApp(t)
			ta.send(tea.WindowSizeMsg{Width: w, Height: 30})
			ta.press(keys...)

			for i, line := range strings.Split(ta.View(), "\n") {
				assert.LessOrEqual(t, lipglossWidth(line), w, "%s at width %d, line %d: %q", name, w, i, line)
			}
		}
	}
}

func TestAppModel_TooNarrow(t *testing.T) {
	for _, w := range []int{12, 30, 39} {
		ta := newTestApp(t)
		ta.send(tea.WindowSizeMsg{Width: w, Height: 20})

		out := ta.View()
		assert.Contains(t, strings.Join(strings.Fields(out), " "), "Terminal too narrow.")
		assert.NotContains(t, out, "Tier 1 Term FA")
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, lipglossWidth(line), w)
		}
	}

	// widening again restores the guide
	ta := newTestApp(t)
	ta.send(tea.WindowSizeMsg{Width: 30, Height: 40})
	ta.send(tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Contains(t, ta.View(), "Tier 1 Term FA")
}

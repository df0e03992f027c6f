package ui

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fasguide/internal/viewselect"
)

const leaderSeq = "SPC"

// Binding ties a key sequence to a command. Sequences use leader notation:
// "SPC p" is space followed by p; single keys are "tab", "1", "ctrl+c".
type Binding struct {
	Seq   string
	Cmd   tea.Cmd
	Desc  string
	Modes []viewselect.ViewMode // empty: every mode
}

func (b Binding) activeIn(mode viewselect.ViewMode) bool {
	return len(b.Modes) == 0 || slices.Contains(b.Modes, mode)
}

// Hint is one entry of the leader popup.
type Hint struct {
	Key  string
	Desc string
	More bool // the key opens a further level, e.g. "v" in "SPC v o"
}

// Keymap holds the bindings of the app, keyed by canonical sequence.
type Keymap struct {
	bindings map[string]Binding
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[string]Binding)}
}

// Add registers b, replacing any binding with the same sequence.
func (k *Keymap) Add(b Binding) {
	b.Seq = canonicalSeq(b.Seq)
	k.bindings[b.Seq] = b
}

// Resolve returns the binding for seq when it is active in mode.
func (k *Keymap) Resolve(seq string, mode viewselect.ViewMode) (Binding, bool) {
	b, ok := k.bindings[canonicalSeq(seq)]
	if !ok || b.Cmd == nil || !b.activeIn(mode) {
		return Binding{}, false
	}
	return b, true
}

// Incomplete reports whether some binding extends seq by more keys.
func (k *Keymap) Incomplete(seq string) bool {
	prefix := canonicalSeq(seq) + " "
	for s := range k.bindings {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// Hints lists the keys that may follow seq in mode, sorted by key. The
// app's own bindings are one level deep, but sequences may nest and an
// intermediate key is listed as "key…".
func (k *Keymap) Hints(seq string, mode viewselect.ViewMode) []Hint {
	prefix := canonicalSeq(seq) + " "
	byKey := make(map[string]Hint)
	for s, b := range k.bindings {
		if b.Cmd == nil || !b.activeIn(mode) || !strings.HasPrefix(s, prefix) {
			continue
		}
		next, _, _ := strings.Cut(strings.TrimPrefix(s, prefix), " ")
		if k.Incomplete(prefix + next) {
			byKey[next] = Hint{Key: next, Desc: next + "…", More: true}
			continue
		}
		desc := b.Desc
		if desc == "" {
			desc = s
		}
		byKey[next] = Hint{Key: next, Desc: desc}
	}

	hints := make([]Hint, 0, len(byKey))
	for _, h := range byKey {
		hints = append(hints, h)
	}
	slices.SortFunc(hints, func(a, b Hint) int { return cmp.Compare(a.Key, b.Key) })
	return hints
}

// canonicalSeq maps Bubble Tea key names to keymap notation.
func canonicalSeq(seq string) string {
	if seq == " " {
		return leaderSeq
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = leaderSeq
		}
	}
	return strings.Join(parts, " ")
}

// KeyDispatcher turns key presses into commands, buffering leader sequences.
type KeyDispatcher struct {
	Keymap  *Keymap
	pending []string
}

// NewKeyDispatcher creates a dispatcher over km with space as the leader.
func NewKeyDispatcher(km *Keymap) *KeyDispatcher {
	return &KeyDispatcher{Keymap: km}
}

// Pending reports whether a leader sequence is in progress.
func (d *KeyDispatcher) Pending() bool {
	return len(d.pending) > 0
}

// Prefix returns the buffered sequence, e.g. "SPC".
func (d *KeyDispatcher) Prefix() string {
	return strings.Join(d.pending, " ")
}

// Dispatch handles msg in mode. consumed is false when the key should be
// passed on to the viewport.
func (d *KeyDispatcher) Dispatch(msg tea.KeyMsg, mode viewselect.ViewMode) (consumed bool, cmd tea.Cmd) {
	part := canonicalSeq(msg.String())

	if d.Pending() {
		if part == "esc" {
			d.pending = nil
			return true, nil
		}
		d.pending = append(d.pending, part)
		seq := d.Prefix()
		if b, ok := d.Keymap.Resolve(seq, mode); ok {
			d.pending = nil
			return true, b.Cmd
		}
		if !d.Keymap.Incomplete(seq) {
			// unknown sequences are dropped
			d.pending = nil
		}
		return true, nil
	}

	if part == leaderSeq {
		d.pending = []string{leaderSeq}
		return true, nil
	}

	if b, ok := d.Keymap.Resolve(part, mode); ok {
		return true, b.Cmd
	}
	return false, nil
}

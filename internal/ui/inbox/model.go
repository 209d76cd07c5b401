// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package inbox

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swipe-tui/internal/config"
	"github.com/jeranaias/swipe-tui/internal/storage"
	"github.com/jeranaias/swipe-tui/internal/ui/components"
	"github.com/jeranaias/swipe-tui/internal/ui/styles"
)

// Store is the part of storage.Store the inbox uses.
type Store interface {
	List(ctx context.Context, includeArchived bool) ([]storage.Message, error)
	Counts(ctx context.Context) (total, unread int, err error)
	ToggleRead(ctx context.Context, id string) (storage.Message, error)
	ToggleFlag(ctx context.Context, id string) (storage.Message, error)
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// Options are optional collaborators of the model.
type Options struct {
	// Watcher delivers config reloads. Nil disables hot reload.
	Watcher *config.Watcher
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Timeout bounds every store call; zero means 5s.
	Timeout time.Duration
}

// Layout heights of the fixed parts.
const (
	headerHeight = 1
	statusHeight = 1
)

// Model is the inbox application model.
type Model struct {
	cfg     *config.Config
	store   Store
	watcher *config.Watcher
	clock   func() time.Time
	timeout time.Duration

	theme  *styles.Theme
	list   *components.SwipeList
	status *components.StatusBar
	toasts *components.ToastManager
	help   help.Model
	keys   KeyMap

	messages     map[string]storage.Message
	showArchived bool
	loaded       bool
	toastTicking bool

	width  int
	height int
}

// New creates the model. The configuration must be valid.
func New(cfg *config.Config, store Store, opts Options) (Model, error) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	theme := styles.NewTheme(cfg.UI.Theme)
	list, err := components.NewSwipeList(theme, listConfig(cfg), opts.Clock)
	if err != nil {
		return Model{}, err
	}
	list.SetEmptyText("Inbox zero. Run `swipe seed` for demo messages.")

	m := Model{
		cfg:      cfg,
		store:    store,
		watcher:  opts.Watcher,
		clock:    opts.Clock,
		timeout:  opts.Timeout,
		theme:    theme,
		list:     list,
		status:   components.NewStatusBar(theme),
		toasts:   components.NewToastManager(),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		messages: make(map[string]storage.Message),
		width:    80,
		height:   24,
	}
	m.layout()
	return m, nil
}

// listConfig maps the app config onto the list's.
func listConfig(cfg *config.Config) components.ListConfig {
	return components.ListConfig{
		Swipe:     cfg.SwipeOptions(),
		PrefixCls: cfg.UI.PrefixCls,
		Left:      buttonSpecs(cfg.Swipe.Left),
		Right:     buttonSpecs(cfg.Swipe.Right),
		Animation: cfg.Swipe.Animation,
	}
}

func buttonSpecs(buttons []config.ButtonConfig) []components.ButtonSpec {
	out := make([]components.ButtonSpec, len(buttons))
	for i, b := range buttons {
		out[i] = components.ButtonSpec{
			Text:      b.Text,
			Theme:     b.Theme,
			ClassName: b.ClassName,
			Action:    b.Action,
		}
	}
	return out
}

// Init loads the inbox and starts listening for config reloads.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCmd()}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Config returns the configuration in effect.
func (m Model) Config() *config.Config { return m.cfg }

// List returns the swipe list.
func (m Model) List() *components.SwipeList { return m.list }

// ShowingArchived reports whether the archived view is active.
func (m Model) ShowingArchived() bool { return m.showArchived }

// Toasts returns the visible toasts.
func (m Model) Toasts() []components.Toast { return m.toasts.Toasts() }

// layout sizes the list to what the fixed parts leave over.
func (m *Model) layout() {
	h := m.height - headerHeight
	if m.cfg.UI.ShowStatus {
		h -= statusHeight
	}
	if hv := m.helpView(); hv != "" {
		h -= countLines(hv)
	}
	if stack := m.toastView(); stack != "" {
		h -= countLines(stack)
	}
	if h < 1 {
		h = 1
	}

	m.theme.SetSize(m.width, m.height)
	m.list.SetSize(m.width, h)
	m.list.SetOrigin(0, headerHeight)
	m.status.SetWidth(m.width)
	m.help.Width = m.width
}

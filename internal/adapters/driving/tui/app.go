package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/views/addservice"
	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/cotiza/internal/core/domain"
	"github.com/custodia-labs/cotiza/internal/logger"
)

// App is the main TUI application following the Elm architecture.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	catalogView *catalog.View
	addView     *addservice.View
	statusBar   *status.Bar

	currentView messages.ViewType
	seedOnStart bool

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	app := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		catalogView: catalog.NewView(s, ports.Catalog, ports.Seed),
		addView:     addservice.NewView(s, ports.Catalog),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewCatalog,
	}

	if ports.Settings != nil && ports.Seed != nil {
		settings, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("Reading settings: %v", err)
		} else {
			app.seedOnStart = settings.Seed.OnStart
		}
	}

	return app, nil
}

// WithContext sets the context passed to service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.catalogView.SetContext(ctx)
	a.addView.SetContext(ctx)
	return a
}

// Init loads the catalogue and, when configured, the seed.
// The seed only starts once the bootstrap load has been delivered.
func (a *App) Init() tea.Cmd {
	load := a.catalogView.Init()
	if a.seedOnStart {
		load = tea.Sequence(load, a.catalogView.LoadSeed())
	}
	return tea.Batch(tea.SetWindowTitle("cotiza - Services"), load)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewCatalog {
			if keymap.Matches(msg.String(), a.keymap.Quit) {
				return a, tea.Quit
			}
			a.catalogView, cmd = a.catalogView.Update(msg)
			return a, cmd
		}
		a.addView, cmd = a.addView.Update(msg)
		return a, cmd

	case messages.NotificationReceived:
		a.statusBar.SetNotification(msg.Notification)
		return a, nil

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.ServiceAdded:
		a.addView, cmd = a.addView.Update(msg)
		if msg.Err != nil {
			return a, cmd
		}
		switchCmd := a.switchTo(messages.ViewCatalog)
		a.catalogView, cmd = a.catalogView.Update(messages.CatalogChanged{})
		return a, tea.Batch(switchCmd, cmd)

	case messages.ServicesLoaded, messages.CatalogChanged:
		a.catalogView, cmd = a.catalogView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	if a.currentView == messages.ViewAddService {
		a.addView, cmd = a.addView.Update(msg)
		return a, cmd
	}
	a.catalogView, cmd = a.catalogView.Update(msg)
	return a, cmd
}

func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	switch view {
	case messages.ViewAddService:
		a.addView.Reset()
		a.statusBar.SetHints(a.keymap.FormHelp())
		return a.addView.Init()
	case messages.ViewCatalog:
		a.statusBar.SetHints(a.keymap.CatalogHelp())
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	header := a.styles.Title.Render("cotiza")
	if a.ports.Seed != nil {
		header += a.styles.Muted.Render("  seed: " + a.ports.Seed.Location())
	}

	body := a.catalogView.View()
	if a.currentView == messages.ViewAddService {
		body = a.addView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", a.statusBar.View())
}

// Notify adapts a notification into a message for a running program.
// It matches the notify.Handler signature so the hub can deliver to the TUI.
func Notify(send func(tea.Msg)) func(domain.Notification) {
	return func(n domain.Notification) {
		send(messages.NotificationReceived{Notification: n})
	}
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// LastNotification returns the notification shown in the status bar.
func (a *App) LastNotification() domain.Notification {
	return a.statusBar.Notification()
}

// Services returns the rows shown in the catalogue table.
func (a *App) Services() []domain.Service {
	return a.catalogView.Services()
}

// SeedOnStart reports whether Init loads the seed.
func (a *App) SeedOnStart() bool {
	return a.seedOnStart
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.catalogView.SetDimensions(width, height-4)
	a.addView.SetDimensions(width, height-4)
	a.statusBar.SetWidth(width)
}

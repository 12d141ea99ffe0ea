// Package catalog provides the service table view for the TUI.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cotiza/internal/core/domain"
	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
)

// ErrSeedNotConfigured is reported when the seed key is pressed without a loader.
var ErrSeedNotConfigured = errors.New("seed loader not configured")

// View shows the catalogue as a table with a total line.
type View struct {
	ctx     context.Context
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	catalog driving.CatalogService
	seed    driving.SeedService

	table    table.Model
	services []domain.Service
	width    int
	height   int
	err      error
}

// NewView creates a new catalogue view. seed may be nil.
func NewView(s *styles.Styles, catalog driving.CatalogService, seed driving.SeedService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(s.Theme().Border).
		BorderBottom(true).
		Bold(true)
	ts.Selected = s.Selected
	t.SetStyles(ts)

	return &View{
		ctx:     context.Background(),
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		catalog: catalog,
		seed:    seed,
		table:   t,
	}
}

// SetContext sets the context used by service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads the collection.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// Update handles messages for the catalogue view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ServicesLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.SetServices(msg.Services)
		return v, nil

	case messages.CatalogChanged:
		v.err = msg.Err
		return v, v.reload()

	case servicesReloaded:
		v.SetServices(msg.services)
		return v, nil
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Add):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewAddService}
		}
	case keymap.Matches(key, v.keymap.Remove):
		if len(v.services) == 0 {
			return v, nil
		}
		index := v.table.Cursor()
		return v, v.mutate(func(ctx context.Context) error {
			_, err := v.catalog.RemoveAt(ctx, index)
			return err
		})
	case keymap.Matches(key, v.keymap.Total):
		ctx := v.ctx
		return v, func() tea.Msg {
			v.catalog.Total(ctx)
			return nil
		}
	case keymap.Matches(key, v.keymap.Seed):
		return v, v.LoadSeed()
	case keymap.Matches(key, v.keymap.HireWeb):
		return v, v.hire(0)
	case keymap.Matches(key, v.keymap.HireShop):
		return v, v.hire(1)
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v *View) hire(i int) tea.Cmd {
	presets := domain.Presets()
	if i >= len(presets) {
		return nil
	}
	key := presets[i].Key
	return v.mutate(func(ctx context.Context) error {
		return v.catalog.Hire(ctx, key)
	})
}

// LoadSeed returns a command that replaces the catalogue from the seed.
func (v *View) LoadSeed() tea.Cmd {
	if v.seed == nil {
		return func() tea.Msg {
			return messages.CatalogChanged{Err: ErrSeedNotConfigured}
		}
	}
	return v.mutate(func(ctx context.Context) error {
		_, err := v.seed.Load(ctx)
		return err
	})
}

// mutate runs fn off the update loop and reports completion.
func (v *View) mutate(fn func(context.Context) error) tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		return messages.CatalogChanged{Err: fn(ctx)}
	}
}

// load runs the bootstrap and returns the collection.
func (v *View) load() tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		if v.catalog == nil {
			return messages.ServicesLoaded{Err: errors.New("catalogue service not available")}
		}
		services, err := v.catalog.Initialize(ctx)
		return messages.ServicesLoaded{Services: services, Err: err}
	}
}

// reload lists the collection without touching the error from the last mutation.
func (v *View) reload() tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		if v.catalog == nil {
			return nil
		}
		return servicesReloaded{services: v.catalog.List(ctx)}
	}
}

// servicesReloaded carries a listing that follows a mutation.
type servicesReloaded struct {
	services []domain.Service
}

// View renders the catalogue view.
func (v *View) View() string {
	title := v.styles.Title.Render("Services")
	total := v.styles.Total.Render(fmt.Sprintf("Total: $%s", domain.FormatAmount(domain.Total(v.services))))

	parts := []string{title, "", v.table.View(), "", total}
	if v.err != nil {
		parts = append(parts, "", v.styles.Danger.Render(v.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetServices replaces the rows, keeping the cursor in range.
func (v *View) SetServices(services []domain.Service) {
	v.services = services
	rows := make([]table.Row, 0, len(services))
	for i, s := range services {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			s.Name,
			domain.FormatAmount(s.UnitPrice),
			strconv.Itoa(s.Quantity),
			domain.FormatAmount(domain.Subtotal(s)),
		})
	}
	v.table.SetRows(rows)
	if len(rows) > 0 && v.table.Cursor() >= len(rows) {
		v.table.SetCursor(len(rows) - 1)
	}
}

// Services returns the rows currently shown.
func (v *View) Services() []domain.Service {
	return v.services
}

// Selected returns the index of the highlighted row.
func (v *View) Selected() int {
	return v.table.Cursor()
}

// Err returns the last error reported by a mutation or load.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.table.SetColumns(columns(width))
	if h := height - 8; h > 3 {
		v.table.SetHeight(h)
	}
}

func columns(width int) []table.Column {
	name := width - 4 - 12 - 6 - 12 - 10
	if name < 12 {
		name = 12
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: name},
		{Title: "Price", Width: 12},
		{Title: "Qty", Width: 6},
		{Title: "Subtotal", Width: 12},
	}
}

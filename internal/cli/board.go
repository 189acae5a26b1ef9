package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lanegrid/internal/cli/formatter"
	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/alexanderramin/lanegrid/internal/layout"
	"github.com/alexanderramin/lanegrid/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// zoomStep is the zoom change per keypress, in percent points.
const zoomStep = 20

type boardKeyMap struct {
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	PrevWindow key.Binding
	NextWindow key.Binding
	CycleView  key.Binding
	CycleGroup key.Binding
	Today      key.Binding
	Quit       key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		ZoomIn:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		PrevWindow: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous window")),
		NextWindow: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next window")),
		CycleView:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "cycle view")),
		CycleGroup: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "cycle grouping")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "jump to today")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.PrevWindow, k.NextWindow, k.CycleView, k.CycleGroup, k.Today, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// timelineLoadedMsg delivers a fresh render after any view change.
type timelineLoadedMsg struct {
	resp *service.TimelineResponse
	err  error
}

type boardModel struct {
	app  *App
	req  service.TimelineRequest
	resp *service.TimelineResponse
	err  error
	keys boardKeyMap
	help help.Model
}

func newBoardModel(app *App, req service.TimelineRequest) boardModel {
	return boardModel{
		app:  app,
		req:  req,
		keys: defaultBoardKeys(),
		help: help.New(),
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.load()
}

// load re-renders the timeline; the board holds no cache, every change is a
// full recompute against the current data.
func (m boardModel) load() tea.Cmd {
	req := m.req
	app := m.app
	return func() tea.Msg {
		resp, err := app.Timeline.Render(context.Background(), req)
		return timelineLoadedMsg{resp: resp, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timelineLoadedMsg:
		m.resp = msg.resp
		m.err = msg.err
		if m.resp != nil {
			// Anchor on the rendered window's start, not the raw request
			// date, so paging always moves from the window boundary.
			m.req.Anchor = m.resp.Result.Window.Start()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ZoomIn):
			m.req.Zoom = layout.ClampZoom(m.req.Zoom + zoomStep)
			return m, m.load()
		case key.Matches(msg, m.keys.ZoomOut):
			m.req.Zoom = layout.ClampZoom(m.req.Zoom - zoomStep)
			return m, m.load()
		case key.Matches(msg, m.keys.PrevWindow):
			m.req.Anchor = m.pageAnchor(-1)
			return m, m.load()
		case key.Matches(msg, m.keys.NextWindow):
			m.req.Anchor = m.pageAnchor(1)
			return m, m.load()
		case key.Matches(msg, m.keys.CycleView):
			m.req.View = nextView(m.req.View)
			return m, m.load()
		case key.Matches(msg, m.keys.CycleGroup):
			m.req.GroupBy = nextGroup(m.req.GroupBy)
			return m, m.load()
		case key.Matches(msg, m.keys.Today):
			// Zero anchor lets the service resolve today on render.
			m.req.Anchor = time.Time{}
			return m, m.load()
		}
	}
	return m, nil
}

// pageAnchor moves the anchor one full window in the given direction. The
// month view snaps to the 1st of the anchor's month, so paging it by a flat
// 30 days can land inside the same month (or skip one); calendar-month
// arithmetic keeps every press showing the adjacent window.
func (m boardModel) pageAnchor(dir int) time.Time {
	kind := domain.ParseViewKind(m.req.View)
	if kind == domain.ViewMonth {
		return m.req.Anchor.AddDate(0, dir, 0)
	}
	return m.req.Anchor.AddDate(0, 0, dir*kind.Days())
}

func (m boardModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}
	if m.resp == nil {
		return formatter.StyleDim.Render("Loading timeline…") + "\n"
	}

	header := fmt.Sprintf("%s  ·  zoom %d%%  ·  by %s  ·  %s – %s",
		m.resp.Config.Kind,
		m.resp.Config.ZoomPercent,
		m.resp.Config.GroupBy,
		m.resp.Result.Window.Start().Format("Jan 02"),
		m.resp.Result.Window.Days[len(m.resp.Result.Window.Days)-1].Format("Jan 02"),
	)

	return formatter.StyleBold.Render(header) + "\n\n" +
		formatter.RenderGantt(m.resp.Result) + "\n" +
		m.help.View(m.keys) + "\n"
}

func nextView(view string) string {
	switch domain.ParseViewKind(view) {
	case domain.ViewWeek:
		return string(domain.ViewTwoWeek)
	case domain.ViewTwoWeek:
		return string(domain.ViewMonth)
	default:
		return string(domain.ViewWeek)
	}
}

func nextGroup(groupBy string) string {
	switch domain.ParseGroupKey(groupBy) {
	case domain.GroupByAssignee:
		return string(domain.GroupByProject)
	case domain.GroupByProject:
		return string(domain.GroupByStatus)
	default:
		return string(domain.GroupByAssignee)
	}
}

func newBoardCmd(app *App) *cobra.Command {
	var view, groupBy string
	var zoom int

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Interactive timeline board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("board requires an interactive terminal; use 'lanegrid timeline' instead")
			}

			req := service.TimelineRequest{
				View:    view,
				Zoom:    zoom,
				GroupBy: groupBy,
			}
			p := tea.NewProgram(newBoardModel(app, req), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&view, "view", "week", "view kind (week|twoweek|month)")
	cmd.Flags().IntVar(&zoom, "zoom", 100, "zoom percentage (60-200, clamped)")
	cmd.Flags().StringVar(&groupBy, "group-by", "assignee", "grouping dimension (assignee|project|status)")

	return cmd
}

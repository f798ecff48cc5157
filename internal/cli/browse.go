package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/familytree/pkg/family"
	"github.com/matzehuels/familytree/pkg/layout"
	"github.com/matzehuels/familytree/pkg/pipeline"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// browseCommand creates the interactive browse command.
func (c *CLI) browseCommand() *cobra.Command {
	opts := renderOpts{
		style:  pipeline.DefaultStyle,
		scale:  pipeline.DefaultScale,
		layout: layout.DefaultConfig(),
	}

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Pick a person and render their descendants",
		Long: `Browse lists everyone in a family file with the generation the layout
assigns them. Selecting a person renders that person, their descendants and
the co-parents of those descendants as an SVG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateStyle(opts.style); err != nil {
				return err
			}
			opts.formats = []string{pipeline.FormatSVG}
			return c.runBrowse(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <person id>.svg)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: classic (default), print")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	bindGeometryFlags(cmd, &opts.layout)

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	fam, err := family.ReadFile(input)
	if err != nil {
		return err
	}
	d, err := pipeline.Compute(fam, opts.layout)
	if err != nil {
		return err
	}

	model := NewPersonListModel(personRows(fam, d.Layout))
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	selected := final.(PersonListModel).Selected
	if selected == nil {
		printNextStep("Render the whole family", appName+" render "+input)
		return nil
	}

	sub, _ := family.Descendants(fam, selected.ID)
	logger.Debugf("Descendants of %s: %d members", selected.ID, len(sub.Members))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering descendants of "+selected.Label())
	spinner.Start()
	popts := opts.pipelineOptions()
	popts.Logger = logger
	popts.Title = selected.Label()
	result, err := runner.Execute(ctx, sub, popts)
	if err != nil {
		spinner.StopWithError(err.Error())
		return err
	}

	path := opts.output
	if path == "" {
		path = selected.ID + "." + pipeline.Extension(pipeline.FormatSVG)
	}
	if err := os.WriteFile(path, result.Artifacts[pipeline.FormatSVG], 0o644); err != nil {
		spinner.Stop()
		return fmt.Errorf("write svg: %w", err)
	}
	spinner.StopWithSuccess("Rendered descendants of " + selected.Label())
	printStats(result.Stats, result.CacheInfo.RenderHit)
	printFile(path)
	return nil
}

// =============================================================================
// PersonListModel - Interactive person selection
// =============================================================================

// PersonRow is one entry of the browse list.
type PersonRow struct {
	ID     string
	Name   string
	Detail string

	// Generation is the layout row, or -1 when the person is not reachable
	// from any root.
	Generation int
}

// Label returns the name, or the id for unnamed people.
func (r PersonRow) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// personRows lists members in document order with their generations.
func personRows(f family.Family, l layout.Layout) []PersonRow {
	rows := make([]PersonRow, 0, len(f.Members))
	for _, m := range f.Members {
		gen := -1
		if pos, ok := l.At(m.ID); ok {
			gen = pos.Generation
		}
		rows = append(rows, PersonRow{ID: m.ID, Name: m.Name, Detail: m.Detail(), Generation: gen})
	}
	return rows
}

// PersonListModel is the bubbletea model for interactive person selection.
type PersonListModel struct {
	People   []PersonRow
	Cursor   int
	Selected *PersonRow
	Height   int
	Offset   int
}

// NewPersonListModel creates a new person list model.
func NewPersonListModel(people []PersonRow) PersonListModel {
	return PersonListModel{
		People: people,
		Height: 15,
	}
}

func (m PersonListModel) Init() tea.Cmd {
	return nil
}

func (m PersonListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.People)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.People) == 0 {
				return m, tea.Quit
			}
			person := m.People[m.Cursor]
			m.Selected = &person
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PersonListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Person"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render descendants  q quit"))
	b.WriteString("\n\n")

	if len(m.People) == 0 {
		b.WriteString(listDimStyle.Render("  No people in this family"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.People))

	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		p := m.People[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		gen := "—"
		if p.Generation >= 0 {
			gen = strconv.Itoa(p.Generation)
		}
		detail := p.Detail
		if detail == "" {
			detail = "—"
		}
		rows = append(rows, []string{cursor, p.Label(), detail, gen, p.ID})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Born", "Gen", "ID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			idx := m.Offset + row
			if idx >= len(m.People) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 3 {
				base = base.Foreground(colorCyan)
			}
			if m.People[idx].Generation < 0 {
				return base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				if col == 3 {
					return base.Bold(true)
				}
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.People))))

	return b.String()
}

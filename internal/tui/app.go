// Package tui is an interactive scoring view: type post content, get the
// ranked hashtags for the configured business, inspect a breakdown per tag.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charo360/tagrank/internal/ai"
	"github.com/charo360/tagrank/internal/browser"
	"github.com/charo360/tagrank/internal/config"
	"github.com/charo360/tagrank/internal/engine"
	"github.com/charo360/tagrank/internal/score"
)

type mode int

const (
	modeInput mode = iota
	modeScoring
	modeResults
)

type scoredMsg struct {
	results []score.Result
}

type scoreErrMsg struct {
	err error
}

type App struct {
	cfg    *config.Config
	eng    *engine.Engine
	gen    ai.Generator // nil when not configured
	sctx   score.Context
	input  textinput.Model
	spin   spinner.Model
	mode   mode
	cursor int

	results []score.Result
	err     error
	width   int
	height  int
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg       *config.Config
	Engine    *engine.Engine
	Generator ai.Generator
	Platform  string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Describe your post..."
	ti.Prompt = "> "
	ti.CharLimit = 280
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		cfg:   opts.Cfg,
		eng:   opts.Engine,
		gen:   opts.Generator,
		sctx:  opts.Cfg.ScoringContext(opts.Platform),
		input: ti,
		spin:  sp,
	}
}

func Run(opts RunOpts) error {
	_, err := tea.NewProgram(NewApp(opts), tea.WithAltScreen()).Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case scoredMsg:
		a.mode = modeResults
		a.results = msg.results
		a.cursor = 0
		a.err = nil
		return a, nil

	case scoreErrMsg:
		a.mode = modeInput
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.mode != modeScoring {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.mode == modeInput {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	switch a.mode {
	case modeInput:
		switch msg.Type {
		case tea.KeyEnter:
			a.mode = modeScoring
			return a, tea.Batch(a.spin.Tick, a.scoreCmd(a.input.Value()))
		case tea.KeyEsc:
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd

	case modeResults:
		switch msg.String() {
		case "q", "esc":
			return a, tea.Quit
		case "j", "down":
			if a.cursor < len(a.results)-1 {
				a.cursor++
			}
		case "k", "up":
			if a.cursor > 0 {
				a.cursor--
			}
		case "o":
			if a.cursor < len(a.results) {
				browser.OpenTag(a.sctx.Platform, a.results[a.cursor].Hashtag)
			}
		case "e":
			a.mode = modeInput
			a.input.Focus()
			return a, textinput.Blink
		}
	}
	return a, nil
}

// scoreCmd generates candidates for the content (AI backend when
// configured, lexical candidates otherwise) and scores them as one batch.
func (a *App) scoreCmd(content string) tea.Cmd {
	sctx := a.sctx
	sctx.PostContent = content
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		var candidates []string
		if a.gen != nil {
			tags, err := a.gen.Hashtags(ctx, content, a.cfg.Business)
			if err == nil {
				candidates = tags
			}
		}
		if len(candidates) == 0 {
			candidates = score.Candidates(sctx)
		}
		if len(candidates) == 0 {
			return scoreErrMsg{err: fmt.Errorf("no hashtag candidates; fill in the business profile or pass content")}
		}

		results, err := a.eng.ScoreHashtags(ctx, candidates, sctx)
		if err != nil {
			return scoreErrMsg{err: err}
		}
		return scoredMsg{results: results}
	}
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("tagrank"))
	b.WriteString(hintStyle.Render(fmt.Sprintf("  %s · %s · %s", a.sctx.BusinessType, a.sctx.Location, a.sctx.Platform)))
	b.WriteString("\n\n")

	switch a.mode {
	case modeInput:
		b.WriteString(" " + a.input.View() + "\n\n")
		if a.err != nil {
			b.WriteString(errStyle.Render(a.err.Error()) + "\n")
		}
		b.WriteString(hintStyle.Render("enter score · esc quit"))

	case modeScoring:
		b.WriteString(fmt.Sprintf(" %s scoring hashtags...\n", a.spin.View()))

	case modeResults:
		b.WriteString(a.resultsView())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("j/k move · o open · e edit · q quit"))
	}
	return b.String()
}

func (a *App) resultsView() string {
	if len(a.results) == 0 {
		return hintStyle.Render("no results")
	}

	var list strings.Builder
	for i, r := range a.results {
		style := tagStyle
		prefix := "  "
		if i == a.cursor {
			style = tagSelectedStyle
			prefix = "> "
		}
		rec := recommendationStyles[string(r.Recommendation)].Render(string(r.Recommendation))
		list.WriteString(fmt.Sprintf("%s%s %s %s\n",
			prefix,
			scoreStyle.Render(fmt.Sprintf("%4.1f", r.Total)),
			style.Render(r.Hashtag),
			rec,
		))
	}

	sel := a.results[a.cursor]
	detail := breakdownView(sel)

	return listPaneStyle.Render(list.String()) + "\n" + listPaneStyle.Render(detail)
}

func breakdownView(r score.Result) string {
	var b strings.Builder
	row := func(label string, v float64) {
		b.WriteString(breakdownLabelStyle.Render(label))
		b.WriteString(fmt.Sprintf(" %4.1f\n", v))
	}
	row("trending", r.Breakdown.Trending)
	row("business", r.Breakdown.Business)
	row("location", r.Breakdown.Location)
	row("platform", r.Breakdown.Platform)
	row("engagement", r.Breakdown.Engagement)
	row("temporal", r.Breakdown.Temporal)
	row("competitor", r.Breakdown.Competitor)
	row("semantic", r.Breakdown.Semantic)
	b.WriteString(breakdownLabelStyle.Render("confidence"))
	b.WriteString(fmt.Sprintf(" %.2f\n", r.Confidence))
	for _, reason := range r.Reasoning {
		b.WriteString(reasonStyle.Render("· "+reason) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

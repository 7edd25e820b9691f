package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mcoot/hangbot/internal/model"
	"github.com/mcoot/hangbot/internal/services/bot"
	"github.com/mcoot/hangbot/internal/services/simulation"
	"github.com/mcoot/hangbot/internal/services/solver"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case ReportView:
		o.printReport(v)
	case DecisionView:
		o.printDecision(v)
	case StatsView:
		o.printStats(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// ReportView is the printable form of a simulation report
type ReportView struct {
	RunID     string           `json:"run_id"`
	Strategy  string           `json:"strategy"`
	Games     int              `json:"games"`
	Wins      int              `json:"wins"`
	Losses    int              `json:"losses"`
	WinRate   float64          `json:"win_rate"`
	ElapsedMs int64            `json:"elapsed_ms"`
	Results   []GameResultView `json:"results"`
}

// GameResultView is one game of a ReportView
type GameResultView struct {
	GameID       string       `json:"game_id"`
	Secret       string       `json:"secret"`
	Pattern      string       `json:"pattern"`
	Won          bool         `json:"won"`
	Guesses      int          `json:"guesses"`
	WrongGuesses int          `json:"wrong_guesses"`
	Actions      []ActionView `json:"actions,omitempty"`
}

// ActionView is one traced bot action
type ActionView struct {
	Type      string `json:"type"`
	Letter    string `json:"letter,omitempty"`
	Hit       bool   `json:"hit"`
	Pattern   string `json:"pattern"`
	TriesLeft int    `json:"tries_left"`
	Source    string `json:"source,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func newReportView(r *simulation.Report) ReportView {
	view := ReportView{
		RunID:     r.RunID,
		Strategy:  r.Strategy,
		Games:     r.Games,
		Wins:      r.Wins,
		Losses:    r.Losses,
		WinRate:   r.WinRate,
		ElapsedMs: r.Elapsed.Milliseconds(),
		Results:   make([]GameResultView, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		rv := GameResultView{
			GameID:       string(res.GameID),
			Secret:       res.Secret,
			Pattern:      res.Pattern,
			Won:          res.Won,
			Guesses:      res.Guesses,
			WrongGuesses: res.WrongGuesses,
		}
		for _, a := range res.Actions {
			rv.Actions = append(rv.Actions, newActionView(a))
		}
		view.Results = append(view.Results, rv)
	}
	return view
}

func newActionView(a bot.BotAction) ActionView {
	av := ActionView{
		Type:      string(a.Type),
		Hit:       a.Hit,
		Pattern:   model.DisplayPattern(a.Pattern),
		TriesLeft: a.TriesLeft,
	}
	if a.Type == bot.ActionGuess {
		av.Letter = string(a.Letter)
		av.Source = string(a.Decision.Source)
		av.Reason = a.Decision.Reason()
	}
	return av
}

// DecisionView is the printable form of a single guess suggestion
type DecisionView struct {
	Pattern    string   `json:"pattern"`
	Guessed    string   `json:"guessed"`
	Letter     string   `json:"letter,omitempty"`
	Source     string   `json:"source"`
	Reason     string   `json:"reason"`
	Matches    int      `json:"matches"`
	Candidates []string `json:"candidates,omitempty"`
}

func newDecisionView(pattern string, guessed model.LetterSet, d model.Decision) DecisionView {
	view := DecisionView{
		Pattern: model.DisplayPattern(pattern),
		Guessed: guessed.String(),
		Source:  string(d.Source),
		Reason:  d.Reason(),
		Matches: d.Candidates,
	}
	if d.HasLetter() {
		view.Letter = string(d.Letter)
	}
	return view
}

// LetterCount pairs a letter with how often it was seen
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// PositionView lists the most common letters at one position
type PositionView struct {
	Index int           `json:"index"`
	Top   []LetterCount `json:"top"`
}

// StatsView is the printable form of the trained tables
type StatsView struct {
	Words     int            `json:"words"`
	MaxLength int            `json:"max_length"`
	Overall   []LetterCount  `json:"overall"`
	Positions []PositionView `json:"positions"`
}

func newStatsView(t *solver.Tables, top int) StatsView {
	view := StatsView{
		Words:     t.WordCount(),
		MaxLength: t.MaxLength(),
	}
	for _, r := range t.OverallRanking() {
		view.Overall = append(view.Overall, LetterCount{Letter: string(r), Count: t.Overall(r)})
	}
	for i := 0; i < t.MaxLength(); i++ {
		pv := PositionView{Index: i}
		for _, r := range t.TopAt(i, top) {
			pv.Top = append(pv.Top, LetterCount{Letter: string(r), Count: t.Positional(i, r)})
		}
		view.Positions = append(view.Positions, pv)
	}
	return view
}

func (o *Output) printReport(r ReportView) {
	secretWidth := len("secret")
	for _, res := range r.Results {
		secretWidth = max(secretWidth, runewidth.StringWidth(res.Secret))
	}
	patternWidth := secretWidth*2 - 1

	for i, res := range r.Results {
		if len(res.Actions) > 0 {
			o.printActions(i+1, res.Actions)
		}
		outcome := "lost"
		if res.Won {
			outcome = "won"
		}
		fmt.Fprintf(o.w, "Game %-4d %s  %s  %-4s  %d guesses (%d wrong)\n",
			i+1,
			runewidth.FillRight(res.Secret, secretWidth),
			runewidth.FillRight(res.Pattern, patternWidth),
			outcome,
			res.Guesses,
			res.WrongGuesses,
		)
	}

	fmt.Fprintf(o.w, "\nStrategy: %s\n", r.Strategy)
	fmt.Fprintf(o.w, "Played %d games: %d won, %d lost\n", r.Games, r.Wins, r.Losses)
	fmt.Fprintf(o.w, "Win rate: %.1f%%\n", r.WinRate)
	fmt.Fprintf(o.w, "Elapsed: %dms\n", r.ElapsedMs)
}

func (o *Output) printActions(game int, actions []ActionView) {
	fmt.Fprintf(o.w, "Trace of game %d:\n", game)
	for _, a := range actions {
		if a.Type != string(bot.ActionGuess) {
			continue
		}
		mark := "miss"
		if a.Hit {
			mark = "hit"
		}
		fmt.Fprintf(o.w, "  guess %s  %-4s  %s  (%d tries left)  %s\n", a.Letter, mark, a.Pattern, a.TriesLeft, a.Reason)
	}
}

func (o *Output) printDecision(d DecisionView) {
	fmt.Fprintf(o.w, "Pattern: %s\n", d.Pattern)
	if d.Guessed != "" {
		fmt.Fprintf(o.w, "Guessed: %s\n", d.Guessed)
	}
	if d.Letter != "" {
		fmt.Fprintf(o.w, "Next guess: %s\n", d.Letter)
	}
	fmt.Fprintf(o.w, "Reason: %s\n", d.Reason)
	if len(d.Candidates) > 0 {
		fmt.Fprintf(o.w, "Matching words (%d): %s\n", d.Matches, strings.Join(d.Candidates, ", "))
	}
}

func (o *Output) printStats(s StatsView) {
	fmt.Fprintf(o.w, "Words: %d\n", s.Words)
	fmt.Fprintf(o.w, "Longest word: %d\n", s.MaxLength)

	fmt.Fprintln(o.w, "\nOverall frequency:")
	o.printCounts(s.Overall, 6)

	fmt.Fprintln(o.w, "\nMost common letters by position:")
	for _, p := range s.Positions {
		fmt.Fprintf(o.w, "  %s", runewidth.FillRight(fmt.Sprintf("%d:", p.Index+1), 4))
		for _, lc := range p.Top {
			fmt.Fprintf(o.w, " %s", runewidth.FillRight(fmt.Sprintf("%s %d", lc.Letter, lc.Count), 8))
		}
		fmt.Fprintln(o.w)
	}
}

// printCounts lays letter counts out in a grid with perRow cells per line
func (o *Output) printCounts(counts []LetterCount, perRow int) {
	width := 0
	cells := make([]string, len(counts))
	for i, lc := range counts {
		cells[i] = fmt.Sprintf("%s %d", lc.Letter, lc.Count)
		width = max(width, runewidth.StringWidth(cells[i]))
	}

	for i, cell := range cells {
		if i%perRow == 0 {
			fmt.Fprint(o.w, " ")
		}
		fmt.Fprintf(o.w, " %s", runewidth.FillRight(cell, width))
		if i%perRow == perRow-1 || i == len(cells)-1 {
			fmt.Fprintln(o.w)
		}
	}
}

package dashboard

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/DhavalSuthar-24/wolvesboard/internal/lineup"
	"github.com/DhavalSuthar-24/wolvesboard/internal/models"
	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
	"github.com/DhavalSuthar-24/wolvesboard/internal/recent"
	"github.com/DhavalSuthar-24/wolvesboard/internal/record"
	"github.com/DhavalSuthar-24/wolvesboard/internal/shooting"
	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

// Tab is one dashboard view.
type Tab string

const (
	TabStats        Tab = "stats"
	TabDistribution Tab = "distribution"
	TabLineups      Tab = "lineups"
	TabRecords      Tab = "records"
)

var tabs = []struct {
	tab   Tab
	title string
}{
	{TabStats, "Player Stats"},
	{TabDistribution, "3PT Distribution"},
	{TabLineups, "Lineups"},
	{TabRecords, "Record Tracker"},
}

// ParseTab maps unknown values to the stats tab.
func ParseTab(s string) Tab {
	for _, t := range tabs {
		if string(t.tab) == s {
			return t.tab
		}
	}
	return TabStats
}

// StatWindow selects season or rolling-window numbers on the stats tab.
type StatWindow string

const (
	WindowSeason StatWindow = "season"
	WindowLast5  StatWindow = "5"
	WindowLast10 StatWindow = "10"
)

// ParseStatWindow maps unknown values to the season window.
func ParseStatWindow(s string) StatWindow {
	switch StatWindow(s) {
	case WindowLast5, WindowLast10:
		return StatWindow(s)
	}
	return WindowSeason
}

// TabLink is one entry of the tab navigation.
type TabLink struct {
	Title  string
	URL    string
	Active bool
}

// PlayerRow is one line of the stats table.
type PlayerRow struct {
	Name      string
	ImageURL  string
	GP        int
	Minutes   float64
	Points    float64
	Rebounds  float64
	Assists   float64
	Steals    float64
	Blocks    float64
	PlusMinus float64
	// Missing is set when a rolling window was asked for and the player has
	// no line in it.
	Missing bool
	// Windowed rows carry rolling-window averages only; GP and Minutes are
	// season-only columns and stay zero.
	Windowed bool
}

// HistogramBar is one bucket of the three-point histogram.
type HistogramBar struct {
	Label       string
	Range       string
	Count       int
	HeightPct   float64
	Highlight   bool
	TeamPlayers []HistogramPlayer
}

// HistogramPlayer is a team player marker above a bar.
type HistogramPlayer struct {
	Name     string
	ImageURL string
	Pct      float64
	Attempts float64
}

// Histogram is the three-point distribution view.
type Histogram struct {
	Ticks       []int
	Bars        []HistogramBar
	Qualified   int
	MinAttempts float64
}

// LineupSection is one lineup size block.
type LineupSection struct {
	Title   string
	Size    lineup.Size
	Lineups []lineup.Lineup
}

// Page is the data handed to the dashboard template.
type Page struct {
	TeamName         string
	TeamAbbreviation string
	Tab              Tab
	Tabs             []TabLink
	Window           StatWindow
	Order            lineup.Order
	Snapshot         *Snapshot
	Players          []PlayerRow
	Histogram        Histogram
	Lineups          []LineupSection
	RecordColumns    []string
	RequestID        string
}

// PageParams are the inputs to BuildPage besides the snapshot.
type PageParams struct {
	TeamName         string
	TeamAbbreviation string
	Tab              Tab
	Window           StatWindow
	Order            lineup.Order
	RequestID        string
}

// BuildPage shapes a snapshot for the template.
func BuildPage(p PageParams, snap *Snapshot) Page {
	page := Page{
		TeamName:         p.TeamName,
		TeamAbbreviation: p.TeamAbbreviation,
		Tab:              p.Tab,
		Window:           p.Window,
		Order:            p.Order,
		Snapshot:         snap,
		RequestID:        p.RequestID,
	}

	for _, t := range tabs {
		page.Tabs = append(page.Tabs, TabLink{
			Title:  t.title,
			URL:    tabURL(t.tab, p.Window, p.Order),
			Active: t.tab == p.Tab,
		})
	}

	switch p.Tab {
	case TabStats:
		page.Players = playerRows(snap, p.Window)
	case TabDistribution:
		page.Histogram = buildHistogram(snap.ThreePointBuckets, snap.Players, p.TeamAbbreviation)
	case TabLineups:
		page.Lineups = lineupSections(snap.Lineups, p.Order)
	case TabRecords:
		page.RecordColumns = record.Columns(snap.Records)
	}

	return page
}

func tabURL(tab Tab, window StatWindow, order lineup.Order) string {
	return fmt.Sprintf("/dashboard?tab=%s&window=%s&order=%s", tab, window, order)
}

func playerRows(snap *Snapshot, window StatWindow) []PlayerRow {
	var byPlayer recent.ByPlayer
	switch window {
	case WindowLast5:
		byPlayer = snap.Recent(recent.WindowFive)
	case WindowLast10:
		byPlayer = snap.Recent(recent.WindowTen)
	}

	rows := make([]PlayerRow, 0, len(snap.Players))
	for _, p := range snap.Players {
		row := PlayerRow{
			Name:      p.PlayerName,
			GP:        p.GamesPlayed,
			Minutes:   p.Minutes,
			Points:    p.Points,
			Rebounds:  p.Rebounds,
			Assists:   p.Assists,
			Steals:    p.Steals,
			Blocks:    p.Blocks,
			PlusMinus: p.PlusMinus,
		}
		if p.ImageURL != nil {
			row.ImageURL = *p.ImageURL
		}
		if byPlayer != nil {
			row.Windowed = true
			row.GP = 0
			row.Minutes = 0
			if s, ok := byPlayer.Lookup(p.PlayerName); ok {
				row.Points = s.PTS
				row.Rebounds = s.REB
				row.Assists = s.AST
				row.Steals = s.STL
				row.Blocks = s.BLK
				row.PlusMinus = s.PlusMinus
			} else {
				row.Missing = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func buildHistogram(buckets []shooting.Bucket, players []player.PlayerStat, team string) Histogram {
	images := player.ImagesByName(players)
	maxCount := shooting.MaxCount(buckets)

	h := Histogram{
		Ticks:       shooting.CountTicks(maxCount),
		MinAttempts: shooting.MinAttempts,
	}
	for i, b := range buckets {
		bar := HistogramBar{
			Range:     b.Range,
			Count:     b.Count,
			HeightPct: b.HeightPct(maxCount),
		}
		// Label every other bucket by its lower bound.
		if i%2 == 0 {
			bar.Label = fmt.Sprintf("%.1f%%", b.Lower*100)
		}
		for _, m := range b.TeamMembers(team) {
			bar.Highlight = true
			hp := HistogramPlayer{
				Name:     m.PlayerName,
				ImageURL: images[m.PlayerName],
				Attempts: m.FG3A,
			}
			if m.FG3Pct != nil {
				hp.Pct = *m.FG3Pct
			}
			bar.TeamPlayers = append(bar.TeamPlayers, hp)
		}
		h.Qualified += b.Count
		h.Bars = append(h.Bars, bar)
	}
	return h
}

func lineupSections(set lineup.Set, order lineup.Order) []LineupSection {
	prefix := "Top"
	if order == lineup.OrderBottom {
		prefix = "Bottom"
	}
	sections := make([]LineupSection, 0, len(lineup.Sizes))
	for _, size := range lineup.Sizes {
		sections = append(sections, LineupSection{
			Title:   fmt.Sprintf("%s %d-Man Lineups", prefix, size),
			Size:    size,
			Lineups: set.BySize(size),
		})
	}
	return sections
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"ordinal": humanize.Ordinal,
		"inc":     func(i int) int { return i + 1 },
		"num":     func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"signed":  func(v float64) string { return fmt.Sprintf("%+.1f", v) },
		"pct":     func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
		"heading": record.Heading,
		"cell":    func(r record.Record, column string) string { return r.Format(column) },
		"deref":   models.String,
	}
}

// LoadTemplates parses the embedded dashboard templates.
func LoadTemplates() (*template.Template, error) {
	return template.New("dashboard").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
}

// lineup/lineup_model.go
package lineup

import "strings"

// LineupRow is one row of the advanced lineups table. Every stat column is
// nullable, and a lineup of size n fills only its first n player slots.
type LineupRow struct {
	GroupID          string   `json:"group_id" gorm:"column:group_id;primaryKey"`
	GroupName        string   `json:"group_name" gorm:"column:group_name"`
	TeamAbbreviation string   `json:"team_abbreviation" gorm:"column:team_abbreviation;index"`
	LineupSize       int      `json:"lineup_size" gorm:"column:lineup_size"`
	Min              *float64 `json:"min" gorm:"column:min"`
	NetRating        *float64 `json:"net_rating" gorm:"column:net_rating"`
	OffRating        *float64 `json:"off_rating" gorm:"column:off_rating"`
	DefRating        *float64 `json:"def_rating" gorm:"column:def_rating"`
	TSPct            *float64 `json:"ts_pct" gorm:"column:ts_pct"`
	Pace             *float64 `json:"pace" gorm:"column:pace"`
	Player1          *string  `json:"player1" gorm:"column:player1"`
	Player2          *string  `json:"player2" gorm:"column:player2"`
	Player3          *string  `json:"player3" gorm:"column:player3"`
	Player4          *string  `json:"player4" gorm:"column:player4"`
	Player5          *string  `json:"player5" gorm:"column:player5"`
}

func (LineupRow) TableName() string {
	return "lineups_advanced"
}

// LineupPlayer is one participant of a lineup.
type LineupPlayer struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url"`
}

// Lineup is a lineup row with NULLs resolved, ready for display.
type Lineup struct {
	GroupName  string         `json:"group_name"`
	LineupSize int            `json:"lineup_size"`
	Min        float64        `json:"min"`
	NetRating  float64        `json:"net_rating"`
	OffRating  float64        `json:"off_rating"`
	DefRating  float64        `json:"def_rating"`
	TSPct      float64        `json:"ts_pct"`
	Pace       float64        `json:"pace"`
	Players    []LineupPlayer `json:"players"`
}

// Names returns the lineup's player names in slot order.
func (l Lineup) Names() []string {
	names := make([]string, len(l.Players))
	for i, p := range l.Players {
		names[i] = p.Name
	}
	return names
}

// Label joins the player names for display.
func (l Lineup) Label() string {
	return strings.Join(l.Names(), " · ")
}

// Set holds the lineups of every tracked size.
type Set struct {
	TwoMan   []Lineup `json:"two_man"`
	ThreeMan []Lineup `json:"three_man"`
	FiveMan  []Lineup `json:"five_man"`
}

// BySize returns the lineups of the given size.
func (s Set) BySize(size Size) []Lineup {
	switch size {
	case SizeTwo:
		return s.TwoMan
	case SizeThree:
		return s.ThreeMan
	case SizeFive:
		return s.FiveMan
	}
	return nil
}

// AttachImages fills in player image URLs from a name -> URL index. Players
// without an entry keep a nil URL.
func (s *Set) AttachImages(images map[string]string) {
	for _, lineups := range [][]Lineup{s.TwoMan, s.ThreeMan, s.FiveMan} {
		for i := range lineups {
			for j := range lineups[i].Players {
				if url, ok := images[lineups[i].Players[j].Name]; ok {
					u := url
					lineups[i].Players[j].ImageURL = &u
				}
			}
		}
	}
}

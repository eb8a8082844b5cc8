// recent/recent_model.go
package recent

import "fmt"

// Window is the number of trailing games a stat line covers.
type Window int

const (
	WindowFive Window = 5
	WindowTen  Window = 10
)

// Windows lists the tracked windows.
var Windows = []Window{WindowFive, WindowTen}

// Valid reports whether w is a tracked window.
func (w Window) Valid() bool {
	return w == WindowFive || w == WindowTen
}

// TableName is the backend table holding the team's stats for w.
func (w Window) TableName(prefix string) string {
	return fmt.Sprintf("%s_player_stats_last_%d", prefix, int(w))
}

// RecentStats is a player's averages over a trailing window. The loader
// writes upper-case column names.
type RecentStats struct {
	PlayerName string  `json:"PLAYER_NAME" gorm:"column:PLAYER_NAME"`
	PTS        float64 `json:"PTS" gorm:"column:PTS"`
	AST        float64 `json:"AST" gorm:"column:AST"`
	REB        float64 `json:"REB" gorm:"column:REB"`
	STL        float64 `json:"STL" gorm:"column:STL"`
	BLK        float64 `json:"BLK" gorm:"column:BLK"`
	PlusMinus  float64 `json:"PLUS_MINUS" gorm:"column:PLUS_MINUS"`
}

// ByPlayer indexes stat lines by player name.
type ByPlayer map[string]RecentStats

// KeyByPlayer indexes rows by player name. A repeated name keeps the later row.
func KeyByPlayer(rows []RecentStats) ByPlayer {
	keyed := make(ByPlayer, len(rows))
	for _, row := range rows {
		keyed[row.PlayerName] = row
	}
	return keyed
}

// Lookup returns the player's stat line and whether one exists.
func (b ByPlayer) Lookup(name string) (RecentStats, bool) {
	s, ok := b[name]
	return s, ok
}

// WindowError is a custom error type for window-related errors
type WindowError string

// Error implements the error interface
func (e WindowError) Error() string {
	return string(e)
}

const ErrInvalidWindow WindowError = "window must be 5 or 10 games"

// player/player_model.go
package player

// PlayerStat is one row of the team's season per-game stats table.
type PlayerStat struct {
	PlayerName       string  `json:"player_name" gorm:"column:player_name;primaryKey"`
	TeamAbbreviation string  `json:"team_abbreviation" gorm:"column:team_abbreviation"`
	Age              float64 `json:"age" gorm:"column:age"`
	GamesPlayed      int     `json:"gp" gorm:"column:gp"`
	Minutes          float64 `json:"min" gorm:"column:min"`
	Points           float64 `json:"pts" gorm:"column:pts"`
	Rebounds         float64 `json:"reb" gorm:"column:reb"`
	Assists          float64 `json:"ast" gorm:"column:ast"`
	Steals           float64 `json:"stl" gorm:"column:stl"`
	Blocks           float64 `json:"blk" gorm:"column:blk"`
	Turnovers        float64 `json:"tov" gorm:"column:tov"`
	FGPct            float64 `json:"fg_pct" gorm:"column:fg_pct"`
	FG3Pct           float64 `json:"fg3_pct" gorm:"column:fg3_pct"`
	FTPct            float64 `json:"ft_pct" gorm:"column:ft_pct"`
	PlusMinus        float64 `json:"plus_minus" gorm:"column:plus_minus"`
	ImageURL         *string `json:"image_url" gorm:"column:image_url"`
}

func (PlayerStat) TableName() string {
	return "nba_player_stats"
}

// ThreePointAttempt is one league-wide row of three-point shooting.
// FG3Pct is NULL for players without a qualifying attempt.
type ThreePointAttempt struct {
	PlayerName       string   `json:"player_name" gorm:"column:player_name"`
	FG3Pct           *float64 `json:"fg3_pct" gorm:"column:fg3_pct"`
	FG3A             float64  `json:"fg3a" gorm:"column:fg3a"`
	TeamAbbreviation string   `json:"team_abbreviation" gorm:"column:team_abbreviation"`
}

func (ThreePointAttempt) TableName() string {
	return "all_player_3pt"
}

// ImagesByName indexes player image URLs by player name. Players without an
// image are left out.
func ImagesByName(players []PlayerStat) map[string]string {
	images := make(map[string]string, len(players))
	for _, p := range players {
		if p.ImageURL != nil && *p.ImageURL != "" {
			images[p.PlayerName] = *p.ImageURL
		}
	}
	return images
}

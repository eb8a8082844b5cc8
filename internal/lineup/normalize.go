package lineup

import "github.com/DhavalSuthar-24/wolvesboard/internal/models"

// Normalize turns a raw row into a Lineup: empty player slots are dropped
// with slot order kept, and missing numeric fields become 0. Rows are not
// reordered or filtered; selection is the query's job.
func Normalize(row LineupRow) Lineup {
	slots := []*string{row.Player1, row.Player2, row.Player3, row.Player4, row.Player5}

	players := make([]LineupPlayer, 0, len(slots))
	for _, name := range slots {
		if name == nil || *name == "" {
			continue
		}
		players = append(players, LineupPlayer{Name: *name})
	}

	return Lineup{
		GroupName:  row.GroupName,
		LineupSize: row.LineupSize,
		Min:        models.Float(row.Min),
		NetRating:  models.Float(row.NetRating),
		OffRating:  models.Float(row.OffRating),
		DefRating:  models.Float(row.DefRating),
		TSPct:      models.Float(row.TSPct),
		Pace:       models.Float(row.Pace),
		Players:    players,
	}
}

// NormalizeAll normalizes rows in order.
func NormalizeAll(rows []LineupRow) []Lineup {
	lineups := make([]Lineup, len(rows))
	for i, row := range rows {
		lineups[i] = Normalize(row)
	}
	return lineups
}

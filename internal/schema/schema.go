// Package schema creates the backend tables locally. The hosted database
// is managed elsewhere; this is only used with DB_DRIVER=sqlite.
package schema

import (
	"fmt"

	"github.com/DhavalSuthar-24/wolvesboard/internal/lineup"
	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
	"github.com/DhavalSuthar-24/wolvesboard/internal/recent"
	"github.com/DhavalSuthar-24/wolvesboard/internal/record"
	"gorm.io/gorm"
)

// Migrate creates every table the dashboard reads.
func Migrate(db *gorm.DB, tablePrefix string) error {
	err := db.AutoMigrate(
		&player.PlayerStat{},
		&player.ThreePointAttempt{},
		&lineup.LineupRow{},
	)
	if err != nil {
		return err
	}

	for _, w := range recent.Windows {
		if err := db.Table(w.TableName(tablePrefix)).AutoMigrate(&recent.RecentStats{}); err != nil {
			return fmt.Errorf("migrating %s: %w", w.TableName(tablePrefix), err)
		}
	}

	// The record tracker's columns are edited by hand; start with the bookkeeping ones.
	return db.Exec(fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (id INTEGER PRIMARY KEY, created_at DATETIME, updated_at DATETIME)",
		record.TableName,
	)).Error
}

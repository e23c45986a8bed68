// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/DoctorPortal/DoctorPortal/internal/config"
)

// Create builds the Data Source Name for the configured gorm engine.
func Create(dbCfg *config.Config) string {
	db := dbCfg.DB

	switch db.GormEngine {
	case config.EngineMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			db.User,
			db.Password,
			db.Host,
			db.Port,
			db.Name,
			mysqlExtras(db.Extras),
		)
	case config.EnginePostgres:
		return strings.TrimSpace(fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
			db.Host,
			db.Port,
			db.User,
			db.Password,
			db.Name,
			db.Extras,
		))
	default:
		if db.Extras == "" {
			return db.Name
		}

		return db.Name + "?" + db.Extras
	}
}

// mysqlExtras makes sure DATETIME columns scan into time.Time.
func mysqlExtras(extras string) string {
	if strings.Contains(strings.ToLower(extras), "parsetime=") {
		return extras
	}

	if extras == "" {
		return "parseTime=True"
	}

	return extras + "&parseTime=True"
}

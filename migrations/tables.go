package migrations

import (
	"context"
	"database/sql"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

// createAppConfigTable creates the appconfig table holding per-app key/value settings.
// The app manager keeps each app's "enabled" state and installed version here.
func createAppConfigTable() Migration {
	return Migration{
		Name:        "create_appconfig_table",
		Description: "Creates the appconfig table",
		TableName:   constants.TableAppConfig,
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			statements := []string{
				`CREATE TABLE IF NOT EXISTS appconfig (
					appid VARCHAR(32) NOT NULL,
					configkey VARCHAR(64) NOT NULL,
					configvalue TEXT,
					PRIMARY KEY (appid, configkey)
				)`,
				// Only runs when the table was just created, so no IF NOT EXISTS is needed
				`CREATE INDEX appconfig_config_key_index ON appconfig (configkey)`,
			}

			for _, stmt := range statements {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

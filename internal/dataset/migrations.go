package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/plu/internal/common"
)

// SchemaVersion is the dataset database layout written by WriteSQLite.
const SchemaVersion = 1

var schema = []string{
	`CREATE TABLE plu_codes (
		position INTEGER PRIMARY KEY,
		plu TEXT NOT NULL,
		korean TEXT NOT NULL DEFAULT '',
		english TEXT NOT NULL DEFAULT '',
		french TEXT NOT NULL DEFAULT '',
		season TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX idx_plu_codes_plu ON plu_codes(plu)`,
	fmt.Sprintf(`PRAGMA user_version = %d`, SchemaVersion),
}

func migrate(tx *sql.Tx) error {
	for _, query := range schema {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

func checkSchema(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version != SchemaVersion {
		return fmt.Errorf("%w: schema version %d, expected %d", common.ErrInvalidDataset, version, SchemaVersion)
	}
	return nil
}

package corpus

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wafcore/sqlwaf/sqli"
	"github.com/wafcore/sqlwaf/xss"
)

// Flag records one query-log row the detection core classified as an
// attack attempt.
type Flag struct {
	RunID string
	ID    string
	Text  string
	SQLi  bool
	XSS   bool
}

// Scan pulls every row of dbcfg.Table's dbcfg.TextColumn out of db and
// runs IsSQLi/IsXSS over each one, logging and collecting the rows
// that flag. Each call is tagged with a fresh run ID (the way
// sqltest.Fixture tags its ephemeral databases with a UUID) so flagged
// rows can be correlated back to one scan invocation in the logs.
func Scan(ctx context.Context, db *sql.DB, dbcfg DatabaseConfig, logger logrus.FieldLogger) ([]Flag, error) {
	if dbcfg.Table == "" || dbcfg.TextColumn == "" {
		return nil, fmt.Errorf("corpus: database config is missing table/textColumn")
	}

	runID, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	log := logger.WithField("run_id", runID.String())

	idCol := dbcfg.IDColumn
	if idCol == "" {
		idCol = "1"
	}
	query := fmt.Sprintf("select %s, %s from %s", idCol, dbcfg.TextColumn, dbcfg.Table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &ConnectError{Database: dbcfg.Table, Wrapped: err}
	}
	defer rows.Close()

	var flags []Flag
	var scanned int
	for rows.Next() {
		var id, text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, err
		}
		scanned++

		isSQLi := sqli.IsSQLi([]byte(text))
		isXSS := xss.IsXSS([]byte(text))
		if !isSQLi && !isXSS {
			continue
		}

		f := Flag{RunID: runID.String(), ID: id, Text: text, SQLi: isSQLi, XSS: isXSS}
		flags = append(flags, f)
		log.WithFields(logrus.Fields{
			"row_id": id,
			"sqli":   isSQLi,
			"xss":    isXSS,
		}).Warn("corpus: flagged row")
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"scanned": scanned,
		"flagged": len(flags),
	}).Info("corpus: scan complete")

	return flags, nil
}

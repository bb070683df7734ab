package journal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// HistoryRow is the listing view of a journal entry.
type HistoryRow struct {
	Stamp     string
	Succeeded bool
	RunCount  int64
	LastRun   int64
	FirstLine string
}

// / ReadHistory streams up to limit live entries from the journal at
// / dbPath, most recent first, over a read-only connection.
func ReadHistory(dbPath string, limit int64, fn func(row HistoryRow) error) error {
	conn, err := sqlite.OpenConn(dbPath, sqlite.OpenReadOnly)
	if err != nil {
		return err
	}
	defer conn.Close()
	return sqlitex.Execute(conn,
		"SELECT `stamp`, `succeeded`, `run_count`, `last_run`, `source` FROM history_entry "+
			"WHERE `deleted` = 0 ORDER BY `last_run` DESC, `id` DESC LIMIT $limit;",
		&sqlitex.ExecOptions{
			Named: map[string]interface{}{"$limit": limit},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				source := stmt.GetText("source")
				first := strings.TrimSpace(strings.SplitN(source, "\n", 2)[0])
				return fn(HistoryRow{
					Stamp:     stmt.GetText("stamp"),
					Succeeded: stmt.GetInt64("succeeded") != 0,
					RunCount:  stmt.GetInt64("run_count"),
					LastRun:   stmt.GetInt64("last_run"),
					FirstLine: first,
				})
			},
		})
}

// / WriteHistory prints the listing used by "-t history".
func WriteHistory(w io.Writer, dbPath string, limit int64) error {
	return ReadHistory(dbPath, limit, func(row HistoryRow) error {
		status := "ok"
		if !row.Succeeded {
			status = "failed"
		}
		when := time.Unix(row.LastRun, 0).Format("2006-01-02 15:04:05")
		_, err := fmt.Fprintf(w, "%s  %s  %-6s %4d  %s\n", row.Stamp, when, status, row.RunCount, row.FirstLine)
		return err
	})
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/gridkit/gridview/internal/grid"
	"github.com/gridkit/gridview/internal/ui"
	"github.com/gridkit/gridview/internal/ui/table"
	"github.com/gridkit/gridview/internal/util"
)

func newSQLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sql <query>",
		Short: "Run a read-only query and view the result set",
		Long: `Run a read-only SQL query against a PostgreSQL database and view the
result set in the interactive table.

The connection URL comes from --url or the GRIDVIEW_DB_URL environment
variable. Only SELECT-style queries are accepted; this command never
modifies data.`,
		Args: cobra.ExactArgs(1),
		RunE: runSQL,
	}

	cmd.Flags().String("url", "", "PostgreSQL connection URL (default $GRIDVIEW_DB_URL)")
	cmd.Flags().Int("timeout", 60, "Query timeout in seconds")
	addDisplayFlags(cmd)

	return cmd
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := args[0]

	opts, err := displayOpts(cmd)
	if err != nil {
		return err
	}

	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = os.Getenv("GRIDVIEW_DB_URL")
	}
	if url == "" {
		return util.NewError("No database URL").
			WithSuggestions(
				"gridview sql --url postgres://user@host/db \"select ...\"",
				"export GRIDVIEW_DB_URL=postgres://user@host/db",
			).
			Wrap(util.ErrNoDatabaseURL)
	}

	// Refuse anything that looks like a write; the viewer is read-only.
	upperQuery := strings.ToUpper(strings.TrimSpace(query))
	for _, verb := range []string{"INSERT", "UPDATE", "DELETE", "DROP", "CREATE", "ALTER", "TRUNCATE"} {
		if strings.HasPrefix(upperQuery, verb) {
			return util.NewError("Write queries are not supported").
				WithMessage("gridview only views data; it never modifies it").
				WithSuggestion("psql \"$GRIDVIEW_DB_URL\" -c '...'   # Use psql for writes")
		}
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	spin := ui.NewSpinner("Running query")
	spin.Start()

	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		spin.Stop()
		return util.DatabaseConnectionError(url, err)
	}
	defer conn.Close(context.Background())

	rows, err := conn.Query(ctx, query)
	if err != nil {
		spin.Stop()
		return err
	}
	defer rows.Close()

	fieldDescs := rows.FieldDescriptions()
	columns := make([]grid.Column, len(fieldDescs))
	for i, fd := range fieldDescs {
		columns[i] = grid.Column{Title: fd.Name, Field: fd.Name}
	}

	var records []grid.Record
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			spin.Stop()
			return err
		}
		rec := make(grid.Record, len(columns))
		for i, v := range values {
			if i < len(columns) {
				rec[columns[i].Field] = sqlValue(v)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		spin.Stop()
		return err
	}
	spin.Stop()

	title := query
	if len(title) > 60 {
		title = title[:57] + "..."
	}
	return table.DisplayResults(title, columns, records, opts)
}

// sqlValue maps a driver value into the cell variant. NULL becomes the
// zero value (an empty cell); unrecognized types fall back to their
// string form.
func sqlValue(v interface{}) grid.Value {
	switch val := v.(type) {
	case nil:
		return grid.Value{}
	case bool:
		return grid.Bool(val)
	case int16:
		return grid.Number(float64(val))
	case int32:
		return grid.Number(float64(val))
	case int64:
		return grid.Number(float64(val))
	case float32:
		return grid.Number(float64(val))
	case float64:
		return grid.Number(val)
	case time.Time:
		return grid.Instant(val)
	case string:
		return grid.Text(escapeControl(util.ToValidUTF8(val)))
	case []byte:
		return grid.Text(escapeControl(util.ToValidUTF8(string(val))))
	default:
		return grid.Text(fmt.Sprintf("%v", val))
	}
}

// escapeControl makes embedded newlines and tabs visible so one cell
// stays on one table row.
func escapeControl(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

package frm2schema

import (
	"fmt"
	"strings"
)

const (
	DDL_ENGINE  = "InnoDB"
	DDL_CHARSET = "utf8mb4"
)

// RenderCreateTable builds the statement without a trailing newline.
// An empty column list still yields a closed statement.
func RenderCreateTable(tableName string, columns []ColumnGuess) string {
	var ddl strings.Builder
	ddl.WriteString(fmt.Sprintf("CREATE TABLE `%s` (\n", tableName))
	for i, c := range columns {
		ddl.WriteString(c.DDL())
		if i < len(columns)-1 {
			ddl.WriteString(",")
		}
		ddl.WriteString("\n")
	}
	ddl.WriteString(")")
	ddl.WriteString(" ENGINE=" + DDL_ENGINE)
	ddl.WriteString(" DEFAULT CHARSET=" + DDL_CHARSET)
	ddl.WriteString(";")
	return ddl.String()
}

// Package frm2schema guesses a CREATE TABLE statement from a MySQL/MariaDB
// .frm file by scraping identifier-like strings out of it. The binary
// layout is not decoded; column types come from naming heuristics.
package frm2schema

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/pretty"
)

type Schema struct {
	Path      string        `json:"path"`
	TableName string        `json:"table"`
	Columns   []ColumnGuess `json:"columns"`
	DDL       string        `json:"-"`
}

func (s *Schema) DumpJson() []byte {
	result, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	return pretty.Pretty(result)
}

type Reconstructor struct {
	Rules  *Rules
	Logger *log.Logger
}

func NewReconstructor(rules *Rules, logger *log.Logger) *Reconstructor {
	if rules == nil {
		rules = DefaultRules
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Reconstructor{Rules: rules, Logger: logger}
}

// Reconstruct runs the whole pipeline on one file with the default rules.
func Reconstruct(path string) (*Schema, error) {
	return NewReconstructor(nil, nil).Reconstruct(path)
}

func (rc *Reconstructor) Reconstruct(path string) (schema *Schema, err error) {
	frm, err := ReadFrm(path)
	if err != nil {
		return nil, err
	}
	return rc.ReconstructFrm(frm), nil
}

func (rc *Reconstructor) ReconstructFrm(frm *FrmFile) *Schema {
	entry := rc.Logger.WithFields(log.Fields{
		"path":  frm.Path,
		"table": frm.TableName,
	})
	entry.WithField("bytes", frm.Buf.Len()).Debug("read frm file")

	tokens := ExtractTokens(frm.Data())
	entry.WithField("tokens", len(tokens)).Debug("extracted tokens")

	columns := rc.Rules.GuessColumns(tokens)
	entry.WithField("columns", len(columns)).Debug("guessed columns")

	schema := &Schema{
		Path:      frm.Path,
		TableName: frm.TableName,
		Columns:   columns,
		DDL:       RenderCreateTable(frm.TableName, columns),
	}
	if rc.Logger.IsLevelEnabled(log.DebugLevel) {
		entry.Debug(string(schema.DumpJson()))
	}
	return schema
}

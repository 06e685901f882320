package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	frm2schema "github.com/zing22845/go-frm2schema"
)

const usage = "Usage: frm2schema /path/to/table.frm"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stdout, usage)
		return 1
	}
	filePath := args[0]

	logger := log.New()
	cfg, err := frm2schema.LoadLogConfig()
	if err == nil {
		err = cfg.Apply(logger, stderr)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "# Reading: %s\n", filePath)
	rc := frm2schema.NewReconstructor(frm2schema.DefaultRules, logger)
	schema, err := rc.Reconstruct(filePath)
	if err != nil {
		logger.WithField("code", frm2schema.CodeOf(err)).WithError(err).Debug("reconstruct failed")
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, schema.DDL)
	return 0
}

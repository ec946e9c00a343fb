package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/xmi-schema/xmi-go/internal/util"
	"github.com/xmi-schema/xmi-go/pkg/logger"
	"github.com/xmi-schema/xmi-go/pkg/logger/console"
	"github.com/xmi-schema/xmi-go/pkg/payload"
	"github.com/xmi-schema/xmi-go/pkg/payload/file"
	"github.com/xmi-schema/xmi-go/pkg/xmi"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: xmi <validate|convert|schema> [args]")
	fmt.Fprintln(os.Stderr, "  validate [-tolerance t] [-concurrency n] <file...>")
	fmt.Fprintln(os.Stderr, "  convert <in> <out>")
	fmt.Fprintln(os.Stderr, "  schema")
}

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)
	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	}))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "validate":
		os.Exit(runValidate(os.Args[2:]))
	case "convert":
		os.Exit(runConvert(os.Args[2:]))
	case "schema":
		os.Exit(runSchema())
	default:
		usage()
		os.Exit(2)
	}
}

// runValidate loads every given payload and reports rejected records. The
// exit code is non-zero when any record was rejected.
func runValidate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	tolerance := fs.Float64("tolerance", xmi.DefaultTolerance, "coordinate deduplication tolerance")
	concurrency := fs.Int("concurrency", 4, "number of files validated in parallel")
	fs.Parse(args)

	files := fs.Args()
	if len(files) == 0 {
		logger.Error("no input files")
		return 2
	}

	source := file.NewFileSource()
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*concurrency)

	var mu sync.Mutex
	rejected := false

	for _, path := range files {
		path := path
		g.Go(func() error {
			runID, err := gonanoid.New()
			if err != nil {
				return err
			}

			doc, err := payload.Load(ctx, source, path)
			if err != nil {
				return err
			}

			model := xmi.NewModel(xmi.WithTolerance(*tolerance))
			model.Load(doc)

			for _, e := range model.Errors {
				logger.Warn(
					"record rejected",
					"run", runID,
					"file", path,
					"entity_type", e.EntityType,
					"index", e.Index,
					"message", e.Message,
				)
			}
			if len(model.Errors) > 0 {
				mu.Lock()
				rejected = true
				mu.Unlock()
			}

			logger.Info(
				"validated",
				"run", runID,
				"file", path,
				"entities", len(model.Entities),
				"relationships", len(model.Relationships),
				"errors", len(model.Errors),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("validation failed", "err", err)
		return 1
	}
	if rejected {
		return 1
	}
	return 0
}

// runConvert loads a payload and writes it back in canonical form.
func runConvert(args []string) int {
	if len(args) != 2 {
		usage()
		return 2
	}
	in, out := args[0], args[1]

	doc, err := payload.Load(context.Background(), file.NewFileSource(), in)
	if err != nil {
		logger.Error("failed to load payload", "file", in, "err", err)
		return 1
	}

	model := xmi.NewModel()
	model.Load(doc)

	data, err := json.MarshalIndent(model.Dump(), "", "  ")
	if err != nil {
		logger.Error("failed to serialize model", "err", err)
		return 1
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		logger.Error("failed to write output", "file", out, "err", err)
		return 1
	}

	logger.Info(
		"converted",
		"in", in,
		"out", out,
		"entities", len(model.Entities),
		"errors", len(model.Errors),
	)
	return 0
}

// runSchema prints the JSON Schema of the wire format.
func runSchema() int {
	data, err := json.MarshalIndent(xmi.DocumentSchema(), "", "  ")
	if err != nil {
		logger.Error("failed to serialize schema", "err", err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	log "github.com/jensneuse/abstractlogger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/llehouerou/go-graphql-weaver/internal/manifest"
)

const version = "0.1.0"

var errPrettyPayload = errors.New("--pretty and --payload cannot be combined")

var versionCmd = &cli.Command{
	Name:  "version",
	Usage: "print the version",
	Action: func(ctx *cli.Context) error {
		_, _ = fmt.Fprintln(ctx.App.Writer, version)
		return nil
	},
}

var renderCmd = &cli.Command{
	Name:  "render",
	Usage: "render a manifest as a graphql document",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "the manifest to render", Required: true},
		&cli.BoolFlag{Name: "pretty", Usage: "print the document on multiple lines"},
		&cli.BoolFlag{Name: "payload", Usage: "print the json request body instead of the document"},
		&cli.StringFlag{Name: "variables", Usage: "variable values of the request body, as a yaml or json object"},
		&cli.BoolFlag{Name: "debug", Usage: "log how the manifest is compiled"},
	},
	Action: render,
}

func logger(debug bool) (*zap.Logger, log.Level, error) {
	if !debug {
		logger, err := zap.NewProductionConfig().Build()
		return logger, log.InfoLevel, err
	}

	logger, err := zap.NewDevelopmentConfig().Build()
	return logger, log.DebugLevel, err
}

func render(ctx *cli.Context) error {
	if ctx.Bool("pretty") && ctx.Bool("payload") {
		return errPrettyPayload
	}

	zapLogger, level, err := logger(ctx.Bool("debug"))
	if err != nil {
		return fmt.Errorf("unable to build logger: %w", err)
	}
	defer zapLogger.Sync() // nolint

	m, err := manifest.Load(ctx.String("file"))
	if err != nil {
		return err
	}
	op, err := manifest.NewCompiler(log.NewZapLogger(zapLogger, level)).Compile(m)
	if err != nil {
		return err
	}

	var out []byte
	switch {
	case ctx.Bool("payload"):
		var variables map[string]any
		if raw := ctx.String("variables"); raw != "" {
			if err := yaml.Unmarshal([]byte(raw), &variables); err != nil {
				return fmt.Errorf("unable to parse variables: %w", err)
			}
		}
		req, err := op.Request(variables)
		if err != nil {
			return err
		}
		if out, err = req.Body(); err != nil {
			return err
		}
	case ctx.Bool("pretty"):
		document, err := op.Pretty()
		if err != nil {
			return err
		}
		out = []byte(document)
	default:
		document, err := op.Build()
		if err != nil {
			return err
		}
		out = []byte(document + "\n")
	}

	_, err = ctx.App.Writer.Write(out)
	return err
}

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "weaver"
	app.Description = "Render declarative manifests as GraphQL documents and request payloads"
	app.Usage = renderCmd.Usage
	app.Writer = w
	app.Commands = []*cli.Command{
		versionCmd,
		renderCmd,
	}
	return app
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		_, _ = fmt.Fprint(os.Stderr, err.Error()+"\n")
		os.Exit(1)
	}
}

package addrgen

import (
	"bytes"
	"go/format"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

// Generator renders address kinds described by a Config into Go source.
type Generator struct {
	logger *slog.Logger
	fs     afero.Fs
}

// New creates a Generator that reads and writes files through fs.
func New(logger *slog.Logger, fs afero.Fs) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger, fs: fs}
}

// Generate renders the file described by config and returns gofmt-formatted source.
func (g *Generator) Generate(config *Config) ([]byte, error) {
	model, err := buildModel(config)
	if err != nil {
		return nil, errors.Wrap(err, "invalid addrgen config")
	}

	for _, t := range model.Types {
		g.logger.Debug("generating address kind",
			slog.String("Package", model.Package),
			slog.String("Type", t.Name),
			slog.Bool("JSON", t.JSON),
			slog.Bool("Text", t.Text),
		)
	}
	for _, f := range model.Formatters {
		g.logger.Debug("generating formatter", slog.String("Type", f.Name), slog.String("Layout", f.Template))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, model); err != nil {
		return nil, errors.Wrap(err, "failed to render address kinds")
	}

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "generated source for package %s does not parse", model.Package)
	}

	return source, nil
}

// RunOptions adjusts a single Run.
type RunOptions struct {
	// Output overrides the output file named in the config
	Output string
	// DryRun writes the generated source to Stdout instead of the output file
	DryRun bool
	Stdout io.Writer
}

// Run loads the config at configPath, generates its file and writes it to the
// configured output, returning the path written. With options.DryRun set nothing is
// written to the filesystem.
func (g *Generator) Run(configPath string, options RunOptions) (string, error) {
	config, err := LoadConfig(g.fs, configPath)
	if err != nil {
		return "", err
	}
	if options.Output != "" {
		config.Output = options.Output
	}

	source, err := g.Generate(config)
	if err != nil {
		return "", err
	}

	outputPath := config.OutputPath(configPath)
	if options.DryRun {
		if options.Stdout == nil {
			return "", errors.New("dry run requested without a writer for the output")
		}
		if _, err := options.Stdout.Write(source); err != nil {
			return "", errors.Wrap(err, "could not write generated source")
		}
		g.logger.Debug("dry run, skipped writing", slog.String("Path", outputPath))
		return outputPath, nil
	}

	if err := afero.WriteFile(g.fs, outputPath, source, 0o644); err != nil {
		return "", errors.Wrapf(err, "could not write '%s'", outputPath)
	}

	g.logger.Info("wrote address kinds",
		slog.String("Path", outputPath),
		slog.Int("Types", len(config.Types)),
		slog.Int("Formatters", len(config.Formatters)),
	)

	return outputPath, nil
}

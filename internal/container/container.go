package container

import (
	"context"
	"fmt"
	"io"

	"catalogtree/converter/internal/builder"
	"catalogtree/converter/internal/config"
	"catalogtree/converter/internal/patch"
	"catalogtree/converter/internal/service"
	"catalogtree/converter/internal/source"
	"catalogtree/converter/internal/writer"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Loader  source.Loader
	Writer  writer.Writer
	Service *service.Service
}

// New creates a new container with all dependencies initialized.
// The report is printed to out.
func New(cfg *config.Config, out io.Writer) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	outputPath, err := cfg.OutputPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path: %w", err)
	}
	log.Infof("Source: %s", cfg.Source.Path)
	log.Infof("Output: %s", outputPath)

	container.Loader = source.NewLoader(cfg.Source)
	container.Writer = writer.NewFileWriter(outputPath)

	container.Service = service.NewService(
		container.Loader,
		patch.NewPatcher(cfg.Patches),
		builder.NewTreeBuilder(cfg.Catalog.RootTitle, cfg.Catalog.RootSlug),
		container.Writer,
		out,
	)

	return container, nil
}

// Run executes one conversion
func (c *Container) Run(ctx context.Context) error {
	stats, err := c.Service.Run(ctx)
	if err != nil {
		return err
	}

	log.Debugf("Sections: %d, types: %d, subtypes: %d", stats.Sections, stats.Types, stats.Subtypes)
	return nil
}

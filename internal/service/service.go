package service

import (
	"context"
	"fmt"
	"io"

	"catalogtree/converter/internal/builder"
	"catalogtree/converter/internal/domain"
	"catalogtree/converter/internal/parser"
	"catalogtree/converter/internal/patch"
	"catalogtree/converter/internal/source"
	"catalogtree/converter/internal/writer"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	loader  source.Loader
	patcher *patch.Patcher
	builder *builder.TreeBuilder
	writer  writer.Writer
	out     io.Writer
}

func NewService(
	loader source.Loader,
	patcher *patch.Patcher,
	builder *builder.TreeBuilder,
	writer writer.Writer,
	out io.Writer,
) *Service {
	return &Service{
		loader:  loader,
		patcher: patcher,
		builder: builder,
		writer:  writer,
		out:     out,
	}
}

// Convert runs load → patch → parse → build and returns the navigation tree.
func (s *Service) Convert(ctx context.Context) (domain.Node, error) {
	text, err := s.loader.Load(ctx)
	if err != nil {
		return domain.Node{}, fmt.Errorf("failed to load source: %w", err)
	}
	log.Infof("📄 Loaded source document (%d bytes)", len(text))

	text = s.patcher.Apply(text)

	catalog, err := parser.ParseCatalog(text)
	if err != nil {
		return domain.Node{}, fmt.Errorf("failed to parse source: %w", err)
	}

	return s.builder.Build(catalog), nil
}

// Run converts the source, writes the tree and prints the statistics.
func (s *Service) Run(ctx context.Context) (domain.Stats, error) {
	root, err := s.Convert(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	path, err := s.writer.Write(root)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to write catalog tree: %w", err)
	}

	stats := domain.CountTree(root)
	log.Infof("✅ Catalog tree written to %s", path)

	if err := writer.Report(s.out, path, stats); err != nil {
		log.Warnf("Failed to print report: %v", err)
	}

	return stats, nil
}

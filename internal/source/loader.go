package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"catalogtree/converter/internal/config"
	"catalogtree/converter/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Loader reads the raw source document.
type Loader interface {
	Load(ctx context.Context) (string, error)
}

type loader struct {
	path       string
	format     domain.SourceFormat
	httpClient *resty.Client
}

func NewLoader(cfg config.SourceConfig) Loader {
	l := &loader{
		path:   cfg.Path,
		format: domain.SourceFormat(cfg.Format),
	}

	if isRemote(cfg.Path) {
		timeout := time.Duration(cfg.Timeout) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}

		client := resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json, text/markdown, text/plain;q=0.9, */*;q=0.8")

		if cfg.Proxy != "" {
			client.SetProxy(cfg.Proxy)
			log.Infof("🔗 Using proxy for source download: %s", cfg.Proxy)
		}

		l.httpClient = client
	}

	return l
}

// Load returns the source text with any markdown wrapping removed.
func (l *loader) Load(ctx context.Context) (string, error) {
	var (
		raw string
		err error
	)

	if l.httpClient != nil {
		raw, err = l.fetch(ctx)
	} else {
		raw, err = l.read()
	}
	if err != nil {
		return "", err
	}

	if !l.isMarkdown() {
		return raw, nil
	}

	body, found := ExtractJSON([]byte(raw))
	if !found {
		log.Debugf("No fenced JSON block in %s, using the whole document", l.path)
		return raw, nil
	}

	log.Debugf("Extracted fenced JSON block (%d bytes) from %s", len(body), l.path)
	return string(body), nil
}

func (l *loader) read() (string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrFileNotFound, l.path)
		}
		return "", fmt.Errorf("%w: failed to read %s: %v", domain.ErrFileNotFound, l.path, err)
	}

	log.Debugf("Read %d bytes from %s", len(data), l.path)
	return string(data), nil
}

func (l *loader) fetch(ctx context.Context) (string, error) {
	resp, err := l.httpClient.R().
		SetContext(ctx).
		Get(l.path)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return "", fmt.Errorf("%w: failed to fetch %s: %v", domain.ErrFileNotFound, l.path, err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("%w: HTTP error fetching %s: %d %s", domain.ErrFileNotFound, l.path, resp.StatusCode(), resp.Status())
	}

	body := resp.String()
	log.Debugf("Fetched %d bytes from %s", len(body), l.path)
	return body, nil
}

func (l *loader) isMarkdown() bool {
	switch l.format {
	case domain.SourceFormatMarkdown:
		return true
	case domain.SourceFormatJSON:
		return false
	}

	p := l.path
	if l.httpClient != nil {
		// drop query and fragment so "catalog.md?raw=1" still counts
		if i := strings.IndexAny(p, "?#"); i >= 0 {
			p = p[:i]
		}
	}
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".md" || ext == ".markdown"
}

func isRemote(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

package model

import (
	"log/slog"
	"sync"
)

// Loader deserializes each artifact once and hands out the cached model.
// Entries are never invalidated; restart the process to pick up a new artifact.
type Loader struct {
	mu     sync.Mutex
	models map[string]*Linear
	logger *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{
		models: make(map[string]*Linear),
		logger: logger.With("component", "model-loader"),
	}
}

// Load returns the model stored at path, reading it on first use
func (l *Loader) Load(path string) (*Linear, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.models[path]; ok {
		return m, nil
	}

	m, err := LoadFile(path)
	if err != nil {
		l.logger.Error("failed to load model", "path", path, "error", err)
		return nil, err
	}

	l.models[path] = m
	l.logger.Info("model loaded",
		"path", path,
		"name", m.info.Name,
		"version", m.info.Version,
		"features", len(m.info.Features),
	)
	return m, nil
}

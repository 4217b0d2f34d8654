package inbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"express-sms/internal/model"
	"express-sms/internal/pickup/repository"
	pkgLog "express-sms/pkg/log"
)

// ErrUnsupportedFormat is returned for export files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported inbox format")

// export is the document shape of an SMS export: a list of messages, newest first.
type export struct {
	Messages []model.Message `json:"messages" yaml:"messages"`
}

type implSource struct {
	path string
	l    pkgLog.Logger
}

// New creates a message source reading an exported SMS file.
func New(path string, l pkgLog.Logger) repository.MessageSource {
	return &implSource{path: path, l: l}
}

// ReadRecent returns up to limit messages from the head of the export.
// A missing export file is an empty inbox.
func (s *implSource) ReadRecent(ctx context.Context, limit int) ([]model.Message, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.l.Warnf(ctx, "inbox: export %s not found, treating as empty", s.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read inbox export: %w", err)
	}

	var doc export
	switch ext := strings.ToLower(filepath.Ext(s.path)); ext {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode inbox export: %w", err)
	}

	messages := doc.Messages
	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}
	s.l.Debugf(ctx, "inbox: read %d of %d messages", len(messages), len(doc.Messages))
	return messages, nil
}

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"wallet-engine/internal/core/domain"

	"github.com/rs/zerolog"
)

// FileSink implements ports.ExportSink by writing payloads under a directory.
// Files are written to a temp name and renamed so readers never see a partial export.
type FileSink struct {
	dir string
	log zerolog.Logger
}

// NewFileSink creates a sink rooted at dir. The directory is created on first save.
func NewFileSink(dir string, log zerolog.Logger) *FileSink {
	return &FileSink{dir: dir, log: log}
}

// Save writes the payload as dir/filename and returns the path.
func (s *FileSink) Save(_ context.Context, payload domain.ExportPayload) (string, error) {
	name := filepath.Base(payload.Filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("invalid export filename %q", payload.Filename)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := writeFile(path, payload.Data, 0o644); err != nil {
		return "", fmt.Errorf("write export %s: %w", name, err)
	}

	s.log.Info().Str("path", path).Int("rows", payload.Rows).Str("format", string(payload.Format)).Msg("export written")
	return path, nil
}

func writeFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

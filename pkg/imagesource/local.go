package imagesource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalSource reads images from a directory on the local filesystem.
// All paths are resolved inside baseDir; attempts to escape it fail with
// ErrInvalidPath.
type LocalSource struct {
	baseDir     string
	maxBytes    int64
	readTimeout time.Duration
}

// LocalOption configures LocalSource.
type LocalOption func(*LocalSource)

// WithLocalMaxBytes sets the largest image LocalSource will read.
func WithLocalMaxBytes(n int64) LocalOption {
	return func(s *LocalSource) {
		if n > 0 {
			s.maxBytes = n
		}
	}
}

// WithLocalReadTimeout bounds each Open call in addition to the caller's context.
func WithLocalReadTimeout(d time.Duration) LocalOption {
	return func(s *LocalSource) {
		s.readTimeout = d
	}
}

// NewLocalSource creates a source rooted at baseDir. The directory must exist.
func NewLocalSource(baseDir string, opts ...LocalOption) (*LocalSource, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	info, err := os.Stat(absBaseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: base directory %s: %v", ErrInvalidConfig, absBaseDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: base directory %s is not a directory", ErrInvalidConfig, absBaseDir)
	}

	s := &LocalSource{
		baseDir:  absBaseDir,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *LocalSource) Open(ctx context.Context, path string) (*Image, error) {
	if s.readTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.readTimeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if info.Size() > s.maxBytes {
		return nil, fmt.Errorf("image %s is %d bytes, limit %d: %w", path, info.Size(), s.maxBytes, ErrFileTooLarge)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	data, err := readLimited(f, s.maxBytes)
	if err != nil {
		return nil, err
	}

	// The read itself is not interruptible; report cancellation that
	// happened while it ran.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return newImage(path, data)
}

func (s *LocalSource) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}
	absPath, err := s.resolvePath(path)
	if err != nil {
		return false
	}
	info, err := os.Stat(absPath)
	return err == nil && !info.IsDir()
}

// resolvePath validates and resolves a path within the base directory.
func (s *LocalSource) resolvePath(path string) (string, error) {
	if path == "" || strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	absPath, err := filepath.Abs(filepath.Join(s.baseDir, filepath.Clean(path)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	return absPath, nil
}

package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"somni-voice-assistant/pkg/log"
)

const (
	defaultMinBytes = 100
	defaultMaxBytes = 25 * 1024 * 1024

	tempPrefix     = "temp_audio_"
	responsePrefix = "response_"

	suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLen      = 6
)

// Store validates uploads into transient artifacts and allocates paths for
// synthesized ones.
type Store struct {
	cfg Config
	l   log.Logger
	now func() time.Time
}

// New creates a Store, creating the temp and output directories.
func New(l log.Logger, cfg Config) (*Store, error) {
	if cfg.MinBytes <= 0 {
		cfg.MinBytes = defaultMinBytes
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = DefaultFormat
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.PublicPath == "" {
		cfg.PublicPath = "/static/audio"
	}

	for _, dir := range []string{cfg.TempDir, cfg.OutputDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create audio dir %s: %w", dir, err)
		}
	}

	return &Store{cfg: cfg, l: l, now: time.Now}, nil
}

// Accept validates one upload and persists it as a transient artifact. On
// success the caller owns the artifact and must Release it; on error nothing
// is left on disk.
func (s *Store) Accept(ctx context.Context, in AcceptInput) (*Artifact, error) {
	if strings.TrimSpace(in.Filename) == "" || in.Reader == nil {
		return nil, ErrNoFile
	}

	format := ResolveFormat(in.DeclaredMIME, in.Filename, s.cfg.DefaultFormat)

	name, err := s.fileName(tempPrefix, in.SessionID, format)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(filepath.Join(s.cfg.TempDir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create temp audio: %w", err)
	}
	art := &Artifact{Path: f.Name(), Format: format}

	// One byte past the limit is enough to know the upload is too large.
	n, copyErr := io.Copy(f, io.LimitReader(in.Reader, s.cfg.MaxBytes+1))
	closeErr := f.Close()
	art.Size = n

	if err := firstErr(copyErr, closeErr); err != nil {
		s.discard(ctx, art)
		return nil, fmt.Errorf("write temp audio: %w", err)
	}
	if n < s.cfg.MinBytes {
		s.discard(ctx, art)
		return nil, ErrTooSmall
	}
	if n > s.cfg.MaxBytes {
		s.discard(ctx, art)
		return nil, ErrTooLarge
	}

	s.l.Debugf(ctx, "accepted audio path=%s size=%d format=%s", art.Path, art.Size, art.Format)
	return art, nil
}

// OutputArtifact allocates a unique served path for a synthesized reply.
// Nothing is written yet.
func (s *Store) OutputArtifact(sessionID, format string) (*Artifact, error) {
	name, err := s.fileName(responsePrefix, sessionID, format)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Path:   filepath.Join(s.cfg.OutputDir, name),
		Format: format,
		URL:    path.Join(s.cfg.PublicPath, name),
	}, nil
}

// OutputDir is the directory served at PublicPath.
func (s *Store) OutputDir() string { return s.cfg.OutputDir }

// PublicPath is the URL prefix of served artifacts.
func (s *Store) PublicPath() string { return s.cfg.PublicPath }

// fileName is {prefix}{session}_{unixnano}_{random}.{ext}. The random suffix
// keeps concurrent uploads within one nanosecond apart.
func (s *Store) fileName(prefix, sessionID, format string) (string, error) {
	suffix, err := gonanoid.Generate(suffixAlphabet, suffixLen)
	if err != nil {
		return "", fmt.Errorf("generate file suffix: %w", err)
	}
	return fmt.Sprintf("%s%s_%d_%s.%s", prefix, sanitize(sessionID), s.now().UnixNano(), suffix, format), nil
}

func (s *Store) discard(ctx context.Context, art *Artifact) {
	if err := art.Release(); err != nil {
		s.l.Warnf(ctx, "remove rejected audio %s: %v", art.Path, err)
	}
}

// sanitize keeps session ids safe inside file names.
func sanitize(id string) string {
	if id == "" {
		return "anonymous"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, id)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

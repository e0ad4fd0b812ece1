package audio

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"sync"
	"time"
)

// Artifact is an audio payload on disk. Upload artifacts are transient and
// must be released; synthesized ones stay until the janitor prunes them.
type Artifact struct {
	Path   string
	Size   int64
	Format string
	// URL is set for artifacts served to clients.
	URL string

	once       sync.Once
	releaseErr error
}

// MIME returns the content type matching Format.
func (a *Artifact) MIME() string {
	return mimeForFormat(a.Format)
}

// Open opens the artifact for reading.
func (a *Artifact) Open() (io.ReadCloser, error) {
	return os.Open(a.Path)
}

// Release deletes the backing file. Only the first call touches the
// filesystem; later calls return the first result.
func (a *Artifact) Release() error {
	a.once.Do(func() {
		err := os.Remove(a.Path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			a.releaseErr = err
		}
	})
	return a.releaseErr
}

// Config bounds uploads and locates files.
type Config struct {
	MinBytes      int64
	MaxBytes      int64
	DefaultFormat string
	TempDir       string
	OutputDir     string
	PublicPath    string
	Retention     time.Duration
	CleanupCron   string
}

// AcceptInput is one uploaded clip.
type AcceptInput struct {
	SessionID    string
	Reader       io.Reader
	DeclaredMIME string
	Filename     string
}

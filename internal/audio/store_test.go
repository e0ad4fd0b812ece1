package audio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "somni-voice-assistant/pkg/errors"
	"somni-voice-assistant/pkg/log"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(log.NewNop(), Config{
		MinBytes:   100,
		MaxBytes:   25 * 1024 * 1024,
		TempDir:    t.TempDir(),
		OutputDir:  t.TempDir(),
		PublicPath: "/static/audio",
	})
	require.NoError(t, err)
	return s
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestAccept_SizeBoundaries(t *testing.T) {
	ctx := context.Background()
	const max = 25 * 1024 * 1024

	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{"empty", 0, ErrTooSmall},
		{"99 bytes", 99, ErrTooSmall},
		{"100 bytes", 100, nil},
		{"exactly max", max, nil},
		{"max plus one", max + 1, ErrTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)

			art, err := s.Accept(ctx, AcceptInput{
				SessionID:    "sess-1",
				Reader:       bytes.NewReader(make([]byte, tc.size)),
				DeclaredMIME: "audio/webm",
				Filename:     "recording.webm",
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.True(t, pkgErrors.IsKind(err, pkgErrors.KindValidation))
				assert.Nil(t, art)
				assert.Empty(t, dirEntries(t, s.cfg.TempDir), "rejected upload must not leave a file")
				return
			}

			require.NoError(t, err)
			assert.EqualValues(t, tc.size, art.Size)
			assert.FileExists(t, art.Path)

			require.NoError(t, art.Release())
			assert.NoFileExists(t, art.Path)
		})
	}
}

func TestAccept_NoFile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Accept(context.Background(), AcceptInput{
		SessionID: "sess-1",
		Reader:    strings.NewReader(strings.Repeat("x", 500)),
		Filename:  "  ",
	})
	assert.ErrorIs(t, err, ErrNoFile)
	assert.Equal(t, "no file selected", pkgErrors.Message(err))
	assert.Empty(t, dirEntries(t, s.cfg.TempDir))
}

func TestAccept_NamingAndFormat(t *testing.T) {
	s := newTestStore(t)

	art, err := s.Accept(context.Background(), AcceptInput{
		SessionID: "sess-1",
		Reader:    strings.NewReader(strings.Repeat("x", 500)),
		Filename:  "blob",
	})
	require.NoError(t, err)
	defer art.Release()

	base := filepath.Base(art.Path)
	assert.True(t, strings.HasPrefix(base, "temp_audio_sess-1_"), base)
	assert.True(t, strings.HasSuffix(base, ".webm"), base)
	assert.Equal(t, "webm", art.Format)
	assert.Equal(t, "audio/webm", art.MIME())
	assert.Equal(t, s.cfg.TempDir, filepath.Dir(art.Path))
}

func TestAccept_ConcurrentSameSessionDoNotCollide(t *testing.T) {
	s := newTestStore(t)

	const n = 20
	paths := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			art, err := s.Accept(context.Background(), AcceptInput{
				SessionID: "same",
				Reader:    strings.NewReader(strings.Repeat("x", 200)),
				Filename:  "a.wav",
			})
			if assert.NoError(t, err) {
				paths[i] = art.Path
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, p := range paths {
		assert.False(t, seen[p], "duplicate path %s", p)
		seen[p] = true
	}
	assert.Len(t, dirEntries(t, s.cfg.TempDir), n)
}

type failingReader struct{ n int }

func (f *failingReader) Read(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errors.New("connection reset")
	}
	k := copy(p, bytes.Repeat([]byte("x"), min(len(p), f.n)))
	f.n -= k
	return k, nil
}

func TestAccept_ReadErrorCleansUp(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Accept(context.Background(), AcceptInput{
		SessionID: "sess-1",
		Reader:    &failingReader{n: 300},
		Filename:  "a.webm",
	})
	require.Error(t, err)
	assert.Empty(t, dirEntries(t, s.cfg.TempDir))
}

func TestArtifact_ReleaseExactlyOnce(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "temp_audio_x.webm")
	require.NoError(t, os.WriteFile(p, []byte("data"), 0o600))

	art := &Artifact{Path: p, Format: "webm"}
	require.NoError(t, art.Release())
	assert.NoFileExists(t, p)

	// A new file at the same path must survive a second Release.
	require.NoError(t, os.WriteFile(p, []byte("other"), 0o600))
	require.NoError(t, art.Release())
	assert.FileExists(t, p)
}

func TestArtifact_Open(t *testing.T) {
	s := newTestStore(t)
	art, err := s.Accept(context.Background(), AcceptInput{
		SessionID: "s",
		Reader:    strings.NewReader(strings.Repeat("z", 150)),
		Filename:  "a.mp3",
	})
	require.NoError(t, err)
	defer art.Release()

	rc, err := art.Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Len(t, data, 150)
}

func TestOutputArtifact(t *testing.T) {
	s := newTestStore(t)

	a, err := s.OutputArtifact("sess-9", "mp3")
	require.NoError(t, err)
	b, err := s.OutputArtifact("sess-9", "mp3")
	require.NoError(t, err)

	assert.NotEqual(t, a.Path, b.Path)
	assert.True(t, strings.HasPrefix(filepath.Base(a.Path), "response_sess-9_"))
	assert.Equal(t, s.OutputDir(), filepath.Dir(a.Path))
	assert.Equal(t, "/static/audio/"+filepath.Base(a.Path), a.URL)
	assert.NoFileExists(t, a.Path)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "anonymous", sanitize(""))
	assert.Equal(t, "abc-123", sanitize("abc-123"))
	assert.Equal(t, "______etc_passwd", sanitize("../../etc/passwd"))
}

package scanner

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheerioskun/grepninja/internal/errs"
	"github.com/cheerioskun/grepninja/internal/models"
)

func collect(t *testing.T, src *LineSource) []models.LineRecord {
	t.Helper()
	var recs []models.LineRecord
	for {
		rec, ok := src.Next()
		if !ok {
			return recs
		}
		rec.Content = append([]byte(nil), rec.Content...)
		recs = append(recs, rec)
	}
}

func setupFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/logs/app.log", []byte("one\ntwo\nthree\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/logs/partial.log", []byte("first\nlast"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/logs/empty.log", nil, 0644))
	require.NoError(t, fs.MkdirAll("/logs/archive", 0755))
	return fs
}

func TestOpenFile(t *testing.T) {
	opener := NewOpener(setupFs(t), nil)

	src, err := opener.Open("/logs/app.log")
	require.NoError(t, err)
	defer src.Close()

	recs := collect(t, src)
	require.Len(t, recs, 3)
	for i, want := range []string{"one", "two", "three"} {
		assert.Equal(t, want, string(recs[i].Content))
		assert.Equal(t, i+1, recs[i].Number)
		assert.False(t, recs[i].Unterminated)
	}
	assert.NoError(t, src.Err())
	assert.Equal(t, 3, src.Lines())
	assert.Equal(t, "/logs/app.log", src.Label())
}

func TestUnterminatedLastLine(t *testing.T) {
	src, err := NewOpener(setupFs(t), nil).Open("/logs/partial.log")
	require.NoError(t, err)
	defer src.Close()

	recs := collect(t, src)
	require.Len(t, recs, 2)
	assert.Equal(t, "last", string(recs[1].Content))
	assert.True(t, recs[1].Unterminated)
	assert.False(t, recs[0].Unterminated)
}

func TestEmptyFile(t *testing.T) {
	src, err := NewOpener(setupFs(t), nil).Open("/logs/empty.log")
	require.NoError(t, err)
	defer src.Close()

	assert.Empty(t, collect(t, src))
	assert.NoError(t, src.Err())
}

func TestNextAfterExhaustion(t *testing.T) {
	src, err := NewOpener(setupFs(t), nil).Open("/logs/app.log")
	require.NoError(t, err)
	defer src.Close()

	collect(t, src)
	_, ok := src.Next()
	assert.False(t, ok)
}

func TestOpenDirectory(t *testing.T) {
	_, err := NewOpener(setupFs(t), nil).Open("/logs/archive")
	assert.ErrorIs(t, err, errs.ErrIsDirectory)
}

func TestOpenMissing(t *testing.T) {
	_, err := NewOpener(setupFs(t), nil).Open("/logs/missing.log")
	require.Error(t, err)

	var openErr *errs.OpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, "/logs/missing.log", openErr.Source)
	assert.False(t, errors.Is(err, errs.ErrIsDirectory))
}

func TestOpenStdin(t *testing.T) {
	src, err := NewOpener(afero.NewMemMapFs(), strings.NewReader("a\nb\n")).Open(models.StdinSentinel)
	require.NoError(t, err)

	recs := collect(t, src)
	require.Len(t, recs, 2)
	assert.Equal(t, models.StdinLabel, src.Label())
	assert.NoError(t, src.Close())
}

func TestOpenStdinUnavailable(t *testing.T) {
	_, err := NewOpener(afero.NewMemMapFs(), nil).Open(models.StdinSentinel)

	var openErr *errs.OpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, models.StdinLabel, openErr.Source)
}

func TestLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	src, err := NewOpener(afero.NewMemMapFs(), strings.NewReader(long+"\nshort\n")).Open(models.StdinSentinel)
	require.NoError(t, err)

	recs := collect(t, src)
	require.Len(t, recs, 2)
	assert.Len(t, recs[0].Content, len(long))
	assert.Equal(t, "short", string(recs[1].Content))
}

func TestReadErrorEndsSource(t *testing.T) {
	r := io.MultiReader(strings.NewReader("ok\npart"), iotest.ErrReader(errors.New("device gone")))
	src, err := NewOpener(afero.NewMemMapFs(), r).Open(models.StdinSentinel)
	require.NoError(t, err)

	recs := collect(t, src)
	require.Len(t, recs, 2)
	assert.Equal(t, "part", string(recs[1].Content))

	var openErr *errs.OpenError
	require.True(t, errors.As(src.Err(), &openErr))
	assert.Equal(t, models.StdinLabel, openErr.Source)
	assert.Contains(t, src.Err().Error(), "device gone")
}

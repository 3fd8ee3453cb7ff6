package scanner

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/cheerioskun/grepninja/internal/errs"
	"github.com/cheerioskun/grepninja/internal/models"
)

// LineSource yields the lines of one target, front to back, exactly once
type LineSource struct {
	id     string
	reader *bufio.Reader
	closer io.Closer
	line   int
	done   bool
	err    error
}

// Opener opens targets on a filesystem, with stdin standing in for "-"
type Opener struct {
	fs    afero.Fs
	stdin io.Reader
}

// NewOpener creates a new Opener with the given filesystem and stdin reader
func NewOpener(fs afero.Fs, stdin io.Reader) *Opener {
	return &Opener{fs: fs, stdin: stdin}
}

// Open prepares a LineSource for id. Directories are reported with
// errs.ErrIsDirectory before any read; other failures are *errs.OpenError.
func (o *Opener) Open(id string) (*LineSource, error) {
	if id == models.StdinSentinel {
		if o.stdin == nil {
			return nil, errs.NewOpenError(models.StdinLabel, fmt.Errorf("no standard input"))
		}
		return newLineSource(id, o.stdin, nil), nil
	}

	info, err := o.fs.Stat(id)
	if err != nil {
		return nil, errs.NewOpenError(id, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", id, errs.ErrIsDirectory)
	}

	file, err := o.fs.Open(id)
	if err != nil {
		return nil, errs.NewOpenError(id, err)
	}

	return newLineSource(id, file, file), nil
}

func newLineSource(id string, r io.Reader, closer io.Closer) *LineSource {
	return &LineSource{
		id:     id,
		reader: bufio.NewReaderSize(r, 64*1024),
		closer: closer,
	}
}

// Next returns the next line, or false once the source is exhausted or
// a read fails
func (s *LineSource) Next() (models.LineRecord, bool) {
	if s.done {
		return models.LineRecord{}, false
	}

	data, err := s.reader.ReadBytes('\n')
	if len(data) == 0 {
		s.finish(err)
		return models.LineRecord{}, false
	}

	s.line++
	rec := models.LineRecord{Number: s.line}
	if data[len(data)-1] == '\n' {
		rec.Content = data[:len(data)-1]
	} else {
		rec.Content = data
		rec.Unterminated = true
	}

	if err != nil {
		s.finish(err)
	}
	return rec, true
}

func (s *LineSource) finish(err error) {
	s.done = true
	if err != nil && !errors.Is(err, io.EOF) {
		s.err = errs.NewOpenError(s.Label(), err)
	}
}

// Err returns the read error that ended the source early, if any
func (s *LineSource) Err() error {
	return s.err
}

// Label returns the name the source is reported under
func (s *LineSource) Label() string {
	return models.DisplayName(s.id)
}

// Lines returns the number of lines read so far
func (s *LineSource) Lines() int {
	return s.line
}

// Close releases the underlying file. Standard input is left open.
func (s *LineSource) Close() error {
	s.done = true
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.id, err)
	}
	return nil
}

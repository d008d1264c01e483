package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/logger"
	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/flate"
	"github.com/natefinch/atomic"
	"github.com/spf13/afero"
)

// Packager writes zip archives of directories read from Fs to files on the
// host filesystem.
type Packager struct {
	fs     afero.Fs
	level  int
	logger logger.Logger
}

// NewPackager creates a packager reading sources from fsys at maximum
// compression.
func NewPackager(fsys afero.Fs, log logger.Logger) *Packager {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if log == nil {
		log = logger.NewSilentLogger()
	}
	return &Packager{fs: fsys, level: flate.BestCompression, logger: log}
}

// WithLevel returns a copy of the packager using the given deflate level.
func (p *Packager) WithLevel(level int) *Packager {
	cp := *p
	cp.level = level
	return &cp
}

// Pack archives src into the file dst and returns the archive size in bytes.
//
// The archive is staged in a temporary file next to dst and renamed into
// place only once complete, so a failed run never leaves a partial or empty
// archive behind. Callers must not start Pack before every write into src
// has returned.
func (p *Packager) Pack(ctx context.Context, src, dst string) (int64, error) {
	if err := checkNotInside(src, dst); err != nil {
		return 0, err
	}
	if info, err := os.Stat(dst); err == nil {
		p.logger.Warn("replacing existing archive",
			logger.F("path", dst),
			logger.F("previous_size", humanize.Bytes(uint64(info.Size()))),
		)
	}

	pr, pw := io.Pipe()
	counter := &countingWriter{w: pw}

	type result struct {
		stats Stats
		err   error
	}
	done := make(chan result, 1)

	go func() {
		stats, err := Write(ctx, p.fs, src, counter, WriteOptions{Level: p.level, Logger: p.logger})
		pw.CloseWithError(err)
		done <- result{stats, err}
	}()

	writeErr := atomic.WriteFile(dst, pr)
	// Unblock the producer if the consumer gave up early.
	pr.CloseWithError(writeErr)
	res := <-done

	if res.err != nil {
		return 0, res.err
	}
	if writeErr != nil {
		return 0, fmt.Errorf("writing archive %s: %w", dst, writeErr)
	}
	// The staged file is created 0600; archives are meant to be shared.
	if err := os.Chmod(dst, 0644); err != nil {
		return 0, fmt.Errorf("setting permissions on %s: %w", dst, err)
	}

	p.logger.Debug("archive written",
		logger.F("path", dst),
		logger.F("files", res.stats.Files),
		logger.F("dirs", res.stats.Dirs),
		logger.F("size", humanize.Bytes(uint64(counter.n))),
		logger.F("source_size", humanize.Bytes(uint64(res.stats.Bytes))),
	)
	return counter.n, nil
}

// checkNotInside rejects a destination inside the source tree, which would
// make the archive include itself.
func checkNotInside(src, dst string) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(absSrc, absDst)
	if err == nil && filepath.IsLocal(rel) {
		return fmt.Errorf("archive %s must not be inside source directory %s", dst, src)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

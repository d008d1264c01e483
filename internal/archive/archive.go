// Package archive packs a generated project tree into a zip file.
//
// Entries are named relative to the source directory, so the archive
// unpacks straight into the current directory without a wrapping folder.
// Files are deflated; directories are stored as "name/" entries so empty
// directories survive a round trip.
package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/filesystem"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/logger"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
)

// Stats summarizes what went into an archive.
type Stats struct {
	Files int
	Dirs  int
	Bytes int64 // Uncompressed file bytes
}

// WriteOptions configures Write.
type WriteOptions struct {
	Level  int           // Deflate level, flate.NoCompression..flate.BestCompression
	Logger logger.Logger // Per-entry debug logging (default: silent)
}

// Write streams a zip archive of every file and directory under src to w.
// Entries are written in lexical path order. Write closes the zip stream but
// not w.
func Write(ctx context.Context, fsys afero.Fs, src string, w io.Writer, opts WriteOptions) (Stats, error) {
	var stats Stats

	if opts.Level < flate.NoCompression || opts.Level > flate.BestCompression {
		return stats, fmt.Errorf("invalid compression level %d", opts.Level)
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewSilentLogger()
	}

	info, err := fsys.Stat(src)
	if err != nil {
		return stats, fmt.Errorf("cannot read source directory: %w", err)
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("source %s is not a directory", src)
	}

	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, opts.Level)
	})

	err = filesystem.Walk(fsys, src, func(name string, info os.FileInfo) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if info.IsDir() {
			if err := addDir(zw, name, info); err != nil {
				return err
			}
			stats.Dirs++
			log.Debug("archived directory", logger.F("entry", name+"/"))
			return nil
		}

		if !info.Mode().IsRegular() {
			return fmt.Errorf("cannot archive %s: not a regular file", name)
		}

		n, err := addFile(fsys, zw, filepath.Join(src, filepath.FromSlash(name)), name, info)
		if err != nil {
			return err
		}
		stats.Files++
		stats.Bytes += n
		log.Debug("archived file", logger.F("entry", name), logger.F("bytes", n))
		return nil
	})
	if err != nil {
		_ = zw.Close()
		return stats, fmt.Errorf("archiving %s: %w", src, err)
	}

	if err := zw.Close(); err != nil {
		return stats, fmt.Errorf("finalizing archive: %w", err)
	}
	return stats, nil
}

func addDir(zw *zip.Writer, name string, info os.FileInfo) error {
	hdr := &zip.FileHeader{
		Name:     name + "/",
		Method:   zip.Store,
		Modified: info.ModTime(),
	}
	hdr.SetMode(info.Mode())
	_, err := zw.CreateHeader(hdr)
	return err
}

func addFile(fsys afero.Fs, zw *zip.Writer, path, name string, info os.FileInfo) (int64, error) {
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return 0, err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return 0, err
	}

	f, err := fsys.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := io.Copy(dst, f)
	if err != nil {
		return n, fmt.Errorf("copying %s: %w", path, err)
	}
	return n, nil
}

package ultrastar

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/randompersona1/ultrastar/internal/header"
	"github.com/randompersona1/ultrastar/internal/usdx"
)

// Flush writes the in-memory song back to the file it was opened from.
//
// The original file must still exist: when it has been removed or
// renamed since Open, Flush returns a *FileGoneError and writes
// nothing. This catches libraries edited behind the program's back.
// On success the song is marked clean.
func (s *Song) Flush(opts ...FlushOption) error {
	if _, err := os.Stat(s.Path); err != nil {
		if os.IsNotExist(err) {
			return &FileGoneError{Path: s.Path}
		}
		return fmt.Errorf("checking song file: %w", err)
	}

	if err := s.SaveAs(s.Path, opts...); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// SaveAs writes the song to outputPath, leaving the original file
// untouched. The write is atomic: content goes to a temporary file in
// the destination directory first and is renamed into place only after
// a successful sync, so a crash cannot leave a half-written song.
//
// By default the file keeps the line endings it was read with. Options
// can force CRLF, reorder the attributes into canonical order before
// writing, or keep a backup of an existing destination.
func (s *Song) SaveAs(outputPath string, opts ...FlushOption) error {
	options := defaultFlushOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.autoReorder {
		// The reorder mutates the in-memory song, so a SaveAs to a
		// different path leaves the original file stale.
		s.attrs.Sort(usdx.Rank)
		s.dirty = true
	}

	lineEnding := s.lineEnding
	if options.lineEnding != "" {
		lineEnding = options.lineEnding
	}

	tempFile, err := os.CreateTemp(filepath.Dir(outputPath), ".ultrastar-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if err := header.Write(tempFile, s.attrs, s.body, lineEnding); err != nil {
		return err
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if options.backupSuffix != "" {
		if _, err := os.Stat(outputPath); err == nil {
			backupPath := outputPath + options.backupSuffix
			if err := os.Rename(outputPath, backupPath); err != nil {
				return fmt.Errorf("creating backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("replacing song file: %w", err)
	}

	success = true
	return nil
}

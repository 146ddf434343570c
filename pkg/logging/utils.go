/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Log file management for langgen: retention of old log files,
optional gzip compression of closed ones, and directory statistics.
*/

package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LogManager manages the log files in one directory
type LogManager struct {
	logDir   string
	maxFiles int
	compress bool
}

// NewLogManager creates a new log manager
func NewLogManager(logDir string, maxFiles int, compress bool) *LogManager {
	return &LogManager{
		logDir:   logDir,
		maxFiles: maxFiles,
		compress: compress,
	}
}

// files returns this package's log files, oldest first
func (lm *LogManager) files() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(lm.logDir, filePrefix+"*.log*"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob log files: %w", err)
	}

	mtimes := make(map[string]time.Time, len(files))
	for _, f := range files {
		if st, err := os.Stat(f); err == nil {
			mtimes[f] = st.ModTime()
		}
	}
	sort.SliceStable(files, func(i, j int) bool {
		ti, tj := mtimes[files[i]], mtimes[files[j]]
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return files[i] < files[j]
	})
	return files, nil
}

// CleanupOldLogs compresses closed logs when enabled and keeps only the newest
// maxFiles. closed is the file just finished, if any.
func (lm *LogManager) CleanupOldLogs(closed string) error {
	if lm.compress && closed != "" {
		if err := compressFile(closed); err != nil {
			return fmt.Errorf("failed to compress %s: %w", closed, err)
		}
	}

	files, err := lm.files()
	if err != nil {
		return err
	}
	if lm.maxFiles <= 0 || len(files) <= lm.maxFiles {
		return nil
	}

	for _, f := range files[:len(files)-lm.maxFiles] {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("failed to remove file %s: %w", f, err)
		}
	}
	return nil
}

// compressFile gzips path to path.gz and removes the original
func compressFile(path string) error {
	source, err := os.Open(path)
	if err != nil {
		return err
	}
	defer source.Close()

	compressed, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer compressed.Close()

	gz := gzip.NewWriter(compressed)
	if _, err := io.Copy(gz, source); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}

// GetLogStats returns statistics about log files
func (lm *LogManager) GetLogStats() (*LogStats, error) {
	files, err := lm.files()
	if err != nil {
		return nil, err
	}

	stats := &LogStats{TotalFiles: len(files)}
	for _, file := range files {
		st, err := os.Stat(file)
		if err != nil {
			continue
		}

		stats.TotalSize += st.Size()
		if stats.OldestFile.IsZero() || st.ModTime().Before(stats.OldestFile) {
			stats.OldestFile = st.ModTime()
		}
		if st.ModTime().After(stats.NewestFile) {
			stats.NewestFile = st.ModTime()
		}

		if strings.HasSuffix(file, ".gz") {
			stats.CompressedFiles++
		} else {
			stats.UncompressedFiles++
		}
	}
	return stats, nil
}

// LogStats holds statistics about log files
type LogStats struct {
	TotalFiles        int       `json:"total_files"`
	TotalSize         int64     `json:"total_size"`
	CompressedFiles   int       `json:"compressed_files"`
	UncompressedFiles int       `json:"uncompressed_files"`
	OldestFile        time.Time `json:"oldest_file"`
	NewestFile        time.Time `json:"newest_file"`
}

package sink

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoFilename is returned by OpenFile when no path is configured.
var ErrNoFilename = errors.New("filename is required")

// FileConfig holds configuration for a file sink
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Perm is the mode used when the file is created (default: 0644)
	Perm os.FileMode
	// Truncate empties an existing file instead of appending to it
	Truncate bool
	// Async configures the queue in front of the file
	Async AsyncConfig
}

// OpenFile opens the configured file and returns an Async sink that
// writes to it. Closing the sink drains the queue, then syncs and
// closes the file.
func OpenFile(cfg FileConfig) (*Async, error) {
	if cfg.Filename == "" {
		return nil, ErrNoFilename
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0o644
	}

	flags := os.O_CREATE | os.O_WRONLY
	if cfg.Truncate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	f, err := os.OpenFile(cfg.Filename, flags, cfg.Perm)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return NewAsync(NewWriter(f), cfg.Async), nil
}

// Package rom reads CHIP-8 program images from storage.
package rom

import (
	"errors"
	"fmt"
	"os"

	"github.com/beanboi7/chyp8/emu/memory"
)

var ErrEmptyPath = errors.New("ROM path cannot be empty")

// Read returns the raw image at path. Images that can not fit into the
// program area are rejected with memory.ErrOutOfSpace.
func Read(path string) ([]uint8, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file: %w", err)
	}

	if len(image) > memory.MaxProgramSize {
		return nil, fmt.Errorf("ROM file '%s' is %d bytes, can't cross %d bytes: %w",
			path, len(image), memory.MaxProgramSize, memory.ErrOutOfSpace)
	}
	return image, nil
}

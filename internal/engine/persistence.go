package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/celerix-dev/gamingtech-store/pkg/schema"
)

// Persistence handles the disk I/O for a single record store file.
type Persistence struct {
	Path string
	mu   sync.Mutex // Protects concurrent writes to the filesystem
}

// NewPersistence returns a persistence handler for path. Nothing is created on
// disk until the first write.
func NewPersistence(path string) *Persistence {
	return &Persistence{Path: path}
}

// Read decodes the whole file. A missing file reads as an empty user list.
func (p *Persistence) Read() (*schema.UserFile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	content, err := os.ReadFile(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return &schema.UserFile{Users: []schema.UserRecord{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.Path, err)
	}

	var file schema.UserFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptFile, p.Path, err)
	}
	if file.Users == nil {
		file.Users = []schema.UserRecord{}
	}
	return &file, nil
}

// Write replaces the whole file atomically, creating its directory if needed.
func (p *Persistence) Write(file *schema.UserFile) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(p.Path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	bytes, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	tempPath := p.Path + ".tmp"
	if err := os.WriteFile(tempPath, bytes, 0600); err != nil {
		return fmt.Errorf("write %s: %w", tempPath, err)
	}

	// On Linux/Unix the rename replaces the file in one step, so a crash
	// leaves either the old file or the new one.
	if err := os.Rename(tempPath, p.Path); err != nil {
		return fmt.Errorf("replace %s: %w", p.Path, err)
	}
	return nil
}

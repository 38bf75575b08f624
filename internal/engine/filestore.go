package engine

import (
	"context"
	"sync"

	"github.com/celerix-dev/gamingtech-store/pkg/schema"
)

// FileStore is the record store handle. Every call goes to disk: Load reads
// the whole file, Update reads, mutates and rewrites it. Update cycles are
// serialized so two requests of the same process cannot lose each other's
// writes; nothing guards against a second process writing the same file.
type FileStore struct {
	mu        sync.Mutex
	persister *Persistence
}

// NewFileStore wraps a persister.
func NewFileStore(p *Persistence) *FileStore {
	return &FileStore{persister: p}
}

// Open is a shortcut for NewFileStore(NewPersistence(path)).
func Open(path string) *FileStore {
	return NewFileStore(NewPersistence(path))
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.persister.Path
}

func (s *FileStore) Load(ctx context.Context) (*schema.UserFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.persister.Read()
}

func (s *FileStore) Update(ctx context.Context, fn func(f *schema.UserFile) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.persister.Read()
	if err != nil {
		return err
	}
	if err := fn(file); err != nil {
		return err
	}
	return s.persister.Write(file)
}

var _ RecordStore = (*FileStore)(nil)

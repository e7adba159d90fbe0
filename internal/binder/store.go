package binder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
)

// syncFile flushes the temp file before it replaces the binder file.
var syncFile = (*os.File).Sync

// errNotObject reports a stored document whose root is not a JSON object.
var errNotObject = errors.New("document root is not an object")

// DecodeDocument parses a stored binder document. Numbers are kept as
// json.Number so integer fields can be told apart from fractional ones.
func DecodeDocument(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextDecodeState, err)
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: %w", ErrContextDecodeState, errNotObject)
	}
	return doc, nil
}

// EncodeDocument renders state as indented JSON with a trailing newline.
func EncodeDocument(state *domain.BinderState) ([]byte, error) {
	data, err := json.MarshalIndent(state, "", DocumentIndent)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextEncodeState, err)
	}
	return append(data, '\n'), nil
}

// FileRepository stores the binder as a single JSON file.
type FileRepository struct {
	path string
}

// NewFileRepository creates a repository backed by path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// StoreName labels this store in metrics.
func (r *FileRepository) StoreName() string { return StoreFile }

// Path returns the binder file location.
func (r *FileRepository) Path() string { return r.path }

// Load reads the binder file. A missing, unreadable or corrupt file is
// logged and reported as an empty document, never as an error.
func (r *FileRepository) Load(ctx context.Context) (map[string]any, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info(LogMsgBinderFileMissing, LogFieldPath, r.path)
			return nil, nil
		}
		log.Error(LogMsgBinderFileCorrupt, LogFieldPath, r.path, LogFieldError, err)
		return nil, nil
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		log.Error(LogMsgBinderFileCorrupt, LogFieldPath, r.path, LogFieldError, err)
		return nil, nil
	}
	return doc, nil
}

// Save writes state to a temp file in the same directory, syncs it and
// renames it over the binder file, so readers never see a partial document.
func (r *FileRepository) Save(ctx context.Context, state *domain.BinderState) error {
	data, err := EncodeDocument(state)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("%s: %w", ErrContextWriteTemp, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*"+TempFileSuffix)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextWriteTemp, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", ErrContextWriteTemp, err)
	}
	if err := syncFile(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", ErrContextSyncTemp, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", ErrContextWriteTemp, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", ErrContextRename, err)
	}

	logger.FromContext(ctx).Debug(LogMsgBinderSaved, LogFieldPath, r.path, LogFieldCards, len(state.Cards))
	return nil
}

// MemoryRepository keeps the encoded document in memory. It round-trips
// through the same encoding as the file store.
type MemoryRepository struct {
	mu    sync.Mutex
	data  []byte
	saves int
	err   error
}

// NewMemoryRepository creates a repository whose first Load returns initial.
// A nil initial document starts empty.
func NewMemoryRepository(initial []byte) *MemoryRepository {
	return &MemoryRepository{data: initial}
}

// StoreName labels this store in metrics.
func (r *MemoryRepository) StoreName() string { return StoreMemory }

// Load decodes the stored document. Corrupt content yields an empty document.
func (r *MemoryRepository) Load(ctx context.Context) (map[string]any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.data) == 0 {
		return nil, nil
	}
	doc, err := DecodeDocument(r.data)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBinderFileCorrupt, LogFieldError, err)
		return nil, nil
	}
	return doc, nil
}

// Save stores the encoded state, or returns the error set by FailSaves.
func (r *MemoryRepository) Save(_ context.Context, state *domain.BinderState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	data, err := EncodeDocument(state)
	if err != nil {
		return err
	}
	r.data = data
	r.saves++
	return nil
}

// FailSaves makes every following Save return err; nil restores saving.
func (r *MemoryRepository) FailSaves(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Saves returns how many times Save succeeded.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// Document returns a copy of the last saved bytes.
func (r *MemoryRepository) Document() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]byte(nil), r.data...)
}

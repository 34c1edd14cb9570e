package localstore

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// File is a driver persisting the whole key space as one JSON file, the
// closest a process gets to a per-profile browser store. The file is loaded
// once at construction and rewritten after every mutation.
type File struct {
	mu    sync.Mutex
	path  string
	items map[string]string
}

func NewFile(path string) (*File, error) {
	f := &File{
		path:  path,
		items: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}

	if err != nil {
		return nil, errors.Wrapf(err, "read store file %s", path)
	}

	if err := json.Unmarshal(data, &f.items); err != nil {
		return nil, errors.Wrapf(err, "parse store file %s", path)
	}

	return f, nil
}

func (f *File) flush() error {
	data, err := json.MarshalIndent(f.items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal store contents")
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write store file %s", f.path)
	}

	return nil
}

func (f *File) ReadItem(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.items[key]

	return value, ok, nil
}

func (f *File) WriteItem(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	previous, had := f.items[key]
	f.items[key] = value

	if err := f.flush(); err != nil {
		if had {
			f.items[key] = previous
		} else {
			delete(f.items, key)
		}

		return err
	}

	return nil
}

func (f *File) RemoveItem(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	previous, had := f.items[key]
	if !had {
		return nil
	}

	delete(f.items, key)

	if err := f.flush(); err != nil {
		f.items[key] = previous

		return err
	}

	return nil
}

func (f *File) Keys() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	keys := make([]string, 0, len(f.items))
	for key := range f.items {
		keys = append(keys, key)
	}

	return keys, nil
}

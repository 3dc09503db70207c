// Package assets resolves body image names to decoded images in the
// background.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"sync"

	"orrery/hal"
)

const maxImageBytes = 8 * 1024 * 1024

type state uint8

const (
	statePending state = iota + 1
	stateReady
	stateFailed
)

type entry struct {
	state state
	img   image.Image
}

// Loader decodes images from fsys on first lookup. Lookups never block; a
// name resolves to nil until its decode finishes, and stays nil if it failed.
type Loader struct {
	fsys fs.FS
	log  hal.Logger

	// OnError, if set, is called from the loading goroutine for every image
	// that fails.
	OnError func(name string, err error)

	mu      sync.Mutex
	entries map[string]*entry
	wg      sync.WaitGroup
}

// NewLoader returns a loader reading from fsys. A nil fsys resolves nothing.
// log may be nil.
func NewLoader(fsys fs.FS, log hal.Logger) *Loader {
	return &Loader{fsys: fsys, log: log, entries: make(map[string]*entry)}
}

// Lookup returns the decoded image for name or nil if it is not available
// yet. The first call for a name starts loading it.
func (l *Loader) Lookup(name string) image.Image {
	if l == nil || l.fsys == nil || name == "" {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[name]
	if !ok {
		l.entries[name] = &entry{state: statePending}
		l.wg.Add(1)
		go l.load(name)
		return nil
	}
	if e.state != stateReady {
		return nil
	}
	return e.img
}

// Preload starts loading every name without waiting.
func (l *Loader) Preload(names ...string) {
	for _, n := range names {
		_ = l.Lookup(n)
	}
}

// Wait blocks until every started load has finished.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Failed reports whether name was requested and could not be decoded.
func (l *Loader) Failed(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[name]
	return ok && e.state == stateFailed
}

func (l *Loader) load(name string) {
	defer l.wg.Done()

	img, err := l.decode(name)

	l.mu.Lock()
	e := l.entries[name]
	if err != nil {
		e.state = stateFailed
	} else {
		e.state = stateReady
		e.img = img
	}
	l.mu.Unlock()

	if err == nil {
		return
	}
	if l.log != nil {
		l.log.WriteLineString(err.Error())
	}
	if l.OnError != nil {
		l.OnError(name, err)
	}
}

func (l *Loader) decode(name string) (image.Image, error) {
	st, err := fs.Stat(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: stat %s: %w", name, err)
	}
	if st.Size() > maxImageBytes {
		return nil, fmt.Errorf("assets: %s: %d bytes exceeds %d", name, st.Size(), maxImageBytes)
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

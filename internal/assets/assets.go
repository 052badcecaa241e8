// Package assets loads maps and textures in the background and hands them out
// through handles that callers poll once per frame.
package assets

import (
	"fmt"
	"image"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/wolfgrid/internal/engine/texture"
	"github.com/Faultbox/wolfgrid/internal/logger"
	"github.com/Faultbox/wolfgrid/pkg/tilemap"
)

// Kind is the type of asset a handle refers to.
type Kind int

const (
	KindMap Kind = iota
	KindTexture
)

func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindTexture:
		return "texture"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// State is the load progress of an asset.
type State int

const (
	StateUnknown State = iota // Never requested
	StatePending
	StateLoaded
	StateFailed
)

// Handle refers to an asset that may not be loaded yet.
type Handle struct {
	Kind Kind
	Path string
}

// String returns "kind:path".
func (h Handle) String() string {
	return h.Kind.String() + ":" + h.Path
}

// colorKeyTolerance absorbs lossy encoders around the magenta key.
const colorKeyTolerance = 8

type entry struct {
	state State
	value any
	err   error
}

// Server loads assets from a directory tree. Loads run on background
// goroutines; lookups never block.
type Server struct {
	root  string
	cache *Cache
	log   *zap.Logger

	mu      sync.RWMutex
	entries map[Handle]*entry
	wg      sync.WaitGroup
}

// NewServer creates a server rooted at dir.
func NewServer(dir string) *Server {
	return &Server{
		root:    dir,
		cache:   NewCache(),
		log:     logger.Named("assets"),
		entries: make(map[Handle]*entry),
	}
}

// LoadMap requests a map file. Repeated requests share one load.
func (s *Server) LoadMap(p string) Handle {
	return s.load(Handle{Kind: KindMap, Path: clean(p)})
}

// LoadTexture requests an image file. Repeated requests share one load.
func (s *Server) LoadTexture(p string) Handle {
	return s.load(Handle{Kind: KindTexture, Path: clean(p)})
}

func (s *Server) load(h Handle) Handle {
	s.mu.Lock()
	if _, ok := s.entries[h]; ok {
		s.mu.Unlock()
		return h
	}
	s.entries[h] = &entry{state: StatePending}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		value, err := s.decode(h)
		s.finish(h, value, err)
	}()
	return h
}

func (s *Server) decode(h Handle) (any, error) {
	data, err := s.read(h.Path)
	if err != nil {
		return nil, err
	}
	switch h.Kind {
	case KindMap:
		m, err := tilemap.Parse(data)
		if err != nil {
			return nil, err
		}
		if m.Name == "" {
			m.Name = strings.TrimSuffix(path.Base(h.Path), path.Ext(h.Path))
		}
		return m, nil
	case KindTexture:
		img, err := texture.Decode(h.Path, data)
		if err != nil {
			return nil, err
		}
		if n := texture.ApplyColorKey(img, texture.Magenta, colorKeyTolerance); n > 0 {
			s.log.Debug("color key applied", zap.Stringer("asset", h), zap.Int("pixels", n))
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unsupported asset kind %v", h.Kind)
	}
}

func (s *Server) finish(h Handle, value any, err error) {
	s.mu.Lock()
	e := s.entries[h]
	if e == nil {
		// Dropped by Close while the load was in flight.
		s.mu.Unlock()
		return
	}
	if err != nil {
		e.state, e.err = StateFailed, err
	} else {
		e.state, e.value = StateLoaded, value
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("asset load failed", zap.Stringer("asset", h), zap.Error(err))
		return
	}
	s.log.Debug("asset loaded", zap.Stringer("asset", h))
}

// read returns the file bytes, going through the cache.
func (s *Server) read(p string) ([]byte, error) {
	if data, ok := s.cache.Get(p); ok {
		return data, nil
	}
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(p)))
	if err != nil {
		return nil, err
	}
	s.cache.Set(p, data)
	return data, nil
}

// State returns the load progress of h.
func (s *Server) State(h Handle) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[h]; ok {
		return e.state
	}
	return StateUnknown
}

// Err returns the failure of h, if any.
func (s *Server) Err(h Handle) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[h]; ok {
		return e.err
	}
	return nil
}

// Map returns the loaded map for h, or false while it is pending or failed.
func (s *Server) Map(h Handle) (*tilemap.Map, bool) {
	m, ok := s.value(h, KindMap).(*tilemap.Map)
	return m, ok
}

// Texture returns the decoded image for h, or false while it is pending or failed.
func (s *Server) Texture(h Handle) (*image.RGBA, bool) {
	img, ok := s.value(h, KindTexture).(*image.RGBA)
	return img, ok
}

func (s *Server) value(h Handle, kind Kind) any {
	if h.Kind != kind {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[h]; ok && e.state == StateLoaded {
		return e.value
	}
	return nil
}

// Release drops the decoded value of a finished load. The file bytes stay
// cached, so requesting h again decodes from memory instead of disk.
// Pending loads are left alone.
func (s *Server) Release(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[h]; ok && e.state != StatePending {
		delete(s.entries, h)
	}
}

// CacheStats returns a snapshot of the file byte cache.
func (s *Server) CacheStats() CacheStats {
	return s.cache.Stats()
}

// Wait blocks until every requested load has finished. Meant for tools and tests;
// the frame loop polls instead.
func (s *Server) Wait() {
	s.wg.Wait()
}

// Close waits for in-flight loads and drops all assets.
func (s *Server) Close() {
	s.wg.Wait()

	s.mu.Lock()
	s.entries = make(map[Handle]*entry)
	s.mu.Unlock()

	st := s.cache.Stats()
	s.log.Debug("asset server closed",
		zap.Int("cache_hits", st.Hits),
		zap.Int("cache_misses", st.Misses),
		zap.Int("cache_bytes", st.Bytes),
	)
	s.cache.Clear()
}

func clean(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// Package sprite provides a global registry of sprite sheets.
// Sheets register themselves in init() functions, allowing characters to
// resolve animation frames without hardcoded dependencies on any renderer.
package sprite

import (
	"fmt"
	"sort"
	"sync"

	"bomberboy/internal/core"
)

// FrameID identifies a single frame within a sheet (e.g. "move_up1").
type FrameID string

// Frame describes one drawable sprite frame. The simulation only needs the
// pixel height (to compute the foot-aligned draw anchor); the glyph and
// color are what the terminal renderer paints.
type Frame struct {
	Glyph    rune
	Color    core.Color
	HeightPx float64
}

// Sheet is a named collection of frames for one character skin.
type Sheet struct {
	name   string
	frames map[FrameID]Frame
}

// NewSheet creates a sheet from a frame table.
func NewSheet(name string, frames map[FrameID]Frame) *Sheet {
	return &Sheet{name: name, frames: frames}
}

// Name returns the sheet identifier.
func (s *Sheet) Name() string {
	return s.name
}

// Frame returns the frame for the given ID.
// Unknown IDs panic: a missing frame is a programming error in the sheet
// definition, not a runtime condition.
func (s *Sheet) Frame(id FrameID) Frame {
	f, ok := s.frames[id]
	if !ok {
		panic(fmt.Sprintf("sprite: sheet %q has no frame %q", s.name, id))
	}
	return f
}

// Has reports whether the sheet defines the given frame.
func (s *Sheet) Has(id FrameID) bool {
	_, ok := s.frames[id]
	return ok
}

var (
	sheets = make(map[string]*Sheet)
	mu     sync.RWMutex
)

// Register adds a sheet to the registry.
// Typically called from a sheet's init() function.
// Panics if a sheet with the same name is already registered.
func Register(s *Sheet) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sheets[s.name]; exists {
		panic(fmt.Sprintf("sprite: sheet %q already registered", s.name))
	}
	sheets[s.name] = s
}

// Lookup returns a registered sheet by name.
// Returns an error if the sheet is not registered.
func Lookup(name string) (*Sheet, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := sheets[name]
	if !ok {
		return nil, fmt.Errorf("sprite: unknown sheet %q", name)
	}
	return s, nil
}

// List returns the names of all registered sheets, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

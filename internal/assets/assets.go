// Package assets holds the embedded text-art sprites.
//
// Assets are requested by name and referenced through a Handle. Requesting a
// handle only records the name; the file is read and decoded the first time
// the sprite is needed, then cached.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"
)

//go:embed art/*.txt
var artFS embed.FS

var errEmptyHandle = errors.New("assets: empty handle")

// Well-known asset names.
const (
	Player = "player"
	Hook   = "hook"
	Logo   = "logo"
)

// Sprite is decoded text art.
type Sprite struct {
	Lines  []string
	Width  int // widest line in runes
	Height int
}

// Rune returns the rune at (x, y), or a space outside the art.
func (s Sprite) Rune(x, y int) rune {
	if y < 0 || y >= len(s.Lines) || x < 0 {
		return ' '
	}
	i := 0
	for _, r := range s.Lines[y] {
		if i == x {
			return r
		}
		i++
	}
	return ' '
}

// Handle is an opaque reference to an asset in a Library.
type Handle struct {
	name string
}

// Name returns the asset name the handle refers to.
func (h Handle) Name() string {
	return h.name
}

// IsZero reports whether the handle refers to nothing.
func (h Handle) IsZero() bool {
	return h.name == ""
}

// Library loads sprites from a file system on demand.
type Library struct {
	fsys  fs.FS
	cache map[string]Sprite
}

// NewLibrary returns a library backed by the embedded art.
func NewLibrary() *Library {
	return NewLibraryFS(artFS, "art")
}

// NewLibraryFS returns a library reading "<dir>/<name>.txt" files from fsys.
func NewLibraryFS(fsys fs.FS, dir string) *Library {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		sub = fsys
	}
	return &Library{
		fsys:  sub,
		cache: make(map[string]Sprite),
	}
}

// Load returns a handle for the named asset without reading it.
func (l *Library) Load(name string) Handle {
	return Handle{name: name}
}

// Get returns the sprite behind a handle, decoding it on first use.
func (l *Library) Get(h Handle) (Sprite, error) {
	if h.IsZero() {
		return Sprite{}, errEmptyHandle
	}
	if s, ok := l.cache[h.name]; ok {
		return s, nil
	}
	data, err := fs.ReadFile(l.fsys, h.name+".txt")
	if err != nil {
		return Sprite{}, fmt.Errorf("assets: cannot load %q: %w", h.name, err)
	}
	s := decode(string(data))
	l.cache[h.name] = s
	return s, nil
}

// MustGet is Get for assets that ship with the binary.
func (l *Library) MustGet(h Handle) Sprite {
	s, err := l.Get(h)
	if err != nil {
		panic(err)
	}
	return s
}

// Decoded reports whether the asset behind h has been decoded yet.
func (l *Library) Decoded(h Handle) bool {
	_, ok := l.cache[h.name]
	return ok
}

func decode(text string) Sprite {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := strings.Split(text, "\n")
	s := Sprite{Lines: lines, Height: len(lines)}
	for _, line := range lines {
		s.Width = max(s.Width, utf8.RuneCountInString(line))
	}
	return s
}

package charts

import (
	"bytes"
	"io"
	"sync"
)

// Canvas is an in-memory drawing surface. Chart instances paint into it on
// construction and clear it when destroyed.
type Canvas struct {
	mu      sync.RWMutex
	width   int
	height  int
	content []byte
}

// NewCanvas returns an empty canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

func (c *Canvas) Size() (int, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width, c.height
}

// Resize changes the size used by the next instance painted onto the canvas.
func (c *Canvas) Resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width = width
	c.height = height
}

func (c *Canvas) Paint(content []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = bytes.Clone(content)
}

func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = nil
}

// Bytes returns a copy of what is currently painted.
func (c *Canvas) Bytes() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return bytes.Clone(c.content)
}

func (c *Canvas) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return string(c.content)
}

// Empty reports whether nothing is painted.
func (c *Canvas) Empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.content) == 0
}

func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, err := w.Write(c.content)
	return int64(n), err
}

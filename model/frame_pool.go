package model

import (
	"bytes"
	"sync"
)

// FramePool reuses the buffers a TerminalRenderer assembles frames in, so
// a frame of rows x cols glyphs is not reallocated every tick.
type FramePool struct {
	pool sync.Pool
}

func NewFramePool() *FramePool {
	return &FramePool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
}

// Get retrieves an empty buffer from the pool
func (p *FramePool) Get() *bytes.Buffer {
	return p.pool.Get().(*bytes.Buffer)
}

// Put returns a buffer to the pool, clearing its contents
func (p *FramePool) Put(buf *bytes.Buffer) {
	buf.Reset()
	p.pool.Put(buf)
}

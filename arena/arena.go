// Package arena provides a bump allocator with batch lifetime: memory is
// handed out block by block and reclaimed all at once by Reset. There is
// no per-object free.
package arena

import "unsafe"

// DefaultBlockSize is used when New is given a non-positive block size.
const DefaultBlockSize = 64 * 1024

// Arena is a bump allocator. Allocations larger than the block size get
// a dedicated block. An Arena is not safe for concurrent use; give each
// worker its own.
type Arena struct {
	blockSize int
	blocks    [][]byte
	current   []byte
	off       int

	allocated int // total bytes handed out since the last Reset
}

// New returns an Arena that carves allocations out of blocks of the
// given size.
func New(blockSize int) *Arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Arena{blockSize: blockSize}
}

// Alloc returns a zeroed slice of n bytes valid until Reset.
func (a *Arena) Alloc(n int) []byte {
	if n < 0 {
		panic("arena: negative allocation size")
	}
	if n == 0 {
		return nil
	}
	if n > a.blockSize {
		// Oversized allocations get their own block so regular
		// allocations keep filling the current one.
		block := make([]byte, n)
		a.blocks = append(a.blocks, block)
		a.allocated += n
		return block
	}
	if a.current == nil || a.off+n > len(a.current) {
		a.current = make([]byte, a.blockSize)
		a.blocks = append(a.blocks, a.current)
		a.off = 0
	}
	buf := a.current[a.off : a.off+n : a.off+n]
	a.off += n
	a.allocated += n
	return buf
}

// Copy allocates space for b and copies it in.
func (a *Arena) Copy(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	buf := a.Alloc(len(b))
	copy(buf, b)
	return buf
}

// CopyString copies b into the arena and returns a string header over
// the arena-owned bytes without an extra copy. The returned string is a
// borrowed view: it must not outlive the arena or survive a Reset.
func (a *Arena) CopyString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	buf := a.Copy(b)
	return unsafe.String(&buf[0], len(buf))
}

// Allocated returns the total bytes handed out since the last Reset.
func (a *Arena) Allocated() int { return a.allocated }

// Blocks returns the number of blocks currently held.
func (a *Arena) Blocks() int { return len(a.blocks) }

// Reset drops all blocks. Every slice and string previously obtained
// from the arena becomes invalid.
func (a *Arena) Reset() {
	a.blocks = nil
	a.current = nil
	a.off = 0
	a.allocated = 0
}

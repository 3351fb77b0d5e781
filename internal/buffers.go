package internal

import "sync"

var bufPool = sync.Pool{New: func() any {
	b := make([]byte, 0, 512)
	return &b
}}

// GetBuffer returns an empty staging buffer from the pool.
func GetBuffer() *[]byte {
	b := bufPool.Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

// PutBuffer returns b to the pool for reuse.
func PutBuffer(b *[]byte) {
	if b != nil {
		bufPool.Put(b)
	}
}

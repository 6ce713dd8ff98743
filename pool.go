package pinyin

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Output of conversions is assembled in short-lived buffers. To avoid
// frequent allocation we pool them. Buffers keep their capacity across
// uses.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return bytes.NewBuffer(make([]byte, 0, 64)), nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

func borrowBuffer() *bytes.Buffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		tracer().Errorf("pinyin: cannot borrow buffer: %v", err)
		return &bytes.Buffer{}
	}
	return o.(*bytes.Buffer)
}

// releaseBuffer empties buf, keeping its storage, and puts it back into
// the pool. Contents of buf must have been copied out before.
func releaseBuffer(buf *bytes.Buffer) {
	buf.Reset()
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}

package taskstore

import "sync/atomic"

// IDSource hands out task identities. Every value must be unique for the
// lifetime of the store.
type IDSource interface {
	Next() int64
}

// Counter is a strictly increasing IDSource starting at 1.
type Counter struct {
	n atomic.Int64
}

func (c *Counter) Next() int64 { return c.n.Add(1) }

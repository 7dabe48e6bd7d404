package player

import (
	"context"
	"io"
)

// Host loads the player page inside an embedded web runtime and yields
// the duplex evaluation channel to it. A Host must be able to connect
// more than once: each call starts a fresh runtime session.
type Host interface {
	Connect(ctx context.Context) (io.ReadWriteCloser, error)
}

// HostFunc adapts a plain function to the Host interface.
type HostFunc func(ctx context.Context) (io.ReadWriteCloser, error)

func (f HostFunc) Connect(ctx context.Context) (io.ReadWriteCloser, error) {
	return f(ctx)
}

package api

import "context"

// Server serves registrations until Shutdown. Serve returns when ctx is
// done, without waiting for requests in flight.
type Server interface {
	Addr() string
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

package server

// Server is the lifecycle contract the entrypoint drives: construct once,
// block in RunServer until a stop signal arrives, and rely on Shutdown to
// drain in-flight requests before the process exits.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server, letting in-flight requests
	// finish, and frees associated resources.
	Shutdown()
}

package server

// Server is the lifecycle contract of the vault's transport servers.
//
// RunServer blocks serving credential traffic until the process is told to
// stop; Shutdown drains in-flight requests before releasing the listener,
// so a store call never loses its write to a restart.
type Server interface {
	RunServer()
	Shutdown()
}

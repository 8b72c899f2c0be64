// Package shutdown runs ordered cleanup hooks when the process receives
// SIGINT or SIGTERM, or when its parent context ends.
//
// Usage:
//
//	h := shutdown.NewHandler(30 * time.Second)
//	h.OnShutdown("http", srv.Shutdown)
//	err := h.Wait(ctx)
package shutdown

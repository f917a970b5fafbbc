// Package clientip resolves the address of the client behind an HTTP
// request.
//
// Proxy headers are consulted in the given order (DefaultHeaders when none
// are given) and the first valid address wins; RemoteAddr is the fallback.
// Only deploy behind proxies that overwrite these headers: clients can send
// them too.
//
//	r.Use(clientip.Middleware())
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip

// Package client talks to the remote users resource.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) with the four
//     operations of the resource: List, Create, Update and Delete.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) speaking
//
//	GET    {base}/users?q={text}
//	POST   {base}/users
//	PUT    {base}/users/{id}
//	DELETE {base}/users/{id}
//
// # Error Handling
//
// Every non-2xx response becomes a *TransportError carrying the status code
// and the message "HTTP <code>". Requests that never got a response are
// reported the same way with StatusCode 0, wrapping ErrUnavailable, so
// callers only handle one failure kind. Use errors.As or StatusCode(err).
//
// Nothing is retried and no deadline is added beyond the configured
// transport timeout and the caller's context.
package client

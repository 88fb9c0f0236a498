// Package http exposes the help center engine over HTTP.
//
// Chat gateways POST interactions to /interactions and deliver the returned
// payload; the read-only /topics routes serve the corpus for other clients.
// Requests are validated against the embedded OpenAPI document.
package http

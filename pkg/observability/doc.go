/*
Package observability turns engine lifecycle hooks into metrics and structured logs.

Hooks run after a payload is composed, so nothing in this package can change
what the user sees.
*/
package observability

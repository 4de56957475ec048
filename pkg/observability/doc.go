/*
Package observability provides tools for monitoring document validation.

It includes lifecycle hooks fired around every import and export call, a
prometheus collector set fed by those hooks, and a structured logging sink
built on log/slog.
*/
package observability

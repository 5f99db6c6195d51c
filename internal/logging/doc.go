// Package logging provides a unified logging interface for the multiverse
// module. It abstracts the underlying zerolog backend, allowing consistent
// structured logging across components, with output attributable per process
// when a fork tree writes to a shared stream.
package logging

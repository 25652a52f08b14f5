// Package logging provides a unified logging interface for fpsum.
// It abstracts the underlying zerolog implementation so that the summation
// engine, the driver and the application log through the same typed fields.
package logging

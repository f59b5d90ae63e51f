// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. The handler chain adds the request trace ID carried by a
// context to each record and passes error values through the redact package.
package logger

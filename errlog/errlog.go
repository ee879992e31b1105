// SPDX-License-Identifier: MIT

// Package errlog appends error reports to a text file, one line per error:
//
//	2026-10-16 14:03:11	tape.Decode: tape: malformed storage
//
// The log is backed by a zap core with a tab-separated console encoder. When
// the requested file cannot be opened the log falls back to FallbackPath in
// the working directory.
package errlog

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FallbackPath is used when the configured log file cannot be opened.
const FallbackPath = "errors.txt"

// TimeLayout is the timestamp layout of every log line.
const TimeLayout = "2006-01-02 15:04:05"

// Log is an append-only error log. Record is safe for concurrent use.
type Log struct {
	logger *zap.Logger
	file   *os.File
	path   string
}

// Option configures Open.
type Option func(*options)

type options struct {
	clock    zapcore.Clock
	fallback string
}

// WithClock overrides the timestamp source (tests).
func WithClock(c zapcore.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithFallback overrides FallbackPath.
func WithFallback(path string) Option {
	return func(o *options) { o.fallback = path }
}

// Open opens path for appending, falling back to the fallback file when path
// is empty or cannot be opened.
func Open(path string, opts ...Option) (*Log, error) {
	o := options{fallback: FallbackPath}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := openAppend(path)
	if err != nil {
		f, err = openAppend(o.fallback)
		if err != nil {
			return nil, fmt.Errorf("errlog: open %q: %w", o.fallback, err)
		}
		path = o.fallback
	}

	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout(TimeLayout),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: "\t",
		LineEnding:       zapcore.DefaultLineEnding,
	})
	zopts := []zap.Option{zap.ErrorOutput(zapcore.AddSync(os.Stderr))}
	if o.clock != nil {
		zopts = append(zopts, zap.WithClock(o.clock))
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(f), zapcore.ErrorLevel)

	return &Log{logger: zap.New(core, zopts...), file: f, path: path}, nil
}

func openAppend(path string) (*os.File, error) {
	if path == "" {
		return nil, os.ErrInvalid
	}

	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// Nop returns a log that discards everything.
func Nop() *Log {
	return &Log{logger: zap.NewNop()}
}

// Record appends err as one line. A nil err is ignored.
func (l *Log) Record(err error) {
	if l == nil || err == nil {
		return
	}
	l.logger.Error(err.Error())
}

// Path returns the file actually written, or "" for a Nop log.
func (l *Log) Path() string {
	if l == nil {
		return ""
	}

	return l.path
}

// Close flushes and closes the underlying file.
func (l *Log) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	_ = l.logger.Sync()

	return l.file.Close()
}

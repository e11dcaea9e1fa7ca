// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides optional debug output for the estimators.

A nil Logger disables the output; the functions then return without
formatting their arguments. A Logger holding a nil pointer, for instance
a nil *log.Logger, counts as nil. The standard library type *log.Logger
implements the Logger interface, so the estimators can be pointed at any
log.Logger, which is what the nid command does for its --debug flag.
*/
package xlog

import (
	"fmt"
	"reflect"
)

// Logger is the interface the output functions require. The log.Logger type
// supports it.
type Logger interface {
	Output(calldepth int, s string) error
}

// isNil reports whether l is nil or an interface holding a nil pointer, a
// nil *log.Logger for instance.
func isNil(l Logger) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Print outputs the arguments using the logger. A nil logger prints nothing.
func Print(l Logger, v ...interface{}) {
	if !isNil(l) {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf outputs the arguments using the format string. A nil logger prints
// nothing.
func Printf(l Logger, format string, v ...interface{}) {
	if !isNil(l) {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// prefixLogger adds a fixed prefix to every message.
type prefixLogger struct {
	l      Logger
	prefix string
}

func (p *prefixLogger) Output(calldepth int, s string) error {
	return p.l.Output(calldepth+1, p.prefix+s)
}

// WithPrefix returns a logger that puts prefix in front of every message
// written to l. If l is nil, nil is returned and the output stays disabled.
func WithPrefix(l Logger, prefix string) Logger {
	if isNil(l) {
		return nil
	}
	return &prefixLogger{l: l, prefix: prefix}
}

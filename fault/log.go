// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// channel for the last attempt to log something before a panic
var log *logger.L

// Initialise - setup the PANIC log channel
//
// the logger must already have been initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted string with the caller's location
func Criticalf(format string, arguments ...interface{}) {
	critical(2, fmt.Sprintf(format, arguments...))
}

// Panicf - log a formatted message then panic with a ProcessError
// holding the same text
//
// used for programmer errors that must not be silently corrected
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	critical(2, message)
	panic(ProcessError(message))
}

// PanicWithError - final panic with an underlying error
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	critical(2, s)
	panic(ProcessError(s))
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// write to the log channel, or stdout if no channel has been set up
func critical(skip int, message string) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		message = fmt.Sprintf("(%q:%d) %s", file, line, message)
	}
	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush() // make sure log file is saved
}

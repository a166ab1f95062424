// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nonlinear/fault"
)

// shared by every tree in the process, nil until initialised
var log *logger.L

// Initialise - attach the package to the "tree" log channel
//
// the logger must already have been initialised
func Initialise() error {
	if nil != log {
		return fault.ErrAlreadyInitialised
	}
	log = logger.New("tree")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	log.Info("starting…")
	return nil
}

// Finalise - flush and detach from the log channel
func Finalise() error {
	if nil == log {
		return fault.ErrNotInitialised
	}
	log.Info("shutting down…")
	log.Flush()
	log = nil
	return nil
}

func debugf(format string, arguments ...interface{}) {
	if nil == log {
		return
	}
	log.Debugf(format, arguments...)
}

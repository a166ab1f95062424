// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nonlinear/fault"
)

var log *logger.L

// Initialise - attach the package to the "graph" log channel
func Initialise() error {
	if nil != log {
		return fault.ErrAlreadyInitialised
	}
	log = logger.New("graph")
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
	if nil != log {
		log.Debugf(format, arguments...)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
)

const (
	LogCategory = "testing"
)

// SetupTestLogger - start a logger writing into a private directory
//
// dir is removed first so every run starts with an empty log
func SetupTestLogger(dir string) error {
	removeFiles(dir)
	if err := os.Mkdir(dir, 0700); nil != err {
		return err
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
			"tree":            "debug",
			"graph":           "debug",
		},
	}

	return logger.Initialise(logging)
}

// TeardownTestLogger - stop the logger and remove its directory
func TeardownTestLogger(dir string) {
	logger.Finalise()
	removeFiles(dir)
}

func removeFiles(dir string) {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

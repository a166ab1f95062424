// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package graph_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/nonlinear/fixtures"
	"github.com/bitmark-inc/nonlinear/graph"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	if err := fixtures.SetupTestLogger(testingDirName); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	if err := graph.Initialise(); nil != err {
		panic(fmt.Sprintf("graph initialization failed: %s", err))
	}

	rc := m.Run()

	graph.Finalise()
	fixtures.TeardownTestLogger(testingDirName)
	os.Exit(rc)
}

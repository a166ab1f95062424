// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles for the tree policy interfaces
//
// kept by hand in mockgen layout since the interfaces are generic
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	constraints "golang.org/x/exp/constraints"

	tree "github.com/bitmark-inc/nonlinear/tree"
)

// MockRebalancer is a mock of Rebalancer interface
type MockRebalancer[T constraints.Ordered] struct {
	ctrl     *gomock.Controller
	recorder *MockRebalancerMockRecorder[T]
}

// MockRebalancerMockRecorder is the mock recorder for MockRebalancer
type MockRebalancerMockRecorder[T constraints.Ordered] struct {
	mock *MockRebalancer[T]
}

// NewMockRebalancer creates a new mock instance
func NewMockRebalancer[T constraints.Ordered](ctrl *gomock.Controller) *MockRebalancer[T] {
	mock := &MockRebalancer[T]{ctrl: ctrl}
	mock.recorder = &MockRebalancerMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockRebalancer[T]) EXPECT() *MockRebalancerMockRecorder[T] {
	return m.recorder
}

// AfterPush mocks base method
func (m *MockRebalancer[T]) AfterPush(arg0 *tree.Tree[T], arg1 []*tree.Node[T], arg2 *tree.Node[T]) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AfterPush", arg0, arg1, arg2)
}

// AfterPush indicates an expected call of AfterPush
func (mr *MockRebalancerMockRecorder[T]) AfterPush(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AfterPush", reflect.TypeOf((*MockRebalancer[T])(nil).AfterPush), arg0, arg1, arg2)
}

// AfterPop mocks base method
func (m *MockRebalancer[T]) AfterPop(arg0 *tree.Tree[T], arg1 []*tree.Node[T], arg2 *tree.Node[T]) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AfterPop", arg0, arg1, arg2)
}

// AfterPop indicates an expected call of AfterPop
func (mr *MockRebalancerMockRecorder[T]) AfterPop(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AfterPop", reflect.TypeOf((*MockRebalancer[T])(nil).AfterPop), arg0, arg1, arg2)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrConfigurationNoTable = InvalidError("configuration did not return a table")
	ErrDuplicateKey         = ExistsError("duplicate key")
	ErrEmptyCollection      = EmptyError("collection is empty")
	ErrIncompatiblePolicy   = InvalidError("rebalancer does not fit placement")
	ErrInvalidCapacity      = InvalidError("capacity must be positive")
	ErrInvalidCost          = InvalidError("cost must not be negative")
	ErrInvalidDirectory     = InvalidError("invalid directory")
	ErrInvalidFileName      = InvalidError("file name must not contain a path")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotDecreased      = InvalidError("new key is greater than old key")
	ErrKeyNotIncreased      = InvalidError("new key is less than old key")
	ErrMissingChild         = InvalidError("rotation requires a child that is absent")
	ErrNotFound             = NotFoundError("not found")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrUnknownTreeKind      = InvalidError("unknown tree kind")
	ErrUnreachable          = NotFoundError("destination is unreachable")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrEmpty(e error) bool    { _, ok := e.(EmptyError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

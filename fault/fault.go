// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrArtifactAlreadyExists        = ExistsError("artifact already exists")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrDeploymentFailed             = ProcessError("deployment failed")
	ErrInvalidBootstrapPrefix       = InvalidError("bootstrap prefix is invalid")
	ErrInvalidCount                 = InvalidError("count is invalid")
	ErrInvalidEngineIdentity        = InvalidError("engine identity is invalid")
	ErrInvalidHandle                = InvalidError("handle is invalid")
	ErrInvalidHandleLength          = LengthError("handle length is invalid")
	ErrInvalidStructPointer         = InvalidError("structure pointer is invalid")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrWrongDatabaseVersion         = ProcessError("wrong database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StateError GenericError

// common errors - keep in alphabetic order within each class
const (
	ErrCarAlreadyExists    = ExistsError("car already exists")
	ErrPersonAlreadyExists = ExistsError("person already exists")

	ErrGenderRequired      = InvalidError("gender must be filled")
	ErrInvalidCount        = InvalidError("invalid count")
	ErrInvalidIPAddress    = InvalidError("invalid IP address")
	ErrInvalidJSON         = InvalidError("data is not valid JSON")
	ErrInvalidKey          = InvalidError("invalid key")
	ErrInvalidPortNumber   = InvalidError("invalid port number")
	ErrInvalidStructure    = InvalidError("invalid structure pointer")
	ErrManufactureRequired = InvalidError("manufacture must be filled")
	ErrMissingParameters   = InvalidError("missing parameters")
	ErrNameRequired        = InvalidError("name must be filled")
	ErrYearRequired        = InvalidError("year must be filled")

	ErrCarNotFound    = NotFoundError("car does not exist")
	ErrPersonNotFound = NotFoundError("person does not exist")

	ErrAlreadyInitialised  = ProcessError("already initialised")
	ErrCorruptRecord       = ProcessError("stored record is corrupt")
	ErrDatabaseVersion     = ProcessError("incompatible database version")
	ErrNotInitialised      = ProcessError("not initialised")
	ErrRateLimiting        = ProcessError("rate limiting")
	ErrReadOnly            = ProcessError("database is read only")
	ErrTransactionClosed   = ProcessError("transaction already closed")
	ErrTransactionConflict = ProcessError("transaction read conflict")

	ErrCarAlreadyManufactured = StateError("car is already manufactured")
	ErrCarAlreadyOwned        = StateError("car already belongs to a person")
	ErrCarAlreadySold         = StateError("car cannot be manufactured after sale")
	ErrCarNotForSale          = StateError("car is not ready to be sold now")
	ErrCarNotTransferable     = StateError("car cannot be transferred in its current status")
	ErrCarSameOwner           = StateError("car cannot be transferred to the same person")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e StateError) Error() string    { return string(e) }

// determine the class of an error, looking through any detail wrapping
func IsErrExists(e error) bool {
	var x ExistsError
	return errors.As(e, &x)
}

func IsErrInvalid(e error) bool {
	var x InvalidError
	return errors.As(e, &x)
}

func IsErrNotFound(e error) bool {
	var x NotFoundError
	return errors.As(e, &x)
}

func IsErrProcess(e error) bool {
	var x ProcessError
	return errors.As(e, &x)
}

func IsErrState(e error) bool {
	var x StateError
	return errors.As(e, &x)
}

// an error with additional context that still compares equal to its
// base error under errors.Is and keeps its class
type detailError struct {
	err    error
	detail string
}

func (d *detailError) Error() string { return d.err.Error() + ": " + d.detail }
func (d *detailError) Unwrap() error { return d.err }

// Detail - attach formatted context (identifiers, current owner, status) to
// one of the fixed errors above
func Detail(err error, format string, arguments ...interface{}) error {
	if nil == err {
		return nil
	}
	return &detailError{
		err:    err,
		detail: fmt.Sprintf(format, arguments...),
	}
}

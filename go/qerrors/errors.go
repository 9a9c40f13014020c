/*
Copyright 2026 The Quark Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package qerrors provides the error type used across the Quark codebase.
//
// Every error produced by this package carries a Code that classifies the
// failure. Callers are expected to branch on ErrCode(err) rather than on
// error message text. Errors created here participate in the standard
// errors.Is / errors.As / errors.Unwrap machinery, so wrapping an error
// with Wrap preserves its code.
package qerrors

import (
	"errors"
	"fmt"
)

// New returns an error with the given code and message.
func New(code Code, msg string) error {
	return &fundamental{code: code, msg: msg}
}

// Errorf formats according to a format specifier and returns the string
// as an error value carrying the given code.
func Errorf(code Code, format string, args ...any) error {
	return &fundamental{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an error annotating err with the given message. The code of
// err, if any, is preserved. If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrapped{cause: err, msg: msg}
}

// Wrapf is like Wrap but formats the annotation.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrapped{cause: err, msg: fmt.Sprintf(format, args...)}
}

// ErrCode returns the code of an error. The nil error has code OK.
// Errors without a code report Unknown.
func ErrCode(err error) Code {
	if err == nil {
		return OK
	}
	var c coded
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return Unknown
}

// coded is the interface an error implements to expose its code.
type coded interface {
	ErrorCode() Code
}

type fundamental struct {
	code Code
	msg  string
}

func (f *fundamental) Error() string   { return f.msg }
func (f *fundamental) ErrorCode() Code { return f.code }

type wrapped struct {
	cause error
	msg   string
}

func (w *wrapped) Error() string { return w.msg + ": " + w.cause.Error() }
func (w *wrapped) Unwrap() error { return w.cause }

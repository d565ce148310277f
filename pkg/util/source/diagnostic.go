// Copyright the Mica Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"fmt"
)

// Code uniquely identifies a class of diagnostic (e.g. division by zero).
// Codes are stable across releases, such that tooling built on top of the
// front-end can key off them.
type Code uint16

// Diagnostic is a structured error which retains the span of the original
// string where the error occurred, along with a stable code and an error
// message.
type Diagnostic struct {
	srcfile *File
	// Code identifying the class of this diagnostic.
	code Code
	// Span of the original text on which this diagnostic is reported.
	span Span
	// Message being reported.
	msg string
}

// SourceFile returns the underlying source file that this diagnostic covers.
func (p *Diagnostic) SourceFile() *File {
	return p.srcfile
}

// Code returns the stable code identifying the class of this diagnostic.
func (p *Diagnostic) Code() Code {
	return p.code
}

// Span returns the span of the original text on which this diagnostic is
// reported.
func (p *Diagnostic) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *Diagnostic) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}

// FirstEnclosingLine determines the first line in this source file to which
// this diagnostic is associated. Observe that, if the position is beyond the
// bounds of the source file then the last physical line is returned.  Also,
// the returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (p *Diagnostic) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}

// Reporter accumulates diagnostics reported against one or more source files
// during an analysis pass.  Recoverable diagnostics are simply collected,
// allowing the pass to continue and report as many problems as possible in one
// go.  Fatal diagnostics are also collected but, additionally, are handed back
// as an error value which the caller must propagate upwards, thereby aborting
// whatever analysis was in progress.
type Reporter struct {
	// Diagnostics reported so far, in reporting order.
	diagnostics []Diagnostic
}

// NewReporter constructs an (initially empty) diagnostic reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Error reports a recoverable diagnostic.  The surrounding analysis is
// expected to continue.
func (p *Reporter) Error(diagnostic *Diagnostic) {
	p.diagnostics = append(p.diagnostics, *diagnostic)
}

// Fatal reports an unrecoverable diagnostic, returning it as an error value
// which must be propagated up the call chain of the in-progress analysis.
func (p *Reporter) Fatal(diagnostic *Diagnostic) error {
	p.diagnostics = append(p.diagnostics, *diagnostic)
	//
	return diagnostic
}

// Count returns the number of diagnostics reported so far.
func (p *Reporter) Count() int {
	return len(p.diagnostics)
}

// Diagnostics returns all diagnostics reported so far, in reporting order.
func (p *Reporter) Diagnostics() []Diagnostic {
	return p.diagnostics
}

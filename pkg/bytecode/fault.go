// Copyright Consensys Software Inc.
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
package bytecode

import "fmt"

// Fault signals a violation of an internal compiler invariant, such as a
// branch to an unmarked label or an emit with the wrong operand count.  A
// fault always indicates a bug in the compiler rather than in user code, and
// is reported as such.  Faults are raised as panics and recovered at the
// compilation boundary; they never cross it silently.
type Fault struct {
	// Msg describes the violated invariant.
	Msg string
}

// Error implements the error interface.
func (p *Fault) Error() string {
	return fmt.Sprintf("compiler fault: %s", p.Msg)
}

// Faultf raises a compiler fault with a formatted message.
func Faultf(format string, args ...any) {
	panic(&Fault{fmt.Sprintf(format, args...)})
}

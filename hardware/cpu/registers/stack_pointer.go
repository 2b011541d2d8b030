// This file is part of dNES.
//
// dNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dNES.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"fmt"
)

// the stack is always in the second page of memory.
const stackPage = 0x0100

// StackPointer is the 8 bit SP register. The value is an offset into page one
// of the address space. Incrementing and decrementing wraps silently at the
// page boundary.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the 8 bit value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the address in memory the stack pointer is currently
// pointing to.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Load value into stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Increment the stack pointer by one, wrapping from 0xff to 0x00.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the stack pointer by one, wrapping from 0x00 to 0xff.
func (sp *StackPointer) Decrement() {
	sp.value--
}

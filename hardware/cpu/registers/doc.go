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

// Package registers implements the three types of register found in the 6502:
// the 8 bit general purpose registers (A, X and Y), the 16 bit program
// counter, the stack pointer and the status register.
//
// The Register type implements the arithmetic and logical operations of the
// CPU. Each function returns the carry and overflow bits where appropriate but
// it is up to the calling code to update the status register. For example:
//
//	carry, overflow := a.Add(value, sr.Carry)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// There is no decimal mode arithmetic. The NES variant of the CPU does not
// have binary coded decimal circuitry although the decimal flag can still be
// set and cleared.
package registers

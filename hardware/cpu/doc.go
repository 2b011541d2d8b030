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

// Package cpu emulates the 6502 CPU found in the NES. The CPU is cycle
// accurate in the sense that every memory access it performs, including the
// dummy accesses made by the real hardware, is a separate call to the memory
// bus and takes exactly one cycle. The number of cycles an instruction takes
// is therefore not looked up in a table but is the result of the accesses the
// instruction makes. The one exception is the page crossing penalty of an
// indexed read instruction, which is an extra cycle with no bus access.
//
// The ExecuteInstruction() function runs an entire instruction. The
// cycleCallback argument is called after every cycle, which allows other
// hardware to be stepped in time with the CPU. The Clock() function steps the
// CPU by a single cycle. The instruction is executed in its entirety on the
// first cycle and the remaining cycles are counted off by later calls.
//
// The CPU must be initialised with PowerOn() before use.
//
// Decimal mode is not implemented. The NES CPU lacks the circuitry, although
// the D flag can be set and cleared as normal.
//
// Opcodes outside of the documented instruction set result in an
// IllegalOpcode error.
package cpu

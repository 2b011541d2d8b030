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

// Package instructions defines the instruction set of the 6502 as found in the
// NES. Every opcode value has a slot in a 256 entry table. Slots for opcodes
// that are not part of the documented instruction set are empty and looking
// them up results in an IllegalOpcode error. There are 151 documented
// opcodes.
//
// Each Definition pairs an Operator with an AddressingMode. Both are simple
// enumerations and the CPU chooses behaviour by switching on them. The Effect
// category describes how the instruction uses its operand and controls the
// dummy bus accesses that the CPU performs.
package instructions

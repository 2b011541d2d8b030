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

package instructions

import (
	"fmt"

	"github.com/psykad/dNES/curated"
)

// Sentinel error patterns.
const (
	IllegalOpcode = "instructions: illegal opcode (%#02x)"
)

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Effect
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// the definition table is indexed by opcode. a nil entry is an illegal opcode.
var table [256]*Definition

// Lookup returns the Definition for the opcode. Opcodes that are not part of
// the documented instruction set result in an IllegalOpcode error.
func Lookup(opcode uint8) (*Definition, error) {
	defn := table[opcode]
	if defn == nil {
		return nil, curated.Errorf(IllegalOpcode, opcode)
	}
	return defn, nil
}

// Definitions returns a copy of the instruction table. Entries for illegal
// opcodes are nil.
func Definitions() [256]*Definition {
	return table
}

// entry is the compact form of a Definition used to build the table. the
// number of bytes is implied by the addressing mode and page sensitivity is
// implied by the effect and addressing mode.
type entry struct {
	opcode uint8
	op     Operator
	mode   AddressingMode
	cycles int
	effect Effect
}

func init() {
	for _, e := range documented {
		if table[e.opcode] != nil {
			panic(fmt.Sprintf("instructions: duplicate opcode (%#02x)", e.opcode))
		}
		table[e.opcode] = &Definition{
			OpCode:         e.opcode,
			Operator:       e.op,
			Bytes:          e.mode.Bytes(),
			Cycles:         e.cycles,
			AddressingMode: e.mode,
			PageSensitive:  e.effect == Read && e.mode.Indexed(),
			Effect:         e.effect,
		}
	}
}

// cycle counts are the minimum for the instruction. page sensitive
// instructions take one more cycle if a page boundary is crossed and branch
// instructions take one or two more cycles if the branch is taken.
var documented = []entry{
	{0x69, Adc, Immediate, 2, Read},
	{0x65, Adc, ZeroPage, 3, Read},
	{0x75, Adc, ZeroPageIndexedX, 4, Read},
	{0x6d, Adc, Absolute, 4, Read},
	{0x7d, Adc, AbsoluteIndexedX, 4, Read},
	{0x79, Adc, AbsoluteIndexedY, 4, Read},
	{0x61, Adc, IndexedIndirect, 6, Read},
	{0x71, Adc, IndirectIndexed, 5, Read},

	{0x29, And, Immediate, 2, Read},
	{0x25, And, ZeroPage, 3, Read},
	{0x35, And, ZeroPageIndexedX, 4, Read},
	{0x2d, And, Absolute, 4, Read},
	{0x3d, And, AbsoluteIndexedX, 4, Read},
	{0x39, And, AbsoluteIndexedY, 4, Read},
	{0x21, And, IndexedIndirect, 6, Read},
	{0x31, And, IndirectIndexed, 5, Read},

	{0x0a, Asl, Accumulator, 2, Read},
	{0x06, Asl, ZeroPage, 5, RMW},
	{0x16, Asl, ZeroPageIndexedX, 6, RMW},
	{0x0e, Asl, Absolute, 6, RMW},
	{0x1e, Asl, AbsoluteIndexedX, 7, RMW},

	{0x90, Bcc, Relative, 2, Flow},
	{0xb0, Bcs, Relative, 2, Flow},
	{0xf0, Beq, Relative, 2, Flow},
	{0x30, Bmi, Relative, 2, Flow},
	{0xd0, Bne, Relative, 2, Flow},
	{0x10, Bpl, Relative, 2, Flow},
	{0x50, Bvc, Relative, 2, Flow},
	{0x70, Bvs, Relative, 2, Flow},

	{0x24, Bit, ZeroPage, 3, Read},
	{0x2c, Bit, Absolute, 4, Read},

	{0x00, Brk, Implied, 7, Interrupt},

	{0x18, Clc, Implied, 2, Read},
	{0xd8, Cld, Implied, 2, Read},
	{0x58, Cli, Implied, 2, Read},
	{0xb8, Clv, Implied, 2, Read},

	{0xc9, Cmp, Immediate, 2, Read},
	{0xc5, Cmp, ZeroPage, 3, Read},
	{0xd5, Cmp, ZeroPageIndexedX, 4, Read},
	{0xcd, Cmp, Absolute, 4, Read},
	{0xdd, Cmp, AbsoluteIndexedX, 4, Read},
	{0xd9, Cmp, AbsoluteIndexedY, 4, Read},
	{0xc1, Cmp, IndexedIndirect, 6, Read},
	{0xd1, Cmp, IndirectIndexed, 5, Read},

	{0xe0, Cpx, Immediate, 2, Read},
	{0xe4, Cpx, ZeroPage, 3, Read},
	{0xec, Cpx, Absolute, 4, Read},

	{0xc0, Cpy, Immediate, 2, Read},
	{0xc4, Cpy, ZeroPage, 3, Read},
	{0xcc, Cpy, Absolute, 4, Read},

	{0xc6, Dec, ZeroPage, 5, RMW},
	{0xd6, Dec, ZeroPageIndexedX, 6, RMW},
	{0xce, Dec, Absolute, 6, RMW},
	{0xde, Dec, AbsoluteIndexedX, 7, RMW},

	{0xca, Dex, Implied, 2, Read},
	{0x88, Dey, Implied, 2, Read},

	{0x49, Eor, Immediate, 2, Read},
	{0x45, Eor, ZeroPage, 3, Read},
	{0x55, Eor, ZeroPageIndexedX, 4, Read},
	{0x4d, Eor, Absolute, 4, Read},
	{0x5d, Eor, AbsoluteIndexedX, 4, Read},
	{0x59, Eor, AbsoluteIndexedY, 4, Read},
	{0x41, Eor, IndexedIndirect, 6, Read},
	{0x51, Eor, IndirectIndexed, 5, Read},

	{0xe6, Inc, ZeroPage, 5, RMW},
	{0xf6, Inc, ZeroPageIndexedX, 6, RMW},
	{0xee, Inc, Absolute, 6, RMW},
	{0xfe, Inc, AbsoluteIndexedX, 7, RMW},

	{0xe8, Inx, Implied, 2, Read},
	{0xc8, Iny, Implied, 2, Read},

	{0x4c, Jmp, Absolute, 3, Flow},
	{0x6c, Jmp, Indirect, 5, Flow},

	{0x20, Jsr, Absolute, 6, Subroutine},

	{0xa9, Lda, Immediate, 2, Read},
	{0xa5, Lda, ZeroPage, 3, Read},
	{0xb5, Lda, ZeroPageIndexedX, 4, Read},
	{0xad, Lda, Absolute, 4, Read},
	{0xbd, Lda, AbsoluteIndexedX, 4, Read},
	{0xb9, Lda, AbsoluteIndexedY, 4, Read},
	{0xa1, Lda, IndexedIndirect, 6, Read},
	{0xb1, Lda, IndirectIndexed, 5, Read},

	{0xa2, Ldx, Immediate, 2, Read},
	{0xa6, Ldx, ZeroPage, 3, Read},
	{0xb6, Ldx, ZeroPageIndexedY, 4, Read},
	{0xae, Ldx, Absolute, 4, Read},
	{0xbe, Ldx, AbsoluteIndexedY, 4, Read},

	{0xa0, Ldy, Immediate, 2, Read},
	{0xa4, Ldy, ZeroPage, 3, Read},
	{0xb4, Ldy, ZeroPageIndexedX, 4, Read},
	{0xac, Ldy, Absolute, 4, Read},
	{0xbc, Ldy, AbsoluteIndexedX, 4, Read},

	{0x4a, Lsr, Accumulator, 2, Read},
	{0x46, Lsr, ZeroPage, 5, RMW},
	{0x56, Lsr, ZeroPageIndexedX, 6, RMW},
	{0x4e, Lsr, Absolute, 6, RMW},
	{0x5e, Lsr, AbsoluteIndexedX, 7, RMW},

	{0xea, Nop, Implied, 2, Read},

	{0x09, Ora, Immediate, 2, Read},
	{0x05, Ora, ZeroPage, 3, Read},
	{0x15, Ora, ZeroPageIndexedX, 4, Read},
	{0x0d, Ora, Absolute, 4, Read},
	{0x1d, Ora, AbsoluteIndexedX, 4, Read},
	{0x19, Ora, AbsoluteIndexedY, 4, Read},
	{0x01, Ora, IndexedIndirect, 6, Read},
	{0x11, Ora, IndirectIndexed, 5, Read},

	{0x48, Pha, Implied, 3, Write},
	{0x08, Php, Implied, 3, Write},
	{0x68, Pla, Implied, 4, Read},
	{0x28, Plp, Implied, 4, Read},

	{0x2a, Rol, Accumulator, 2, Read},
	{0x26, Rol, ZeroPage, 5, RMW},
	{0x36, Rol, ZeroPageIndexedX, 6, RMW},
	{0x2e, Rol, Absolute, 6, RMW},
	{0x3e, Rol, AbsoluteIndexedX, 7, RMW},

	{0x6a, Ror, Accumulator, 2, Read},
	{0x66, Ror, ZeroPage, 5, RMW},
	{0x76, Ror, ZeroPageIndexedX, 6, RMW},
	{0x6e, Ror, Absolute, 6, RMW},
	{0x7e, Ror, AbsoluteIndexedX, 7, RMW},

	{0x40, Rti, Implied, 6, Interrupt},
	{0x60, Rts, Implied, 6, Subroutine},

	{0xe9, Sbc, Immediate, 2, Read},
	{0xe5, Sbc, ZeroPage, 3, Read},
	{0xf5, Sbc, ZeroPageIndexedX, 4, Read},
	{0xed, Sbc, Absolute, 4, Read},
	{0xfd, Sbc, AbsoluteIndexedX, 4, Read},
	{0xf9, Sbc, AbsoluteIndexedY, 4, Read},
	{0xe1, Sbc, IndexedIndirect, 6, Read},
	{0xf1, Sbc, IndirectIndexed, 5, Read},

	{0x38, Sec, Implied, 2, Read},
	{0xf8, Sed, Implied, 2, Read},
	{0x78, Sei, Implied, 2, Read},

	{0x85, Sta, ZeroPage, 3, Write},
	{0x95, Sta, ZeroPageIndexedX, 4, Write},
	{0x8d, Sta, Absolute, 4, Write},
	{0x9d, Sta, AbsoluteIndexedX, 5, Write},
	{0x99, Sta, AbsoluteIndexedY, 5, Write},
	{0x81, Sta, IndexedIndirect, 6, Write},
	{0x91, Sta, IndirectIndexed, 6, Write},

	{0x86, Stx, ZeroPage, 3, Write},
	{0x96, Stx, ZeroPageIndexedY, 4, Write},
	{0x8e, Stx, Absolute, 4, Write},

	{0x84, Sty, ZeroPage, 3, Write},
	{0x94, Sty, ZeroPageIndexedX, 4, Write},
	{0x8c, Sty, Absolute, 4, Write},

	{0xaa, Tax, Implied, 2, Read},
	{0xa8, Tay, Implied, 2, Read},
	{0xba, Tsx, Implied, 2, Read},
	{0x8a, Txa, Implied, 2, Read},
	{0x9a, Txs, Implied, 2, Read},
	{0x98, Tya, Implied, 2, Read},
}

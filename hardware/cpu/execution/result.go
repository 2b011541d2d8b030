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

package execution

import (
	"fmt"

	"github.com/psykad/dNES/hardware/cpu/instructions"
)

// Result records the state/result of the most recent instruction executed by
// the CPU.
type Result struct {
	// the address of the opcode
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the operand bytes read by the instruction. for two byte operands the
	// value is little endian
	InstructionData uint16

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully decoded
	ByteCount int

	// the number of cycles taken by the instruction so far
	Cycles int

	// whether an extra cycle was required because of indexing across a page
	// boundary. set by the addressing mode and consulted by the operation
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// any known 6502 quirk that was triggered
	CPUBug Bug

	// whether the instruction has executed completely
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the operand of the instruction in conventional assembler
// notation. Relative operands are shown as the branch destination.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", r.InstructionData)
	case instructions.Relative:
		dest := r.Address + 2 + uint16(int8(r.InstructionData))
		return fmt.Sprintf("$%04X", dest)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y", r.InstructionData)
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", r.InstructionData)
	}

	return ""
}

// Bytes returns the bytes of the instruction as they appear in memory.
func (r Result) Bytes() []uint8 {
	if r.Defn == nil {
		return nil
	}
	b := []uint8{r.Defn.OpCode}
	if r.Defn.Bytes > 1 {
		b = append(b, uint8(r.InstructionData))
	}
	if r.Defn.Bytes > 2 {
		b = append(b, uint8(r.InstructionData>>8))
	}
	return b
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04X  ???", r.Address)
	}

	var b string
	for _, v := range r.Bytes() {
		b += fmt.Sprintf("%02X ", v)
	}

	s := fmt.Sprintf("%04X  %-9s %s", r.Address, b, r.Defn.Operator)
	if o := r.Operand(); o != "" {
		s = fmt.Sprintf("%s %s", s, o)
	}
	return s
}

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

package cpu

import (
	"fmt"

	"github.com/psykad/dNES/curated"
	"github.com/psykad/dNES/environment"
	"github.com/psykad/dNES/hardware/cpu/execution"
	"github.com/psykad/dNES/hardware/cpu/instructions"
	"github.com/psykad/dNES/hardware/cpu/registers"
	"github.com/psykad/dNES/hardware/memory/cpubus"
	"github.com/psykad/dNES/logger"
)

// Sentinel error patterns.
const (
	NotReset       = "cpu: not reset"
	MidInstruction = "cpu: starting a new instruction is invalid mid-instruction"
	IllegalOpcode  = "cpu: illegal opcode (%#02x) at (%#04x) [cycle %d]"
	FetchError     = "cpu: %v [fetching opcode at %#04x; cycle %d]"
	ExecutionError = "cpu: %v [opcode %#02x at %#04x; cycle %d]"
)

// values of the registers after power on.
const (
	powerOnSP     = 0xfd
	powerOnStatus = 0x24
)

// CPU implements the 6502 as found in the NES. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	env *environment.Environment

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem cpubus.Memory

	// cycleCallback is called after every memory access
	cycleCallback func() error

	// the result of the most recent instruction. also carries the transient
	// state of the current instruction, such as whether a page fault has
	// occurred
	LastResult execution.Result

	// the number of cycles since power on
	TotalCycles uint64

	// the number of cycles of the most recent instruction still to be counted
	// off by Clock()
	remaining int

	// whether the CPU has been reset since it was created
	reset bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU must be powered on with PowerOn() before it can execute instructions.
func NewCPU(env *environment.Environment, mem cpubus.Memory) *CPU {
	return &CPU{
		env:           env,
		mem:           mem,
		PC:            registers.NewProgramCounter(0),
		A:             registers.NewRegister(0, "A"),
		X:             registers.NewRegister(0, "X"),
		Y:             registers.NewRegister(0, "Y"),
		SP:            registers.NewStackPointer(0),
		Status:        registers.NewStatusRegister(),
		acc8:          registers.NewRegister(0, "accumulator"),
		cycleCallback: NilCycleCallback,
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%02x",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status.Value())
}

// PowerOn initialises the registers to their power on state and loads the PC
// from the reset vector. The cycle count is reset to zero.
func (mc *CPU) PowerOn() error {
	mc.LastResult.Reset()
	mc.remaining = 0
	mc.TotalCycles = 0

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(powerOnSP)
	mc.Status.Load(powerOnStatus)

	err := mc.LoadPCIndirect(cpubus.Reset)
	if err != nil {
		return err
	}
	mc.reset = true

	logger.Logf(mc.env, "cpu", "power on: PC=%s", mc.PC)

	return nil
}

// Reset the CPU. The PC is loaded from the reset vector and the stack pointer
// is moved down by three without writing to memory, as the real hardware
// does. Interrupts are disabled. Other registers are unchanged.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()
	mc.remaining = 0

	err := mc.LoadPCIndirect(cpubus.Reset)
	if err != nil {
		return err
	}

	mc.SP.Decrement()
	mc.SP.Decrement()
	mc.SP.Decrement()
	mc.Status.InterruptDisable = true
	mc.reset = true

	logger.Logf(mc.env, "cpu", "reset: PC=%s", mc.PC)

	return nil
}

// HasReset checks whether the CPU has been powered on or reset and is
// therefore ready to execute instructions.
func (mc *CPU) HasReset() bool {
	return mc.reset
}

// InstructionBoundary returns true if the most recent instruction has been
// completely counted off by Clock(). ExecuteInstruction() can only be called
// at an instruction boundary.
func (mc *CPU) InstructionBoundary() bool {
	return mc.remaining == 0
}

// LoadPCIndirect loads the contents of indirectAddress into the PC. The memory
// accesses are not counted as CPU cycles.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	if !mc.InstructionBoundary() {
		return curated.Errorf("cpu: load PC indirect invalid mid-instruction")
	}

	lo, err := mc.mem.Read(indirectAddress)
	if err != nil {
		return err
	}

	hi, err := mc.mem.Read(indirectAddress + 1)
	if err != nil {
		return err
	}

	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) error {
	if !mc.InstructionBoundary() {
		return curated.Errorf("cpu: load PC invalid mid-instruction")
	}

	mc.PC.Load(directAddress)

	return nil
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// Clock steps the CPU forward by one cycle. If there are no cycles remaining
// from the previous instruction then the next instruction is executed and the
// number of cycles it took becomes the new count of remaining cycles.
func (mc *CPU) Clock() error {
	if mc.remaining == 0 {
		err := mc.ExecuteInstruction(NilCycleCallback)
		if err != nil {
			return err
		}
		mc.remaining = mc.LastResult.Cycles
	}

	mc.remaining--

	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run.
//
// Any error that occurs during the instruction is returned with the address,
// opcode and cycle count. The state of the CPU is undefined after an error.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	if !mc.reset {
		return curated.Errorf(NotReset)
	}

	if !mc.InstructionBoundary() {
		return curated.Errorf(MidInstruction)
	}

	if cycleCallback == nil {
		cycleCallback = NilCycleCallback
	}
	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	err := mc.executeInstruction()
	if err != nil {
		if curated.Is(err, IllegalOpcode) {
			return err
		}
		if mc.LastResult.Defn == nil {
			return curated.Errorf(FetchError, err, mc.LastResult.Address, mc.TotalCycles)
		}
		return curated.Errorf(ExecutionError, err, mc.LastResult.Defn.OpCode, mc.LastResult.Address, mc.TotalCycles)
	}

	mc.LastResult.Final = true

	return nil
}

// endCycle is called after every memory access.
func (mc *CPU) endCycle() error {
	mc.LastResult.Cycles++
	mc.TotalCycles++
	return mc.cycleCallback()
}

// read8Bit returns the 8bit value from the specified address. Every call to
// read8Bit takes one cycle.
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	val, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	return val, mc.endCycle()
}

// write8Bit writes 8 bits to the specified address. Every call to write8Bit
// takes one cycle.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	err := mc.mem.Write(address, value)
	if err != nil {
		return err
	}

	return mc.endCycle()
}

// read16Bit returns the 16bit value starting at the specified address. The
// value is little endian and the read takes two cycles.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address)
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(address + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// the reason for reading a byte at the PC.
type readPC int

const (
	newOpcode readPC = iota
	loByte
	hiByte
	brk
)

// read8BitPC reads 8 bits from the memory location pointed to by PC and
// advances the PC. The purpose of the read changes how the value is recorded
// in LastResult.
func (mc *CPU) read8BitPC(f readPC) (uint8, error) {
	v, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return 0, err
	}

	mc.PC.Add(1)

	switch f {
	case newOpcode:
		mc.LastResult.ByteCount = 1
		defn, err := instructions.Lookup(v)
		if err != nil {
			return 0, curated.Errorf(IllegalOpcode, v, mc.LastResult.Address, mc.TotalCycles)
		}
		mc.LastResult.Defn = defn
	case loByte:
		mc.LastResult.InstructionData = uint16(v)
		mc.LastResult.ByteCount++
	case hiByte:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
		mc.LastResult.ByteCount++
	case brk:
		// the padding byte of the BRK instruction is read but is not part of
		// the instruction
	}

	return v, nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC and
// advances the PC by two.
func (mc *CPU) read16BitPC() (uint16, error) {
	_, err := mc.read8BitPC(loByte)
	if err != nil {
		return 0, err
	}

	_, err = mc.read8BitPC(hiByte)
	if err != nil {
		return 0, err
	}

	return mc.LastResult.InstructionData, nil
}

// push a value onto the stack. the stack pointer wraps within page one.
func (mc *CPU) push(v uint8) error {
	err := mc.write8Bit(mc.SP.Address(), v)
	if err != nil {
		return err
	}
	mc.SP.Decrement()
	return nil
}

// pull a value from the stack.
func (mc *CPU) pull() (uint8, error) {
	mc.SP.Increment()
	return mc.read8Bit(mc.SP.Address())
}

// phantom reads are dummy reads made by the 6502 while it is busy with
// something else. the value is discarded.
func (mc *CPU) phantom(address uint16) error {
	_, err := mc.read8Bit(address)
	return err
}

// indexed adds the index to the base address. if the addition crosses a
// page boundary then the instruction may need to read from the address
// before the carry has been applied to the high byte.
func (mc *CPU) indexed(base uint16, index uint8) (uint16, error) {
	sum := (base & 0x00ff) + uint16(index)
	crossed := sum > 0x00ff

	mc.LastResult.PageFault = crossed && mc.LastResult.Defn.PageSensitive

	// write and RMW instructions always read from the un-carried address.
	// page sensitive read instructions take a penalty cycle without a bus
	// access if the carry was needed
	switch mc.LastResult.Defn.Effect {
	case instructions.Write, instructions.RMW:
		err := mc.phantom((base & 0xff00) | (sum & 0x00ff))
		if err != nil {
			return 0, err
		}
	default:
		if mc.LastResult.PageFault {
			err := mc.endCycle()
			if err != nil {
				return 0, err
			}
		}
	}

	return base + uint16(index), nil
}

// branch is used by all the branch instructions. the offset has already
// been read as the operand of the instruction.
func (mc *CPU) branch(flag bool, offset uint8) error {
	if !flag {
		return nil
	}

	mc.LastResult.BranchSuccess = true

	// the CPU reads the byte after the instruction while it adds the offset
	// to the low byte of the PC
	err := mc.phantom(mc.PC.Address())
	if err != nil {
		return err
	}

	// the high byte of the PC is not changed until the next cycle, if the
	// addition has crossed a page
	target := mc.PC.Address() + uint16(int8(offset))
	hi := mc.PC.Address() & 0xff00
	mc.PC.Load(hi | (target & 0x00ff))

	if mc.PC.Address() != target {
		mc.LastResult.PageFault = true

		// read from the wrong page before the PC is corrected
		err := mc.phantom(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.PC.Load(target)
	}

	return nil
}

func (mc *CPU) executeInstruction() error {
	// read next instruction
	_, err := mc.read8BitPC(newOpcode)
	if err != nil {
		return err
	}
	defn := mc.LastResult.Defn

	// the address the operation will use. some modes have no address
	var address uint16

	// the value the operation will use. for read and RMW instructions this is
	// read from the address. for immediate and relative instructions it is
	// the operand
	var value uint8

	// get address to use when reading/writing from/to memory
	switch defn.AddressingMode {
	case instructions.Implied:
		// the BRK instruction reads and skips the byte following the opcode.
		// all other implied instructions read the byte and ignore it
		if defn.Operator == instructions.Brk {
			_, err = mc.read8BitPC(brk)
		} else {
			err = mc.phantom(mc.PC.Address())
		}
		if err != nil {
			return err
		}

	case instructions.Accumulator:
		err = mc.phantom(mc.PC.Address())
		if err != nil {
			return err
		}
		value = mc.A.Value()

	case instructions.Immediate:
		value, err = mc.read8BitPC(loByte)
		if err != nil {
			return err
		}

	case instructions.Relative:
		value, err = mc.read8BitPC(loByte)
		if err != nil {
			return err
		}

	case instructions.Absolute:
		// JSR reads the high byte of the destination after the return
		// address has been pushed. the operand is handled by the operator
		if defn.Effect != instructions.Subroutine {
			address, err = mc.read16BitPC()
			if err != nil {
				return err
			}
		}

	case instructions.ZeroPage:
		v, err := mc.read8BitPC(loByte)
		if err != nil {
			return err
		}
		address = uint16(v)

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		v, err := mc.read8BitPC(loByte)
		if err != nil {
			return err
		}

		// the base address is read while the index is added
		err = mc.phantom(uint16(v))
		if err != nil {
			return err
		}

		index := mc.X.Value()
		if defn.AddressingMode == instructions.ZeroPageIndexedY {
			index = mc.Y.Value()
		}

		// the result of the addition does not leave the zero page
		mc.acc8.Load(v)
		mc.acc8.Add(index, false)
		if mc.acc8.Value() < v {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
		address = mc.acc8.Address()

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		base, err := mc.read16BitPC()
		if err != nil {
			return err
		}

		index := mc.X.Value()
		if defn.AddressingMode == instructions.AbsoluteIndexedY {
			index = mc.Y.Value()
		}

		address, err = mc.indexed(base, index)
		if err != nil {
			return err
		}

	case instructions.Indirect:
		// the only indirect instruction is JMP
		indirectAddress, err := mc.read16BitPC()
		if err != nil {
			return err
		}

		lo, err := mc.read8Bit(indirectAddress)
		if err != nil {
			return err
		}

		// the 6502 does not carry into the high byte of the pointer. a
		// pointer at the end of a page takes its high byte from the start
		// of the same page
		hiAddress := (indirectAddress & 0xff00) | ((indirectAddress + 1) & 0x00ff)
		if hiAddress != indirectAddress+1 {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

		hi, err := mc.read8Bit(hiAddress)
		if err != nil {
			return err
		}

		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect: // x indexed
		v, err := mc.read8BitPC(loByte)
		if err != nil {
			return err
		}

		// the pointer is read while the index is added
		err = mc.phantom(uint16(v))
		if err != nil {
			return err
		}

		mc.acc8.Load(v)
		mc.acc8.Add(mc.X.Value(), false)
		ptr := mc.acc8.Value()

		lo, err := mc.read8Bit(uint16(ptr))
		if err != nil {
			return err
		}

		// the pointer is always in the zero page
		hi, err := mc.read8Bit(uint16(ptr + 1))
		if err != nil {
			return err
		}

		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndirectIndexed: // y indexed
		ptr, err := mc.read8BitPC(loByte)
		if err != nil {
			return err
		}

		lo, err := mc.read8Bit(uint16(ptr))
		if err != nil {
			return err
		}

		hi, err := mc.read8Bit(uint16(ptr + 1))
		if err != nil {
			return err
		}

		address, err = mc.indexed((uint16(hi)<<8)|uint16(lo), mc.Y.Value())
		if err != nil {
			return err
		}

	default:
		return curated.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// read value from memory using address found in AddressingMode switch
	// above only when the instruction reads from memory
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
	default:
		switch defn.Effect {
		case instructions.Read:
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}

		case instructions.RMW:
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}

			// the unmodified value is written back while the operation is
			// performed
			err = mc.write8Bit(address, value)
			if err != nil {
				return err
			}
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		err = mc.push(mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Pla:
		// the stack is read before the stack pointer is incremented
		err = mc.phantom(mc.SP.Address())
		if err != nil {
			return err
		}

		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Php:
		err = mc.push(mc.Status.PushValue())
		if err != nil {
			return err
		}

	case instructions.Plp:
		err = mc.phantom(mc.SP.Address())
		if err != nil {
			return err
		}

		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(value)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		// does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		err = mc.write8Bit(address, mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Stx:
		err = mc.write8Bit(address, mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Sty:
		err = mc.write8Bit(address, mc.Y.Value())
		if err != nil {
			return err
		}

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Asl:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ASL()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Lsr:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.LSR()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Rol:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Ror:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Adc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Cmp:
		mc.acc8.Load(mc.A.Value())
		mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()

	case instructions.Cpx:
		mc.acc8.Load(mc.X.Value())
		mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()

	case instructions.Cpy:
		mc.acc8.Load(mc.Y.Value())
		mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		err = mc.branch(!mc.Status.Carry, value)
		if err != nil {
			return err
		}

	case instructions.Bcs:
		err = mc.branch(mc.Status.Carry, value)
		if err != nil {
			return err
		}

	case instructions.Beq:
		err = mc.branch(mc.Status.Zero, value)
		if err != nil {
			return err
		}

	case instructions.Bmi:
		err = mc.branch(mc.Status.Sign, value)
		if err != nil {
			return err
		}

	case instructions.Bne:
		err = mc.branch(!mc.Status.Zero, value)
		if err != nil {
			return err
		}

	case instructions.Bpl:
		err = mc.branch(!mc.Status.Sign, value)
		if err != nil {
			return err
		}

	case instructions.Bvc:
		err = mc.branch(!mc.Status.Overflow, value)
		if err != nil {
			return err
		}

	case instructions.Bvs:
		err = mc.branch(mc.Status.Overflow, value)
		if err != nil {
			return err
		}

	case instructions.Jsr:
		_, err = mc.read8BitPC(loByte)
		if err != nil {
			return err
		}

		// internal operation. the 6502 reads the stack while it stores the
		// low byte of the destination
		err = mc.phantom(mc.SP.Address())
		if err != nil {
			return err
		}

		// the PC is pointing at the high byte of the destination. this is
		// the address pushed to the stack. RTS adds one to it on return
		err = mc.push(uint8(mc.PC.Address() >> 8))
		if err != nil {
			return err
		}

		err = mc.push(uint8(mc.PC.Address()))
		if err != nil {
			return err
		}

		_, err = mc.read8BitPC(hiByte)
		if err != nil {
			return err
		}

		mc.PC.Load(mc.LastResult.InstructionData)

	case instructions.Rts:
		err = mc.phantom(mc.SP.Address())
		if err != nil {
			return err
		}

		lo, err := mc.pull()
		if err != nil {
			return err
		}

		hi, err := mc.pull()
		if err != nil {
			return err
		}

		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

		// the return address is read while the PC is incremented
		err = mc.phantom(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.PC.Add(1)

	case instructions.Brk:
		// the PC has been advanced past the padding byte. that is the
		// address that is pushed to the stack
		err = mc.push(uint8(mc.PC.Address() >> 8))
		if err != nil {
			return err
		}

		err = mc.push(uint8(mc.PC.Address()))
		if err != nil {
			return err
		}

		// the break flag is set in the pushed value only
		err = mc.push(mc.Status.PushValue())
		if err != nil {
			return err
		}

		mc.Status.InterruptDisable = true

		vector, err := mc.read16Bit(cpubus.BRK)
		if err != nil {
			return err
		}
		mc.PC.Load(vector)

	case instructions.Rti:
		err = mc.phantom(mc.SP.Address())
		if err != nil {
			return err
		}

		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(value)

		lo, err := mc.pull()
		if err != nil {
			return err
		}

		hi, err := mc.pull()
		if err != nil {
			return err
		}

		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	default:
		return curated.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW {
		err = mc.write8Bit(address, value)
		if err != nil {
			return err
		}
	}

	return nil
}

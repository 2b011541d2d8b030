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

package hardware_test

import (
	"fmt"
	"testing"

	"github.com/psykad/dNES/cartridgeloader"
	"github.com/psykad/dNES/curated"
	"github.com/psykad/dNES/govern"
	"github.com/psykad/dNES/hardware"
	"github.com/psykad/dNES/hardware/cpu"
	"github.com/psykad/dNES/hardware/memory"
	"github.com/psykad/dNES/hardware/memory/cartridge"
	"github.com/psykad/dNES/test"
)

// rom returns an NROM-128 container with the program at the start of PRG and
// the reset vector pointing to it.
func rom(program ...uint8) []uint8 {
	data := make([]uint8, cartridge.HeaderLen+cartridge.PRGPageSize+cartridge.CHRPageSize)
	copy(data, []uint8{'N', 'E', 'S', 0x1a, 1, 1})
	prg := data[cartridge.HeaderLen:]
	copy(prg, program)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	return data
}

func newNES(t *testing.T, program ...uint8) *hardware.NES {
	t.Helper()
	cl, err := cartridgeloader.NewLoaderFromData("test.nes", rom(program...))
	test.DemandSuccess(t, err)
	nes := hardware.NewNES(nil)
	test.DemandSuccess(t, nes.AttachCartridge(cl))
	return nes
}

// LDA #$05; STA $02; JMP $8004
var program = []uint8{0xa9, 0x05, 0x85, 0x02, 0x4c, 0x04, 0x80}

func TestNoCartridge(t *testing.T) {
	nes := hardware.NewNES(nil)
	test.ExpectFailure(t, nes.Step())
	test.ExpectEquality(t, nes.String()[:12], "no cartridge")

	// the reset vector cannot be read without a cartridge
	err := nes.PowerOn()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, memory.NoCartridge), true)
}

func TestRunForInstructionCount(t *testing.T) {
	nes := newNES(t, program...)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8000))

	test.DemandSuccess(t, nes.RunForInstructionCount(2))
	test.ExpectEquality(t, nes.CPU.TotalCycles, uint64(5))
	test.ExpectEquality(t, nes.Mem.RAM.Read(0x0002), uint8(0x05))
	test.ExpectEquality(t, nes.CPU.A.Value(), uint8(0x05))

	test.DemandSuccess(t, nes.RunForInstructionCount(0))
	test.ExpectEquality(t, nes.CPU.TotalCycles, uint64(5))
}

func TestIndexedReadIntoCartridge(t *testing.T) {
	// LDY #$20; LDA $7ff0,Y. the un-carried address 0x7f10 is not mapped on
	// the bus but the effective address 0x8010 is in PRG
	program := make([]uint8, 0x11)
	copy(program, []uint8{0xa0, 0x20, 0xb9, 0xf0, 0x7f})
	program[0x10] = 0x42

	nes := newNES(t, program...)
	test.DemandSuccess(t, nes.RunForInstructionCount(2))
	test.ExpectEquality(t, nes.CPU.LastResult.Cycles, 5)
	test.ExpectEquality(t, nes.CPU.LastResult.PageFault, true)
	test.ExpectEquality(t, nes.CPU.A.Value(), uint8(0x42))
}

func TestRunForCycles(t *testing.T) {
	nes := newNES(t, program...)

	// the run stops at the end of the instruction that reaches the target
	test.DemandSuccess(t, nes.RunForCycles(10))
	test.ExpectEquality(t, nes.CPU.TotalCycles, uint64(11))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8004))
}

func TestBudgets(t *testing.T) {
	nes := newNES(t, program...)

	check := nes.InstructionBudget(2)
	s, _ := check()
	test.ExpectEquality(t, s, govern.Running)
	s, _ = check()
	test.ExpectEquality(t, s, govern.Ending)

	// a zero budget never ends the emulation
	check = nes.InstructionBudget(0)
	for i := 0; i < 10; i++ {
		s, _ = check()
		test.ExpectEquality(t, s, govern.Running)
	}

	// cycle budgets count from when they are created
	test.DemandSuccess(t, nes.RunForCycles(10))
	check = nes.CycleBudget(6)
	test.DemandSuccess(t, nes.Run(check))
	test.ExpectEquality(t, nes.CPU.TotalCycles, uint64(17))

	check = nes.CycleBudget(0)
	test.DemandSuccess(t, nes.Step())
	s, _ = check()
	test.ExpectEquality(t, s, govern.Running)
}

func TestRun(t *testing.T) {
	nes := newNES(t, program...)

	var count int
	err := nes.Run(func() (govern.State, error) {
		count++
		if count < 3 {
			return govern.Paused, nil
		}
		if count < 5 {
			return govern.Running, nil
		}
		return govern.Ending, nil
	})
	test.ExpectSuccess(t, err)

	// the first instruction always runs. the paused states do not advance the
	// CPU so only three instructions are executed
	test.ExpectEquality(t, nes.CPU.TotalCycles, uint64(8))

	err = nes.Run(func() (govern.State, error) {
		return govern.Running, fmt.Errorf("stop")
	})
	test.ExpectFailure(t, err)

	err = nes.Run(func() (govern.State, error) {
		return govern.Initialising, nil
	})
	test.ExpectFailure(t, err)
}

func TestRunError(t *testing.T) {
	// LDA #$01; illegal opcode
	nes := newNES(t, 0xa9, 0x01, 0x02)
	err := nes.Run(nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cpu.IllegalOpcode), true)
	test.ExpectEquality(t, nes.CPU.TotalCycles, uint64(3))

	// STA $8000
	nes = newNES(t, 0x8d, 0x00, 0x80)
	err = nes.Run(nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cpu.ExecutionError), true)
	test.ExpectEquality(t, curated.Has(err, cartridge.UnexpectedAccess), true)
}

func TestClock(t *testing.T) {
	nes := newNES(t, program...)
	test.DemandSuccess(t, nes.Clock())
	test.ExpectEquality(t, nes.CPU.A.Value(), uint8(0x05))
	test.DemandSuccess(t, nes.Clock())
	test.DemandSuccess(t, nes.Clock())
	test.ExpectEquality(t, nes.Mem.RAM.Read(0x0002), uint8(0x05))
	test.ExpectEquality(t, nes.CPU.InstructionBoundary(), false)
}

func TestReset(t *testing.T) {
	nes := newNES(t, program...)
	test.DemandSuccess(t, nes.RunForInstructionCount(3))
	test.DemandSuccess(t, nes.Reset())
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8000))
	test.ExpectEquality(t, nes.CPU.SP.Value(), uint8(0xfa))

	// RAM is not cleared by reset but is by power on
	test.ExpectEquality(t, nes.Mem.RAM.Read(0x0002), uint8(0x05))
	test.DemandSuccess(t, nes.PowerOn())
	test.ExpectEquality(t, nes.Mem.RAM.Read(0x0002), uint8(0x00))
	test.ExpectEquality(t, nes.CPU.SP.Value(), uint8(0xfd))
}

func TestTrace(t *testing.T) {
	nes := newNES(t, program...)

	w := &test.Writer{}
	nes.SetTrace(w)
	test.DemandSuccess(t, nes.RunForInstructionCount(3))

	expected := fmt.Sprintf("%-47s A:00 X:00 Y:00 P:24 SP:FD CYC:0\n", "8000  A9 05     LDA #$05") +
		fmt.Sprintf("%-47s A:05 X:00 Y:00 P:24 SP:FD CYC:2\n", "8002  85 02     STA $02") +
		fmt.Sprintf("%-47s A:05 X:00 Y:00 P:24 SP:FD CYC:5\n", "8004  4C 04 80  JMP $8004")
	if !test.ExpectEquality(t, w.String(), expected) {
		t.Log(w)
	}

	// trace is turned off
	w.Clear()
	nes.SetTrace(nil)
	test.DemandSuccess(t, nes.Step())
	test.ExpectEquality(t, w.String(), "")
}

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

package hardware

import (
	"github.com/psykad/dNES/curated"
	"github.com/psykad/dNES/govern"
	"github.com/psykad/dNES/logger"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called after every instruction. The emulation continues until
// continueCheck() returns govern.Ending or an error, or until the CPU fails.
//
// The Paused state leaves the CPU where it is but continues to call
// continueCheck().
func (nes *NES) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running, govern.Stepping:
			err = nes.Step()
			if err != nil {
				logger.Logf(nes, "nes", "run ended: %v", err)
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("nes: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			logger.Logf(nes, "nes", "run ended: %v", err)
			return err
		}
	}

	logger.Logf(nes, "nes", "run ended: %s after %d cycles", nes.CPU.PC, nes.CPU.TotalCycles)

	return nil
}

// InstructionBudget returns a continueCheck() function for Run() that ends
// the emulation after n instructions. A budget of zero or less never ends
// the emulation.
func (nes *NES) InstructionBudget(n int) func() (govern.State, error) {
	var count int
	return func() (govern.State, error) {
		if n <= 0 {
			return govern.Running, nil
		}
		count++
		if count >= n {
			return govern.Ending, nil
		}
		return govern.Running, nil
	}
}

// CycleBudget returns a continueCheck() function for Run() that ends the
// emulation once at least n cycles have elapsed from the time CycleBudget()
// was called. A budget of zero never ends the emulation.
func (nes *NES) CycleBudget(n uint64) func() (govern.State, error) {
	target := nes.CPU.TotalCycles + n
	return func() (govern.State, error) {
		if n > 0 && nes.CPU.TotalCycles >= target {
			return govern.Ending, nil
		}
		return govern.Running, nil
	}
}

// RunForInstructionCount runs the emulation for the specified number of
// instructions.
func (nes *NES) RunForInstructionCount(n int) error {
	if n <= 0 {
		return nil
	}
	return nes.Run(nes.InstructionBudget(n))
}

// RunForCycles runs the emulation until at least the specified number of
// cycles have elapsed. The emulation always stops at the end of an
// instruction so the number of cycles may be exceeded.
func (nes *NES) RunForCycles(n uint64) error {
	if n == 0 {
		return nil
	}
	return nes.Run(nes.CycleBudget(n))
}

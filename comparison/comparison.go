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

package comparison

import (
	"fmt"
	"os"

	"github.com/fogleman/nes/nes"

	"github.com/psykad/dNES/cartridgeloader"
	"github.com/psykad/dNES/curated"
	"github.com/psykad/dNES/environment"
	"github.com/psykad/dNES/govern"
	"github.com/psykad/dNES/hardware"
	"github.com/psykad/dNES/logger"
)

// Sentinel error patterns.
const (
	Differs        = "comparison: %s differs (dnes %#x; reference %#x) after %d instructions"
	ReferenceError = "comparison: reference: %v"
)

// Comparison type runs the reference emulation in lock step with an
// emulation of its own.
type Comparison struct {
	NES *hardware.NES

	ref *nes.Console

	// the number of instructions that have been compared
	Instructions int
}

// NewComparison is the preferred method of initialisation for the Comparison
// type. The cartridge is attached to both emulations and both are powered
// on.
func NewComparison(cartload cartridgeloader.Loader) (*Comparison, error) {
	err := cartload.Load()
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{
		NES: hardware.NewNES(environment.NewEnvironment(environment.Comparison)),
	}

	err = cmp.NES.AttachCartridge(cartload)
	if err != nil {
		return nil, err
	}

	cmp.ref, err = newReference(cartload.Data)
	if err != nil {
		return nil, curated.Errorf(ReferenceError, err)
	}

	logger.Logf(logger.Allow, "comparison", "comparing %s", cartload.ShortName())

	return cmp, nil
}

// the reference emulation can only be created from a file so the data is
// written to a temporary file first. the reference reads the entire file when
// it is created.
func newReference(data []uint8) (*nes.Console, error) {
	f, err := os.CreateTemp("", "dnes_comparison_*.nes")
	if err != nil {
		return nil, err
	}
	defer os.Remove(f.Name())

	_, err = f.Write(data)
	if err != nil {
		f.Close()
		return nil, err
	}

	err = f.Close()
	if err != nil {
		return nil, err
	}

	return nes.NewConsole(f.Name())
}

func (cmp *Comparison) String() string {
	return fmt.Sprintf("%d instructions: %s", cmp.Instructions, cmp.NES.CPU)
}

// Reference returns a string summarising the state of the reference CPU.
func (cmp *Comparison) Reference() string {
	c := cmp.ref.CPU
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x P=%02x", c.PC, c.A, c.X, c.Y, c.SP, c.Flags())
}

// Step both emulations by one instruction and compare the results.
func (cmp *Comparison) Step() error {
	err := cmp.NES.Step()
	if err != nil {
		return err
	}

	cycles := cmp.ref.CPU.Step()
	cmp.Instructions++

	return cmp.compare(cycles)
}

func (cmp *Comparison) compare(refCycles int) error {
	mc := cmp.NES.CPU
	ref := cmp.ref.CPU

	check := func(name string, v, r uint64) error {
		if v != r {
			return curated.Errorf(Differs, name, v, r, cmp.Instructions)
		}
		return nil
	}

	checks := []struct {
		name string
		v    uint64
		r    uint64
	}{
		{name: "PC", v: uint64(mc.PC.Address()), r: uint64(ref.PC)},
		{name: "A", v: uint64(mc.A.Value()), r: uint64(ref.A)},
		{name: "X", v: uint64(mc.X.Value()), r: uint64(ref.X)},
		{name: "Y", v: uint64(mc.Y.Value()), r: uint64(ref.Y)},
		{name: "SP", v: uint64(mc.SP.Value()), r: uint64(ref.SP)},
		{name: "P", v: uint64(mc.Status.Value()), r: uint64(ref.Flags())},
		{name: "cycles", v: uint64(mc.LastResult.Cycles), r: uint64(refCycles)},
	}

	for _, c := range checks {
		if err := check(c.name, c.v, c.r); err != nil {
			return err
		}
	}

	return nil
}

// Run the comparison until continueCheck() returns govern.Ending, or until
// an error or a difference is found.
func (cmp *Comparison) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running

	for state != govern.Ending {
		if state.Active() {
			err := cmp.Step()
			if err != nil {
				logger.Logf(logger.Allow, "comparison", "ended: %v", err)
				return err
			}
		}

		var err error
		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	logger.Logf(logger.Allow, "comparison", "no differences after %d instructions", cmp.Instructions)

	return nil
}

// InstructionBudget returns a continueCheck() function for Run() that ends
// the comparison once n instructions have been compared.
func (cmp *Comparison) InstructionBudget(n int) func() (govern.State, error) {
	return func() (govern.State, error) {
		if cmp.Instructions >= n {
			return govern.Ending, nil
		}
		return govern.Running, nil
	}
}

// RunForInstructionCount compares the specified number of instructions.
func (cmp *Comparison) RunForInstructionCount(n int) error {
	if n <= 0 {
		return nil
	}
	return cmp.Run(cmp.InstructionBudget(n))
}

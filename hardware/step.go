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
	"github.com/psykad/dNES/hardware/cpu"
)

// Step the emulation one CPU instruction. The instruction trace is written
// if a trace writer is attached.
func (nes *NES) Step() error {
	pre := nes.preState()

	err := nes.CPU.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		return err
	}

	nes.writeTrace(pre)

	return nil
}

// Clock advances the emulation by a single CPU cycle. No instruction trace is
// written.
func (nes *NES) Clock() error {
	return nes.CPU.Clock()
}

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
	"fmt"
	"io"

	"github.com/psykad/dNES/cartridgeloader"
	"github.com/psykad/dNES/environment"
	"github.com/psykad/dNES/hardware/cpu"
	"github.com/psykad/dNES/hardware/memory"
	"github.com/psykad/dNES/hardware/memory/cartridge"
	"github.com/psykad/dNES/hardware/ppu"
	"github.com/psykad/dNES/logger"
)

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	Env *environment.Environment

	CPU  *cpu.CPU
	Mem  *memory.Memory
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge

	// instruction trace is written here if it is not nil
	trace io.Writer
}

// NewNES creates a new NES and everything associated with the hardware. The
// bus is created first, then the CPU. A cartridge must be attached with
// AttachCartridge() before the emulation can run.
//
// A nil environment is the main emulation.
func NewNES(env *environment.Environment) *NES {
	nes := &NES{Env: env}
	nes.PPU = ppu.NewPPU()
	nes.Mem = memory.NewMemory(env, nes.PPU)
	nes.CPU = cpu.NewCPU(env, nes.Mem)
	return nes
}

func (nes *NES) String() string {
	if nes.Cart == nil {
		return fmt.Sprintf("no cartridge: %s", nes.CPU)
	}
	return fmt.Sprintf("%s: %s", nes.Cart, nes.CPU)
}

// AttachCartridge loads the cartridge data, attaches it to the bus and powers
// on the console.
func (nes *NES) AttachCartridge(cartload cartridgeloader.Loader) error {
	cart, err := cartridge.NewCartridge(nes.Env, cartload)
	if err != nil {
		return err
	}

	nes.Cart = cart
	nes.Mem.AttachCartridge(cart)

	return nes.PowerOn()
}

// PowerOn clears RAM and the picture unit registers and powers on the CPU.
func (nes *NES) PowerOn() error {
	nes.Mem.Reset()
	nes.PPU.Reset()
	return nes.CPU.PowerOn()
}

// Reset emulates the reset button on the console. The contents of RAM are
// unchanged.
func (nes *NES) Reset() error {
	nes.PPU.Reset()
	return nes.CPU.Reset()
}

// SetTrace attaches a writer for the instruction trace. A nil value turns the
// trace off.
func (nes *NES) SetTrace(w io.Writer) {
	nes.trace = w
}

// AllowLogging implements the logger.Permission interface.
func (nes *NES) AllowLogging() bool {
	return nes.Env.AllowLogging()
}

// the state of the CPU registers before an instruction is executed.
type preState struct {
	a, x, y, p, sp uint8
	cycles         uint64
}

func (nes *NES) preState() preState {
	return preState{
		a:      nes.CPU.A.Value(),
		x:      nes.CPU.X.Value(),
		y:      nes.CPU.Y.Value(),
		p:      nes.CPU.Status.Value(),
		sp:     nes.CPU.SP.Value(),
		cycles: nes.CPU.TotalCycles,
	}
}

// writeTrace writes one line of the instruction trace for the most recent
// instruction. registers are shown as they were before the instruction.
func (nes *NES) writeTrace(pre preState) {
	if nes.trace == nil {
		return
	}
	fmt.Fprintf(nes.trace, "%-47s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
		nes.CPU.LastResult.String(), pre.a, pre.x, pre.y, pre.p, pre.sp, pre.cycles)
}

var _ logger.Permission = (*NES)(nil)

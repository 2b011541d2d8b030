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

package memory

import (
	"github.com/psykad/dNES/curated"
	"github.com/psykad/dNES/environment"
	"github.com/psykad/dNES/hardware/memory/cartridge"
	"github.com/psykad/dNES/hardware/memory/memorymap"
	"github.com/psykad/dNES/hardware/ppu"
)

// Sentinel error patterns.
const (
	UnmappedAddress = "memory: unmapped %s of address %#04x"
	NoCartridge     = "memory: no cartridge for %s of address %#04x"
)

// Memory is the CPU bus of the NES.
type Memory struct {
	env *environment.Environment

	RAM  *RAM
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge

	// the most recent access made by the CPU
	LastAccessAddress uint16
	LastAccessData    uint8
	LastAccessWrite   bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The PPU is shared with the caller. A cartridge is attached with
// AttachCartridge().
func NewMemory(env *environment.Environment, p *ppu.PPU) *Memory {
	return &Memory{
		env: env,
		RAM: &RAM{},
		PPU: p,
	}
}

// AttachCartridge to the cartridge area of the bus. A nil value removes the
// current cartridge.
func (mem *Memory) AttachCartridge(cart *cartridge.Cartridge) {
	mem.Cart = cart
}

// Reset the contents of RAM.
func (mem *Memory) Reset() {
	mem.RAM.Reset()
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	mem.LastAccessAddress = address
	mem.LastAccessWrite = false

	ma, area := memorymap.MapAddress(address)

	var data uint8

	switch area {
	case memorymap.RAM:
		data = mem.RAM.Read(ma)
	case memorymap.PPU:
		data = mem.PPU.Read(ppu.Register(ma & memorymap.MaskPPU))
	case memorymap.Cartridge:
		if mem.Cart == nil {
			return 0, curated.Errorf(NoCartridge, "read", address)
		}
		var err error
		data, err = mem.Cart.CPURead(ma)
		if err != nil {
			return 0, err
		}
	default:
		return 0, curated.Errorf(UnmappedAddress, "read", address)
	}

	mem.LastAccessData = data

	return data, nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	mem.LastAccessAddress = address
	mem.LastAccessData = data
	mem.LastAccessWrite = true

	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM.Write(ma, data)
	case memorymap.PPU:
		mem.PPU.Write(ppu.Register(ma&memorymap.MaskPPU), data)
	case memorymap.Cartridge:
		if mem.Cart == nil {
			return curated.Errorf(NoCartridge, "write", address)
		}
		return mem.Cart.CPUWrite(ma, data)
	default:
		return curated.Errorf(UnmappedAddress, "write", address)
	}

	return nil
}

// Peek returns the value at the address without recording the access.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	a, d, w := mem.LastAccessAddress, mem.LastAccessData, mem.LastAccessWrite
	defer func() {
		mem.LastAccessAddress, mem.LastAccessData, mem.LastAccessWrite = a, d, w
	}()
	return mem.Read(address)
}

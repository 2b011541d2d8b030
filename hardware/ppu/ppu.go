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

// Package ppu models the register file of the NES picture processing unit.
//
// Only the storage of the eight CPU visible registers is implemented. Reading
// a register returns the last value written to it. There is no rendering, no
// timing and no interrupt generation.
package ppu

import (
	"fmt"
)

// Register identifies one of the eight CPU visible PPU registers.
type Register int

// List of PPU registers in address order. PPUCTRL is at 0x2000 and PPUDATA is
// at 0x2007.
const (
	PPUCTRL Register = iota
	PPUMASK
	PPUSTATUS
	OAMADDR
	OAMDATA
	PPUSCROLL
	PPUADDR
	PPUDATA

	NumRegisters
)

func (r Register) String() string {
	switch r {
	case PPUCTRL:
		return "PPUCTRL"
	case PPUMASK:
		return "PPUMASK"
	case PPUSTATUS:
		return "PPUSTATUS"
	case OAMADDR:
		return "OAMADDR"
	case OAMDATA:
		return "OAMDATA"
	case PPUSCROLL:
		return "PPUSCROLL"
	case PPUADDR:
		return "PPUADDR"
	case PPUDATA:
		return "PPUDATA"
	}
	return "unknown PPU register"
}

// PPU is the storage for the CPU visible registers.
type PPU struct {
	Registers [NumRegisters]uint8
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU() *PPU {
	return &PPU{}
}

func (p *PPU) String() string {
	return fmt.Sprintf("CTRL=%02x MASK=%02x STATUS=%02x OAMADDR=%02x",
		p.Registers[PPUCTRL], p.Registers[PPUMASK], p.Registers[PPUSTATUS], p.Registers[OAMADDR])
}

// Reset all registers to zero.
func (p *PPU) Reset() {
	p.Registers = [NumRegisters]uint8{}
}

// Read returns the value of the register. Only the lowest three bits of the
// reg argument are used.
func (p *PPU) Read(reg Register) uint8 {
	return p.Registers[reg&0x07]
}

// Write value to register. Only the lowest three bits of the reg argument are
// used.
func (p *PPU) Write(reg Register, data uint8) {
	p.Registers[reg&0x07] = data
}

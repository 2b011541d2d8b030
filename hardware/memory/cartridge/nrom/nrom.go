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

// Package nrom implements mapper 0. NROM boards have no bank switching
// registers. The 16k or 32k of PRG ROM is mapped into the top half of the CPU
// address space and the 8k of CHR is mapped into the PPU pattern tables.
package nrom

import (
	"github.com/psykad/dNES/hardware/memory/cartridge/mapper"
)

// Number is the iNES mapper number for NROM.
const Number = 0

const (
	cpuOrigin  = uint16(0x8000)
	upperBank  = uint16(0xc000)
	bankMask16 = uint16(0x3fff)
	bankMask32 = uint16(0x7fff)
	chrMemtop  = uint16(0x1fff)
)

type nrom struct {
	prgPages int
	chrPages int

	// mask applied to addresses in the upper 16k of the CPU window. with only
	// one PRG page the lower bank is mirrored into the upper window
	upperMask uint16
}

// NewNROM is the preferred method of initialisation for the NROM mapper.
func NewNROM(prgPages int, chrPages int) mapper.Mapper {
	m := &nrom{
		prgPages:  prgPages,
		chrPages:  chrPages,
		upperMask: bankMask16,
	}
	if prgPages > 1 {
		m.upperMask = bankMask32
	}
	return m
}

// Number implements the mapper.Mapper interface.
func (m *nrom) Number() int {
	return Number
}

// ID implements the mapper.Mapper interface.
func (m *nrom) ID() string {
	if m.prgPages > 1 {
		return "NROM-256"
	}
	return "NROM-128"
}

// CPURead implements the mapper.Mapper interface.
func (m *nrom) CPURead(address uint16) (int, bool) {
	if address < cpuOrigin {
		return 0, false
	}
	if address < upperBank {
		return int(address & bankMask16), true
	}
	return int(address & m.upperMask), true
}

// CPUWrite implements the mapper.Mapper interface. NROM has no writable
// registers or PRG RAM so all writes are unhandled.
func (m *nrom) CPUWrite(_ uint16, _ uint8) (int, bool) {
	return 0, false
}

// PPURead implements the mapper.Mapper interface.
func (m *nrom) PPURead(address uint16) (int, bool) {
	if address > chrMemtop {
		return 0, false
	}
	return int(address), true
}

// PPUWrite implements the mapper.Mapper interface. The offset is always
// returned for pattern table addresses. Whether the write has any effect
// depends on whether the cartridge has CHR RAM or CHR ROM.
func (m *nrom) PPUWrite(address uint16, _ uint8) (int, bool) {
	if address > chrMemtop {
		return 0, false
	}
	return int(address), true
}

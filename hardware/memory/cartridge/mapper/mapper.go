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

// Package mapper defines the interface that all cartridge mappers implement.
//
// A mapper translates addresses on the CPU and PPU buses into offsets in the
// PRG and CHR storage of the cartridge. It does not hold the storage itself.
// A mapper that does not handle an address says so and the cartridge decides
// what to do about it.
package mapper

// Mapper implementations translate CPU and PPU addresses into storage offsets.
// Each function returns false if the address is not handled by the mapper.
//
// The data argument of the write functions allows mappers with bank switching
// registers to latch the written value.
type Mapper interface {
	// Number returns the iNES mapper number.
	Number() int

	// ID returns a short name for the mapper.
	ID() string

	CPURead(address uint16) (offset int, ok bool)
	CPUWrite(address uint16, data uint8) (offset int, ok bool)
	PPURead(address uint16) (offset int, ok bool)
	PPUWrite(address uint16, data uint8) (offset int, ok bool)
}

// Constructor creates a new Mapper for a cartridge with the number of PRG and
// CHR pages.
type Constructor func(prgPages int, chrPages int) Mapper

// Registry maps an iNES mapper number to a Constructor.
type Registry map[int]Constructor

// New creates a Mapper for the mapper number. Returns false if there is no
// Constructor for the number.
func (reg Registry) New(number int, prgPages int, chrPages int) (Mapper, bool) {
	c, ok := reg[number]
	if !ok {
		return nil, false
	}
	return c(prgPages, chrPages), true
}

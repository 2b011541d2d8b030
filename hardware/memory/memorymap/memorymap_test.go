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

package memorymap_test

import (
	"testing"

	"github.com/psykad/dNES/hardware/memory/memorymap"
	"github.com/psykad/dNES/test"
)

func TestMapAddress(t *testing.T) {
	var ma uint16
	var area memorymap.Area

	// RAM and its mirrors
	for _, a := range []uint16{0x0002, 0x0802, 0x1002, 0x1802} {
		ma, area = memorymap.MapAddress(a)
		test.ExpectEquality(t, area, memorymap.RAM, a)
		test.ExpectEquality(t, ma, uint16(0x0002), a)
	}

	// PPU registers and mirrors
	for _, a := range []uint16{0x2005, 0x200d, 0x3ffd} {
		ma, area = memorymap.MapAddress(a)
		test.ExpectEquality(t, area, memorymap.PPU, a)
		test.ExpectEquality(t, ma, uint16(0x2005), a)
	}

	// cartridge addresses are not mirrored by the memory map
	ma, area = memorymap.MapAddress(0xc123)
	test.ExpectEquality(t, area, memorymap.Cartridge)
	test.ExpectEquality(t, ma, uint16(0xc123))

	// everything else is undefined
	for _, a := range []uint16{0x4000, 0x4016, 0x6000, 0x7fff} {
		_, area = memorymap.MapAddress(a)
		test.ExpectEquality(t, area, memorymap.Undefined, a)
	}
}

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

package memory_test

import (
	"testing"

	"github.com/psykad/dNES/cartridgeloader"
	"github.com/psykad/dNES/curated"
	"github.com/psykad/dNES/hardware/memory"
	"github.com/psykad/dNES/hardware/memory/cartridge"
	"github.com/psykad/dNES/hardware/ppu"
	"github.com/psykad/dNES/test"
)

func newMemory(t *testing.T) *memory.Memory {
	t.Helper()

	data := make([]byte, cartridge.HeaderLen+cartridge.PRGPageSize+cartridge.CHRPageSize)
	copy(data, []byte{'N', 'E', 'S', 0x1a, 1, 1})
	data[cartridge.HeaderLen] = 0x4c

	cl, err := cartridgeloader.NewLoaderFromData("test", data)
	test.DemandSuccess(t, err)
	cart, err := cartridge.NewCartridge(nil, cl)
	test.DemandSuccess(t, err)

	mem := memory.NewMemory(nil, ppu.NewPPU())
	mem.AttachCartridge(cart)
	return mem
}

func TestRAMMirrors(t *testing.T) {
	mem := newMemory(t)

	test.DemandSuccess(t, mem.Write(0x0002, 0x05))
	for _, a := range []uint16{0x0002, 0x0802, 0x1002, 0x1802} {
		v, err := mem.Read(a)
		test.ExpectSuccess(t, err, a)
		test.ExpectEquality(t, v, uint8(0x05), a)
	}

	test.DemandSuccess(t, mem.Write(0x1fff, 0x77))
	test.ExpectEquality(t, mem.RAM.Data[0x07ff], uint8(0x77))

	mem.Reset()
	test.ExpectEquality(t, mem.RAM.Data[0x0002], uint8(0x00))
}

func TestPPURegisters(t *testing.T) {
	mem := newMemory(t)

	for i := uint16(0); i < 8; i++ {
		test.DemandSuccess(t, mem.Write(0x2000+i, uint8(i)+1))
	}

	// every eighth byte is a mirror
	for _, a := range []uint16{0x2000, 0x2008, 0x3ff8} {
		for i := uint16(0); i < 8; i++ {
			v, err := mem.Read(a + i)
			test.ExpectSuccess(t, err)
			test.ExpectEquality(t, v, uint8(i)+1, a+i)
		}
	}

	test.ExpectEquality(t, mem.PPU.Read(ppu.PPUDATA), uint8(8))
}

func TestCartridge(t *testing.T) {
	mem := newMemory(t)

	v, err := mem.Read(0x8000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x4c))

	v, err = mem.Read(0xc000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x4c))

	err = mem.Write(0x8000, 0x00)
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnexpectedAccess))

	mem.AttachCartridge(nil)
	_, err = mem.Read(0x8000)
	test.ExpectSuccess(t, curated.Is(err, memory.NoCartridge))
}

func TestUnmapped(t *testing.T) {
	mem := newMemory(t)

	for _, a := range []uint16{0x4000, 0x4016, 0x5000, 0x6000, 0x7fff} {
		_, err := mem.Read(a)
		test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress), a)

		err = mem.Write(a, 0x00)
		test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress), a)
	}

	_, err := mem.Read(0x4016)
	test.ExpectEquality(t, err.Error(), "memory: unmapped read of address 0x4016")
	err = mem.Write(0x6000, 0x00)
	test.ExpectEquality(t, err.Error(), "memory: unmapped write of address 0x6000")
}

func TestLastAccess(t *testing.T) {
	mem := newMemory(t)

	test.DemandSuccess(t, mem.Write(0x0010, 0xab))
	test.ExpectEquality(t, mem.LastAccessAddress, uint16(0x0010))
	test.ExpectSuccess(t, mem.LastAccessWrite)

	v, err := mem.Peek(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xab))

	// peek does not disturb the record of the last access
	test.ExpectSuccess(t, mem.LastAccessWrite)
}

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
	"github.com/psykad/dNES/hardware/memory/memorymap"
)

// RAM is the 2k of internal memory.
type RAM struct {
	Data [memorymap.MaskRAM + 1]uint8
}

// Reset clears the contents of RAM.
func (ram *RAM) Reset() {
	ram.Data = [memorymap.MaskRAM + 1]uint8{}
}

// Read returns the value at the address. The address is masked to the primary
// mirror.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.Data[address&memorymap.MaskRAM]
}

// Write value at the address. The address is masked to the primary mirror.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.Data[address&memorymap.MaskRAM] = data
}

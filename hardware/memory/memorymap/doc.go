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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// The CPU address space of the NES is divided into areas. Internal RAM
// occupies the first 8k and is mirrored every 2k. The eight PPU registers are
// mirrored throughout the next 8k. The cartridge occupies the top 32k.
//
// The remaining space (the APU and I/O registers, the cartridge expansion area
// and PRG-RAM) is not decoded and addresses in that space map to the
// Undefined area.
package memorymap

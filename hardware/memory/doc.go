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

// Package memory implements the CPU bus of the NES. Every CPU memory access is
// routed to internal RAM, the PPU registers or the cartridge according to the
// memory map.
//
// Addresses that are not decoded result in an UnmappedAddress error. There is
// no open bus behaviour and no default value is ever returned for an
// undecoded address.
package memory

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

// Package cartridge parses iNES containers and makes the contents available
// to the CPU and PPU buses.
//
// The iNES header is sixteen bytes long and is followed by an optional 512
// byte trainer, the PRG ROM and then the CHR ROM. The mapper number in the
// header selects a mapper from a fixed registry. The mapper translates bus
// addresses into offsets in the PRG and CHR storage.
//
// Only the low nibble of the mapper number is read from the header. Byte 7 of
// the header, which contains the high nibble and the NES 2.0 signature, is
// not used. Neither is byte 3, which is conventionally 0x1a.
package cartridge

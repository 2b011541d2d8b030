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

// Package cpubus defines the interface between the CPU and the memory it
// accesses, together with the addresses of the interrupt vectors.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every access made through this interface corresponds to one CPU cycle.
//
// An address that is not decoded by the memory system results in an error.
// There is no open bus behaviour.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// The addresses where the interrupt vectors are stored. Each vector is two
// bytes long, low byte first.
//
// The NMI vector is defined for completeness. Nothing in the emulation raises
// an NMI.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK shares its vector with IRQ
	BRK = IRQ
)

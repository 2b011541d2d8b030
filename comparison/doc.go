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

// Package comparison runs a second, independently written NES emulation
// alongside an emulation created by this package and compares the state of
// the two after every instruction.
//
// The two emulations are run in lock step. Both are advanced by one
// instruction and then the CPU registers and the number of cycles taken by
// the instruction are compared. The first difference ends the comparison
// with a Differs error that names the register.
//
// The reference emulation is github.com/fogleman/nes. Only its CPU is
// stepped. Its picture and audio units play no part in the comparison.
//
// The emulation created by this package has the environment label
// environment.Comparison and so does not add entries to the central log.
package comparison

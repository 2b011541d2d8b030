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

//go:build !unix

package easyterm

import (
	"os"

	"github.com/psykad/dNES/curated"
)

// Sentinel error patterns.
const (
	TerminalError = "easyterm: %v"
)

// Geometry contains the dimensions of a terminal.
type Geometry struct {
	Rows uint16
	Cols uint16
}

// Terminal is not supported on this platform. Initialise() always fails.
type Terminal struct{}

func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return curated.Errorf(TerminalError, "not supported on this platform")
}

func (pt *Terminal) CleanUp() {}
func (pt *Terminal) Print(s string, a ...any) {}
func (pt *Terminal) UpdateGeometry() error { return nil }
func (pt *Terminal) Geometry() Geometry { return Geometry{} }
func (pt *Terminal) CanonicalMode() error { return nil }
func (pt *Terminal) CBreakMode() error { return nil }
func (pt *Terminal) Flush() error { return nil }
func (pt *Terminal) ReadKey() (byte, error) { return 0, nil }

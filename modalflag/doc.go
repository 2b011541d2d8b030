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

// Package modalflag handles command lines made up of modes, each with its own
// set of flags. It is a wrapper for the flag package in the Go standard
// library.
//
// A command line is handed to NewArgs(). The flags and sub-modes of the top
// level are then added and Parse() is called. If sub-modes were added, the
// selected mode is returned by Mode(). The caller then calls NewMode(), adds
// the flags for that mode and calls Parse() again. For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP")
//
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "write instruction trace")
//		if r, err := md.Parse(); r != modalflag.ParseContinue {
//			return err
//		}
//		run(*trace, md.GetArg(0))
//	}
//
// The first sub-mode is the default. If the next argument is not one of the
// sub-modes then the default is selected and the argument is left for the
// next call to Parse().
//
// Mode names are case insensitive. Mode() always returns the upper case
// version.
//
// The -help flag is handled by Parse() and prints the flags and sub-modes
// for the current mode to the Output writer.
package modalflag

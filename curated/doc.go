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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with Errorf(). The first argument is a pattern
// rather than a format string because the pattern is how the error is
// identified later on. Packages that raise curated errors export their
// patterns as constants so that callers can test for them:
//
//	if curated.Is(err, cartridge.UnsupportedMapper) {
//		...
//	}
//
// Has() is similar to Is() but searches the entire chain of wrapped errors.
// A curated error wraps any error given as one of its values, so Has() will
// find a pattern however deep it is buried.
//
//	e := curated.Errorf(memory.UnmappedAddress, "read", 0x4016)
//	f := curated.Errorf(cpu.ExecutionError, e, 0xad, 0xc000, 12)
//
//	curated.Is(f, memory.UnmappedAddress)  // false
//	curated.Has(f, memory.UnmappedAddress) // true
//
// Curated errors also implement Unwrap() so the errors.Is() and errors.As()
// functions in the standard library see through them.
//
// The Error() implementation removes duplicate adjacent parts from the error
// message. Parts are separated by the sub-string ": ". This means that
// wrapping an error with the same prefix as the wrapped error doesn't result
// in a stuttering message.
package curated

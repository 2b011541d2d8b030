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

// Package test bundles helper functions that remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect*() functions report a failure and allow the test to continue.
// The Demand*() functions report a failure and stop the test immediately.
// This is useful when later parts of a test rely on a value being correct.
// For example, demanding that the lengths of two slices are equal before
// iterating over them in unison.
//
// Success and failure are interpreted according to the type of the value
// being tested:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case is not obvious but because of how errors usually work (nil to
// indicate no error) we need to interpret nil in this way.
//
// All functions accept an optional list of tags which are prepended to any
// failure message. This helps identify which iteration of a table driven test
// has failed.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The RingWriter type is similar but only retains the most
// recent output.
package test

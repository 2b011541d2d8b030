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

package instructions_test

import (
	"testing"

	"github.com/psykad/dNES/curated"
	"github.com/psykad/dNES/hardware/cpu/instructions"
	"github.com/psykad/dNES/test"
)

func TestLookupEveryOpcode(t *testing.T) {
	var legal int
	var operators [instructions.NumOperators]bool

	for i := 0; i <= 0xff; i++ {
		defn, err := instructions.Lookup(uint8(i))
		if err != nil {
			test.ExpectSuccess(t, curated.Is(err, instructions.IllegalOpcode), i)
			test.ExpectSuccess(t, defn == nil, i)
			continue
		}

		legal++
		test.DemandSuccess(t, defn != nil, i)
		test.ExpectEquality(t, defn.OpCode, uint8(i), i)
		operators[defn.Operator] = true
	}

	test.ExpectEquality(t, legal, 151)

	for op, used := range operators {
		test.ExpectSuccess(t, used, instructions.Operator(op))
	}
}

func TestDefinitionsAgreeWithLookup(t *testing.T) {
	defns := instructions.Definitions()
	for i, defn := range defns {
		_, err := instructions.Lookup(uint8(i))
		test.ExpectEquality(t, defn == nil, err != nil, i)
	}
}

func TestSpotChecks(t *testing.T) {
	defn, err := instructions.Lookup(0xa9)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Operator, instructions.Lda)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defn.Bytes, 2)
	test.ExpectEquality(t, defn.Cycles, 2)
	test.ExpectFailure(t, defn.PageSensitive)

	defn, err = instructions.Lookup(0xbd)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Operator, instructions.Lda)
	test.ExpectEquality(t, defn.AddressingMode, instructions.AbsoluteIndexedX)
	test.ExpectEquality(t, defn.Bytes, 3)
	test.ExpectSuccess(t, defn.PageSensitive)

	// stores are never page sensitive. they always pay for the extra cycle
	defn, err = instructions.Lookup(0x9d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Operator, instructions.Sta)
	test.ExpectEquality(t, defn.Cycles, 5)
	test.ExpectFailure(t, defn.PageSensitive)

	defn, err = instructions.Lookup(0x6c)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, defn.Effect, instructions.Flow)

	defn, err = instructions.Lookup(0xd0)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, defn.IsBranch())

	_, err = instructions.Lookup(0x02)
	test.ExpectSuccess(t, curated.Is(err, instructions.IllegalOpcode))
	test.ExpectEquality(t, err.Error(), "instructions: illegal opcode (0x2)")
}

func TestPageSensitivity(t *testing.T) {
	for _, defn := range instructions.Definitions() {
		if defn == nil {
			continue
		}
		if defn.PageSensitive {
			test.ExpectEquality(t, defn.Effect, instructions.Read, defn)
			test.ExpectSuccess(t, defn.AddressingMode.Indexed(), defn)
		}
	}
}

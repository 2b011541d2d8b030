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

package comparison_test

import (
	"strings"
	"testing"

	"github.com/psykad/dNES/cartridgeloader"
	"github.com/psykad/dNES/comparison"
	"github.com/psykad/dNES/curated"
	"github.com/psykad/dNES/hardware/memory/cartridge"
	"github.com/psykad/dNES/test"
)

var program = []uint8{
	0xa2, 0x00,                         // 8000 LDX #$00
	0x8a,                               // 8002 TXA
	0x9d, 0xf8, 0x02,                   // 8003 STA $02f8,X
	0xbd, 0xf8, 0x02,                   // 8006 LDA $02f8,X
	0x18,                               // 8009 CLC
	0x69, 0x70,                         // 800a ADC #$70
	0xe8,                               // 800c INX
	0xe0, 0x10,                         // 800d CPX #$10
	0xd0, 0xf1,                         // 800f BNE $8002
	0x20, 0x20, 0x80,                   // 8011 JSR $8020
	0x38,                               // 8014 SEC
	0xe9, 0x05,                         // 8015 SBC #$05
	0x4c, 0x17, 0x80,                   // 8017 JMP $8017
	0xea, 0xea, 0xea, 0xea, 0xea, 0xea, // 801a NOP
	0x48,                               // 8020 PHA
	0x08,                               // 8021 PHP
	0x28,                               // 8022 PLP
	0x68,                               // 8023 PLA
	0x0a,                               // 8024 ASL A
	0x26, 0x10,                         // 8025 ROL $10
	0x60,                               // 8027 RTS
}

func loader(t *testing.T) cartridgeloader.Loader {
	t.Helper()
	data := make([]uint8, cartridge.HeaderLen+cartridge.PRGPageSize+cartridge.CHRPageSize)
	copy(data, []uint8{'N', 'E', 'S', 0x1a, 1, 1})
	prg := data[cartridge.HeaderLen:]
	copy(prg, program)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	cl, err := cartridgeloader.NewLoaderFromData("comparison.nes", data)
	test.DemandSuccess(t, err)
	return cl
}

func TestComparison(t *testing.T) {
	cmp, err := comparison.NewComparison(loader(t))
	test.DemandSuccess(t, err)

	err = cmp.RunForInstructionCount(200)
	if !test.ExpectSuccess(t, err) {
		t.Log(cmp.Reference())
	}
	test.ExpectEquality(t, cmp.Instructions, 200)
	test.ExpectEquality(t, cmp.NES.CPU.PC.Address(), uint16(0x8017))
}

func TestDifference(t *testing.T) {
	cmp, err := comparison.NewComparison(loader(t))
	test.DemandSuccess(t, err)

	// LDX does not change the Y register so the difference will be noticed
	// after the first instruction
	cmp.NES.CPU.Y.Load(0x01)

	err = cmp.Step()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, comparison.Differs), true)
	test.ExpectEquality(t, strings.HasPrefix(err.Error(), "comparison: Y differs"), true)
	test.ExpectEquality(t, cmp.Instructions, 1)
}

func TestNotINES(t *testing.T) {
	cl, err := cartridgeloader.NewLoaderFromData("bad.nes", []uint8("not a cartridge"))
	test.DemandSuccess(t, err)
	_, err = comparison.NewComparison(cl)
	test.ExpectFailure(t, err)
}

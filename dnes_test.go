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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/psykad/dNES/cartridgeloader"
	"github.com/psykad/dNES/govern"
	"github.com/psykad/dNES/hardware"
	"github.com/psykad/dNES/modalflag"
	"github.com/psykad/dNES/test"
)

// LDA #$05; STA $02; JMP $8004
var program = []uint8{0xa9, 0x05, 0x85, 0x02, 0x4c, 0x04, 0x80}

// writeROM creates an NROM-128 file in a temporary directory and returns its
// path.
func writeROM(t *testing.T) string {
	t.Helper()
	data := make([]uint8, 16+0x4000+0x2000)
	copy(data, []uint8{'N', 'E', 'S', 0x1a, 1, 1})
	copy(data[16:], program)
	data[16+0x3ffc] = 0x00
	data[16+0x3ffd] = 0x80

	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func launchArgs(args ...string) (int, *test.Writer) {
	w := &test.Writer{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	return launch(md, make(chan os.Signal, 1)), w
}

func TestLaunchHelp(t *testing.T) {
	v, w := launchArgs("-help")
	test.ExpectEquality(t, v, 0)
	test.ExpectInequality(t, w.String(), "")
}

func TestLaunchStepHelp(t *testing.T) {
	v, w := launchArgs("STEP", "-help")
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "Q quits"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "-trace"))
}

func TestLaunchErrors(t *testing.T) {
	v, _ := launchArgs("RUN")
	test.ExpectEquality(t, v, 20)

	v, _ = launchArgs("RUN", "a.nes", "b.nes")
	test.ExpectEquality(t, v, 20)

	v, _ = launchArgs("RUN", "-steps", "1", filepath.Join(t.TempDir(), "missing.nes"))
	test.ExpectEquality(t, v, 20)

	v, _ = launchArgs("RUN", "-nosuchflag")
	test.ExpectEquality(t, v, 20)
}

func TestLaunchRun(t *testing.T) {
	fn := writeROM(t)

	v, _ := launchArgs("RUN", "-steps", "10", fn)
	test.ExpectEquality(t, v, 0)

	v, _ = launchArgs("RUN", "-cycles", "100", fn)
	test.ExpectEquality(t, v, 0)

	// RUN is the default mode
	v, _ = launchArgs("-steps", "10", fn)
	test.ExpectEquality(t, v, 0)
}

func TestLaunchScript(t *testing.T) {
	fn := writeROM(t)

	scr := filepath.Join(t.TempDir(), "halt.lua")
	test.DemandSuccess(t, os.WriteFile(scr, []byte("function halt(pc) return pc == 0x8004 end"), 0o644))

	v, _ := launchArgs("RUN", "-script", scr, fn)
	test.ExpectEquality(t, v, 0)

	// the script is still consulted when a budget is given
	v, _ = launchArgs("RUN", "-steps", "1000000", "-script", scr, fn)
	test.ExpectEquality(t, v, 0)

	bad := filepath.Join(t.TempDir(), "bad.lua")
	test.DemandSuccess(t, os.WriteFile(bad, []byte("x = 1"), 0o644))
	v, _ = launchArgs("RUN", "-steps", "10", "-script", bad, fn)
	test.ExpectEquality(t, v, 20)
}

func TestLaunchMemviz(t *testing.T) {
	fn := writeROM(t)
	dot := filepath.Join(t.TempDir(), "nes.dot")

	v, _ := launchArgs("RUN", "-steps", "2", "-memviz", dot, fn)
	test.ExpectEquality(t, v, 0)

	info, err := os.Stat(dot)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, info.Size(), int64(0))
}

func TestLaunchCompare(t *testing.T) {
	fn := writeROM(t)

	v, _ := launchArgs("COMPARE", "-steps", "50", fn)
	test.ExpectEquality(t, v, 0)
}

func TestInterrupted(t *testing.T) {
	intChan := make(chan os.Signal, 1)

	check := interrupted(intChan)
	s, err := check()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, govern.Running)

	var calls int
	check = interrupted(intChan, func() (govern.State, error) {
		calls++
		return govern.Running, nil
	}, func() (govern.State, error) {
		return govern.Paused, nil
	})
	s, _ = check()
	test.ExpectEquality(t, s, govern.Paused)
	test.ExpectEquality(t, calls, 1)

	// the interrupt is noticed within one brake period
	check = interrupted(intChan)
	intChan <- os.Interrupt
	for i := 0; i < hardware.PerformanceBrake; i++ {
		s, _ = check()
	}
	test.ExpectEquality(t, s, govern.Ending)
	test.ExpectEquality(t, len(intChan), 0)
}

func TestInterruptedBudget(t *testing.T) {
	fn := writeROM(t)
	cl := cartridgeloader.NewLoader(fn)
	nes := hardware.NewNES(nil)
	test.DemandSuccess(t, nes.AttachCartridge(cl))

	// an interrupt ends a run that has a budget
	intChan := make(chan os.Signal, 1)
	intChan <- os.Interrupt
	test.DemandSuccess(t, nes.Run(interrupted(intChan, nes.InstructionBudget(1000000))))
	test.ExpectEquality(t, nes.CPU.TotalCycles < 1000, true)

	// the first budget to be exhausted ends the run
	start := nes.CPU.TotalCycles
	test.DemandSuccess(t, nes.Run(interrupted(intChan, nes.InstructionBudget(1000000), nes.CycleBudget(30))))
	test.ExpectEquality(t, nes.CPU.TotalCycles-start >= 30, true)
	test.ExpectEquality(t, nes.CPU.TotalCycles-start < 40, true)
}

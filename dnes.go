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
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/psykad/dNES/cartridgeloader"
	"github.com/psykad/dNES/comparison"
	"github.com/psykad/dNES/govern"
	"github.com/psykad/dNES/hardware"
	"github.com/psykad/dNES/logger"
	"github.com/psykad/dNES/modalflag"
	"github.com/psykad/dNES/scripting"
	"github.com/psykad/dNES/statsview"
	"github.com/psykad/dNES/terminal/easyterm"
	"golang.org/x/term"
)

func main() {
	// #ctrlc interrupts are forwarded to the emulation through the continue
	// check of the active mode
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	os.Exit(launch(md, intChan))
}

// launch parses the top level mode and returns the value to use with
// os.Exit().
func launch(md *modalflag.Modes, intChan chan os.Signal) int {
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "COMPARE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, intChan)

	case "STEP":
		err = step(md)

	case "COMPARE":
		err = compare(md, intChan)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// interrupted returns a continue check that ends the emulation when an
// interrupt signal has been received. the signal channel is only polled every
// hardware.PerformanceBrake instructions.
//
// the checks are consulted in order on every call. the first to return an
// error or a state other than govern.Running decides the result.
func interrupted(intChan chan os.Signal, checks ...func() (govern.State, error)) func() (govern.State, error) {
	var brake int
	return func() (govern.State, error) {
		brake++
		if brake >= hardware.PerformanceBrake {
			brake = 0
			select {
			case <-intChan:
				fmt.Println("\r")
				return govern.Ending, nil
			default:
			}
		}
		for _, check := range checks {
			state, err := check()
			if err != nil || state != govern.Running {
				return state, err
			}
		}
		return govern.Running, nil
	}
}

// cartridge returns a loader for the single remaining argument of the mode.
func cartridge(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()

	steps := md.AddInt("steps", 0, "stop after number of instructions")
	cycles := md.AddUint64("cycles", 0, "stop after number of CPU cycles")
	trace := md.AddBool("trace", false, "write instruction trace to stdout")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	script := md.AddString("script", "", "lua script deciding when to halt")
	memvizFile := md.AddString("memviz", "", "write graphviz dot file of NES structure on exit")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	cartload, err := cartridge(md)
	if err != nil {
		return err
	}

	nes := hardware.NewNES(nil)
	err = nes.AttachCartridge(cartload)
	if err != nil {
		return err
	}

	if *trace {
		nes.SetTrace(os.Stdout)
	}

	if *memvizFile != "" {
		defer func() {
			f, err := os.Create(*memvizFile)
			if err != nil {
				logger.Log(logger.Allow, "memviz", err)
				return
			}
			defer f.Close()
			memviz.Map(f, nes)
		}()
	}

	// budgets and the script can be combined. whichever ends first ends the
	// run
	checks := []func() (govern.State, error){
		nes.InstructionBudget(*steps),
		nes.CycleBudget(*cycles),
	}

	if *script != "" {
		scr, err := scripting.NewScript(*script, nes)
		if err != nil {
			return err
		}
		defer scr.Close()
		checks = append(checks, scr.ContinueCheck)
	}

	err = nes.Run(interrupted(intChan, checks...))
	if err != nil {
		return err
	}

	fmt.Println(nes)

	return nil
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	trace := md.AddBool("trace", true, "write instruction trace to stdout")
	md.AdditionalHelp("Space or enter executes one instruction. Q quits.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridge(md)
	if err != nil {
		return err
	}

	nes := hardware.NewNES(nil)
	err = nes.AttachCartridge(cartload)
	if err != nil {
		return err
	}

	if *trace {
		nes.SetTrace(os.Stdout)
	}

	// without a terminal each line of input steps one instruction
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if strings.HasPrefix(strings.ToLower(scanner.Text()), "q") {
				return nil
			}
			err = nes.Step()
			if err != nil {
				return err
			}
		}
		return scanner.Err()
	}

	var et easyterm.Terminal
	err = et.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer et.CleanUp()

	err = et.CBreakMode()
	if err != nil {
		return err
	}
	defer et.CanonicalMode()

	et.Print("%s\r\n", nes)

	for {
		k, err := et.ReadKey()
		if err != nil {
			return err
		}

		switch k {
		case 'q', 'Q', easyterm.KeyInterrupt, easyterm.KeyEsc:
			return nil

		case easyterm.KeySpace, easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			err = nes.Step()
			if err != nil {
				return err
			}
			if !*trace {
				et.Print("%s\r\n", nes.CPU)
			}
		}
	}
}

func compare(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()

	steps := md.AddInt("steps", 0, "stop after number of instructions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridge(md)
	if err != nil {
		return err
	}

	cmp, err := comparison.NewComparison(cartload)
	if err != nil {
		return err
	}

	if *steps > 0 {
		err = cmp.Run(interrupted(intChan, cmp.InstructionBudget(*steps)))
	} else {
		err = cmp.Run(interrupted(intChan))
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%d instructions match\n", cmp, cmp.Instructions)

	return nil
}

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

package scripting

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/psykad/dNES/curated"
	"github.com/psykad/dNES/govern"
	"github.com/psykad/dNES/hardware"
	"github.com/psykad/dNES/logger"
)

// Sentinel error patterns.
const (
	ScriptError = "scripting: %s: %v"
	NoHalt      = "scripting: %s: no halt() function"
)

// the name of the function that must be defined by the script.
const haltFunction = "halt"

// Script is a Lua script attached to an emulation.
type Script struct {
	nes  *hardware.NES
	name string

	state *lua.LState
	halt  lua.LValue
}

// NewScript loads the named Lua file and attaches it to the emulation.
func NewScript(filename string, nes *hardware.NES) (*Script, error) {
	scr := newScript(filename, nes)
	err := scr.state.DoFile(filename)
	if err != nil {
		scr.Close()
		return nil, curated.Errorf(ScriptError, filename, err)
	}
	err = scr.prepare()
	if err != nil {
		return nil, err
	}
	return scr, nil
}

// NewScriptFromString is the same as NewScript() except that the source of
// the script is given as a string. The name is used to identify the script in
// error messages.
func NewScriptFromString(name string, source string, nes *hardware.NES) (*Script, error) {
	scr := newScript(name, nes)
	err := scr.state.DoString(source)
	if err != nil {
		scr.Close()
		return nil, curated.Errorf(ScriptError, name, err)
	}
	err = scr.prepare()
	if err != nil {
		return nil, err
	}
	return scr, nil
}

func newScript(name string, nes *hardware.NES) *Script {
	scr := &Script{
		nes:   nes,
		name:  name,
		state: lua.NewState(),
	}
	scr.state.SetGlobal("peek", scr.state.NewFunction(scr.peek))
	scr.state.SetGlobal("log", scr.state.NewFunction(scr.log))
	return scr
}

// prepare is called once the script has been run for the first time.
func (scr *Script) prepare() error {
	scr.halt = scr.state.GetGlobal(haltFunction)
	if scr.halt.Type() != lua.LTFunction {
		scr.Close()
		return curated.Errorf(NoHalt, scr.name)
	}
	logger.Logf(scr.nes, "scripting", "%s: attached", scr.name)
	return nil
}

func (scr *Script) String() string {
	return scr.name
}

// Close the Lua state. The script cannot be used after it has been closed.
func (scr *Script) Close() {
	if scr.state != nil {
		scr.state.Close()
		scr.state = nil
	}
}

// peek(address) returns the value at the address. a bus error is raised as a
// Lua error.
func (scr *Script) peek(L *lua.LState) int {
	address := L.CheckInt(1)
	if address < 0 || address > 0xffff {
		L.ArgError(1, "address out of range")
		return 0
	}

	v, err := scr.nes.Mem.Peek(uint16(address))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	L.Push(lua.LNumber(v))
	return 1
}

// log(message) adds an entry to the central log.
func (scr *Script) log(L *lua.LState) int {
	logger.Log(scr.nes, scr.name, L.CheckString(1))
	return 0
}

// Halt calls the halt() function of the script with the current state of the
// CPU. It returns the result of the function.
func (scr *Script) Halt() (bool, error) {
	if scr.state == nil {
		return false, curated.Errorf(ScriptError, scr.name, "closed")
	}

	mc := scr.nes.CPU

	err := scr.state.CallByParam(lua.P{
		Fn:      scr.halt,
		NRet:    1,
		Protect: true,
	},
		lua.LNumber(mc.PC.Address()),
		lua.LNumber(mc.A.Value()),
		lua.LNumber(mc.X.Value()),
		lua.LNumber(mc.Y.Value()),
		lua.LNumber(mc.Status.Value()),
		lua.LNumber(mc.SP.Value()),
		lua.LNumber(mc.TotalCycles),
	)
	if err != nil {
		return false, curated.Errorf(ScriptError, scr.name, err)
	}

	ret := scr.state.Get(-1)
	scr.state.Pop(1)

	return lua.LVAsBool(ret), nil
}

// ContinueCheck can be used as the continueCheck argument to
// hardware.NES.Run().
func (scr *Script) ContinueCheck() (govern.State, error) {
	halt, err := scr.Halt()
	if err != nil {
		return govern.Ending, err
	}
	if halt {
		logger.Logf(scr.nes, "scripting", "%s: halted at %s", scr.name, scr.nes.CPU.PC)
		return govern.Ending, nil
	}
	return govern.Running, nil
}

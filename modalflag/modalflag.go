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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

// Modes is a command line made up of modes, each with its own flags. The
// Output field should be specified before calling Parse() or help messages
// will be lost.
type Modes struct {
	Output io.Writer

	// recreated by NewMode()
	flags *flag.FlagSet
	help  string

	// the first sub-mode is the default
	subModes []string

	args []string
	next int

	// modes selected since NewArgs()
	selected []string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.selected) == 0 {
		return ""
	}
	return md.selected[len(md.selected)-1]
}

// Path returns the selected modes separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.selected, "/")
}

// NewArgs starts a new command line. The arguments should not include the
// program name.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.next = 0
	md.selected = md.selected[:0]
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.help = ""
	md.subModes = md.subModes[:0]
}

// AdditionalHelp is printed after the list of flags and sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	ParseContinue ParseResult = iota
	ParseHelp
	ParseError
)

// Parse the arguments for the current mode. If help is requested it is
// printed to Output and ParseHelp is returned. The caller should exit quietly
// in that case.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.next:])
	if err == flag.ErrHelp {
		hw.help(md.Output, md.Path(), md.subModes, md.help)
		return ParseHelp, nil
	}

	if err != nil {
		if len(md.subModes) == 0 {
			return ParseError, err
		}

		// the flag may belong to the default sub-mode so leave the
		// arguments for that mode to parse
		md.selected = append(md.selected, md.subModes[0])
		return ParseContinue, nil
	}

	md.next = len(md.args) - md.flags.NArg()
	md.selectSubMode()

	return ParseContinue, nil
}

// selectSubMode consumes the next argument if it names a sub-mode. The default
// sub-mode is selected otherwise.
func (md *Modes) selectSubMode() {
	if len(md.subModes) == 0 {
		return
	}

	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			md.selected = append(md.selected, m)
			md.next++
			return
		}
	}

	md.selected = append(md.selected, md.subModes[0])
}

// RemainingArgs returns the arguments that are not flags or a selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.next:]
}

// GetArg returns the numbered argument of RemainingArgs(). An empty string is
// returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddSubModes for the next call to Parse(). Sub-modes are matched without
// regard to case.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

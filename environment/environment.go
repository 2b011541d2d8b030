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

// Package environment provides context for an emulation. It is particularly
// useful when more than one emulation is running in the same process.
package environment

// Label is used to name the environment.
type Label string

// List of known Label values.
const (
	MainEmulation Label = ""
	Comparison    Label = "comparison"
)

// Environment is used to provide context for an emulation.
type Environment struct {
	Label Label
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
func NewEnvironment(label Label) *Environment {
	return &Environment{
		Label: label,
	}
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system.
func (env *Environment) IsMainEmulation() bool {
	return env == nil || env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env != nil && env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to add entries to the central log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}

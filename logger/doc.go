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

// Package logger is the central log for the emulator. Log entries are held in
// a ring so that only the most recent entries are retained.
//
// Entries have a tag and a detail. The tag identifies the part of the
// emulation making the log entry. Consecutive entries with identical tags and
// details are combined and the entry notes how many times it was repeated.
//
// All logging requests carry a Permission. The Allow value can be used when
// an entry should always be made. Types that represent an emulation context
// (see the environment package) implement Permission so that secondary
// emulations can run silently.
package logger

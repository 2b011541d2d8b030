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

// Package scripting allows a Lua script to decide when an emulation should
// end. The script must define a function called halt() which is called after
// every instruction with the state of the CPU:
//
//	function halt(pc, a, x, y, p, sp, cycles)
//		return pc == 0xc66e
//	end
//
// The emulation ends when halt() returns true. The script can read memory
// with the peek() function and can add entries to the central log with the
// log() function.
//
//	function halt(pc, a, x, y, p, sp, cycles)
//		if peek(0x02) ~= 0 then
//			log("error code " .. peek(0x02))
//			return true
//		end
//		return false
//	end
//
// Reading memory with peek() does not change the state of the emulation.
package scripting

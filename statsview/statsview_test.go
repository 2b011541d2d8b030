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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/psykad/dNES/statsview"
	"github.com/psykad/dNES/test"
)

func TestStub(t *testing.T) {
	test.ExpectEquality(t, statsview.Available(), false)

	w := &test.Writer{}
	statsview.Launch(w)
	test.ExpectEquality(t, w.String(), "")
}

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

package cartridge

import (
	"fmt"

	"github.com/psykad/dNES/curated"
)

// Mirroring describes how the nametables are arranged by the cartridge
// hardware.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "unknown"
}

// Sizes of the different parts of an iNES container.
const (
	HeaderLen   = 16
	TrainerLen  = 512
	PRGPageSize = 16384
	CHRPageSize = 8192
)

// the marker at the start of every iNES container.
const marker = "NES"

// the value conventionally found in byte 3 of the header.
const conventionalEOF = 0x1a

// Header is the decoded form of the iNES header.
type Header struct {
	PRGPages     int
	CHRPages     int
	Mirroring    Mirroring
	Battery      bool
	Trainer      bool
	FourScreen   bool
	MapperNumber int

	// bytes of the header that are not used for decoding
	EOF    uint8
	Flags7 uint8
}

func (h Header) String() string {
	s := fmt.Sprintf("mapper %d, PRG %dx16k, CHR %dx8k, %s", h.MapperNumber, h.PRGPages, h.CHRPages, h.Mirroring)
	if h.FourScreen {
		s = fmt.Sprintf("%s, four-screen", s)
	}
	if h.Battery {
		s = fmt.Sprintf("%s, battery", s)
	}
	if h.Trainer {
		s = fmt.Sprintf("%s, trainer", s)
	}
	return s
}

// PRGOffset returns the offset of the PRG ROM in the container.
func (h Header) PRGOffset() int {
	if h.Trainer {
		return HeaderLen + TrainerLen
	}
	return HeaderLen
}

// CHROffset returns the offset of the CHR ROM in the container.
func (h Header) CHROffset() int {
	return h.PRGOffset() + h.PRGPages*PRGPageSize
}

// ContainerLen returns the minimum length of a container with this header.
func (h Header) ContainerLen() int {
	return h.CHROffset() + h.CHRPages*CHRPageSize
}

// ParseHeader decodes the first sixteen bytes of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) < HeaderLen {
		if len(data) >= len(marker) && string(data[:len(marker)]) != marker {
			return h, curated.Errorf(NotINES, data[:len(marker)])
		}
		return h, curated.Errorf(Truncated, len(data), HeaderLen)
	}

	if string(data[:len(marker)]) != marker {
		return h, curated.Errorf(NotINES, data[:len(marker)])
	}

	h.EOF = data[3]
	h.PRGPages = int(data[4])
	h.CHRPages = int(data[5])

	flags6 := data[6]
	if flags6&0x01 == 0x01 {
		h.Mirroring = Vertical
	} else {
		h.Mirroring = Horizontal
	}
	h.Battery = flags6&0x02 == 0x02
	h.Trainer = flags6&0x04 == 0x04
	h.FourScreen = flags6&0x08 == 0x08
	h.MapperNumber = int(flags6 >> 4)

	h.Flags7 = data[7]

	return h, nil
}

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

	"github.com/psykad/dNES/cartridgeloader"
	"github.com/psykad/dNES/curated"
	"github.com/psykad/dNES/environment"
	"github.com/psykad/dNES/hardware/memory/cartridge/mapper"
	"github.com/psykad/dNES/hardware/memory/cartridge/nrom"
	"github.com/psykad/dNES/logger"
)

// Sentinel error patterns.
const (
	NotINES           = "cartridge: not an iNES container (%q)"
	Truncated         = "cartridge: container truncated (%d bytes; %d required)"
	NoPRG             = "cartridge: container has no PRG ROM"
	UnsupportedMapper = "cartridge: mapper %d is not supported"
	UnexpectedAccess  = "cartridge: unexpected %s %s of address %#04x"
)

// the mappers that can be selected by the mapper number in the header.
var registry = mapper.Registry{
	nrom.Number: nrom.NewNROM,
}

// Cartridge is the storage of an iNES container and the mapper that
// arbitrates access to it.
type Cartridge struct {
	env *environment.Environment

	Filename string
	Hash     string
	Header   Header

	PRG []uint8
	CHR []uint8

	// a container with no CHR pages has 8k of CHR RAM instead
	chrRAM bool

	mapper mapper.Mapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The Loader will be loaded if it hasn't been already.
func NewCartridge(env *environment.Environment, cartload cartridgeloader.Loader) (*Cartridge, error) {
	err := cartload.Load()
	if err != nil {
		return nil, err
	}

	data := cartload.Data

	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if h.PRGPages == 0 {
		return nil, curated.Errorf(NoPRG)
	}

	if len(data) < h.ContainerLen() {
		return nil, curated.Errorf(Truncated, len(data), h.ContainerLen())
	}

	m, ok := registry.New(h.MapperNumber, h.PRGPages, h.CHRPages)
	if !ok {
		return nil, curated.Errorf(UnsupportedMapper, h.MapperNumber)
	}

	cart := &Cartridge{
		env:      env,
		Filename: cartload.Filename,
		Hash:     cartload.Hash,
		Header:   h,
		mapper:   m,
	}

	cart.PRG = make([]uint8, h.PRGPages*PRGPageSize)
	copy(cart.PRG, data[h.PRGOffset():h.CHROffset()])

	if h.CHRPages == 0 {
		cart.CHR = make([]uint8, CHRPageSize)
		cart.chrRAM = true
	} else {
		cart.CHR = make([]uint8, h.CHRPages*CHRPageSize)
		copy(cart.CHR, data[h.CHROffset():h.ContainerLen()])
	}

	logger.Logf(env, "cartridge", "%s: %s (%s)", cartload.ShortName(), h, m.ID())
	if h.EOF != conventionalEOF {
		logger.Logf(env, "cartridge", "header byte 3 is %#02x (expected %#02x)", h.EOF, conventionalEOF)
	}
	if h.Flags7 != 0 {
		logger.Logf(env, "cartridge", "header byte 7 (%#02x) is ignored", h.Flags7)
	}
	if cart.chrRAM {
		logger.Log(env, "cartridge", "using 8k of CHR RAM")
	}

	return cart, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s [%s]", cart.Header, cart.mapper.ID())
}

// Mapper returns the mapper used by the cartridge.
func (cart *Cartridge) Mapper() mapper.Mapper {
	return cart.mapper
}

// HasCHRRAM returns true if the cartridge has CHR RAM rather than CHR ROM.
func (cart *Cartridge) HasCHRRAM() bool {
	return cart.chrRAM
}

// CPURead returns the data at the CPU address.
func (cart *Cartridge) CPURead(address uint16) (uint8, error) {
	offset, ok := cart.mapper.CPURead(address)
	if !ok || offset >= len(cart.PRG) {
		return 0, curated.Errorf(UnexpectedAccess, "CPU", "read", address)
	}
	return cart.PRG[offset], nil
}

// CPUWrite writes data to the CPU address.
func (cart *Cartridge) CPUWrite(address uint16, data uint8) error {
	offset, ok := cart.mapper.CPUWrite(address, data)
	if !ok || offset >= len(cart.PRG) {
		return curated.Errorf(UnexpectedAccess, "CPU", "write", address)
	}
	cart.PRG[offset] = data
	return nil
}

// PPURead returns the data at the PPU address.
func (cart *Cartridge) PPURead(address uint16) (uint8, error) {
	offset, ok := cart.mapper.PPURead(address)
	if !ok || offset >= len(cart.CHR) {
		return 0, curated.Errorf(UnexpectedAccess, "PPU", "read", address)
	}
	return cart.CHR[offset], nil
}

// PPUWrite writes data to the PPU address. Writes to CHR ROM are accepted by
// the mapper but the data is discarded.
func (cart *Cartridge) PPUWrite(address uint16, data uint8) error {
	offset, ok := cart.mapper.PPUWrite(address, data)
	if !ok || offset >= len(cart.CHR) {
		return curated.Errorf(UnexpectedAccess, "PPU", "write", address)
	}
	if !cart.chrRAM {
		logger.Logf(cart.env, "cartridge", "write to CHR ROM (%#04x) ignored", address)
		return nil
	}
	cart.CHR[offset] = data
	return nil
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package romfile loads ROM images from YAML files.
//
// An image looks like:
//
//	data_width: 8
//	address_width: 4
//	fill: 0xff
//	content: [0x00, 0x01, 0x02, 0x03]
//
// Addresses past the end of content are set to fill.
//
package romfile

import (
	"bytes"
	"io"
	"os"

	"github.com/db47h/logicsim/hwlib"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MaxAddressWidth is the largest supported address width.
//
const MaxAddressWidth = 16

// Image is a ROM image.
//
type Image struct {
	DataWidth    int      `yaml:"data_width"`
	AddressWidth int      `yaml:"address_width"`
	Fill         uint64   `yaml:"fill"`
	Content      []uint64 `yaml:"content"`
}

// Size returns the number of words in the ROM.
//
func (img *Image) Size() int { return 1 << uint(img.AddressWidth) }

func (img *Image) validate() error {
	if img.DataWidth < 1 || img.DataWidth > 64 {
		return errors.Errorf("invalid data_width %d", img.DataWidth)
	}
	if img.AddressWidth < 1 || img.AddressWidth > MaxAddressWidth {
		return errors.Errorf("invalid address_width %d", img.AddressWidth)
	}
	if len(img.Content) > img.Size() {
		return errors.Errorf("%d words of content for a %d words ROM", len(img.Content), img.Size())
	}
	if img.DataWidth < 64 {
		max := uint64(1)<<uint(img.DataWidth) - 1
		if img.Fill > max {
			return errors.Errorf("fill value %#x does not fit in %d bits", img.Fill, img.DataWidth)
		}
		for i, v := range img.Content {
			if v > max {
				return errors.Errorf("content[%d]: value %#x does not fit in %d bits", i, v, img.DataWidth)
			}
		}
	}
	return nil
}

// Words returns the full ROM content, padded with Fill.
//
func (img *Image) Words() []uint64 {
	ws := make([]uint64, img.Size())
	n := copy(ws, img.Content)
	for i := n; i < len(ws); i++ {
		ws[i] = img.Fill
	}
	return ws
}

// Decode reads an image from r. Unknown fields are rejected.
//
func Decode(r io.Reader) (*Image, error) {
	var img Image
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&img); err != nil {
		return nil, errors.Wrap(err, "decode ROM image")
	}
	if err := img.validate(); err != nil {
		return nil, err
	}
	return &img, nil
}

// Parse parses an image from YAML data.
//
func Parse(data []byte) (*Image, error) {
	return Decode(bytes.NewReader(data))
}

// Load loads an image from the named file.
//
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load ROM image")
	}
	defer f.Close()
	img, err := Decode(f)
	return img, errors.Wrap(err, path)
}

// ROM returns a new ROM programmed with img.
//
func (img *Image) ROM(name string) (*hwlib.ROM, error) {
	r := hwlib.NewROM(name, img.DataWidth, img.AddressWidth)
	if err := r.SetContent(img.Words()); err != nil {
		return nil, err
	}
	return r, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/bodoni/truetype"
)

type Info struct {
	Table string `short:"t" desc:"print only this table's fields"`
	Input string `index:"0" desc:"Input file"`
}

func (cmd *Info) Run() error {
	b, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}

	f, err := truetype.Parse(b)
	if err != nil {
		return err
	}

	fmt.Printf("File: %s\n", cmd.Input)
	fmt.Printf("sfntVersion: %s\n\n", f.OffsetTable.Version)
	fmt.Printf("Table directory:\n")
	for i, rec := range f.OffsetTable.Records {
		fmt.Printf("  %2d  %s  checksum=0x%08X  offset=%d  length=%d\n", i, rec.Tag, rec.CheckSum, rec.Offset, rec.Length)
	}

	if cmd.Table == "" || cmd.Table == "head" {
		if h := f.Head; h != nil {
			fmt.Printf("\nhead:\n  unitsPerEm=%d created=%d modified=%d bbox=(%d,%d)-(%d,%d)\n",
				h.UnitsPerEm, h.Created, h.Modified, h.XMin, h.YMin, h.XMax, h.YMax)
		}
	}
	if cmd.Table == "" || cmd.Table == "maxp" {
		if m := f.Maxp; m != nil {
			fmt.Printf("\nmaxp:\n  numGlyphs=%d\n", m.NumGlyphs)
		}
	}
	if cmd.Table == "" || cmd.Table == "name" {
		if n := f.Name; n != nil {
			fmt.Printf("\nname:\n")
			if s, ok := n.Get(truetype.NameFamily); ok {
				fmt.Printf("  family=%q\n", s)
			}
			if s, ok := n.Get(truetype.NameFull); ok {
				fmt.Printf("  full=%q\n", s)
			}
			if s, ok := n.Get(truetype.NameVersion); ok {
				fmt.Printf("  version=%q\n", s)
			}
		}
	}
	if err := f.VerifyChecksums(b); err != nil {
		fmt.Printf("\nchecksum: %v\n", err)
	} else {
		fmt.Printf("\nchecksum: ok\n")
	}
	return nil
}

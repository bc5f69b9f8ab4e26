package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/slice"
	"github.com/kr/pretty"

	"github.com/Project-PenguinOS/frameworks-base/overlay"
	"github.com/Project-PenguinOS/frameworks-base/parcel"
)

var globalArgs struct {
	Endian string `flag:"endian,default=native,Byte order of parcel files (native little big)"`
}

func parcelOrder() (parcel.ByteOrder, error) {
	switch globalArgs.Endian {
	case "native":
		return parcel.NativeEndian, nil
	case "little":
		return parcel.LittleEndian, nil
	case "big":
		return parcel.BigEndian, nil
	}
	return nil, fmt.Errorf("unknown byte order %q", globalArgs.Endian)
}

func main() {
	root := &command.C{
		Name:     "overlaycap",
		Usage:    "command args...",
		Help:     "Inspect and produce overlay capability parcels.",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "show",
				Usage: "show file",
				Help: `Show the descriptor stored in a parcel file.

Prints the decoded combinations, the global capability flags, and the
answers to the standard capability queries.`,
				Run: command.Adapt(runShow),
			},
			{
				Name:  "query",
				Usage: "query args...",
				Commands: []*command.C{
					{
						Name:  "fp16hdr",
						Usage: "fp16hdr file",
						Help:  "Report whether the descriptor supports direct FP16 HDR overlays.",
						Run:   command.Adapt(runQueryFP16HDR),
					},
					{
						Name:  "mixed",
						Usage: "mixed file",
						Help:  "Report whether the descriptor supports mixed color spaces.",
						Run:   command.Adapt(runQueryMixed),
					},
				},
			},
			{
				Name:  "make",
				Usage: "make",
				Help: `Write a descriptor parcel built from flags.

Each combination is given as formats:dataspaces, where both sides are
comma-separated lists of names (RGBA_FP16, BT2020_PQ, ...) or numbers.
Multiple combinations are separated by semicolons.`,
				SetFlags: command.Flags(flax.MustBind, &makeArgs),
				Run:      command.Adapt(runMake),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	env := root.NewEnv(nil)
	command.RunOrFail(env, os.Args[1:])
}

func readDescriptor(file string) (*overlay.Properties, error) {
	order, err := parcelOrder()
	if err != nil {
		return nil, err
	}
	bs, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	dec := parcel.Decoder{Order: order, In: bytes.NewReader(bs)}
	props, err := overlay.ReadProperties(&dec)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", file, err)
	}
	return props, nil
}

func runShow(env *command.Env, file string) error {
	props, err := readDescriptor(file)
	if err != nil {
		return err
	}
	fmt.Printf("%# v\n", pretty.Formatter(props))
	fmt.Println("pixel formats:", props.PixelFormats())
	fmt.Println("dataspaces:", props.Dataspaces())
	fmt.Println("fp16 for hdr:", props.SupportsFP16ForHDR())
	fmt.Println("mixed color spaces:", props.SupportsMixedColorSpaces())
	return nil
}

func runQueryFP16HDR(env *command.Env, file string) error {
	props, err := readDescriptor(file)
	if err != nil {
		return err
	}
	fmt.Println(props.SupportsFP16ForHDR())
	return nil
}

func runQueryMixed(env *command.Env, file string) error {
	props, err := readDescriptor(file)
	if err != nil {
		return err
	}
	fmt.Println(props.SupportsMixedColorSpaces())
	return nil
}

var makeArgs struct {
	Mixed  bool   `flag:"mixed,Declare mixed color space support"`
	Combos string `flag:"combos,Combinations as formats:dataspaces;formats:dataspaces..."`
	Out    string `flag:"out,default=overlay.parcel,Output file path"`
}

func runMake(env *command.Env) error {
	order, err := parcelOrder()
	if err != nil {
		return err
	}
	props := &overlay.Properties{SupportMixedColorSpaces: makeArgs.Mixed}
	for _, spec := range splitList(makeArgs.Combos, ";") {
		combo, err := parseCombo(spec)
		if err != nil {
			return err
		}
		props.Combinations = append(props.Combinations, combo)
	}

	enc := parcel.Encoder{Order: order}
	props.MarshalParcel(&enc)
	if err := os.WriteFile(makeArgs.Out, enc.Out, 0644); err != nil {
		return fmt.Errorf("writing parcel: %w", err)
	}
	fmt.Printf("wrote %d combinations to %s\n", len(props.Combinations), makeArgs.Out)
	return nil
}

func parseCombo(spec string) (overlay.Combination, error) {
	fs, ds, ok := strings.Cut(spec, ":")
	if !ok {
		return overlay.Combination{}, fmt.Errorf("combination %q is not formats:dataspaces", spec)
	}
	var combo overlay.Combination
	for _, s := range splitList(fs, ",") {
		f, err := overlay.ParsePixelFormat(s)
		if err != nil {
			return overlay.Combination{}, err
		}
		combo.PixelFormats = append(combo.PixelFormats, f)
	}
	for _, s := range splitList(ds, ",") {
		d, err := overlay.ParseDataspace(s)
		if err != nil {
			return overlay.Combination{}, err
		}
		combo.Dataspaces = append(combo.Dataspaces, d)
	}
	return combo, nil
}

// splitList splits s on sep, trimming whitespace and dropping empty
// entries so that trailing separators are harmless.
func splitList(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return slice.Partition(parts, func(p string) bool { return p != "" })
}

// Command squishyid encodes uint64 identifiers to short strings and back
// from the command line. One result per argument, one per line.
package main

import (
	"fmt"
	"os"
	"strconv"

	squishyid "github.com/bbkr/SquishyID"
	"github.com/urfave/cli/v2"
)

var alphabets = map[string]string{
	"base16":    squishyid.Base16,
	"base32":    squishyid.Base32,
	"base36":    squishyid.Base36,
	"base58":    squishyid.Base58,
	"base62":    squishyid.Base62,
	"base64url": squishyid.Base64URL,
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "squishyid",
		Usage: "shorten and obfuscate uint64 identifiers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "key",
				Aliases: []string{"k"},
				Usage:   "custom alphabet; overrides --alphabet",
			},
			&cli.StringFlag{
				Name:    "alphabet",
				Aliases: []string{"a"},
				Value:   "base62",
				Usage:   "predefined alphabet: base16, base32, base36, base58, base62, base64url",
			},
			&cli.Uint64Flag{
				Name:  "mask",
				Usage: "XOR mask applied before encoding and after decoding",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "encode uint64 values to short strings",
				ArgsUsage: "<value>...",
				Action:    runEncode,
			},
			{
				Name:      "decode",
				Usage:     "decode short strings back to uint64 values",
				ArgsUsage: "<string>...",
				Action:    runDecode,
			},
		},
	}
}

func codecFromFlags(c *cli.Context) (*squishyid.Codec, error) {
	if key := c.String("key"); key != "" {
		return squishyid.New(key)
	}

	name := c.String("alphabet")
	key, ok := alphabets[name]
	if !ok {
		return nil, fmt.Errorf("unknown alphabet %q", name)
	}
	return squishyid.New(key)
}

func runEncode(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("encode: at least one value required")
	}

	codec, err := codecFromFlags(c)
	if err != nil {
		return err
	}

	mask := c.Uint64("mask")
	for _, arg := range c.Args().Slice() {
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("encode %q: not a uint64", arg)
		}
		fmt.Fprintln(c.App.Writer, codec.Encode(v^mask))
	}
	return nil
}

func runDecode(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("decode: at least one value required")
	}

	codec, err := codecFromFlags(c)
	if err != nil {
		return err
	}

	mask := c.Uint64("mask")
	for _, arg := range c.Args().Slice() {
		v, err := codec.Decode(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, v^mask)
	}
	return nil
}

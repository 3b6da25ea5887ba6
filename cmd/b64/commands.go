package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/epithet-ssh/b64/pkg/b64"
)

// Input is the optional positional text shared by the codec commands.
// Several arguments are joined with spaces; with none the command reads
// standard input.
type Input struct {
	Text []string `arg:"" optional:"" help:"Input text (default: read standard input)"`
}

// read returns the argument or standard input. Standard input is read up to
// one byte past the size limit so oversize input fails without reading it all.
func (i Input) read(codec *b64.Codec, streams *Streams) (string, error) {
	if len(i.Text) > 0 {
		return strings.Join(i.Text, " "), nil
	}

	r := streams.In
	if limit := int64(codec.Security().MaxInputSize()); limit > 0 && limit < math.MaxInt64 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

type EncodeCLI struct {
	Input
}

func (e *EncodeCLI) Run(logger *slog.Logger, codec *b64.Codec, streams *Streams) error {
	text, err := e.read(codec, streams)
	if err != nil {
		return err
	}
	out, err := codec.Encode(text)
	if err != nil {
		return err
	}
	logger.Info("encoded", "in", len(text), "out", len(out))
	fmt.Fprintln(streams.Out, out)
	return nil
}

type DecodeCLI struct {
	Input
	Binary bool `help:"Write the raw payload without requiring UTF-8" short:"b"`
}

func (d *DecodeCLI) Run(logger *slog.Logger, codec *b64.Codec, streams *Streams) error {
	text, err := d.read(codec, streams)
	if err != nil {
		return err
	}

	if d.Binary {
		data, err := codec.DecodeBytes(text)
		if err != nil {
			return err
		}
		logger.Info("decoded", "in", len(text), "out", len(data))
		_, err = streams.Out.Write(data)
		return err
	}

	out, err := codec.Decode(text)
	if err != nil {
		return err
	}
	logger.Info("decoded", "in", len(text), "out", len(out))
	fmt.Fprintln(streams.Out, out)
	return nil
}

type NormalizeCLI struct {
	Input
}

func (n *NormalizeCLI) Run(codec *b64.Codec, streams *Streams) error {
	text, err := n.read(codec, streams)
	if err != nil {
		return err
	}
	out, err := codec.Normalize(text)
	if err != nil {
		return err
	}
	fmt.Fprintln(streams.Out, out)
	return nil
}

type CheckCLI struct {
	Input
	Expect string `help:"Fail unless the input has this type" enum:"any,base64,plain-text,invalid" default:"any"`
}

func (c *CheckCLI) Run(logger *slog.Logger, codec *b64.Codec, streams *Streams) error {
	text, err := c.read(codec, streams)
	if err != nil {
		return err
	}
	t := codec.GetStringType(text)
	logger.Debug("classified", "type", t, "length", len(text))
	fmt.Fprintln(streams.Out, t)

	if c.Expect != "any" && c.Expect != t.String() {
		return fmt.Errorf("input is %s, expected %s", t, c.Expect)
	}
	return nil
}

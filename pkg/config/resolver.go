package config

import (
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"github.com/alecthomas/kong"
)

// Resolver returns a kong.Resolver that fills flags from val.
//
// A flag named "max-input-size" is looked up at path "max_input_size".
// Flags given on the command line or through the environment win over
// the file.
func Resolver(val cue.Value) kong.Resolver {
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		path := cue.ParsePath(strings.ReplaceAll(flag.Name, "-", "_"))
		if path.Err() != nil {
			return nil, nil
		}

		v := val.LookupPath(path)
		if !v.Exists() || !v.IsConcrete() {
			return nil, nil
		}

		switch v.IncompleteKind() {
		case cue.IntKind:
			i, err := v.Int64()
			if err != nil {
				return nil, err
			}
			return strconv.FormatInt(i, 10), nil
		case cue.BoolKind:
			b, err := v.Bool()
			if err != nil {
				return nil, err
			}
			return strconv.FormatBool(b), nil
		case cue.StringKind:
			return v.String()
		}
		return nil, nil
	})
}

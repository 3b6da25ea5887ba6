package config

import (
	"fmt"
	"io"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// schema constrains every settings file. The definition is closed, so
// misspelled keys are rejected rather than silently ignored. Keys are the
// CLI flag names with dashes replaced by underscores.
const schema = `
#Settings: {
	max_input_size?: int & >=0
	listen?:         string & !=""
	verbose?:        int & >=0
	tls_cert?:       string & !=""
	tls_key?:        string & !=""
	tls_client_ca?:  string & !=""
}
`

// LoadSettings loads and validates a settings file. The returned value is
// the file's own content, suitable for Resolver.
func LoadSettings(path string) (cue.Value, error) {
	ctx := cuecontext.New()
	val, err := loadPath(ctx, path)
	if err != nil {
		return cue.Value{}, err
	}
	return validateSettings(ctx, val)
}

// LoadSettingsFromReader loads and validates YAML or JSON settings from r.
func LoadSettingsFromReader(r io.Reader) (cue.Value, error) {
	ctx := cuecontext.New()
	val, err := loadReader(ctx, r)
	if err != nil {
		return cue.Value{}, err
	}
	return validateSettings(ctx, val)
}

func validateSettings(ctx *cue.Context, val cue.Value) (cue.Value, error) {
	def := ctx.CompileString(schema).LookupPath(cue.ParsePath("#Settings"))
	if err := def.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to compile settings schema: %w", err)
	}

	if err := def.Unify(val).Validate(cue.Concrete(true)); err != nil {
		return cue.Value{}, fmt.Errorf("invalid settings: %w", err)
	}
	return val, nil
}

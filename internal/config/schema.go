package config

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

// schemaSrc constrains anubis.yaml. The definitions are closed, so unknown
// fields anywhere in the file are rejected with a schema error instead of
// being silently dropped by the decoder.
const schemaSrc = `
#Config: {
	configVersion: string
	envFile?:      string
	workers?:      int & >=0 & <=256
	exclude?: [...string]
	env?: {[string]: string}
	defaults?: {
		timeoutMs?:       int & >=0
		termGraceMs?:     int & >=0
		captureMaxBytes?: int & >=0
	}
	output?: {
		out?:    string
		format?: "text" | "json"
		pretty?: bool
	}
	jobs?: [...#Job]
}

#Job: {
	name:       string & =~"^[A-Za-z0-9][A-Za-z0-9._-]*$"
	glob?:      string | [...string]
	run:        [string, ...string]
	rank?:      int & >=0 & <=99
	group?:     string & =~"^[A-Za-z0-9][A-Za-z0-9._-]*$"
	mutating?:  bool
	alwaysRun?: bool
	noFiles?:   bool
	timeoutMs?: int & >=0
	env?: {[string]: string}
	needs?:     string | [...string]
	when?:      string
}
`

// validateSchema checks raw YAML against the config schema before decoding.
func validateSchema(path string, data []byte) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSrc)
	if err := schema.Err(); err != nil {
		return loadErrorf("internal schema error: %v", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return loadErrorf("internal schema error: missing #Config")
	}
	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return loadErrorf("invalid config: %v", err)
	}
	v := ctx.BuildFile(file)
	if err := v.Err(); err != nil {
		return loadErrorf("invalid config: %v", err)
	}
	if !v.LookupPath(cue.ParsePath("configVersion")).Exists() {
		return loadErrorf("missing required field: configVersion")
	}
	if err := def.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return loadErrorf("invalid config: %v", err)
	}
	return nil
}

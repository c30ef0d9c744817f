package run

import (
	"github.com/flarebyte/anubis-hooks/internal/config"
	"github.com/flarebyte/anubis-hooks/internal/engine"
)

// outputSettings folds the output flags over the configured defaults.
func outputSettings(o config.Output) config.Output {
	if flagJSON {
		o.Format = "json"
	}
	if flagPretty {
		o.Format = "json"
		o.Pretty = true
	}
	if flagOut != "" {
		o.Out = flagOut
	}
	return o
}

// writeReport renders the report per the effective output settings. The
// destination defaults to stdout.
func writeReport(r *engine.Report, o config.Output) error {
	if o.Format == "json" {
		data, err := r.EncodeJSON(o.Pretty)
		if err != nil {
			return err
		}
		return engine.WriteTo(o.Out, data)
	}
	return engine.WriteTo(o.Out, []byte(r.Summary()))
}

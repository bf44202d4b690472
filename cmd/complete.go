package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	md := map[string]complete.Predictor{"md": predict.Nothing}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"update":   {},
			"summary":  {Flags: md},
			"pipeline": {Flags: md},
			"catalog":  {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"help":     {},
			"flags":    {},
		},
		Flags: map[string]complete.Predictor{
			"inventory-dir":  predict.Dirs("*"),
			"catalog-dir":    predict.Dirs("*"),
			"portfolio-file": predict.Files("*.csv"),
			"config":         predict.Files("*.toml"),
			"currency":       predict.Set{"USD", "EUR", "GBP", "JPY", "CAD"},
			"test":           predict.Nothing,
			"v":              predict.Nothing,
		},
	}
}

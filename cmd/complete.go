package cmd

import (
	"time"

	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/docs"
	"github.com/etnz/tradecal/storage"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands and flags for shell completion.
func Completion() *complete.Command {
	var months predict.Set
	for m := time.January; m <= time.December; m++ {
		months = append(months, m.String())
	}

	var underlyings predict.Set
	for _, u := range tradecal.Underlyings {
		if u != "" {
			underlyings = append(underlyings, u)
		}
	}

	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.toml"),
			"data":      predict.Files("*"),
			"backend":   predict.Set(storage.Kinds),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"raw":       predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"show": {
				Flags: map[string]complete.Predictor{"m": months},
			},
			"stats":    {},
			"holidays": {},
			"set": {
				Flags: map[string]complete.Predictor{
					"d":          predict.Something,
					"underlying": underlyings,
					"profit":     predict.Something,
					"trades":     predict.Something,
					"force":      predict.Nothing,
				},
			},
			"import": {Args: predict.Files("*.csv")},
			"export": {
				Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")},
			},
			"topic": {Args: predict.Set(topics)},
		},
	}
}

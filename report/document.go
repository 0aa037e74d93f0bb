// SPDX-License-Identifier: MIT

package report

import "github.com/katalvlaran/fpassoc/experiment"

// document is the structured form shared by the YAML and JSON renderings.
type document struct {
	Size          int     `json:"size" yaml:"size"`
	RequestedSize int     `json:"requested_size" yaml:"requested_size"`
	Offset        float64 `json:"offset" yaml:"offset"`
	Seed          *int64  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Expected      float64 `json:"expected" yaml:"expected"`
	Trials        []trial `json:"trials" yaml:"trials"`
	Distinct      int     `json:"distinct" yaml:"distinct"`
	Spread        float64 `json:"spread" yaml:"spread"`
	Exact         bool    `json:"exact" yaml:"exact"`
}

type trial struct {
	Index     int     `json:"index" yaml:"index"`
	Total     float64 `json:"total" yaml:"total"`
	Deviation float64 `json:"deviation" yaml:"deviation"`
}

func newDocument(rep experiment.Report) document {
	dev := rep.Deviations()
	trials := make([]trial, len(rep.Results))
	for i, v := range rep.Results {
		trials[i] = trial{Index: i + 1, Total: v, Deviation: dev[i]}
	}
	return document{
		Size:          rep.Size,
		RequestedSize: rep.RequestedSize,
		Offset:        rep.Offset,
		Seed:          rep.Seed,
		Expected:      rep.Expected,
		Trials:        trials,
		Distinct:      rep.Distinct(),
		Spread:        rep.Spread(),
		Exact:         rep.Exact(),
	}
}

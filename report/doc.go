// SPDX-License-Identifier: MIT

// Package report renders an experiment.Report for humans (Text) or for
// tooling (YAML, JSON).
package report

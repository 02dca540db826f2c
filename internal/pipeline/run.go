// Package pipeline runs the people and people group conversions in order.
package pipeline

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/jonathan/people-filter/internal/config"
	"github.com/jonathan/people-filter/internal/dataset"
	"github.com/jonathan/people-filter/internal/filtering"
	"github.com/jonathan/people-filter/internal/observability"
	"github.com/jonathan/people-filter/internal/schemas"
	"github.com/jonathan/people-filter/internal/types"
	embedded "github.com/jonathan/people-filter/schemas"
)

// Progress steps reported through ProgressCallback.
const (
	StepLoad     = "load"
	StepFilter   = "filter"
	StepValidate = "validate"
	StepSave     = "save"
)

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Step       string `json:"step"`
	Conversion string `json:"conversion"`
	Message    string `json:"message"`
}

// ProgressCallback is called when run progress occurs
type ProgressCallback func(event ProgressEvent)

// FilterFunc reduces loaded records to the document that is written out.
type FilterFunc func(records []types.Record) (any, error)

// Conversion is one input file filtered into one output file.
type Conversion struct {
	Name   string
	Input  string
	Output string
	Filter FilterFunc
	Schema []byte // output schema checked when RunOptions.ValidateOutput is set
}

// RunOptions holds configuration for a run
type RunOptions struct {
	// ContinueOnError confines a failure to its own conversion. When false a
	// failure skips every later conversion.
	ContinueOnError bool
	ValidateOutput  bool
	Verbose         bool
	OnProgress      ProgressCallback
}

// Conversions returns the people and people group conversions, in that order.
func Conversions(paths config.Paths) []Conversion {
	return []Conversion{
		{
			Name:   filepath.Base(paths.PeopleInput),
			Input:  paths.PeopleInput,
			Output: paths.PeopleOutput,
			Filter: filterPeople,
			Schema: embedded.PeopleFiltered,
		},
		{
			Name:   filepath.Base(paths.GroupsInput),
			Input:  paths.GroupsInput,
			Output: paths.GroupsOutput,
			Filter: filterGroups,
			Schema: embedded.GroupsFiltered,
		},
	}
}

func filterPeople(records []types.Record) (any, error) {
	return filtering.FilterPeople(records)
}

func filterGroups(records []types.Record) (any, error) {
	return filtering.FilterGroups(records)
}

// Run executes the conversions in order, printing one status line per
// conversion. Missing inputs are reported and skipped. Any other failure is
// reported and, unless ContinueOnError is set, ends the run. Run never
// returns an error; the outcome of each conversion is in the report.
func Run(conversions []Conversion, opts RunOptions, printer *observability.Printer) *types.RunReport {
	report := &types.RunReport{Results: make([]types.ConversionResult, 0, len(conversions))}

	aborted := false
	for _, conv := range conversions {
		result := types.ConversionResult{
			Name:   conv.Name,
			Input:  conv.Input,
			Output: conv.Output,
		}

		if aborted {
			result.Status = types.StatusSkipped
			report.Results = append(report.Results, result)
			continue
		}

		records, err := convert(conv, &opts)
		switch {
		case errors.Is(err, errInputNotFound):
			printer.NotFound(conv.Input)
			result.Status = types.StatusNotFound
		case err != nil:
			reportFailure(printer, err)
			result.Status = types.StatusFailed
			result.Err = err
			aborted = !opts.ContinueOnError
		default:
			printer.Saved(conv.Name, conv.Output)
			result.Status = types.StatusSaved
			result.Records = records
		}

		report.Results = append(report.Results, result)
	}

	return report
}

var errInputNotFound = errors.New("input file not found")

// convert runs a single conversion and returns the number of records written.
func convert(conv Conversion, opts *RunOptions) (int, error) {
	if !dataset.Exists(conv.Input) {
		return 0, errInputNotFound
	}

	records, err := dataset.LoadRecords(conv.Input)
	if err != nil {
		return 0, err
	}
	emitProgress(opts, StepLoad, conv.Name, fmt.Sprintf("loaded %d records from %s", len(records), conv.Input))

	filtered, err := conv.Filter(records)
	if err != nil {
		return 0, fmt.Errorf("failed to filter %s: %w", conv.Name, err)
	}

	data, err := dataset.EncodeJSON(filtered)
	if err != nil {
		return 0, err
	}
	emitProgress(opts, StepFilter, conv.Name, fmt.Sprintf("filtered %d records (%d bytes)", len(records), len(data)))

	if opts.ValidateOutput && conv.Schema != nil {
		if err := schemas.ValidateDocument(conv.Schema, data); err != nil {
			return 0, fmt.Errorf("filtered %s does not match its schema: %w", conv.Name, err)
		}
		emitProgress(opts, StepValidate, conv.Name, "output matches schema")
	}

	if err := dataset.WriteFile(conv.Output, data); err != nil {
		return 0, err
	}
	emitProgress(opts, StepSave, conv.Name, fmt.Sprintf("wrote %s", conv.Output))

	return len(records), nil
}

// reportFailure prints err as a JSON parse error or as a generic failure.
func reportFailure(printer *observability.Printer, err error) {
	var parseErr *dataset.ParseError
	if errors.As(err, &parseErr) {
		printer.ParseFailure(parseErr)
		return
	}
	printer.Failure(err)
}

// emitProgress logs in verbose mode and calls the progress callback if configured
func emitProgress(opts *RunOptions, step, conversion, message string) {
	if opts.Verbose {
		log.Printf("[FILTER] %s %s: %s", step, conversion, message)
	}
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:       step,
			Conversion: conversion,
			Message:    message,
		})
	}
}

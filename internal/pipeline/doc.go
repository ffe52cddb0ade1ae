// Package pipeline runs batch extraction jobs over line-delimited JSON.
//
// A Runner reads one job object per input line, renders the requested text,
// extracts circles, and writes one result object per line to the output.
// Jobs are processed sequentially so results come back in input order.
// Malformed input lines are logged and skipped; failures inside a job are
// reported in the result's error field so one bad job cannot stall a batch.
package pipeline

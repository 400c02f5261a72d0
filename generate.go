package main

// Emission loop shared by every generation mode

import (
	"bufio"
	"errors"
	"io"
	"sync/atomic"

	"github.com/pterm/pterm"
)

var errInterrupted = errors.New("generation interrupted")

const sinkBufferSize = 8192

type emitOptions struct {
	Prefix string
	Suffix string
	Limit  uint64 // 0 means unbounded

	Progress    *pterm.ProgressbarPrinter // nil when --progress isn't set
	Interrupted *atomic.Bool              // nil disables interrupt polling
}

// writeWords drains the provider into the sink, one decorated word per line.
// Returns the number of words emitted. errInterrupted means a clean stop with
// whatever partial output was produced already flushed
func writeWords(provider WordProvider, sink io.Writer, opts emitOptions) (uint64, error) {
	w := bufio.NewWriterSize(sink, sinkBufferSize)

	var count uint64 = 0
	var writeErr error
	stopped := false

	for word := range provider.IterWords() {
		if opts.Interrupted != nil && opts.Interrupted.Load() {
			stopped = true
			break
		}

		// bufio errors are sticky, checking the last write catches them all
		w.WriteString(opts.Prefix)
		w.WriteString(word)
		w.WriteString(opts.Suffix)
		if err := w.WriteByte('\n'); err != nil {
			writeErr = err
			break
		}

		count++
		if opts.Progress != nil {
			opts.Progress.Increment()
		}

		if opts.Limit != 0 && count >= opts.Limit {
			break
		}
	}

	if err := w.Flush(); err != nil && writeErr == nil {
		writeErr = err
	}

	if writeErr != nil {
		return count, writeErr
	} else if stopped {
		return count, errInterrupted
	}

	return count, nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var errNoInput = errors.New("no input: pass text arguments or --file")

// run applies fn to each input and writes one result per line to the
// command's output.
func (o *options) run(cmd *cobra.Command, args []string, fn func(s string) string) error {
	w := bufio.NewWriter(cmd.OutOrStdout())
	if o.inputFile == "" {
		if len(args) == 0 {
			return errNoInput
		}
		for _, s := range args {
			w.WriteString(fn(s))
			w.WriteByte('\n')
		}
		return w.Flush()
	}
	if len(args) != 0 {
		return errors.New("text arguments cannot be combined with --file")
	}

	r, size, err := o.openInput(cmd)
	if err != nil {
		return err
	}
	defer r.Close()

	var bar *progressbar.ProgressBar
	if o.config.Progress && size > 0 && term.IsTerminal(int(os.Stderr.Fd())) {
		bar = progressbar.DefaultBytes(size, "processing")
	} else {
		bar = progressbar.DefaultBytesSilent(size, "processing")
	}
	defer func() { _ = bar.Finish() }()

	scanner := bufio.NewScanner(io.TeeReader(r, bar))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lines := 0
	for scanner.Scan() {
		w.WriteString(fn(scanner.Text()))
		w.WriteByte('\n')
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", o.inputFile, err)
	}
	o.logger.Debug("Processed input",
		zap.String("file", o.inputFile), zap.Int("lines", lines))
	return w.Flush()
}

// openInput opens the --file input. The returned size is -1 when it is not
// known.
func (o *options) openInput(cmd *cobra.Command) (io.ReadCloser, int64, error) {
	if o.inputFile == "-" {
		return io.NopCloser(cmd.InOrStdin()), -1, nil
	}
	f, err := os.Open(o.inputFile)
	if err != nil {
		return nil, 0, fmt.Errorf("open input: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat input: %w", err)
	}
	return f, fi.Size(), nil
}

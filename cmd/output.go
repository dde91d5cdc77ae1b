package cmd

import (
	"io"
	"os"
)

// Resolved through function values so that command initializers can use
// them without referring back to rootCmd.
var (
	outWriterFunc = func() io.Writer { return os.Stdout }
	errWriterFunc = func() io.Writer { return os.Stderr }
	inReaderFunc  = func() io.Reader { return os.Stdin }
)

func init() {
	outWriterFunc = func() io.Writer { return rootCmd.OutOrStdout() }
	errWriterFunc = func() io.Writer { return rootCmd.ErrOrStderr() }
	inReaderFunc = func() io.Reader { return rootCmd.InOrStdin() }
}

// outWriter carries only the generated message.
func outWriter() io.Writer {
	return outWriterFunc()
}

// errWriter carries status, progress and diagnostics.
func errWriter() io.Writer {
	return errWriterFunc()
}

func inReader() io.Reader {
	return inReaderFunc()
}

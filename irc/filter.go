// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package irc

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ergochat/irctext/irc/logger"
)

// LineFunc converts one line of input. A non-nil error is logged and the
// returned text is still written, so a conversion can degrade (say, by
// skipping link detection) without losing the line.
type LineFunc func(line string) (string, error)

// RunFilter reads lines from in, converts each with process, and writes the
// results to out, one per line. A line longer than maxLineBytes aborts the
// run: the reader cannot tell a truncated line from a whole one, and
// converting half a line would corrupt the output stream.
func RunFilter(in io.Reader, out io.Writer, maxLineBytes int, process LineFunc, logm *logger.Manager) error {
	reader := bufio.NewReaderSize(in, maxLineBytes)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	lineNum := 0
	for {
		line, isPrefix, err := reader.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if isPrefix {
			logm.Error("main", fmt.Sprintf("line %d exceeds the limit of %d bytes", lineNum+1, maxLineBytes))
			return errReadQ
		}
		lineNum++

		result, err := process(string(line))
		if err != nil {
			logm.Warning("format", fmt.Sprintf("line %d: %s", lineNum, err.Error()))
		}
		if _, err := writer.WriteString(result); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
}

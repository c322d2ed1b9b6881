package dictcc

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// rawRecord is one undecoded data row of the tab-separated database file.
type rawRecord struct {
	left        string
	right       string
	wordClasses string
	line        int
}

// recordReader streams the records of a dict.cc database file: fields are
// separated by a literal TAB, there is no quoting of any kind, and lines
// whose first byte is '#' are comments. The header line is consumed by the
// caller before the record loop starts.
type recordReader struct {
	scanner *bufio.Scanner
	path    string
	line    int
}

// maxLineSize bounds a single record; dict.cc rows are far below this.
const maxLineSize = 1 << 20

func newRecordReader(r io.Reader, path string) *recordReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &recordReader{scanner: scanner, path: path}
}

// readLine returns the next raw line. The returned bool is false at EOF.
func (r *recordReader) readLine() (string, bool, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return "", false, RecordError{Path: r.path, Line: r.line + 1, Cause: err}
			}
			return "", false, IOError{Path: r.path, Cause: err}
		}
		return "", false, nil
	}
	r.line++
	return r.scanner.Text(), true, nil
}

// Next returns the next well-formed data record. Comment lines are skipped;
// rows without exactly three fields are reported at info level and dropped.
// The returned bool is false when the input is exhausted.
func (r *recordReader) Next() (rawRecord, bool, error) {
	for {
		line, ok, err := r.readLine()
		if err != nil || !ok {
			return rawRecord{}, false, err
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			logrus.Infof("dropping incomplete entry %s:%d: %d fields instead of 3", r.path, r.line, len(fields))
			continue
		}
		return rawRecord{
			left:        fields[0],
			right:       fields[1],
			wordClasses: fields[2],
			line:        r.line,
		}, true, nil
	}
}

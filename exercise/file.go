package exercise

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hupe1980/vecmath/codec"
	"github.com/hupe1980/vecmath/internal/compress"
)

// maxLineSize bounds a single JSON line in an exercise file.
const maxLineSize = 16 << 20

// ErrMalformedRecord is returned when a line of an exercise file cannot be decoded.
var ErrMalformedRecord = errors.New("malformed record")

// ReadTasks reads a JSON-lines task file. Files ending in .zst or .lz4 are
// decompressed. A nil codec selects codec.Default.
func ReadTasks(path string, c codec.Codec) ([]Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := compress.NewReader(f, compress.FromPath(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	return DecodeTasks(r, c)
}

// DecodeTasks decodes JSON-lines tasks from r. Blank lines and lines
// starting with '#' are skipped. Tasks without an ID get their line number.
func DecodeTasks(r io.Reader, c codec.Codec) ([]Task, error) {
	if c == nil {
		c = codec.Default
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var tasks []Task
	lineNo := 0
	for sc.Scan() {
		lineNo++
		data := bytes.TrimSpace(sc.Bytes())
		if len(data) == 0 || data[0] == '#' {
			continue
		}
		var t Task
		if err := c.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRecord, lineNo, err)
		}
		if t.ID == "" {
			t.ID = strconv.Itoa(lineNo)
		}
		tasks = append(tasks, t)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ReadResults reads a JSON-lines result file written by WriteResults.
func ReadResults(path string, c codec.Codec) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := compress.NewReader(f, compress.FromPath(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	if c == nil {
		c = codec.Default
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var results []Result
	lineNo := 0
	for sc.Scan() {
		lineNo++
		data := bytes.TrimSpace(sc.Bytes())
		if len(data) == 0 {
			continue
		}
		var res Result
		if err := c.Unmarshal(data, &res); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRecord, lineNo, err)
		}
		results = append(results, res)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// WriteTasks writes tasks as JSON lines, compressed according to the path.
func WriteTasks(path string, c codec.Codec, tasks []Task) error {
	return writeFile(path, func(w io.Writer) error {
		return encodeLines(w, c, tasks)
	})
}

// WriteResults writes results as JSON lines, compressed according to the path.
func WriteResults(path string, c codec.Codec, results []Result) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeResults(w, c, results)
	})
}

// EncodeResults writes results as JSON lines to w.
func EncodeResults(w io.Writer, c codec.Codec, results []Result) error {
	return encodeLines(w, c, results)
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	cw, err := compress.NewWriter(bw, compress.FromPath(path))
	if err != nil {
		return err
	}
	if err := encode(cw); err != nil {
		_ = cw.Close()
		return err
	}
	if err := cw.Close(); err != nil {
		return err
	}
	return bw.Flush()
}

// appender is implemented by codecs that can encode into a caller-owned buffer.
type appender interface {
	Append(dst []byte, v any) ([]byte, error)
}

func encodeLines[T any](w io.Writer, c codec.Codec, records []T) error {
	if c == nil {
		c = codec.Default
	}
	app, canAppend := c.(appender)

	var buf []byte
	for i := range records {
		var err error
		if canAppend {
			buf, err = app.Append(buf[:0], records[i])
		} else {
			buf, err = c.Marshal(records[i])
		}
		if err != nil {
			return fmt.Errorf("%w: record %d: %w", ErrMalformedRecord, i, err)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

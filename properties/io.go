package properties

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// Load reads properties from r line by line and inserts them into the
// store. Existing entries not present in the input are kept; entries
// present in both are overwritten. The final line is processed even
// without a trailing newline.
//
// An I/O error aborts the load and is returned as-is. Lines without
// "=" are skipped; they are collected as *ParseError and returned
// joined after the whole stream is consumed, so a partial failure
// still loads every well-formed line.
func (p *Properties) Load(r io.Reader) error {
	if p.format == FormatJSON {
		return p.loadJSON(r)
	}
	scanner := bufio.NewScanner(r)
	// allow lines up to 1 MB
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var parseErrs []error
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := ParseLine(scanner.Text())
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.LineNo = lineNo
			}
			parseErrs = append(parseErrs, err)
			continue
		}
		if ok {
			p.SetProperty(key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return errors.Join(parseErrs...)
}

// Store writes one "key = value" line per entry to w.
// Output is sorted by key so that it's deterministic and diffable,
// but callers must not rely on the order.
// The first write error aborts remaining writes.
func (p *Properties) Store(w io.Writer) error {
	if p.format == FormatJSON {
		return p.storeJSON(w)
	}
	for _, e := range p.entries() {
		if _, err := io.WriteString(w, FormatLine(e.Key, e.Value)); err != nil {
			return err
		}
	}
	return nil
}

// LoadFromFile opens path and delegates to Load.
// Decompresses gzip, zstd and brotli based on the file extension.
func (p *Properties) LoadFromFile(path string) error {
	r, err := openFileMaybeCompressed(path)
	if err != nil {
		return err
	}
	defer r.Close()
	return p.Load(r)
}

// StoreToFile creates (or truncates) path and delegates to Store.
// Compresses with gzip, zstd or brotli based on the file extension.
func (p *Properties) StoreToFile(path string) error {
	w, err := createFileMaybeCompressed(path)
	if err != nil {
		return err
	}
	err = p.Store(w)
	err2 := w.Close()
	return getErr(err, err2)
}

func getErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// implement io.ReadCloser over os.File wrapped with io.Reader.
// io.Closer goes to os.File, io.Reader goes to wrapping reader
type readerWrappedFile struct {
	f *os.File
	r io.Reader
}

func (rc *readerWrappedFile) Close() error {
	return rc.f.Close()
}

func (rc *readerWrappedFile) Read(p []byte) (int, error) {
	return rc.r.Read(p)
}

func wrapInReadCloser(f *os.File, r io.Reader, err error) (io.ReadCloser, error) {
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readerWrappedFile{
		f: f,
		r: r,
	}, nil
}

// openFileMaybeCompressed opens a file that might be compressed with
// gzip or zstd or brotli, based on the file extension
func openFileMaybeCompressed(path string) (io.ReadCloser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if ext == ".gz" {
		r, err := gzip.NewReader(f)
		return wrapInReadCloser(f, r, err)
	}
	if ext == ".zstd" {
		r, err := zstd.NewReader(f)
		return wrapInReadCloser(f, r, err)
	}
	if ext == ".br" {
		r := brotli.NewReader(f)
		return wrapInReadCloser(f, r, nil)
	}
	return f, nil
}

// io.WriteCloser over os.File wrapped with a compressor.
// Close flushes the compressor before closing the file and returns
// the first error.
type writerWrappedFile struct {
	f *os.File
	w io.Writer
	// compressor to flush on Close, nil when writing plain text
	c io.Closer
}

func (wc *writerWrappedFile) Write(p []byte) (int, error) {
	return wc.w.Write(p)
}

func (wc *writerWrappedFile) Close() error {
	var err error
	if wc.c != nil {
		err = wc.c.Close()
	}
	err2 := wc.f.Close()
	return getErr(err, err2)
}

// createFileMaybeCompressed creates path for writing, compressing
// with gzip, zstd or brotli based on the file extension
func createFileMaybeCompressed(path string) (io.WriteCloser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if ext == ".gz" {
		w, err := gzip.NewWriterLevel(f, gzip.BestCompression)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &writerWrappedFile{f: f, w: w, c: w}, nil
	}
	if ext == ".zstd" {
		w, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, err
		}
		return &writerWrappedFile{f: f, w: w, c: w}, nil
	}
	if ext == ".br" {
		w := brotli.NewWriterLevel(f, brotli.DefaultCompression)
		return &writerWrappedFile{f: f, w: w, c: w}, nil
	}
	return f, nil
}

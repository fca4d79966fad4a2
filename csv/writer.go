// Package csv stores extracted policies as a CSV table.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fwojciec/policydoc"
)

// Header is the first row of every policy table. The source URL is not
// part of the table.
var Header = []string{"Policy Name", "UIN", "Policy Type"}

// Ensure Writer implements policydoc.PolicyWriter at compile time.
var _ policydoc.PolicyWriter = (*Writer)(nil)

// Writer writes policy tables to a file.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the file at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the file the writer writes to.
func (w *Writer) Path() string {
	return w.path
}

// WritePolicies writes the table, replacing any existing file.
func (w *Writer) WritePolicies(ctx context.Context, policies []*policydoc.Policy) (err error) {
	if len(policies) == 0 {
		return policydoc.Errorf(policydoc.EINVALID, "no data to save")
	}
	for _, p := range policies {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(w.path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return Encode(f, policies)
}

// Encode writes the header and one row per policy to out.
// Rows end in CRLF.
func Encode(out io.Writer, policies []*policydoc.Policy) error {
	cw := csv.NewWriter(out)
	cw.UseCRLF = true

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, p := range policies {
		if err := cw.Write([]string{p.Name, p.UIN, p.Type}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadPolicies parses a table produced by Encode. The returned policies
// have no SourceURL.
func ReadPolicies(r io.Reader) ([]*policydoc.Policy, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, policydoc.Errorf(policydoc.EINVALID, "missing header")
	} else if err != nil {
		return nil, policydoc.Errorf(policydoc.EINVALID, "reading header: %v", err)
	}
	if !slices.Equal(header, Header) {
		return nil, policydoc.Errorf(policydoc.EINVALID, "unexpected header %q", header)
	}

	var policies []*policydoc.Policy
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, policydoc.Errorf(policydoc.EINVALID, "reading row %d: %v", len(policies)+1, err)
		}
		policies = append(policies, &policydoc.Policy{
			Name: rec[0],
			UIN:  rec[1],
			Type: rec[2],
		})
	}
	return policies, nil
}

// ReadFile reads the table stored at path. It returns ENOTFOUND if the
// file does not exist.
func ReadFile(path string) ([]*policydoc.Policy, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, policydoc.Errorf(policydoc.ENOTFOUND, "%s not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	policies, err := ReadPolicies(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return policies, nil
}

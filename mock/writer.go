package mock

import (
	"context"
	"io"

	"github.com/fwojciec/policydoc"
)

var _ policydoc.PolicyWriter = (*PolicyWriter)(nil)

// PolicyWriter is a mock implementation of policydoc.PolicyWriter.
type PolicyWriter struct {
	WritePoliciesFn func(ctx context.Context, policies []*policydoc.Policy) error
}

func (w *PolicyWriter) WritePolicies(ctx context.Context, policies []*policydoc.Policy) error {
	return w.WritePoliciesFn(ctx, policies)
}

var _ policydoc.FileStore = (*FileStore)(nil)

// FileStore is a mock implementation of policydoc.FileStore.
type FileStore struct {
	EnsureFn func() (bool, error)
	CreateFn func(filename string) (io.WriteCloser, error)
}

func (s *FileStore) Ensure() (bool, error) {
	return s.EnsureFn()
}

func (s *FileStore) Create(filename string) (io.WriteCloser, error) {
	return s.CreateFn(filename)
}

package repository

import (
	"encoding/json"
	"errors"
	"testing"

	gfs "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

type stubIterator struct {
	err     error
	stopped bool
}

func (s *stubIterator) Next() (*gfs.DocumentSnapshot, error) { return nil, s.err }
func (s *stubIterator) Stop()                                { s.stopped = true }

func TestCollectDocsEmptyCollectionIsEmptySlice(t *testing.T) {
	it := &stubIterator{err: iterator.Done}
	customers, err := collectDocs(it, decodeCustomerDoc)
	require.NoError(t, err)
	assert.True(t, it.stopped)

	raw, err := json.Marshal(customers)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))

	orders, err := collectDocs(&stubIterator{err: iterator.Done}, decodeOrderDoc)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestCollectDocsReturnsIteratorError(t *testing.T) {
	boom := errors.New("unavailable")
	it := &stubIterator{err: boom}
	out, err := collectDocs(it, decodeOrderDoc)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
	assert.True(t, it.stopped)
}

//go:build unit

package errs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vending-server/internal/pkg/errs"
)

func TestNewKind(t *testing.T) {
	a := errs.NewKind("a", errs.ErrValidation)
	b := errs.NewKind("b", errs.ErrValidation)

	assert.True(t, errs.Is(a, errs.ErrValidation))
	assert.False(t, errs.Is(a, b))
	assert.False(t, errs.Is(a, errs.ErrStateConflict))
	assert.True(t, errs.Is(errs.Wrap(a, "context"), a))
}

func TestKind(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: errs.New("plain"), want: ""},
		{err: errs.Mark(errs.New("bad input"), errs.ErrValidation), want: "validation"},
		{err: errs.Wrap(errs.NewKind("stale", errs.ErrStateConflict), "purchase"), want: "state_conflict"},
		{err: errs.NewKind("full", errs.ErrResourceLimit), want: "resource_limit"},
		{err: errs.Mark(errs.New("db down"), errs.ErrPersistence), want: "persistence"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, errs.Kind(tc.err))
	}
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
	assert.Len(t, errs.ExtractStackLines(errs.New("boom"), 2), 2)
}

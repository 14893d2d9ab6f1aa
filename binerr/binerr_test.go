package binerr_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/DanielMehlber/BinarIO/binerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "kind only",
			err:  binerr.New(binerr.ErrEndOfData, "chunked.refill", "no bytes left to read"),
			want: "chunked.refill: no bytes left to read: end of data",
		},
		{
			name: "with cause",
			err:  binerr.Wrap(binerr.ErrOpenFailed, fs.ErrNotExist, "chunked.Open", "cannot open data.bin"),
			want: "chunked.Open: cannot open data.bin: open failed: file does not exist",
		},
		{
			name: "annotated twice",
			err: binerr.Annotate(
				binerr.Annotate(
					binerr.New(binerr.ErrEndOfData, "chunked.refill", "no bytes left to read"),
					"chunked.Pull", "cannot read next chunk"),
				"codec.Decode", "cannot pull byte 2 of 4"),
			want: "codec.Decode: cannot pull byte 2 of 4: chunked.Pull: cannot read next chunk: " +
				"chunked.refill: no bytes left to read: end of data",
		},
		{
			name: "empty origin",
			err:  binerr.New(binerr.ErrNotOpen, "", "push"),
			want: "push: no file open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAnnotate_KeepsKind(t *testing.T) {
	base := binerr.Wrap(binerr.ErrIOFailure, fs.ErrPermission, "chunked.flush", "cannot write chunk")
	err := binerr.Annotate(base, "chunked.Push", "cannot write next byte section")

	assert.ErrorIs(t, err, binerr.ErrIOFailure)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, binerr.ErrEndOfData)
	assert.Equal(t, binerr.ErrIOFailure, binerr.KindOf(err))

	// the annotated input is left untouched
	assert.Len(t, base.Context, 1)
}

func TestAnnotate_ForeignError(t *testing.T) {
	foreign := errors.New("boom")

	err := binerr.Annotate(foreign, "stream.Writer", "cannot write record 3")
	require.Error(t, err)
	assert.Equal(t, "stream.Writer: cannot write record 3: boom", err.Error())
	assert.ErrorIs(t, err, foreign)
	assert.Nil(t, binerr.KindOf(err))
}

func TestAnnotate_Nil(t *testing.T) {
	assert.NoError(t, binerr.Annotate(nil, "x", "y"))
}

func TestAnnotate_WrappedError(t *testing.T) {
	inner := binerr.New(binerr.ErrEndOfData, "chunked.Pull", "no bytes left")
	wrapped := fmt.Errorf("reading header: %w", inner)

	err := binerr.Annotate(wrapped, "cmd.read", "cannot decode sample")
	assert.ErrorIs(t, err, binerr.ErrEndOfData)
	assert.Equal(t, binerr.ErrEndOfData, binerr.KindOf(err))
	assert.Equal(t, []string{
		"cmd.read: cannot decode sample",
		"reading header",
		"chunked.Pull: no bytes left",
	}, binerr.Trace(err))
	assert.Equal(t, "cmd.read: cannot decode sample: reading header: chunked.Pull: no bytes left: end of data", err.Error())
}

func TestAnnotate_WrapperKeepsSentinel(t *testing.T) {
	errChecksum := errors.New("checksum mismatch")
	inner := binerr.New(binerr.ErrEndOfData, "chunked.Pull", "no bytes left")
	wrapped := fmt.Errorf("header: %w: %w", errChecksum, inner)

	err := binerr.Annotate(
		binerr.Annotate(wrapped, "codec.DecodeObject", "cannot deserialize *sample"),
		"stream.Reader", "cannot read record 1")

	assert.ErrorIs(t, err, errChecksum)
	assert.ErrorIs(t, err, binerr.ErrEndOfData)
	assert.Equal(t, []string{
		"stream.Reader: cannot read record 1",
		"codec.DecodeObject: cannot deserialize *sample",
		"header: checksum mismatch",
		"chunked.Pull: no bytes left",
	}, binerr.Trace(err))
}

func TestTrace(t *testing.T) {
	err := binerr.Annotate(
		binerr.New(binerr.ErrNotOpen, "chunked.Pull", "buffer has no file"),
		"codec.DecodeString", "cannot pull length")

	assert.Equal(t, []string{
		"codec.DecodeString: cannot pull length",
		"chunked.Pull: buffer has no file",
	}, binerr.Trace(err))

	assert.Nil(t, binerr.Trace(nil))
	assert.Equal(t, []string{"plain"}, binerr.Trace(errors.New("plain")))
}

func TestFormat(t *testing.T) {
	err := binerr.Wrap(binerr.ErrIOFailure, errors.New("disk full"), "chunked.flush", "cannot write chunk")

	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))

	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "chunked.flush: cannot write chunk: i/o failure: disk full")
	assert.Greater(t, len(verbose), len(err.Error()), "stack trace missing")
}

func TestFormat_OtherVerbs(t *testing.T) {
	err := binerr.New(binerr.ErrNotOpen, "chunked.Push", "buffer is not bound to a file")

	for _, verb := range []string{"%d", "%x", "%t"} {
		assert.Equal(t, err.Error(), fmt.Sprintf(verb, err), verb)
	}
	assert.Equal(t, `"`+err.Error()+`"`, fmt.Sprintf("%q", err))
}

package stream_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/DanielMehlber/BinarIO/binerr"
	"github.com/DanielMehlber/BinarIO/chunked"
	"github.com/DanielMehlber/BinarIO/codec"
	"github.com/DanielMehlber/BinarIO/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	ID    string
	Value float64
	Tags  []uint16
}

func (e *event) Serialize(w codec.Writer) error {
	if err := codec.EncodeString(w, e.ID); err != nil {
		return err
	}
	if err := codec.Encode(w, e.Value); err != nil {
		return err
	}
	return codec.EncodeSlice(w, e.Tags)
}

func (e *event) Deserialize(r codec.Reader) error {
	var err error
	if e.ID, err = codec.DecodeString(r); err != nil {
		return err
	}
	if e.Value, err = codec.Decode[float64](r); err != nil {
		return err
	}
	e.Tags, err = codec.DecodeSlice[uint16](r)
	return err
}

var events = []*event{
	{ID: "first", Value: 1.5, Tags: []uint16{1}},
	{ID: "", Value: -2, Tags: []uint16{}},
	{ID: "third", Value: 1e9, Tags: []uint16{7, 8, 9}},
}

func values(evs []*event) []event {
	out := make([]event, len(evs))
	for i, e := range evs {
		out[i] = *e
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	for _, capacity := range []int{1, 7, 64, chunked.DefaultCapacity} {
		path := filepath.Join(t.TempDir(), "events.bin")

		require.NoError(t, stream.WriteFile(path, events, chunked.WithCapacity(capacity)))

		got, err := stream.ReadFile[event](path, chunked.WithCapacity(capacity))
		require.NoError(t, err)
		assert.Equal(t, values(events), got, "capacity %d", capacity)
	}
}

func TestWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.bin")

	w, err := stream.Create[*event](path)
	require.NoError(t, err)

	for _, e := range events {
		require.NoError(t, w.Write(e))
	}
	assert.Equal(t, 3, w.Count())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	err = w.Write(events[0])
	assert.ErrorIs(t, err, binerr.ErrNotOpen)
	assert.Equal(t, 3, w.Count())
}

func TestReader_Next(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.bin")
	require.NoError(t, stream.WriteFile(path, events[:2]))

	r, err := stream.Open[event](path)
	require.NoError(t, err)
	defer r.Close()

	first, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "first", first.ID)

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, -2.0, second.Value)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, r.Count())
}

func TestReader_NextAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.bin")
	require.NoError(t, stream.WriteFile(path, events))

	r, err := stream.Open[event](path)
	require.NoError(t, err)

	_, err = r.Next()
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err = r.Next()
	assert.ErrorIs(t, err, binerr.ErrNotOpen)
	assert.NotErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, r.Count())

	for _, err := range r.All() {
		assert.ErrorIs(t, err, binerr.ErrNotOpen)
	}
}

func TestReader_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, stream.WriteFile[*event](path, nil))

	got, err := stream.ReadFile[event](path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReader_Truncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.bin")
	require.NoError(t, stream.WriteFile(path, events))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.Truncate(path, info.Size()-3))

	got, err := stream.ReadFile[event](path)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, binerr.ErrEndOfData)
	assert.Equal(t, "stream.Reader: cannot read record 3", binerr.Trace(err)[0])
}

func TestReader_AllStopsEarly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.bin")
	require.NoError(t, stream.WriteFile(path, events))

	r, err := stream.Open[event](path)
	require.NoError(t, err)
	defer r.Close()

	var ids []string
	for e, err := range r.All() {
		require.NoError(t, err)
		ids = append(ids, e.ID)
		if len(ids) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"first", ""}, ids)

	rest, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "third", rest.ID)
}

func TestCreate_MissingDirectory(t *testing.T) {
	_, err := stream.Create[*event](filepath.Join(t.TempDir(), "no", "such", "dir.bin"))
	assert.ErrorIs(t, err, binerr.ErrOpenFailed)
	assert.Equal(t, "stream.Create: cannot open record file", binerr.Trace(err)[0])
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := stream.Open[event](filepath.Join(t.TempDir(), "missing.bin"))
	assert.ErrorIs(t, err, binerr.ErrOpenFailed)
}

// closeFailer is a sink whose Close fails.
type closeFailer struct {
	pushed int
}

func (c *closeFailer) Push(byte) error {
	c.pushed++
	return nil
}

func (c *closeFailer) Close() error {
	return errors.New("close failed")
}

func TestWriter_CloseError(t *testing.T) {
	sink := &closeFailer{}
	w := stream.NewWriter[*event](sink)
	require.NoError(t, w.Write(events[0]))
	assert.Equal(t, 8+5+8+8+2, sink.pushed)

	err := w.Close()
	assert.EqualError(t, err, "stream.Writer: cannot close record file: close failed")
}

// Package sample holds the demo record written and read by the binario
// command.
package sample

import (
	"bytes"
	"fmt"

	"github.com/DanielMehlber/BinarIO/binerr"
	"github.com/DanielMehlber/BinarIO/codec"
	"github.com/google/uuid"
)

// Text is the zero-terminated greeting stored in every generated sample.
var Text = []byte("Hallo\x00")

// Sample combines each kind of value the codec handles: a fixed-size value
// (the ID), two scalars, a byte array and a float array.
type Sample struct {
	ID   uuid.UUID
	A    int32
	B    float32
	Text []byte
	Arr  []float64
}

// New builds the sample with sequence number seq.
func New(seq int32, id uuid.UUID) *Sample {
	arr := make([]float64, 5)
	for i := range arr {
		arr[i] = float64(seq) + float64(i+1)
	}
	return &Sample{
		ID:   id,
		A:    seq,
		B:    float32(seq) / 2,
		Text: bytes.Clone(Text),
		Arr:  arr,
	}
}

func (s *Sample) Serialize(w codec.Writer) error {
	if err := codec.EncodeValue(w, s.ID); err != nil {
		return binerr.Annotate(err, "Sample.Serialize", "cannot write id")
	}
	if err := codec.Encode(w, s.A); err != nil {
		return binerr.Annotate(err, "Sample.Serialize", "cannot write a")
	}
	if err := codec.Encode(w, s.B); err != nil {
		return binerr.Annotate(err, "Sample.Serialize", "cannot write b")
	}
	if err := codec.EncodeBytes(w, s.Text); err != nil {
		return binerr.Annotate(err, "Sample.Serialize", "cannot write text")
	}
	if err := codec.EncodeSlice(w, s.Arr); err != nil {
		return binerr.Annotate(err, "Sample.Serialize", "cannot write arr")
	}
	return nil
}

func (s *Sample) Deserialize(r codec.Reader) error {
	var err error
	if err = codec.DecodeValue(r, &s.ID); err != nil {
		return binerr.Annotate(err, "Sample.Deserialize", "cannot read id")
	}
	if s.A, err = codec.Decode[int32](r); err != nil {
		return binerr.Annotate(err, "Sample.Deserialize", "cannot read a")
	}
	if s.B, err = codec.Decode[float32](r); err != nil {
		return binerr.Annotate(err, "Sample.Deserialize", "cannot read b")
	}
	if s.Text, err = codec.DecodeBytes(r); err != nil {
		return binerr.Annotate(err, "Sample.Deserialize", "cannot read text")
	}
	if s.Arr, err = codec.DecodeSlice[float64](r); err != nil {
		return binerr.Annotate(err, "Sample.Deserialize", "cannot read arr")
	}
	return nil
}

// Size returns the number of bytes Serialize writes.
func (s *Sample) Size() int64 {
	return int64(len(s.ID)) +
		codec.SizeOf[int32]() +
		codec.SizeOf[float32]() +
		codec.SliceSize[byte](len(s.Text)) +
		codec.SliceSize[float64](len(s.Arr))
}

func (s *Sample) String() string {
	return fmt.Sprintf("%s a=%d b=%g text=%q arr=%v",
		s.ID, s.A, s.B, bytes.TrimRight(s.Text, "\x00"), s.Arr)
}

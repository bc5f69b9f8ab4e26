package overlay_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Project-PenguinOS/frameworks-base/overlay"
	"github.com/Project-PenguinOS/frameworks-base/parcel"
)

func TestTableLifecycle(t *testing.T) {
	tab := overlay.NewTable()

	h := tab.Add(sampleProperties())
	if h == 0 {
		t.Fatal("Add() returned the zero handle")
	}
	if tab.Get(h) == nil {
		t.Fatal("Get() of a live handle returned nil")
	}
	if got, want := tab.Len(), 1; got != want {
		t.Errorf("Len() got %d, want %d", got, want)
	}

	tab.Destroy(h)
	if tab.Get(h) != nil {
		t.Error("Get() of a destroyed handle returned a descriptor")
	}
	if got, want := tab.Len(), 0; got != want {
		t.Errorf("Len() got %d, want %d", got, want)
	}
	// Double destroy is harmless.
	tab.Destroy(h)

	if tab.Add(nil) != 0 {
		t.Error("Add(nil) returned a live handle")
	}
}

func TestTableQueries(t *testing.T) {
	tab := overlay.NewTable()
	h := tab.Add(sampleProperties())

	if !tab.SupportsFP16ForHDR(h) {
		t.Error("SupportsFP16ForHDR() got false for a supporting descriptor")
	}
	if !tab.SupportsMixedColorSpaces(h) {
		t.Error("SupportsMixedColorSpaces() got false for a flagged descriptor")
	}

	// The zero handle and destroyed handles report no capability.
	if tab.SupportsFP16ForHDR(0) || tab.SupportsMixedColorSpaces(0) {
		t.Error("zero handle reports capability")
	}
	tab.Destroy(h)
	if tab.SupportsFP16ForHDR(h) || tab.SupportsMixedColorSpaces(h) {
		t.Error("destroyed handle reports capability")
	}
}

func TestTableParcelRoundTrip(t *testing.T) {
	producer := overlay.NewTable()
	consumer := overlay.NewTable()
	want := sampleProperties()

	h := producer.Add(want)
	enc := parcel.Encoder{Order: parcel.LittleEndian}
	producer.WriteParcel(h, &enc)

	dec := parcel.Decoder{Order: parcel.LittleEndian, In: bytes.NewReader(enc.Out)}
	h2, err := consumer.ReadParcel(&dec)
	if err != nil {
		t.Fatalf("ReadParcel() got err: %v", err)
	}
	if diff := cmp.Diff(consumer.Get(h2), want); diff != "" {
		t.Errorf("transported descriptor differs (-got+want):\n%s", diff)
	}

	// The two sides own independent copies.
	producer.Destroy(h)
	if consumer.Get(h2) == nil {
		t.Error("destroying the producer's copy destroyed the consumer's")
	}
}

func TestTableWriteParcelZeroHandle(t *testing.T) {
	tab := overlay.NewTable()
	enc := parcel.Encoder{Order: parcel.LittleEndian}
	tab.WriteParcel(0, &enc)
	if len(enc.Out) != 0 {
		t.Errorf("zero handle wrote % x", enc.Out)
	}
}

func TestTableReadParcelFailure(t *testing.T) {
	tab := overlay.NewTable()
	dec := parcel.Decoder{Order: parcel.LittleEndian, In: bytes.NewReader([]byte{0x01})}
	h, err := tab.ReadParcel(&dec)
	if err == nil {
		t.Fatal("ReadParcel() of a truncated stream unexpectedly succeeded")
	}
	if h != 0 {
		t.Errorf("failed ReadParcel() returned handle %d", h)
	}
	if tab.Len() != 0 {
		t.Error("failed ReadParcel() registered a descriptor")
	}
}

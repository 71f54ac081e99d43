package glb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestMagic(t *testing.T) {
	expected := []byte{'g', 'l', 'T', 'F'}
	if !bytes.Equal(Magic, expected) {
		t.Errorf("Magic mismatch: got %v, expected %v", Magic, expected)
	}
}

func TestReadNotGLB(t *testing.T) {
	_, err := Read([]byte(`{"asset":{"version":"2.0"}}`))
	if err != ErrNotGLB {
		t.Errorf("expected ErrNotGLB, got %v", err)
	}
}

func TestReadUnsupportedVersion(t *testing.T) {
	data := Write([]byte("{}"), nil)
	binary.LittleEndian.PutUint32(data[4:8], 1)

	_, err := Read(data)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	jsonDoc := []byte(`{"asset":{"version":"2.0"}}`)
	bin := []byte{1, 2, 3, 4, 5}

	data := Write(jsonDoc, bin)
	if len(data)%4 != 0 {
		t.Fatalf("container length %d is not 4-byte aligned", len(data))
	}

	f, err := Read(data)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if f.Version != 2 {
		t.Errorf("expected version 2, got %d", f.Version)
	}
	if int(f.Length) != len(data) {
		t.Errorf("expected length %d, got %d", len(data), f.Length)
	}
	if !bytes.Equal(bytes.TrimRight(f.JSON, " "), jsonDoc) {
		t.Errorf("JSON mismatch: %q", f.JSON)
	}
	// BIN keeps its zero padding.
	if !bytes.Equal(f.BIN, []byte{1, 2, 3, 4, 5, 0, 0, 0}) {
		t.Errorf("BIN mismatch: %v", f.BIN)
	}
}

func TestReadWithoutBIN(t *testing.T) {
	f, err := Read(Write([]byte(`{}`), nil))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if f.BIN != nil {
		t.Errorf("expected no BIN chunk, got %d bytes", len(f.BIN))
	}
}

func TestReadTruncated(t *testing.T) {
	data := Write([]byte(`{"asset":{}}`), make([]byte, 16))

	tests := []struct {
		name string
		data []byte
	}{
		{"declared length beyond data", data[:len(data)-4]},
		{"header only", data[:12]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestReadChunkOverrun(t *testing.T) {
	data := Write([]byte(`{}`), []byte{1, 2, 3, 4})
	// Claim the BIN chunk is larger than the container.
	binHeader := 12 + 8 + 4
	binary.LittleEndian.PutUint32(data[binHeader:], 64)

	_, err := Read(data)
	if !errors.Is(err, ErrInvalidChunk) {
		t.Errorf("expected ErrInvalidChunk, got %v", err)
	}
}

func TestReadFirstChunkMustBeJSON(t *testing.T) {
	data := Write([]byte(`{}`), nil)
	binary.LittleEndian.PutUint32(data[16:20], ChunkBIN)

	_, err := Read(data)
	if !errors.Is(err, ErrInvalidChunk) {
		t.Errorf("expected ErrInvalidChunk, got %v", err)
	}
}

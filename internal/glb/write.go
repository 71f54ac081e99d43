package glb

import "github.com/robert-malhotra/go-gltf/internal/binary"

// Write assembles a GLB container from a JSON document and an optional
// binary chunk. JSON is padded with spaces and BIN with zeros to 4-byte
// boundaries.
func Write(jsonDoc, bin []byte) []byte {
	jsonLen := align4(len(jsonDoc))
	total := headerSize + chunkHeaderSize + jsonLen
	if bin != nil {
		total += chunkHeaderSize + align4(len(bin))
	}

	w := binary.NewWriter(total)
	w.WriteBytes(Magic)
	w.WriteUint32(Version)
	w.WriteUint32(uint32(total))

	w.WriteUint32(uint32(jsonLen))
	w.WriteUint32(ChunkJSON)
	w.WriteBytes(jsonDoc)
	for i := len(jsonDoc); i < jsonLen; i++ {
		w.WriteUint8(' ')
	}

	if bin != nil {
		w.WriteUint32(uint32(align4(len(bin))))
		w.WriteUint32(ChunkBIN)
		w.WriteBytes(bin)
		w.Align(4)
	}

	return w.Bytes()
}

func align4(n int) int {
	return (n + 3) &^ 3
}

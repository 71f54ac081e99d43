package gltf

import "encoding/json"

// Wire structures of the glTF 2.0 JSON schema. Only the parts this package
// exposes are decoded; unknown properties are ignored.

type documentJSON struct {
	Asset       assetJSON       `json:"asset"`
	Buffers     []bufferJSON    `json:"buffers"`
	BufferViews []viewJSON      `json:"bufferViews"`
	Accessors   []accessorJSON  `json:"accessors"`
	Cameras     []cameraJSON    `json:"cameras"`
	Skins       []skinJSON      `json:"skins"`
	Samplers    []samplerJSON   `json:"samplers"`
	Textures    []textureJSON   `json:"textures"`
	Extras      json.RawMessage `json:"extras,omitempty"`
}

type assetJSON struct {
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Copyright  string `json:"copyright,omitempty"`
}

type bufferJSON struct {
	Name       string `json:"name,omitempty"`
	URI        string `json:"uri,omitempty"`
	ByteLength int    `json:"byteLength"`
}

type viewJSON struct {
	Name       string `json:"name,omitempty"`
	Buffer     int    `json:"buffer"`
	ByteOffset int    `json:"byteOffset,omitempty"`
	ByteLength int    `json:"byteLength"`
	ByteStride int    `json:"byteStride,omitempty"`
	Target     int    `json:"target,omitempty"`
}

type accessorJSON struct {
	Name          string      `json:"name,omitempty"`
	BufferView    *int        `json:"bufferView,omitempty"`
	ByteOffset    int         `json:"byteOffset,omitempty"`
	ComponentType uint32      `json:"componentType"`
	Normalized    bool        `json:"normalized,omitempty"`
	Count         int         `json:"count"`
	Type          string      `json:"type"`
	Min           []float64   `json:"min,omitempty"`
	Max           []float64   `json:"max,omitempty"`
	Sparse        *sparseJSON `json:"sparse,omitempty"`
}

type sparseJSON struct {
	Count   int               `json:"count"`
	Indices sparseIndicesJSON `json:"indices"`
	Values  sparseValuesJSON  `json:"values"`
}

type sparseIndicesJSON struct {
	BufferView    int    `json:"bufferView"`
	ByteOffset    int    `json:"byteOffset,omitempty"`
	ComponentType uint32 `json:"componentType"`
}

type sparseValuesJSON struct {
	BufferView int `json:"bufferView"`
	ByteOffset int `json:"byteOffset,omitempty"`
}

type cameraJSON struct {
	Name         string            `json:"name,omitempty"`
	Type         string            `json:"type"`
	Orthographic *orthographicJSON `json:"orthographic,omitempty"`
	Perspective  *perspectiveJSON  `json:"perspective,omitempty"`
	Extras       json.RawMessage   `json:"extras,omitempty"`
}

type orthographicJSON struct {
	XMag  float32 `json:"xmag"`
	YMag  float32 `json:"ymag"`
	ZFar  float32 `json:"zfar"`
	ZNear float32 `json:"znear"`
}

type perspectiveJSON struct {
	AspectRatio *float32 `json:"aspectRatio,omitempty"`
	YFov        float32  `json:"yfov"`
	ZFar        *float32 `json:"zfar,omitempty"`
	ZNear       float32  `json:"znear"`
}

type skinJSON struct {
	Name                string `json:"name,omitempty"`
	InverseBindMatrices *int   `json:"inverseBindMatrices,omitempty"`
	Skeleton            *int   `json:"skeleton,omitempty"`
	Joints              []int  `json:"joints"`
}

type samplerJSON struct {
	Name      string `json:"name,omitempty"`
	MagFilter int    `json:"magFilter,omitempty"`
	MinFilter int    `json:"minFilter,omitempty"`
	WrapS     int    `json:"wrapS,omitempty"`
	WrapT     int    `json:"wrapT,omitempty"`
}

type textureJSON struct {
	Name    string `json:"name,omitempty"`
	Sampler *int   `json:"sampler,omitempty"`
	Source  *int   `json:"source,omitempty"`
}

package gltf

import "encoding/json"

const (
	cameraPerspective  = "perspective"
	cameraOrthographic = "orthographic"
)

// Camera is a handle to a camera of a document.
type Camera struct {
	doc   *Document
	index int
}

func (c Camera) rec() *cameraJSON {
	return &c.doc.cameras[c.index]
}

// Index returns the camera's position in the document.
func (c Camera) Index() int {
	return c.index
}

// Name returns the optional user-defined name.
func (c Camera) Name() string {
	return c.rec().Name
}

// Extras returns the raw application specific data, if any.
func (c Camera) Extras() json.RawMessage {
	return c.rec().Extras
}

// Projection returns the camera's projection, either Orthographic or
// Perspective.
func (c Camera) Projection() Projection {
	r := c.rec()
	if r.Type == cameraOrthographic {
		return Orthographic{
			XMag:  r.Orthographic.XMag,
			YMag:  r.Orthographic.YMag,
			ZFar:  r.Orthographic.ZFar,
			ZNear: r.Orthographic.ZNear,
		}
	}
	p := Perspective{YFov: r.Perspective.YFov, ZNear: r.Perspective.ZNear}
	if r.Perspective.AspectRatio != nil {
		p.AspectRatio = *r.Perspective.AspectRatio
	}
	if r.Perspective.ZFar != nil {
		p.ZFar = *r.Perspective.ZFar
	}
	return p
}

// Projection is implemented by Orthographic and Perspective.
type Projection interface {
	projection()
}

// Orthographic describes an orthographic projection.
type Orthographic struct {
	XMag, YMag  float32
	ZFar, ZNear float32
}

// Perspective describes a perspective projection. A zero AspectRatio means
// the viewport's ratio is used; a zero ZFar means an infinite projection.
type Perspective struct {
	AspectRatio float32
	YFov        float32
	ZFar        float32
	ZNear       float32
}

func (Orthographic) projection() {}
func (Perspective) projection()  {}

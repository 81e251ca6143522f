package main

import (
	"errors"
	"math"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

var errNoPoint = errors.New("no point")

// fitMatrix maps the bounding box of the cloud into [-0.5, 0.5] keeping the
// aspect ratio.
func fitMatrix(pp *pc.PointCloud) (mat.Mat4, error) {
	if pp.Points == 0 {
		return mat.Mat4{}, errNoPoint
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return mat.Mat4{}, err
	}
	if !it.IsValid() {
		return mat.Mat4{}, errNoPoint
	}
	min := mat.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := mat.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		for i := range v {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}

	var extent float32
	for i := range min {
		if d := max[i] - min[i]; d > extent {
			extent = d
		}
	}
	s := float32(1)
	if extent > 0 {
		s = 1 / extent
	}
	c := min.Add(max).Mul(0.5)
	return mat.Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}.Mul(mat.Translate(-c[0], -c[1], -c[2])), nil
}

// viewMatrix rotates around z by yaw and tilts the cloud by pitch.
func viewMatrix(yaw, pitch float32) mat.Mat4 {
	sy, cy := float32(math.Sin(float64(yaw))), float32(math.Cos(float64(yaw)))
	sp, cp := float32(math.Sin(float64(pitch))), float32(math.Cos(float64(pitch)))
	rotX := mat.Mat4{
		1, 0, 0, 0,
		0, cp, sp, 0,
		0, -sp, cp, 0,
		0, 0, 0, 1,
	}
	rotZ := mat.Mat4{
		cy, sy, 0, 0,
		-sy, cy, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return rotX.Mul(rotZ)
}

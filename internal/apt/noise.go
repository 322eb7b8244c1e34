package apt

import "math"

// 3D simplex noise, generalized from the pack's 2D permutation-table
// implementation (other_examples/.../simplexnoise-simplexnoise.go.go:
// perm table, grad, fastFloor) to three dimensions using the
// standard Gustavson gradient-table extension, and further composed
// into the FBM/Ridge/Turbulence/Cell1/Cell2 node family from
// spec.md's noise op catalog.

var perm = [512]uint8{}

// basePerm is the same jumble used by the pack's 2D reference
// implementation; duplicated to 512 entries here to avoid the
// wrap-at-256 index arithmetic the 2D version relied on.
var basePerm = [256]uint8{
	151, 160, 137, 91, 90, 15,
	131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23,
	190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
	88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166,
	77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244,
	102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196,
	135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250, 124, 123,
	5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
	223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228,
	251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
	138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

func init() {
	for i := 0; i < 512; i++ {
		perm[i] = basePerm[i&255]
	}
}

// grad3 is the standard 12-direction 3D gradient set used by
// Gustavson's simplex noise.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

func dot3(g [3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}

func fastFloor(x float64) int {
	ix := int(x)
	if float64(ix) <= x {
		return ix
	}
	return ix - 1
}

// simplex3 returns 3D simplex noise in roughly [-1,1] at (x,y,z).
func simplex3(x, y, z float64) float64 {
	const F3 = 1.0 / 3.0
	const G3 = 1.0 / 6.0

	s := (x + y + z) * F3
	i := fastFloor(x + s)
	j := fastFloor(y + s)
	k := fastFloor(z + s)

	t := float64(i+j+k) * G3
	X0 := float64(i) - t
	Y0 := float64(j) - t
	Z0 := float64(k) - t
	x0 := x - X0
	y0 := y - Y0
	z0 := z - Z0

	var i1, j1, k1 int
	var i2, j2, k2 int
	if x0 >= y0 {
		if y0 >= z0 {
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 1, 0
		} else if x0 >= z0 {
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 0, 1
		} else {
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 1, 0, 1
		}
	} else {
		if y0 < z0 {
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 0, 1, 1
		} else if x0 < z0 {
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 0, 1, 1
		} else {
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + G3
	y1 := y0 - float64(j1) + G3
	z1 := z0 - float64(k1) + G3
	x2 := x0 - float64(i2) + 2*G3
	y2 := y0 - float64(j2) + 2*G3
	z2 := z0 - float64(k2) + 2*G3
	x3 := x0 - 1 + 3*G3
	y3 := y0 - 1 + 3*G3
	z3 := z0 - 1 + 3*G3

	ii := i & 255
	jj := j & 255
	kk := k & 255

	gi0 := perm[ii+int(perm[jj+int(perm[kk])])] % 12
	gi1 := perm[ii+i1+int(perm[jj+j1+int(perm[kk+k1])])] % 12
	gi2 := perm[ii+i2+int(perm[jj+j2+int(perm[kk+k2])])] % 12
	gi3 := perm[ii+1+int(perm[jj+1+int(perm[kk+1])])] % 12

	var n0, n1, n2, n3 float64

	t0 := 0.6 - x0*x0 - y0*y0 - z0*z0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * dot3(grad3[gi0], x0, y0, z0)
	}
	t1 := 0.6 - x1*x1 - y1*y1 - z1*z1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * dot3(grad3[gi1], x1, y1, z1)
	}
	t2 := 0.6 - x2*x2 - y2*y2 - z2*z2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * dot3(grad3[gi2], x2, y2, z2)
	}
	t3 := 0.6 - x3*x3 - y3*y3 - z3*z3
	if t3 >= 0 {
		t3 *= t3
		n3 = t3 * t3 * dot3(grad3[gi3], x3, y3, z3)
	}

	// Scaled to fit roughly into [-1,1], matching the normalization
	// the 2D reference applies implicitly via its gradient magnitude.
	return 32 * (n0 + n1 + n2 + n3)
}

const (
	noiseFrequency  = 1.5
	noiseLacunarity = 2.0
	noiseGain       = 0.5
	noiseOctaves    = 4
)

// FBM is fractal brownian motion: a sum of octaves of simplex noise
// at increasing frequency and decreasing amplitude, generalized from
// the pack's fbm2 to three dimensions.
func FBM(x, y, z float64) float64 {
	sum := 0.0
	amp := 1.0
	freq := noiseFrequency
	norm := 0.0
	for o := 0; o < noiseOctaves; o++ {
		sum += simplex3(x*freq, y*freq, z*freq) * amp
		norm += amp
		amp *= noiseGain
		freq *= noiseLacunarity
	}
	return Clamp(sum / norm)
}

// Ridge turns each octave's noise into a ridge by reflecting around
// zero and squaring, a common FBM variant.
func Ridge(x, y, z float64) float64 {
	sum := 0.0
	amp := 1.0
	freq := noiseFrequency
	norm := 0.0
	for o := 0; o < noiseOctaves; o++ {
		n := 1.0 - math.Abs(simplex3(x*freq, y*freq, z*freq))
		n = n * n
		sum += n * amp
		norm += amp
		amp *= noiseGain
		freq *= noiseLacunarity
	}
	v := sum/norm*2 - 1
	return Clamp(v)
}

// Turbulence sums the absolute value of each octave, generalized
// from the pack's turbulence() to three dimensions.
func Turbulence(x, y, z float64) float64 {
	sum := 0.0
	amp := 1.0
	freq := noiseFrequency
	norm := 0.0
	for o := 0; o < noiseOctaves; o++ {
		sum += math.Abs(simplex3(x*freq, y*freq, z*freq)) * amp
		norm += amp
		amp *= noiseGain
		freq *= noiseLacunarity
	}
	v := sum/norm*2 - 1
	return Clamp(v)
}

// cellHash derives a pseudo-random 3D offset for grid cell (i,j,k)
// from the shared permutation table, used to jitter feature points
// for the cellular/Worley noise variants.
func cellHash(i, j, k int) (dx, dy, dz float64) {
	ii, jj, kk := i&255, j&255, k&255
	h := perm[ii+int(perm[jj+int(perm[kk])])]
	dx = float64(h) / 255.0
	h = perm[(ii+1)&255+int(perm[jj+int(perm[kk])])]
	dy = float64(h) / 255.0
	h = perm[ii+int(perm[(jj+1)&255+int(perm[kk])])]
	dz = float64(h) / 255.0
	return
}

// cellularDistances returns the two smallest feature-point distances
// to (x,y,z) among its 3x3x3 neighborhood of jittered grid points,
// the standard Worley-noise evaluation.
func cellularDistances(x, y, z float64) (d1, d2 float64) {
	ix, iy, iz := fastFloor(x), fastFloor(y), fastFloor(z)
	d1, d2 = math.MaxFloat64, math.MaxFloat64
	for dk := -1; dk <= 1; dk++ {
		for dj := -1; dj <= 1; dj++ {
			for di := -1; di <= 1; di++ {
				cx, cy, cz := ix+di, iy+dj, iz+dk
				jx, jy, jz := cellHash(cx, cy, cz)
				px := float64(cx) + jx
				py := float64(cy) + jy
				pz := float64(cz) + jz
				ddx, ddy, ddz := px-x, py-y, pz-z
				d := math.Sqrt(ddx*ddx + ddy*ddy + ddz*ddz)
				if d < d1 {
					d2 = d1
					d1 = d
				} else if d < d2 {
					d2 = d
				}
			}
		}
	}
	return
}

// Cell1 is the nearest feature-point distance, normalized into
// [-1,1].
func Cell1(x, y, z float64) float64 {
	d1, _ := cellularDistances(x, y, z)
	return Clamp(d1*2 - 1)
}

// Cell2 is the gap between the first and second nearest feature
// points, normalized into [-1,1]; this is the classic "cracked
// cells" Worley variant.
func Cell2(x, y, z float64) float64 {
	d1, d2 := cellularDistances(x, y, z)
	return Clamp((d2-d1)*2 - 1)
}

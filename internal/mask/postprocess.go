package mask

import (
	"github.com/facemask/facemask/pkg/tensor"
)

// PostProcess controls optional cleanup steps for learned masks.
// All steps are off by default. When any step is active, the mask is
// binarized at 0.5 and written back with hard 0 and 1 values.
type PostProcess struct {
	LargestSegment bool `json:"largest-segment" yaml:"largest-segment"`
	SmoothContours bool `json:"smooth-contours" yaml:"smooth-contours"`
	FillHoles      bool `json:"fill-holes" yaml:"fill-holes"`
}

// Enabled reports whether any cleanup step is active.
func (p PostProcess) Enabled() bool {
	return p.LargestSegment || p.SmoothContours || p.FillHoles
}

// Apply runs the active cleanup steps on each image of a single channel batch.
func (p PostProcess) Apply(t *tensor.Tensor) {
	if !p.Enabled() {
		return
	}

	n, h, w, c := t.Dims()

	if c != 1 || h == 0 || w == 0 {
		return
	}

	for i := 0; i < n; i++ {
		img := t.Image(i)

		grid := binarize(img)

		if p.LargestSegment {
			keepLargestSegment(grid, h, w)
		}

		if p.SmoothContours {
			grid = morphOpen(grid, h, w, 5, 2)
			grid = morphClose(grid, h, w, 5, 2)
		}

		if p.FillHoles {
			fillHoles(grid, h, w)
		}

		for j, set := range grid {
			if set {
				img[j] = 1
			} else {
				img[j] = 0
			}
		}
	}
}

// binarize thresholds a mask plane at 0.5.
func binarize(img []float32) []bool {
	grid := make([]bool, len(img))

	for i, v := range img {
		grid[i] = v >= 0.5
	}

	return grid
}

// keepLargestSegment removes all 4-connected foreground segments except the largest.
func keepLargestSegment(grid []bool, h, w int) {
	labels := make([]int, len(grid))
	sizes := []int{0}

	next := 1
	queue := make([]int, 0, len(grid))

	for start := range grid {
		if !grid[start] || labels[start] != 0 {
			continue
		}

		labels[start] = next
		queue = append(queue[:0], start)
		size := 0

		for len(queue) > 0 {
			idx := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			size++

			y, x := idx/w, idx%w

			for _, nb := range [4][2]int{{y - 1, x}, {y + 1, x}, {y, x - 1}, {y, x + 1}} {
				ny, nx := nb[0], nb[1]

				if ny < 0 || ny >= h || nx < 0 || nx >= w {
					continue
				}

				nidx := ny*w + nx

				if grid[nidx] && labels[nidx] == 0 {
					labels[nidx] = next
					queue = append(queue, nidx)
				}
			}
		}

		sizes = append(sizes, size)
		next++
	}

	// Nothing to remove with less than two segments.
	if next <= 2 {
		return
	}

	largest := 1

	for label := 2; label < next; label++ {
		if sizes[label] > sizes[largest] {
			largest = label
		}
	}

	for i := range grid {
		if grid[i] && labels[i] != largest {
			grid[i] = false
		}
	}
}

// erode clears foreground pixels whose size x size window is not fully set.
func erode(grid []bool, h, w, size int) []bool {
	radius := size / 2
	result := make([]bool, len(grid))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			keep := grid[y*w+x]

			for dy := -radius; keep && dy <= radius; dy++ {
				for dx := -radius; keep && dx <= radius; dx++ {
					ny, nx := y+dy, x+dx

					if ny < 0 || ny >= h || nx < 0 || nx >= w {
						continue
					}

					if !grid[ny*w+nx] {
						keep = false
					}
				}
			}

			result[y*w+x] = keep
		}
	}

	return result
}

// dilate sets pixels that have any foreground in their size x size window.
func dilate(grid []bool, h, w, size int) []bool {
	radius := size / 2
	result := make([]bool, len(grid))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var hit bool

			for dy := -radius; !hit && dy <= radius; dy++ {
				for dx := -radius; !hit && dx <= radius; dx++ {
					ny, nx := y+dy, x+dx

					if ny < 0 || ny >= h || nx < 0 || nx >= w {
						continue
					}

					if grid[ny*w+nx] {
						hit = true
					}
				}
			}

			result[y*w+x] = hit
		}
	}

	return result
}

// morphOpen erodes then dilates, removing specks smaller than the kernel.
func morphOpen(grid []bool, h, w, size, iterations int) []bool {
	for i := 0; i < iterations; i++ {
		grid = erode(grid, h, w, size)
	}

	for i := 0; i < iterations; i++ {
		grid = dilate(grid, h, w, size)
	}

	return grid
}

// morphClose dilates then erodes, closing gaps smaller than the kernel.
func morphClose(grid []bool, h, w, size, iterations int) []bool {
	for i := 0; i < iterations; i++ {
		grid = dilate(grid, h, w, size)
	}

	for i := 0; i < iterations; i++ {
		grid = erode(grid, h, w, size)
	}

	return grid
}

// fillHoles turns background regions that do not touch the border into foreground.
func fillHoles(grid []bool, h, w int) {
	outside := make([]bool, len(grid))
	queue := make([]int, 0, 2*(h+w))

	visit := func(idx int) {
		if !grid[idx] && !outside[idx] {
			outside[idx] = true
			queue = append(queue, idx)
		}
	}

	for x := 0; x < w; x++ {
		visit(x)
		visit((h-1)*w + x)
	}

	for y := 0; y < h; y++ {
		visit(y * w)
		visit(y*w + w - 1)
	}

	for len(queue) > 0 {
		idx := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		y, x := idx/w, idx%w

		if y > 0 {
			visit(idx - w)
		}
		if y < h-1 {
			visit(idx + w)
		}
		if x > 0 {
			visit(idx - 1)
		}
		if x < w-1 {
			visit(idx + 1)
		}
	}

	for i := range grid {
		if !grid[i] && !outside[i] {
			grid[i] = true
		}
	}
}

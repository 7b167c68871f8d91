package raster

// Edge is one polygon edge prepared for scanline filling: topY/bottomY
// bound the scanlines it covers; currentX/currentZ track the
// interpolated intersection with the current scanline.
type Edge struct {
	topY, bottomY      int
	currentX, currentZ float32
	stepX, stepZ       float32
}

// newEdge builds an Edge from two screen vertices, oriented so top.Y is
// the larger of the two. bottomY is shortened by one (top-open
// convention) so a shared vertex between two polygon edges is not
// double-lit on its scanline.
func newEdge(top, bottom ScreenVertex) Edge {
	height := top.Y - bottom.Y
	e := Edge{
		topY:      int(top.Y),
		bottomY:   int(bottom.Y),
		currentX:  float32(top.X),
		currentZ:  top.Z,
		stepX:     0,
		stepZ:     0,
	}
	if height != 0 {
		e.stepX = (float32(bottom.X) - float32(top.X)) / float32(height)
		e.stepZ = (bottom.Z - top.Z) / float32(height)
	}
	e.bottomY++
	return e
}

// FillingStruct holds the polygon's pending and active edges, plus the
// observed scanline and x extent of the polygon.
type FillingStruct struct {
	edges          []Edge
	activeEdgeList []Edge
	maxY, minY     int
	minX, maxX     float32
	sawX           bool
}

// NewFillingStruct initializes a filling struct for a canvas of the
// given height; minY starts at height (nothing observed yet), maxY at 0.
func NewFillingStruct(height int) *FillingStruct {
	return &FillingStruct{minY: height, maxY: 0}
}

// AddEdge adds one polygon edge (c1, c2), skipping horizontal edges and
// updating the observed y/x extents.
func (f *FillingStruct) AddEdge(c1, c2 ScreenVertex) {
	if c1.Y == c2.Y {
		return
	}
	top, bottom := c1, c2
	if top.Y < bottom.Y {
		top, bottom = bottom, top
	}
	e := newEdge(top, bottom)
	f.edges = append(f.edges, e)

	if int(top.Y) > f.maxY {
		f.maxY = int(top.Y)
	}
	if int(bottom.Y) < f.minY {
		f.minY = int(bottom.Y)
	}
	for _, v := range [2]ScreenVertex{c1, c2} {
		x := float32(v.X)
		if !f.sawX {
			f.minX, f.maxX, f.sawX = x, x, true
			continue
		}
		if x < f.minX {
			f.minX = x
		}
		if x > f.maxX {
			f.maxX = x
		}
	}
}

// updateActiveEdgeList removes edges that are finished as of scanline y
// (bottomY > y) and activates pending edges whose topY has been reached
// (topY >= y), advancing their currentX to account for the skipped
// scanlines between topY and y.
func (f *FillingStruct) updateActiveEdgeList(y int) {
	kept := f.activeEdgeList[:0]
	for _, e := range f.activeEdgeList {
		if e.bottomY > y {
			continue
		}
		kept = append(kept, e)
	}
	f.activeEdgeList = kept

	remaining := f.edges[:0]
	for _, e := range f.edges {
		if e.topY >= y {
			e.currentX += float32(e.topY-y) * e.stepX
			f.activeEdgeList = append(f.activeEdgeList, e)
			continue
		}
		remaining = append(remaining, e)
	}
	f.edges = remaining
}

// shakeSort is a cocktail (bidirectional) bubble sort by currentX,
// adaptive to the nearly-sorted state of the list after one scanline
// advance: it shrinks its scan window each pass and stops as soon as a
// full pass makes no swap.
func shakeSort(edges []Edge) {
	start, end := 0, len(edges)-1
	for start < end {
		swapped := false
		for i := start; i < end; i++ {
			if edges[i].currentX > edges[i+1].currentX {
				edges[i], edges[i+1] = edges[i+1], edges[i]
				swapped = true
			}
		}
		end--
		if !swapped {
			break
		}
		swapped = false
		for i := end; i > start; i-- {
			if edges[i-1].currentX > edges[i].currentX {
				edges[i-1], edges[i] = edges[i], edges[i-1]
				swapped = true
			}
		}
		start++
		if !swapped {
			break
		}
	}
}

func sortByX(edges []Edge) {
	for i := 1; i < len(edges); i++ {
		key := edges[i]
		j := i - 1
		for j >= 0 && edges[j].currentX > key.currentX {
			edges[j+1] = edges[j]
			j--
		}
		edges[j+1] = key
	}
}

// FillPolygon scan-fills a closed polygon. The closing edge from the
// last vertex back to vertex 0 is added here; callers pass each vertex
// once.
func FillPolygon(b *Buffer, verts []ScreenVertex, c Pixel) {
	if len(verts) < 3 {
		return
	}
	f := NewFillingStruct(b.Height)
	for i := 0; i < len(verts); i++ {
		next := (i + 1) % len(verts)
		f.AddEdge(verts[i], verts[next])
	}
	if len(f.edges) == 0 {
		return
	}

	f.updateActiveEdgeList(f.maxY)
	sortByX(f.activeEdgeList)

	if f.maxY > b.Height-1 {
		f.maxY = b.Height - 1
	}
	if f.minY < 0 {
		f.minY = 0
	}

	clampToWidth := f.minX < 0 || f.maxX >= float32(b.Width)
	plotSpan := plotLine
	if clampToWidth {
		plotSpan = plotLineBoundsChecking
	}

	for y := f.maxY; y > f.minY; y-- {
		for i := 0; i+1 < len(f.activeEdgeList); i += 2 {
			left := &f.activeEdgeList[i]
			right := &f.activeEdgeList[i+1]
			x1 := round32(left.currentX)
			x2 := round32(right.currentX)
			z1, z2 := left.currentZ, right.currentZ
			if x1 > x2 {
				x1, x2 = x2, x1
				z1, z2 = z2, z1
			}
			plotSpan(b, c, y, x1, x2, z1, z2)
		}
		for i := range f.activeEdgeList {
			f.activeEdgeList[i].currentX += f.activeEdgeList[i].stepX
			f.activeEdgeList[i].currentZ += f.activeEdgeList[i].stepZ
		}
		f.updateActiveEdgeList(y - 1)
		shakeSort(f.activeEdgeList)
	}
}

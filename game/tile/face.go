package tile

const (
	flowerGroup      Group = 33
	whiteDragonGroup Group = 34
	seasonGroup      Group = 35
	// NumFaces is the number of distinct tile images in a standard theme.
	NumFaces = 42
)

// Face is the index of the image for the id in a standard tile theme.
// The flower and season groups have a face for each tile, with the white dragon between them.
// Ids outside the standard set have no face.
func (id ID) Face() (int, bool) {
	if id < 0 || id >= SetSize {
		return 0, false
	}
	g := id.Group()
	n := int(id % GroupSize)
	switch g {
	case flowerGroup:
		return int(flowerGroup) + n, true
	case whiteDragonGroup:
		return int(flowerGroup) + GroupSize, true
	case seasonGroup:
		return int(flowerGroup) + GroupSize + 1 + n, true
	default:
		return int(g), true
	}
}

package builder

// PlatonicName identifies one of the five Platonic solids' edge graphs.
type PlatonicName string

const (
	Tetrahedron PlatonicName = "tetrahedron"
	Cube        PlatonicName = "cube"
	Octahedron  PlatonicName = "octahedron"
	Dodecahedron PlatonicName = "dodecahedron"
	Icosahedron PlatonicName = "icosahedron"
)

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicEdgeSets gives each solid's 1-skeleton as index pairs into its
// own 0..n-1 vertex numbering. Tetrahedron's skeleton is K4; the rest
// follow each solid's standard vertex labeling.
var platonicEdgeSets = map[PlatonicName][][2]int{
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	},
	Octahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {2, 3}, {3, 4}, {4, 1},
		{5, 1}, {5, 2}, {5, 3}, {5, 4},
	},
	Cube: {
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom face
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top face
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
	},
	Dodecahedron: {
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // top pentagon
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}, // top spokes
		{5, 10}, {10, 6}, {6, 11}, {11, 7}, {7, 12}, // middle zigzag ring
		{12, 8}, {8, 13}, {13, 9}, {9, 14}, {14, 5},
		{10, 15}, {11, 16}, {12, 17}, {13, 18}, {14, 19}, // bottom spokes
		{15, 16}, {16, 17}, {17, 18}, {18, 19}, {19, 15}, // bottom pentagon
	},
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1},
		{1, 6}, {2, 6}, {2, 7}, {3, 7}, {3, 8}, {4, 8}, {4, 9}, {5, 9}, {5, 10}, {1, 10},
		{6, 7}, {7, 8}, {8, 9}, {9, 10}, {10, 6},
		{11, 6}, {11, 7}, {11, 8}, {11, 9}, {11, 10},
	},
}

package graphics

import _ "embed"

//go:embed shaders/cube.vert
var cubeVertexSource string

//go:embed shaders/cube.frag
var cubeFragmentSource string

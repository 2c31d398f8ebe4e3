// Package terrain 生成房间的低多边形阶梯地形网格。
package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/palemoky/terra-societies/internal/game/world"
)

// 默认地形参数，决定地形的"阶梯感"，与客户端渲染预期一致
const (
	DefaultWidth     = 75
	DefaultDepth     = 75
	DefaultLevels    = 5
	DefaultMaxHeight = 6

	// 噪声采样缩放，网格坐标除以该值后采样
	noiseScale = 12.0
)

// Generator 地形生成器，纯函数式，无内部状态
type Generator struct {
	Levels    int     // 高度离散档位数
	MaxHeight float64 // 最大高度
}

// NewGenerator 创建使用默认参数的生成器
func NewGenerator() *Generator {
	return &Generator{
		Levels:    DefaultLevels,
		MaxHeight: DefaultMaxHeight,
	}
}

// Generate 生成 width×depth 高度图对应的网格。
// 相同的 (width, depth, seed) 输入产出完全相同的几何数据。
//
// 顶点按行主序排列（index = z*width + x），每个顶点连续 3 个 float。
// 每个内部四边形拆成两个逆时针三角形，顺序固定为
// (topLeft, bottomLeft, topRight) 和 (topRight, bottomLeft, bottomRight)，
// 这是与渲染端的兼容性契约，必须逐位保持。
func (g *Generator) Generate(width, depth int, seed int64) *world.MapGeometry {
	heightMap := g.heightMap(width, depth, seed)

	vertices := make([]float32, width*depth*3)
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			i := (z*width + x) * 3
			vertices[i+0] = float32(x)
			vertices[i+1] = float32(heightMap[z][x])
			vertices[i+2] = float32(z)
		}
	}

	indices := make([]uint16, (width-1)*(depth-1)*6)
	i := 0
	for z := 0; z < depth-1; z++ {
		for x := 0; x < width-1; x++ {
			topLeft := uint16(z*width + x)
			topRight := uint16(z*width + x + 1)
			bottomLeft := uint16((z+1)*width + x)
			bottomRight := uint16((z+1)*width + x + 1)

			indices[i+0] = topLeft
			indices[i+1] = bottomLeft
			indices[i+2] = topRight
			indices[i+3] = topRight
			indices[i+4] = bottomLeft
			indices[i+5] = bottomRight
			i += 6
		}
	}

	return &world.MapGeometry{
		Vertices: vertices,
		Indices:  indices,
	}
}

// heightMap 采样噪声并离散化为阶梯高度
func (g *Generator) heightMap(width, depth int, seed int64) [][]float64 {
	noise := opensimplex.NewNormalized(seed)

	heightMap := make([][]float64, depth)
	for z := 0; z < depth; z++ {
		heightMap[z] = make([]float64, width)
		for x := 0; x < width; x++ {
			// 归一化噪声 [0,1] → 离散化到 Levels 档 → 按最大高度缩放
			h := noise.Eval2(float64(x)/noiseScale, float64(z)/noiseScale)
			h = math.Floor(h*float64(g.Levels)) / float64(g.Levels)
			heightMap[z][x] = h * g.MaxHeight
		}
	}
	return heightMap
}

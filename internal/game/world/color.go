package world

import (
	"fmt"
	"math/rand"
)

// RandomColor 生成 #rrggbb 格式的随机颜色，作为社会的渲染身份色
func RandomColor() string {
	return fmt.Sprintf("#%06x", rand.Intn(0x1000000))
}

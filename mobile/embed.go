//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/portfolio.yaml 需与根目录 data/portfolio.yaml 保持一致：
//
//	mkdir -p mobile/data && cp data/portfolio.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/portfolio.yaml
var dataFS embed.FS

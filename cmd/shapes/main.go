// Package main 输出点云生成器的结果，用于检查形状参数
//
// Usage:
//
//	go run ./cmd/shapes [flags]
//
// Flags:
//
//	--shape <name>    形状名称（为空则输出全部形状）
//	--count <n>       每个形状的点数（默认 100）
//	--radius <r>      基准尺寸（默认 1.5）
//	--seed <n>        随机种子（默认 1，0 = 使用当前时间）
//	--verbose         输出详细日志
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/digitorumflex/folio/pkg/geometry"
)

var (
	shapeFlag   = flag.String("shape", "", "Shape to generate (empty = all shapes)")
	countFlag   = flag.Int("count", geometry.DefaultPointCount, "Number of points per shape")
	radiusFlag  = flag.Float64("radius", geometry.DefaultOptions().Radius, "Base size passed to the generator")
	seedFlag    = flag.Int64("seed", 1, "Random seed (0 = current time)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// shapeDump 单个形状的输出
type shapeDump struct {
	Shape  string        `yaml:"shape"`
	Count  int           `yaml:"count"`
	Bounds [2][3]float64 `yaml:"bounds,flow"`
	Points [][3]float64  `yaml:"points,flow"`
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	shapes := geometry.AllShapes()
	if *shapeFlag != "" {
		shape, err := geometry.ParseShape(*shapeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		shapes = []geometry.Shape{shape}
	}

	rng := geometry.NewRand(*seedFlag)
	opts := geometry.Options{Radius: *radiusFlag}

	dumps := make([]shapeDump, 0, len(shapes))
	for _, shape := range shapes {
		points, err := shape.Generate(rng, *countFlag, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dumps = append(dumps, newShapeDump(shape, points))
		log.Printf("[Shapes] %s: %d 个点", shape, len(points))
	}

	if err := writeDumps(os.Stdout, dumps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeDumps 以 YAML 输出，Close 负责刷新流，错误同样返回
func writeDumps(w io.Writer, dumps []shapeDump) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dumps); err != nil {
		return fmt.Errorf("encode shapes: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush shapes: %w", err)
	}
	return nil
}

// newShapeDump 记录点坐标和包围盒
func newShapeDump(shape geometry.Shape, points []mgl64.Vec3) shapeDump {
	dump := shapeDump{Shape: string(shape), Count: len(points)}
	lo := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range points {
		dump.Points = append(dump.Points, [3]float64{round(p[0]), round(p[1]), round(p[2])})
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], p[i])
			hi[i] = math.Max(hi[i], p[i])
		}
	}
	for i := 0; i < 3; i++ {
		lo[i], hi[i] = round(lo[i]), round(hi[i])
	}
	dump.Bounds = [2][3]float64{lo, hi}
	return dump
}

func round(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

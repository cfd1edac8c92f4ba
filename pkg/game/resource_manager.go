package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of runtime resources.
// It caches text faces and loaded models so each is created only once.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All calls must happen on the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager()
//	face, err := rm.LoadFont(18)
//	if err != nil {
//	    log.Printf("Failed to load font: %v", err)
//	}
type ResourceManager struct {
	fontSource    *text.GoTextFaceSource       // Go Regular，首次 LoadFont 时创建
	fontFaceCache map[float64]*text.GoTextFace // size -> face
	modelCache    map[string]*Mesh             // path -> normalized mesh
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[float64]*text.GoTextFace),
		modelCache:    make(map[string]*Mesh),
	}
}

// LoadFont returns a Go Regular text face of the given size, creating and caching it on first use.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// GetFont retrieves a previously loaded font face, or nil if LoadFont has not been called for size.
func (rm *ResourceManager) GetFont(size float64) *text.GoTextFace {
	return rm.fontFaceCache[size]
}

// LoadModel loads and normalizes a glTF/GLB model, caching it by path.
// 失败的加载不会被缓存，下次调用会重试
func (rm *ResourceManager) LoadModel(path string) (*Mesh, error) {
	if cached, exists := rm.modelCache[path]; exists {
		return cached, nil
	}

	mesh, err := LoadModel(path)
	if err != nil {
		log.Printf("[ModelLoader] 模型加载失败: %v", err)
		return nil, err
	}
	mesh.Normalize()

	rm.modelCache[path] = mesh
	return mesh, nil
}

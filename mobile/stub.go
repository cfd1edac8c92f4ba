//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 真正的绑定入口在 mobile.go，仅在 -tags mobile 时编译。
package mobile

// Dummy 在桌面端构建时保持包可被引用
func Dummy() {}

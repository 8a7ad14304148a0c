//go:build !amd64 && !arm64 && !386 && !ppc64le
// +build !amd64,!arm64,!386,!ppc64le

package consts

const OptimizeLittleEndian = false

//go:build amd64 || arm64 || 386 || ppc64le
// +build amd64 arm64 386 ppc64le

package consts

// OptimizeLittleEndian is set when blocks can be decoded in place with
// unaligned word loads.
var OptimizeLittleEndian = IsLittleEndian

//go:build linux

package platform

const host = LinuxLike

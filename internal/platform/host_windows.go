//go:build windows

package platform

const host = WindowsLike

//go:build darwin

package platform

const host = MacLike

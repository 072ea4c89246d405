//go:build !amd64 && !arm64

package lav

func init() {
	setScalarMode()
}

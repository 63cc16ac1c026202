//go:build !amd64 && !arm64

package classic

func detectFeatures() []string {
	// No feature probing outside amd64 and arm64.
	return nil
}

// Package version reports the voicerouter build.
//
// Release builds stamp the version and commit through -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/voicerouter/version.Version=0.4.0 \
//	  -X github.com/kbukum/voicerouter/version.Commit=abc1234" ./cmd/voicerouter
//
// Unstamped builds fall back to the VCS settings embedded by the Go toolchain.
package version

//go:build release

package version

const releaseBuild = true

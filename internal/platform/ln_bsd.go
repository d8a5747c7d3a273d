//go:build unix && !darwin && !linux

package platform

// BSD ln: -h keeps an existing link to a directory from being followed.
var lnForceFlags = []string{"-s", "-f", "-h"}

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// / The version number of the current Moon release.
const kMoonVersion = "1.2.0"

// ParseVersion 解析版本字符串，提取主版本号和次版本号。
func ParseVersion(version string) (major int, minor int) {
	parts := strings.Split(version, ".")
	if len(parts) > 0 {
		major, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		minor, _ = strconv.Atoi(parts[1])
	}
	return
}

// / Check that this binary can run programs written for required_version.
// / A newer major version only warns; an older binary is an error.
func CheckMoonVersion(version string) error {
	bin_major, bin_minor := ParseVersion(kMoonVersion)
	file_major, file_minor := ParseVersion(version)

	if bin_major > file_major {
		Warning("moon executable version (%s) greater than config "+
			"required_version (%s); versions may be incompatible.",
			kMoonVersion, version)
		return nil
	}

	if (bin_major == file_major && bin_minor < file_minor) ||
		bin_major < file_major {
		return fmt.Errorf("moon version (%s) incompatible with config "+
			"required_version (%s)", kMoonVersion, version)
	}
	return nil
}

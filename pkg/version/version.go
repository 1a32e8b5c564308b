// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version of market-engine.
package version

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Develop is the version of builds that were not stamped at release.
const Develop = "develop"

// Version is overridden at release time:
//
//	-ldflags "-X carvel.dev/market-engine/pkg/version.Version=1.2.3"
var Version = Develop

// RequireAtLeast fails if Version is older than minimum.
// Develop builds satisfy every minimum.
func RequireAtLeast(minimum string) error {
	minVersion, err := goversion.NewVersion(minimum)
	if err != nil {
		return fmt.Errorf("Parsing minimum required version '%s': %s", minimum, err)
	}

	if Version == Develop {
		return nil
	}

	current, err := goversion.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("Parsing market-engine version '%s': %s", Version, err)
	}

	if current.LessThan(minVersion) {
		return fmt.Errorf("market-engine version %s does not meet the minimum required version %s", Version, minimum)
	}
	return nil
}

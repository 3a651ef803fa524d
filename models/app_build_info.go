// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo carries build metadata injected with -ldflags.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo fills empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	or := func(v string) string {
		if v == "" {
			return notAvailable
		}
		return v
	}
	return AppBuildInfo{Version: or(version), Date: or(date), Commit: or(commit)}
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version, a.Date, a.Commit)
}

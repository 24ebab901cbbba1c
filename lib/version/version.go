// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package version records the build version of the seashade tool.
package version

// Version is the current seashade version. Overridden at build time
// via -ldflags for release builds.
var Version = "0.3.0-dev"

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It signs in (restoring a persisted session or logging in with configured
// credentials), then either streams the dashboard through the background
// poller or runs a one-shot command such as a CSV export.
package client

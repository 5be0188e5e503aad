// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI hosting the API key settings panel and ties its
// lifetime to the process: SIGINT or SIGTERM cancels the UI context, which in
// turn unmounts the panel and aborts any in-flight key store request.
package client

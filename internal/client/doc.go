// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

// Package client implements the interactive dashboard runtime.
//
// It wires configuration, the local cache, the sheet gateway, the
// synchronized collections, and the terminal UI into a single process
// lifecycle.
package client

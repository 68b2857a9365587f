// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

//go:generate core generate

// HostKind selects the platform host the viewer runs on.
type HostKind int32 //enums:enum -trim-prefix Host -transform lower

const (
	// HostWindow is a desktop window.
	HostWindow HostKind = iota

	// HostTerminal draws into the terminal with half-block cells.
	HostTerminal

	// HostHeadless renders offscreen without any display.
	HostHeadless
)

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// Type returns the flag type name, making *HostKind a [pflag.Value].
func (i *HostKind) Type() string { return "host" }

// Set implements [pflag.Value].
func (i *HostKind) Set(s string) error { return i.SetString(s) }

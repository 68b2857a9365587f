// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

// ResizeReactor applies host viewport changes to a [Context].
// The notification payload is ignored; the viewport is always
// re-read from the host.
type ResizeReactor struct {
	ctx     *Context
	handled int
}

// NewResizeReactor returns a new [ResizeReactor] for the given context.
func NewResizeReactor(c *Context) *ResizeReactor {
	return &ResizeReactor{ctx: c}
}

// Attach registers the reactor with the context's host.
func (rr *ResizeReactor) Attach() {
	rr.ctx.Host.OnViewportChanged(rr.handle)
}

func (rr *ResizeReactor) handle(width, height int) {
	rr.handled++
	rr.ctx.OnViewportChanged()
}

// Handled returns the number of notifications processed.
func (rr *ResizeReactor) Handled() int {
	return rr.handled
}

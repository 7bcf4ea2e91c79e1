// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import go65816 "github.com/beevik/go65816"

// The debugger handler receives notifications from the cpu debugger and
// dispatches them to the debugger host.
type handler struct {
	host *Host
}

func (h *handler) OnBreakpoint(cpu *go65816.CPU, addr go65816.Address) {
	h.host.onBreakpoint(cpu, addr)
}

func (h *handler) OnDataBreakpoint(cpu *go65816.CPU, addr go65816.Address, v byte) {
	h.host.onDataBreakpoint(cpu, addr, v)
}

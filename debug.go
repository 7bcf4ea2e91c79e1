// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

import "sort"

// Debugger intercepts instruction execution and memory stores on a CPU,
// triggering breakpoint and data-breakpoint notifications on its
// Handler. Breakpoints are keyed by full 24-bit Address rather than a
// bank-relative offset, since code and data can live in any bank.
type Debugger struct {
	Handler         DebuggerHandler
	breakpoints     map[Address]*breakpoint
	dataBreakpoints map[Address]*dataBreakpoint
}

// DebuggerHandler receives notifications from a Debugger.
type DebuggerHandler interface {
	OnBreakpoint(cpu *CPU, addr Address)
	OnDataBreakpoint(cpu *CPU, addr Address, v byte)
}

type breakpoint struct {
	addr    Address
	enabled bool
}

type dataBreakpoint struct {
	addr        Address
	enabled     bool
	conditional bool
	value       byte
}

// NewDebugger creates a debugger that reports to the given handler.
func NewDebugger(handler DebuggerHandler) *Debugger {
	return &Debugger{
		Handler:         handler,
		breakpoints:     make(map[Address]*breakpoint),
		dataBreakpoints: make(map[Address]*dataBreakpoint),
	}
}

// AddBreakpoint adds a new breakpoint address to the debugger. If the
// breakpoint was already set, the request is ignored.
func (d *Debugger) AddBreakpoint(addr Address) {
	if _, ok := d.breakpoints[addr]; !ok {
		d.breakpoints[addr] = &breakpoint{addr: addr, enabled: true}
	}
}

// RemoveBreakpoint removes a breakpoint from the debugger.
func (d *Debugger) RemoveBreakpoint(addr Address) {
	delete(d.breakpoints, addr)
}

// EnableBreakpoint enables a breakpoint.
func (d *Debugger) EnableBreakpoint(addr Address) {
	if b, ok := d.breakpoints[addr]; ok {
		b.enabled = true
	}
}

// DisableBreakpoint disables a breakpoint.
func (d *Debugger) DisableBreakpoint(addr Address) {
	if b, ok := d.breakpoints[addr]; ok {
		b.enabled = false
	}
}

// AddDataBreakpoint adds an unconditional data breakpoint on the requested
// address.
func (d *Debugger) AddDataBreakpoint(addr Address) {
	d.dataBreakpoints[addr] = &dataBreakpoint{addr: addr, enabled: true}
}

// AddConditionalDataBreakpoint adds a data breakpoint that only fires
// when the stored value equals v.
func (d *Debugger) AddConditionalDataBreakpoint(addr Address, v byte) {
	d.dataBreakpoints[addr] = &dataBreakpoint{addr: addr, enabled: true, conditional: true, value: v}
}

// RemoveDataBreakpoint removes a (conditional or unconditional) data
// breakpoint at the requested address.
func (d *Debugger) RemoveDataBreakpoint(addr Address) {
	delete(d.dataBreakpoints, addr)
}

// EnableDataBreakpoint enables a (conditional or unconditional) data
// breakpoint at the requested address.
func (d *Debugger) EnableDataBreakpoint(addr Address) {
	if b, ok := d.dataBreakpoints[addr]; ok {
		b.enabled = true
	}
}

// DisableDataBreakpoint disables a (conditional or unconditional) data
// breakpoint at the requested address.
func (d *Debugger) DisableDataBreakpoint(addr Address) {
	if b, ok := d.dataBreakpoints[addr]; ok {
		b.enabled = false
	}
}

// BreakpointInfo describes one breakpoint for display purposes.
type BreakpointInfo struct {
	Addr    Address
	Enabled bool
}

// DataBreakpointInfo describes one data breakpoint for display purposes.
type DataBreakpointInfo struct {
	Addr        Address
	Enabled     bool
	Conditional bool
	Value       byte
}

// Breakpoints returns all breakpoints, sorted by address.
func (d *Debugger) Breakpoints() []BreakpointInfo {
	infos := make([]BreakpointInfo, 0, len(d.breakpoints))
	for _, b := range d.breakpoints {
		infos = append(infos, BreakpointInfo{Addr: b.addr, Enabled: b.enabled})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Addr < infos[j].Addr })
	return infos
}

// DataBreakpoints returns all data breakpoints, sorted by address.
func (d *Debugger) DataBreakpoints() []DataBreakpointInfo {
	infos := make([]DataBreakpointInfo, 0, len(d.dataBreakpoints))
	for _, b := range d.dataBreakpoints {
		infos = append(infos, DataBreakpointInfo{
			Addr: b.addr, Enabled: b.enabled, Conditional: b.conditional, Value: b.value,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Addr < infos[j].Addr })
	return infos
}

// HasBreakpoint reports whether a breakpoint is set at addr.
func (d *Debugger) HasBreakpoint(addr Address) bool {
	_, ok := d.breakpoints[addr]
	return ok
}

// HasDataBreakpoint reports whether a data breakpoint is set at addr.
func (d *Debugger) HasDataBreakpoint(addr Address) bool {
	_, ok := d.dataBreakpoints[addr]
	return ok
}

func (d *Debugger) onCPUExecute(cpu *CPU, addr Address) {
	if d.Handler == nil {
		return
	}
	if b, ok := d.breakpoints[addr]; ok && b.enabled {
		d.Handler.OnBreakpoint(cpu, addr)
	}
}

func (d *Debugger) onDataStore(cpu *CPU, addr Address, v byte) {
	if d.Handler == nil {
		return
	}
	if b, ok := d.dataBreakpoints[addr]; ok && b.enabled {
		if !b.conditional || b.value == v {
			d.Handler.OnDataBreakpoint(cpu, addr, v)
		}
	}
}

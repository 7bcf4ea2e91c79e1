// Copyright 2018 Brett Vickers.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host implements an interactive debugger shell around a
// go65816 CPU and bus: it can load a ROM image, disassemble and step
// through code, set address and data breakpoints, dump and edit
// memory, inspect and change registers, and evaluate expressions
// against the running machine's state.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/beevik/cmd"

	go65816 "github.com/beevik/go65816"
	"github.com/beevik/go65816/disasm"
)

var cmds *cmd.Tree

func init() {
	// Create a command tree, where the parameter stored with each command is
	// a host callback capable of handling the command.
	cmds = cmd.NewTree("go65816", []cmd.Command{
		{
			Name:     "help",
			Shortcut: "?",
			Data:     (*Host).cmdHelp,
		},
		{
			Name:  "annotate",
			Brief: "Annotate an address",
			Description: "Provide a code annotation at a memory address." +
				" When disassembling code at this address, the annotation will" +
				" be displayed.",
			HelpText: "annotate <address> <string>",
			Data:     (*Host).cmdAnnotate,
		},
		{
			Name:     "breakpoint",
			Shortcut: "b",
			Brief:    "Breakpoint commands",
			Subcommands: cmd.NewTree("Breakpoint", []cmd.Command{
				{
					Name:        "list",
					Brief:       "List breakpoints",
					Description: "List all current breakpoints.",
					HelpText:    "breakpoint list",
					Data:        (*Host).cmdBreakpointList,
				},
				{
					Name:  "add",
					Brief: "Add a breakpoint",
					Description: "Add a breakpoint at the specified address." +
						" The breakpoints starts enabled.",
					HelpText: "breakpoint add <address>",
					Data:     (*Host).cmdBreakpointAdd,
				},
				{
					Name:        "remove",
					Brief:       "Remove a breakpoint",
					Description: "Remove a breakpoint at the specified address.",
					HelpText:    "breakpoint remove <address>",
					Data:        (*Host).cmdBreakpointRemove,
				},
				{
					Name:        "enable",
					Brief:       "Enable a breakpoint",
					Description: "Enable a previously added breakpoint.",
					HelpText:    "breakpoint enable <address>",
					Data:        (*Host).cmdBreakpointEnable,
				},
				{
					Name:  "disable",
					Brief: "Disable a breakpoint",
					Description: "Disable a previously added breakpoint. This" +
						" prevents the breakpoint from being hit when running the" +
						" CPU",
					HelpText: "breakpoint disable <address>",
					Data:     (*Host).cmdBreakpointDisable,
				},
			}),
		},
		{
			Name:     "databreakpoint",
			Shortcut: "db",
			Brief:    "Data breakpoint commands",
			Subcommands: cmd.NewTree("Data breakpoint", []cmd.Command{
				{
					Name:        "list",
					Brief:       "List data breakpoints",
					Description: "List all current data breakpoints.",
					HelpText:    "databreakpoint list",
					Data:        (*Host).cmdDataBreakpointList,
				},
				{
					Name:  "add",
					Brief: "Add a data breakpoint",
					Description: "Add a new data breakpoint at the specified" +
						" memory address. When the CPU stores data at this address, the " +
						" breakpoint will stop the CPU. Optionally, a byte " +
						" value may be specified, and the CPU will stop only " +
						" when this value is stored. The data breakpoint starts" +
						" enabled.",
					HelpText: "databreakpoint add <address> [<value>]",
					Data:     (*Host).cmdDataBreakpointAdd,
				},
				{
					Name:  "remove",
					Brief: "Remove a data breakpoint",
					Description: "Remove a previously added data breakpoint at" +
						" the specified memory address.",
					HelpText: "databreakpoint remove <address>",
					Data:     (*Host).cmdDataBreakpointRemove,
				},
				{
					Name:        "enable",
					Brief:       "Enable a data breakpoint",
					Description: "Enable a previously added breakpoint.",
					HelpText:    "databreakpoint enable <address>",
					Data:        (*Host).cmdDataBreakpointEnable,
				},
				{
					Name:        "disable",
					Brief:       "Disable a data breakpoint",
					Description: "Disable a previously added breakpoint.",
					HelpText:    "databreakpoint disable <address>",
					Data:        (*Host).cmdDataBreakpointDisable,
				},
			}),
		},
		{
			Name:     "disassemble",
			Shortcut: "d",
			Brief:    "Disassemble code",
			Description: "Disassemble machine code starting at the requested" +
				" address. The number of instructions to disassemble may be" +
				" specified as an option.",
			HelpText: "disassemble <address> [<count>]",
			Data:     (*Host).cmdDisassemble,
		},
		{
			Name:        "evaluate",
			Shortcut:    "e",
			Brief:       "Evaluate an expression",
			Description: "Evaluate a mathemetical expression.",
			HelpText:    "evaluate <expression>",
			Data:        (*Host).cmdEval,
		},
		{
			Name:  "load",
			Brief: "Load a ROM or memory image",
			Description: "Load the contents of a raw binary file into the" +
				" emulated system's bus at the specified address. If no" +
				" address is given, the file is attached as the cartridge" +
				" ROM image.",
			HelpText: "load <filename> [<address>]",
			Data:     (*Host).cmdLoad,
		},
		{
			Name:  "memory",
			Brief: "Memory commands",
			Subcommands: cmd.NewTree("Memory", []cmd.Command{
				{
					Name:  "dump",
					Brief: "Dump memory at address",
					Description: "Dump the contents of memory starting from the" +
						" specified address. The number of bytes to dump may be" +
						" specified as an option.",
					HelpText: "memory dump <address> [<bytes>]",
					Data:     (*Host).cmdMemoryDump,
				},
				{
					Name:  "set",
					Brief: "Set memory at address",
					Description: "Set the contents of memory starting from the" +
						" specified address to a series of byte values.",
					HelpText: "memory set <address> <byte> [<byte>...]",
					Data:     (*Host).cmdMemorySet,
				},
			}),
		},
		{
			Name:        "quit",
			Brief:       "Quit the program",
			Description: "Quit the program.",
			HelpText:    "quit",
			Data:        (*Host).cmdQuit,
		},
		{
			Name:     "registers",
			Shortcut: "r",
			Brief:    "Display register contents",
			Description: "Display the current contents of all CPU registers, and" +
				" disassemble the instruction at the current program counter address.",
			HelpText: "registers",
			Data:     (*Host).cmdRegisters,
		},
		{
			Name:  "run",
			Brief: "Run the CPU",
			Description: "Run the CPU until a breakpoint is hit or until the " +
				"user types Ctrl-C.",
			HelpText: "run",
			Data:     (*Host).cmdRun,
		},
		{
			Name:  "set",
			Brief: "Set a configuration variable",
			Description: "Set the value of a configuration variable. Type the set" +
				" command without a variable name or value to display the current" +
				" values of all configuration variables.",
			HelpText: "set <var> <value>",
			Data:     (*Host).cmdSet,
		},
		{
			Name:  "step",
			Brief: "Step the debugger",
			Subcommands: cmd.NewTree("Step", []cmd.Command{
				{
					Name:  "in",
					Brief: "Step into next instruction",
					Description: "Step the CPU by a single instruction. If the" +
						" instruction is a subroutine call, step into the subroutine." +
						" The number of steps may be specified as an option.",
					HelpText: "step in [<count>]",
					Data:     (*Host).cmdStepIn,
				},
				{
					Name:  "over",
					Brief: "Step over next instruction",
					Description: "Step the CPU by a single instruction. If the" +
						" instruction is a subroutine call, step over the subroutine." +
						" The number of steps may be specified as an option.",
					HelpText: "step over [<count>]",
					Data:     (*Host).cmdStepOver,
				},
			}),
		},

		// Aliases for nested commands
		{Name: "ba", Alias: "breakpoint add"},
		{Name: "br", Alias: "breakpoint remove"},
		{Name: "bl", Alias: "breakpoint list"},
		{Name: "be", Alias: "breakpoint enable"},
		{Name: "bd", Alias: "breakpoint disable"},
		{Name: "dbl", Alias: "databreakpoint list"},
		{Name: "dba", Alias: "databreakpoint add"},
		{Name: "dbr", Alias: "databreakpoint remove"},
		{Name: "dbe", Alias: "databreakpoint enable"},
		{Name: "dbd", Alias: "databreakpoint disable"},
		{Name: "m", Alias: "memory dump"},
		{Name: "ms", Alias: "memory set"},
		{Name: "s", Alias: "step over"},
		{Name: "si", Alias: "step in"},
	})
}

type displayFlags uint8

const (
	displayRegisters displayFlags = 1 << iota
	displayCycles
	displayAnnotations

	displayAll = displayRegisters | displayCycles | displayAnnotations
)

type state byte

const (
	stateProcessingCommands state = iota
	stateRunning
	stateBreakpoint
	stateStepOverBreakpoint
)

// A Host represents a fully emulated 65C816 system: a banked bus, a
// debugger-attached CPU, and the interactive tools built on top of them.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	bus         *go65816.SystemBus
	cpu         *go65816.CPU
	debugger    *go65816.Debugger
	lastCmd     *cmd.Selection
	state       state
	exprParser  *exprParser
	settings    *settings
	annotations map[go65816.Address]string

	// stepOverAddr, when non-zero-valued and stepOverArmed is true, marks
	// the return address a JSR/JSL step-over is waiting for. It's tracked
	// here rather than on the breakpoint object itself, since Debugger
	// exposes breakpoints only through opaque address-keyed methods.
	stepOverAddr  go65816.Address
	stepOverArmed bool

	// Trace, when set, causes every stepped instruction to be echoed to
	// the output before it executes.
	Trace bool
}

// New creates a new 65C816 host environment.
func New() *Host {
	h := &Host{
		state:       stateProcessingCommands,
		exprParser:  newExprParser(),
		settings:    newSettings(),
		annotations: make(map[go65816.Address]string),
	}

	// Create the emulated bus and CPU.
	h.bus = go65816.NewSystemBus(nil)
	h.cpu = go65816.NewCPU(h.bus)

	// Create a CPU debugger and attach it to the CPU.
	h.debugger = go65816.NewDebugger(&handler{host: h})
	h.cpu.Debugger = h.debugger
	h.cpu.Reset()

	return h
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the the next command to be entered.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	if interactive {
		h.println()
	}

	h.displayPC()

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		var c cmd.Selection
		if line != "" {
			c, err = cmds.Lookup(line)
			switch {
			case err == cmd.ErrNotFound:
				h.println("Command not found.")
				continue
			case err == cmd.ErrAmbiguous:
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}
		} else if h.lastCmd != nil {
			c = *h.lastCmd
		}

		if c.Command == nil {
			continue
		}
		h.lastCmd = &c

		handler := c.Command.Data.(func(*Host, cmd.Selection) error)
		err = handler(h, c)
		if err != nil {
			break
		}
	}
}

// Break interrupts a running CPU.
func (h *Host) Break() {
	h.println()

	if h.state == stateRunning {
		h.displayPC()
	}
	if h.state == stateProcessingCommands {
		h.prompt()
	}
	h.state = stateProcessingCommands
}

func (h *Host) print(args ...interface{}) {
	fmt.Fprint(h.output, args...)
}

func (h *Host) printf(format string, args ...interface{}) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...interface{}) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
		h.flush()
	}
}

func (h *Host) displayPC() {
	if h.interactive {
		d, _ := h.disassemble(go65816.Addr(h.cpu.Reg.PB, h.cpu.Reg.PC), displayAll)
		h.println(d)
	}
}

func (h *Host) cmdAnnotate(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	var annotation string
	if len(c.Args) >= 2 {
		annotation = strings.Join(c.Args[1:], " ")
	}

	if annotation == "" {
		delete(h.annotations, addr)
		h.printf("Annotation removed at $%06X.\n", uint32(addr))
	} else {
		h.annotations[addr] = annotation
		h.printf("Annotation added at $%06X.\n", uint32(addr))
	}

	return nil
}

func (h *Host) cmdBreakpointList(c cmd.Selection) error {
	h.println("Addr    Enabled")
	h.println("------- -------")
	for _, b := range h.debugger.Breakpoints() {
		h.printf("$%06X %v\n", uint32(b.Addr), b.Enabled)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.debugger.AddBreakpoint(addr)
	h.printf("Breakpoint added at $%06X.\n", uint32(addr))
	return nil
}

func (h *Host) cmdBreakpointRemove(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if !h.debugger.HasBreakpoint(addr) {
		h.printf("No breakpoint was set on $%06X.\n", uint32(addr))
		return nil
	}

	h.debugger.RemoveBreakpoint(addr)
	h.printf("Breakpoint at $%06X removed.\n", uint32(addr))
	return nil
}

func (h *Host) cmdBreakpointEnable(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if !h.debugger.HasBreakpoint(addr) {
		h.printf("No breakpoint was set on $%06X.\n", uint32(addr))
		return nil
	}

	h.debugger.EnableBreakpoint(addr)
	h.printf("Breakpoint at $%06X enabled.\n", uint32(addr))
	return nil
}

func (h *Host) cmdBreakpointDisable(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if !h.debugger.HasBreakpoint(addr) {
		h.printf("No breakpoint was set on $%06X.\n", uint32(addr))
		return nil
	}

	h.debugger.DisableBreakpoint(addr)
	h.printf("Breakpoint at $%06X disabled.\n", uint32(addr))
	return nil
}

func (h *Host) cmdDataBreakpointList(c cmd.Selection) error {
	h.println("Addr    Enabled  Value")
	h.println("------- -------  -----")
	for _, b := range h.debugger.DataBreakpoints() {
		if b.Conditional {
			h.printf("$%06X %-5v    $%02X\n", uint32(b.Addr), b.Enabled, b.Value)
		} else {
			h.printf("$%06X %-5v    <none>\n", uint32(b.Addr), b.Enabled)
		}
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if len(c.Args) > 1 {
		value, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.debugger.AddConditionalDataBreakpoint(addr, byte(value))
		h.printf("Conditional data breakpoint added at $%06X for value $%02X.\n", uint32(addr), byte(value))
	} else {
		h.debugger.AddDataBreakpoint(addr)
		h.printf("Data breakpoint added at $%06X.\n", uint32(addr))
	}

	return nil
}

func (h *Host) cmdDataBreakpointRemove(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if !h.debugger.HasDataBreakpoint(addr) {
		h.printf("No data breakpoint was set on $%06X.\n", uint32(addr))
		return nil
	}

	h.debugger.RemoveDataBreakpoint(addr)
	h.printf("Data breakpoint at $%06X removed.\n", uint32(addr))
	return nil
}

func (h *Host) cmdDataBreakpointEnable(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if !h.debugger.HasDataBreakpoint(addr) {
		h.printf("No data breakpoint was set on $%06X.\n", uint32(addr))
		return nil
	}

	h.debugger.EnableDataBreakpoint(addr)
	h.printf("Data breakpoint at $%06X enabled.\n", uint32(addr))
	return nil
}

func (h *Host) cmdDataBreakpointDisable(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if !h.debugger.HasDataBreakpoint(addr) {
		h.printf("No data breakpoint was set on $%06X.\n", uint32(addr))
		return nil
	}

	h.debugger.DisableDataBreakpoint(addr)
	h.printf("Data breakpoint at $%06X disabled.\n", uint32(addr))
	return nil
}

func (h *Host) cmdDisassemble(c cmd.Selection) error {
	if len(c.Args) == 0 {
		c.Args = []string{"$"}
	}

	var addr go65816.Address
	if len(c.Args) > 0 {
		switch c.Args[0] {
		case "$":
			addr = h.settings.NextDisasmAddr
			if addr == 0 {
				addr = go65816.Addr(h.cpu.Reg.PB, h.cpu.Reg.PC)
			}

		case ".":
			addr = go65816.Addr(h.cpu.Reg.PB, h.cpu.Reg.PC)

		default:
			a, err := h.parseExpr(c.Args[0])
			if err != nil {
				h.printf("%v\n", err)
				return nil
			}
			addr = a
		}
	}

	lines := h.settings.DisasmLines
	if len(c.Args) > 1 {
		l, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		lines = int(l)
	}

	for i := 0; i < lines; i++ {
		d, next := h.disassemble(addr, displayAnnotations)
		h.println(d)
		addr = next
	}

	h.settings.NextDisasmAddr = addr
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", lines)}
	return nil
}

func (h *Host) cmdEval(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	expr := strings.Join(c.Args, " ")
	v, err := h.parseExpr(expr)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("$%06X\n", uint32(v))
	return nil
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	switch {
	case len(c.Args) == 0:
		h.displayCommands(cmds)
	default:
		s, err := cmds.Lookup(strings.Join(c.Args, " "))
		if err != nil {
			h.printf("%v\n", err)
		} else {
			switch {
			case s.Command.Subcommands != nil:
				h.displayCommands(s.Command.Subcommands)
			default:
				if s.Command.HelpText != "" {
					h.printf("Syntax: %s\n\n", s.Command.HelpText)
				}
				switch {
				case s.Command.Description != "":
					h.printf("Description:\n%s\n\n", indentWrap(3, s.Command.Description))
				case s.Command.Brief != "":
					h.printf("Description:\n%s.\n\n", indentWrap(3, s.Command.Brief))
				}
			}
		}
	}
	return nil
}

func (h *Host) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	filename := c.Args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		h.printf("Failed to read '%s': %v\n", filepath.Base(filename), err)
		return nil
	}

	if len(c.Args) >= 2 {
		addr, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		for i, b := range data {
			h.bus.Write(addr+go65816.Address(i), b)
		}
		h.printf("Loaded '%s' (%d bytes) at $%06X.\n", filepath.Base(filename), len(data), uint32(addr))
		return nil
	}

	h.bus.ROM = data
	h.cpu.Reset()
	h.printf("Loaded '%s' (%d bytes) as the cartridge ROM.\n", filepath.Base(filename), len(data))
	return nil
}

func (h *Host) cmdMemoryDump(c cmd.Selection) error {
	var addr go65816.Address
	if len(c.Args) > 0 {
		switch c.Args[0] {
		case "$":
			addr = h.settings.NextMemDumpAddr

		case ".":
			addr = go65816.Addr(h.cpu.Reg.PB, h.cpu.Reg.PC)

		default:
			a, err := h.parseExpr(c.Args[0])
			if err != nil {
				h.printf("%v\n", err)
				return nil
			}
			addr = a
		}
	}

	bytes := h.settings.MemDumpBytes
	if len(c.Args) >= 2 {
		b, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		bytes = int(b)
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + go65816.Address(bytes)
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", bytes)}
	return nil
}

func (h *Host) cmdMemorySet(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	for i, a := range c.Args[1:] {
		v, err := h.parseExpr(a)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.bus.Write(addr+go65816.Address(i), byte(v))
	}

	h.printf("%d byte(s) written starting at $%06X.\n", len(c.Args)-1, uint32(addr))
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return errors.New("Exiting program")
}

func (h *Host) cmdRegisters(c cmd.Selection) error {
	d, _ := h.disassemble(go65816.Addr(h.cpu.Reg.PB, h.cpu.Reg.PC), displayAll)
	h.println(d)
	return nil
}

func (h *Host) cmdRun(c cmd.Selection) error {
	if len(c.Args) > 0 {
		pc, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.Reg.PB = pc.Bank()
		h.cpu.Reg.PC = pc.Offset()
	}

	h.printf("Running from $%06X. Press ctrl-C to break.\n", uint32(go65816.Addr(h.cpu.Reg.PB, h.cpu.Reg.PC)))

	h.state = stateRunning
	for h.state == stateRunning {
		h.step()
	}
	h.state = stateProcessingCommands

	h.settings.NextDisasmAddr = go65816.Addr(h.cpu.Reg.PB, h.cpu.Reg.PC)
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)

	case 1:
		h.displayHelpText(c.Command)

	default:
		key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")
		v, errV := h.exprParser.Parse(value, h)

		// Setting a register?
		if errV == nil {
			sz := -1
			switch key {
			case "a":
				h.cpu.Reg.A, sz = uint16(v), 2
			case "x":
				h.cpu.Reg.X, sz = uint16(v), 2
			case "y":
				h.cpu.Reg.Y, sz = uint16(v), 2
			case "sp":
				h.cpu.Reg.SP, sz = uint16(v), 2
			case "pb":
				h.cpu.Reg.PB, sz = byte(v), 1
			case "db":
				h.cpu.Reg.DB, sz = byte(v), 1
			case "d":
				h.cpu.Reg.D, sz = uint16(v), 2
			case ".":
				key = "pc"
				fallthrough
			case "pc":
				h.cpu.Reg.PC, sz = uint16(v), 2
			case "carry":
				h.cpu.Reg.SetStatus(go65816.Carry, v != 0)
				sz = 0
			case "zero":
				h.cpu.Reg.SetStatus(go65816.Zero, v != 0)
				sz = 0
			case "decimal":
				h.cpu.Reg.SetStatus(go65816.Decimal, v != 0)
				sz = 0
			case "overflow":
				h.cpu.Reg.SetStatus(go65816.Overflow, v != 0)
				sz = 0
			case "negative":
				h.cpu.Reg.SetStatus(go65816.Negative, v != 0)
				sz = 0
			case "interrupt":
				h.cpu.Reg.SetStatus(go65816.InterruptDisable, v != 0)
				sz = 0
			}

			switch sz {
			case 0:
				h.printf("Flag %s set to %v.\n", strings.ToUpper(key), v != 0)
				return nil
			case 1:
				h.printf("Register %s set to $%02X.\n", strings.ToUpper(key), byte(v))
				return nil
			case 2:
				h.printf("Register %s set to $%04X.\n", strings.ToUpper(key), uint16(v))
				return nil
			}
		}

		// Setting a debugger setting?
		var err error
		switch h.settings.Kind(key) {
		case reflect.Invalid:
			err = fmt.Errorf("Setting '%s' not found", key)
		case reflect.String:
			err = h.settings.Set(key, value)
		case reflect.Bool:
			var v bool
			v, err = stringToBool(value)
			if err == nil {
				err = h.settings.Set(key, v)
			}
		default:
			err = errV
			if err == nil {
				err = h.settings.Set(key, v)
			}
		}

		if err == nil {
			h.println("Setting updated.")
		} else {
			h.printf("%v\n", err)
		}

		h.onSettingsUpdate()
	}

	return nil
}

func (h *Host) cmdStepIn(c cmd.Selection) error {
	count := 1
	if len(c.Args) > 0 {
		n, err := h.parseExpr(c.Args[0])
		if err == nil {
			count = int(n)
		}
	}

	h.state = stateRunning
	for i := count - 1; i >= 0 && h.state == stateRunning; i-- {
		h.step()
		switch {
		case i == h.settings.MaxStepLines:
			h.println("...")
		case i < h.settings.MaxStepLines:
			h.displayPC()
		}
	}
	h.state = stateProcessingCommands

	h.settings.NextDisasmAddr = go65816.Addr(h.cpu.Reg.PB, h.cpu.Reg.PC)
	return nil
}

func (h *Host) cmdStepOver(c cmd.Selection) error {
	count := 1
	if len(c.Args) > 0 {
		n, err := h.parseExpr(c.Args[0])
		if err == nil {
			count = int(n)
		}
	}

	h.state = stateRunning
	for i := count - 1; i >= 0 && h.state == stateRunning; i-- {
		h.stepOver()
		switch {
		case i == h.settings.MaxStepLines:
			h.println("...")
		case i < h.settings.MaxStepLines:
			h.displayPC()
		}
	}
	h.state = stateProcessingCommands

	h.settings.NextDisasmAddr = go65816.Addr(h.cpu.Reg.PB, h.cpu.Reg.PC)
	return nil
}

// LoadROM attaches the contents of path to the emulated bus as the
// cartridge ROM image and resets the CPU so PC/PB load from the reset
// vector within it.
func (h *Host) LoadROM(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	h.bus.ROM = data
	h.cpu.Reset()
	return nil
}

// AddBreakpoint arms a breakpoint at addr before the REPL starts.
func (h *Host) AddBreakpoint(addr go65816.Address) {
	h.debugger.AddBreakpoint(addr)
}

func (h *Host) step() {
	if h.Trace {
		d, _ := h.disassemble(go65816.Addr(h.cpu.Reg.PB, h.cpu.Reg.PC), displayCycles)
		h.println(d)
	}
	h.cpu.Step()
}

func (h *Host) stepOver() {
	addr := go65816.Addr(h.cpu.Reg.PB, h.cpu.Reg.PC)
	inst := go65816.Lookup(h.bus.Read(addr))
	if inst.Name != "JSR" && inst.Name != "JSL" {
		h.step()
		return
	}

	n := go65816.OperandLength(inst.Mode, h.cpu.Reg.AccumIs8Bit(), h.cpu.Reg.IndexIs8Bit())
	next := addr + 1 + go65816.Address(n)

	tmpBreakpointCreated := !h.debugger.HasBreakpoint(next)
	if tmpBreakpointCreated {
		h.debugger.AddBreakpoint(next)
	}
	h.stepOverAddr = next
	h.stepOverArmed = true

	for h.state == stateRunning {
		h.step()
	}
	h.stepOverArmed = false

	if h.state == stateStepOverBreakpoint {
		h.state = stateRunning
	}

	if tmpBreakpointCreated {
		h.debugger.RemoveBreakpoint(next)
	}
}

func (h *Host) onSettingsUpdate() {
	h.exprParser.hexMode = h.settings.HexMode
}

func (h *Host) parseExpr(expr string) (go65816.Address, error) {
	v, err := h.exprParser.Parse(expr, h)
	if err != nil {
		return 0, err
	}
	return go65816.Address(uint32(v) & 0x00FFFFFF), nil
}

func (h *Host) disassemble(addr go65816.Address, flags displayFlags) (str string, next go65816.Address) {
	var line string
	line, next = disasm.Disassemble(h.bus, addr, h.cpu.Reg.AccumIs8Bit(), h.cpu.Reg.IndexIs8Bit())

	l := int(next - addr)
	b := make([]byte, l)
	for i := range b {
		b[i] = h.bus.Read(addr + go65816.Address(i))
	}

	str = fmt.Sprintf("%06X-   %-8s    %-20s", uint32(addr), codeString(b), line)

	if (flags & displayRegisters) != 0 {
		str += " " + registerString(&h.cpu.Reg)
	}

	if (flags & displayCycles) != 0 {
		str += fmt.Sprintf(" C=%-12d", h.cpu.Cycles)
	}

	if (flags & displayAnnotations) != 0 {
		if anno, ok := h.annotations[addr]; ok {
			str += " ; " + anno
		}
	}

	return str, next
}

// registerString renders the 65C816 register file in a single terse
// line. Every field is printed at its full storage width regardless of
// the current M/X widths; E is shown as the mode letter (E or N).
func registerString(r *go65816.Registers) string {
	mode := "N"
	if r.EmulationMode() {
		mode = "E"
	}
	return fmt.Sprintf(
		"A=%04X X=%04X Y=%04X SP=%04X D=%04X DB=%02X %s P=%08b",
		r.A, r.X, r.Y, r.SP, r.D, r.DB, mode, byte(r.P),
	)
}

func (h *Host) dumpMemory(addr0 go65816.Address, bytes int) {
	if bytes <= 0 {
		return
	}

	addr1 := addr0 + go65816.Address(bytes) - 1

	buf := []byte("       -" + strings.Repeat(" ", 35))

	if bytes < 8 {
		addrToBuf(uint32(addr0), buf[0:6])
		for a, c1, c2 := addr0, 9, 35; a <= addr1; a, c1, c2 = a+1, c1+3, c2+1 {
			m := h.bus.Read(a)
			byteToBuf(m, buf[c1:c1+2])
			buf[c2] = toPrintableChar(m)
		}
		h.println(string(buf))
		return
	}

	start := uint32(addr0) &^ 7
	stop := (uint32(addr1) + 8) &^ 7

	a := go65816.Address(start)
	for r := start; r < stop; r += 8 {
		addrToBuf(r, buf[0:6])
		for c1, c2 := 9, 35; c1 < 32; c1, c2, a = c1+3, c2+1, a+1 {
			if a >= addr0 && a <= addr1 {
				m := h.bus.Read(a)
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1] = ' '
				buf[c1+1] = ' '
				buf[c2] = ' '
			}
		}
		h.println(string(buf))
	}
}

func (h *Host) displayHelpText(c *cmd.Command) {
	if c.HelpText != "" {
		h.printf("Syntax: %s\n", c.HelpText)
	} else {
		h.println("<no help text>")
	}
}

func (h *Host) displayCommands(commands *cmd.Tree) {
	h.printf("%s commands:\n", commands.Title)
	for _, c := range commands.Commands {
		if c.Brief != "" {
			h.printf("    %-15s  %s\n", c.Name, c.Brief)
		}
	}
}

func (h *Host) resolveIdentifier(s string) (int64, error) {
	s = strings.ToLower(s)

	switch s {
	case "a":
		return int64(h.cpu.Reg.A), nil
	case "x":
		return int64(h.cpu.Reg.X), nil
	case "y":
		return int64(h.cpu.Reg.Y), nil
	case "sp":
		return int64(h.cpu.Reg.SP), nil
	case "pb":
		return int64(h.cpu.Reg.PB), nil
	case "db":
		return int64(h.cpu.Reg.DB), nil
	case "d":
		return int64(h.cpu.Reg.D), nil
	case ".":
		fallthrough
	case "pc":
		return int64(h.cpu.Reg.PC), nil
	}

	return 0, fmt.Errorf("identifier '%s' not found", s)
}

func (h *Host) onBreakpoint(cpu *go65816.CPU, addr go65816.Address) {
	if h.stepOverArmed && addr == h.stepOverAddr {
		h.state = stateStepOverBreakpoint
	} else {
		h.state = stateBreakpoint
		h.printf("Breakpoint hit at $%06X.\n", uint32(addr))
		h.displayPC()
	}
}

func (h *Host) onDataBreakpoint(cpu *go65816.CPU, addr go65816.Address, v byte) {
	h.printf("Data breakpoint hit on address $%06X (value $%02X).\n", uint32(addr), v)

	h.state = stateBreakpoint

	if cpu.LastPC != go65816.Addr(cpu.Reg.PB, cpu.Reg.PC) {
		d, _ := h.disassemble(cpu.LastPC, displayAll)
		h.println(d)
	}

	h.displayPC()
}

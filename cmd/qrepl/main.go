package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/quasi/elab"
	"github.com/npillmayer/quasi/eval"
	"github.com/npillmayer/quasi/runtime"
	"github.com/npillmayer/quasi/stxlang"
	"github.com/npillmayer/quasi/tree"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("Q.REPL"), where users may enter forms
// containing syntax matches and quotations. Q.REPL will elaborate and
// evaluate every form and print out the result.
//
// Please refer to packages "match", "quote" and "stxlang".
//
func main() {
	// set up logging and configuration
	initDisplay()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	namesf := flag.String("names", "", "YAML file declaring global names")
	module := flag.String("module", "", "Name of the current module")
	flag.Parse()
	conf := newFlagConfig()
	conf.Set("tracingsyntax", *tlevel)
	conf.Set("tracinginterpreter", *tlevel)
	conf.Set("names", *namesf)
	conf.Set("module", *module)
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to Q.REPL")   // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up compile context and interpreter
	names, err := loadNames(gconf.GetString("names"))
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	ctx := runtime.NewContext(gconf.GetString("module"), names)
	ctx.Error = func(err error) {
		pterm.Error.Println(err.Error())
	}
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	tracer().Infof("Input argument is \"%s\"", input)
	//
	// set up REPL
	repl, err := readline.New("qrepl> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{
		ctx:  ctx,
		ip:   eval.NewInterpreter(ctx),
		repl: repl,
	}
	if input != "" {
		if _, err = intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func loadNames(filename string) (*runtime.NameTable, error) {
	if filename == "" {
		return runtime.NewNameTable(), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open names file: %w", err)
	}
	defer f.Close()
	names, err := runtime.LoadNameTable(f)
	if err != nil {
		return nil, err
	}
	tracer().Infof("Loaded %d global names from %s", names.Size(), filename)
	tracer().Debugf("Global names: %s", strings.Join(names.Declarations(), " "))
	return names, nil
}

// Intp is our interpreter object
type Intp struct {
	ctx  *runtime.Context
	ip   *eval.Interpreter
	repl *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, ";") {
			lineno++
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %s", lineno, err.Error())
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %s", err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval reads the forms on a line and evaluates them one after the other.
//
func (intp *Intp) Eval(line string) (bool, error) {
	forms, err := stxlang.ParseAll(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	gtrace.SyntaxTracer.Debugf("read %d form(s)", len(forms))
	for _, form := range forms {
		quit, err := intp.evalForm(form)
		if err != nil || quit {
			return quit, err
		}
	}
	return false, nil
}

func (intp *Intp) evalForm(form tree.Tree) (bool, error) {
	args := form.Args()
	switch {
	case tree.IsOfKind(form, "quit"):
		return true, nil
	case tree.IsOfKind(form, "def") && len(args) == 2:
		id, ok := tree.AsIdent(args[0])
		if !ok {
			err := fmt.Errorf("cannot define %s", args[0])
			pterm.Error.Println(err.Error())
			return false, err
		}
		v, err := intp.run(args[1])
		if err != nil {
			return false, err
		}
		intp.ip.Globals.Define(id.Name, v)
		pterm.Info.Println(id.Name + " = " + eval.Format(v))
	case tree.IsOfKind(form, "tree") && len(args) == 1:
		v, err := intp.run(args[0])
		if err != nil {
			return false, err
		}
		t, ok := v.(tree.Tree)
		if !ok {
			pterm.Info.Println(eval.Format(v))
			break
		}
		renderTree("tree", t)
	case tree.IsOfKind(form, "names") && len(args) == 0:
		decls := intp.ctx.Names.Declarations()
		if len(decls) == 0 {
			pterm.Info.Println("no global names declared")
			break
		}
		pterm.Info.Println(strings.Join(decls, " "))
	case tree.IsOfKind(form, "code") && len(args) == 1:
		c, err := elab.Elaborate(intp.ctx, args[0])
		if err != nil {
			return false, err
		}
		renderTree("code", c)
	default:
		v, err := intp.run(form)
		if err != nil {
			return false, err
		}
		pterm.Info.Println(eval.Format(v))
	}
	return false, nil
}

// run elaborates and evaluates a form. Diagnostics of the elaborator are
// printed by the error handler of the compile context.
func (intp *Intp) run(form tree.Tree) (interface{}, error) {
	c, err := elab.Elaborate(intp.ctx, form)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("code = %s", c)
	gtrace.InterpreterTracer.Debugf("evaluating %s", c)
	v, err := intp.ip.Eval(c)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, err
	}
	return v, nil
}

func renderTree(label string, t tree.Tree) {
	pterm.Println(label)
	ll := leveledTree(t, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledTree flattens a tree into a leveled list. Holes and scopes are
// leaves, printed in surface notation.
func leveledTree(t tree.Tree, ll pterm.LeveledList, level int) pterm.LeveledList {
	n, ok := t.(*tree.Node)
	if !ok || tree.IsHole(n) || tree.IsScope(n) || n.Len() == 0 {
		return append(ll, pterm.LeveledListItem{Level: level, Text: t.String()})
	}
	label := string(n.Kind())
	if tree.IsList(n) {
		label = "[]"
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: label})
	for _, ch := range n.Args() {
		ll = leveledTree(ch, ll, level+1)
	}
	return ll
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

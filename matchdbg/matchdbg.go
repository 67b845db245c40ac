/*
Package matchdbg implements helpers to debug values, patterns and matches.

Trees are rendered as indented text with treeprint, and value trees may be
exported as GraphViz diagrams, with captured subtrees highlighted.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package matchdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/treematch/data"
	"github.com/npillmayer/treematch/match"
	"github.com/npillmayer/treematch/pattern"
	tp "github.com/xlab/treeprint"
)

// Bindings is a binding set for the concrete value model.
type Bindings = match.Bindings[*data.Value]

// --- Text trees ------------------------------------------------------------

// ValueTree renders a value as an indented tree.
func ValueTree(v *data.Value) string {
	p := tp.New()
	valueNode(p, v)
	return p.String()
}

func valueNode(p tp.Tree, v *data.Value) {
	if v.IsAtom() {
		p.AddNode(v.String())
		return
	}
	label := "[…]"
	if v.IsCons() {
		label = v.ConsName() + "(…)"
	}
	branch := p.AddBranch(label)
	for _, ch := range v.Children() {
		valueNode(branch, ch)
	}
}

// PatternTree renders a pattern as an indented tree.
func PatternTree(pat pattern.Pattern[data.Atom]) string {
	p := tp.New()
	patternNode(p, pat)
	return p.String()
}

func patternNode(p tp.Tree, pat pattern.Pattern[data.Atom]) {
	var label string
	switch pat.Kind() {
	case pattern.ConsKind:
		label = pat.Name() + "(…)"
	case pattern.ExactKind:
		label = "[…]"
	case pattern.ListPathKind:
		label = "[| … |]"
	case pattern.PathKind:
		label = "{| … |}"
	case pattern.AndKind, pattern.OrKind:
		label = pat.Kind().String()
	default:
		p.AddNode(pat.String())
		return
	}
	branch := p.AddBranch(label)
	for _, q := range pat.Params() {
		patternNode(branch, q)
	}
}

// BindingsTree renders a binding set, one branch per capture.
func BindingsTree(bs Bindings) string {
	p := tp.New()
	for _, b := range bs {
		valueNode(p.AddBranch(b.Name), b.Value)
	}
	return p.String()
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a value tree. The diagram is in
// GraphViz (DOT) format. Subtrees bound in bs (which may be nil) are
// highlighted and labeled with the capture names.
func ToGraphViz(v *data.Value, w io.Writer, bs Bindings) {
	tmpl, err := template.New("value").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("valuenode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(valueNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("valueedge").Parse(valueEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		panic(err)
	}
	captures := make(map[*data.Value][]string, len(bs))
	for _, b := range bs {
		captures[b.Value] = append(captures[b.Value], b.Name)
	}
	dict := make(map[*data.Value]string, 256)
	nodes(v, w, dict, captures, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a value, an optional binding set and a
// testing.T, it will create a GraphViz image of the value tree and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(v *data.Value, bs Bindings, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "value.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing value digraph to %s\n", tmpfile.Name())
	ToGraphViz(v, tmpfile, bs)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	V        *data.Value
	Name     string
	Captures string
}

type edge struct {
	N1, N2 string
	Index  int
}

func nodes(v *data.Value, w io.Writer, dict map[*data.Value]string, captures map[*data.Value][]string,
	gparams *graphParamsType) {
	//
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[v] = name
	n := node{V: v, Name: name, Captures: strings.Join(captures[v], ", ")}
	if err := gparams.NodeTmpl.Execute(w, n); err != nil {
		panic(err)
	}
	for i, ch := range v.Children() {
		nodes(ch, w, dict, captures, gparams)
		if err := gparams.EdgeTmpl.Execute(w, edge{name, dict[ch], i}); err != nil {
			panic(err)
		}
	}
}

func shortText(v *data.Value) string {
	var s string
	switch {
	case v.IsAtom():
		s = v.String()
	case v.IsCons():
		s = v.ConsName() + "(…)"
	default:
		s = fmt.Sprintf("[%d]", v.Len())
	}
	if r := []rune(s); len(r) > 20 {
		s = string(r[:20]) + "..."
	}
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=11] ;
`

const valueNodeTmpl = `{{ if .Captures }}
{{ .Name }}	[ label={{ shortstring .V }} xlabel={{ printf "%q" .Captures }} shape=box style=filled fillcolor=orange fontname="Courier" fontsize=11.0 ] ;
{{ else if .V.IsAtom }}
{{ .Name }}	[ label={{ shortstring .V }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .V }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const valueEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1 label="{{ .Index }}"] ;
`

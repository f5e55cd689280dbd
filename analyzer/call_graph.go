package analyzer

import (
	"fmt"
	"strings"

	"github.com/sarmadiali98/ReLico-sub000/rebeca"

	gv "github.com/awalterschulze/gographviz"
)

// CallSite represents one discovered message send, issued by an
// instance from within one of its handlers. An empty handler name
// denotes the constructor context. Internal sites are self sends and
// carry no callee; external sites carry the instance resolved through
// the sender's known rebec bindings. CallSites are immutable once the
// call graph is built.
type CallSite struct {
	caller        *rebeca.InstanceDecl
	callerHandler string
	message       string
	args          []rebeca.Expr
	internal      bool
	callee        *rebeca.InstanceDecl
	calleeClass   string
	delay         rebeca.Expr
	deadline      rebeca.Expr
	pos           rebeca.Pos
}

// Caller returns the issuing instance.
func (s *CallSite) Caller() *rebeca.InstanceDecl {
	return s.caller
}

// CallerHandler returns the name of the handler containing the send, or
// the empty string for the constructor context.
func (s *CallSite) CallerHandler() string {
	return s.callerHandler
}

// Message returns the name of the target message server.
func (s *CallSite) Message() string {
	return s.message
}

// Args returns the argument expressions in source order.
func (s *CallSite) Args() []rebeca.Expr {
	return s.args
}

// Internal returns whether the site is a self send.
func (s *CallSite) Internal() bool {
	return s.internal
}

// Callee returns the resolved target instance for external sites and
// nil for internal ones.
func (s *CallSite) Callee() *rebeca.InstanceDecl {
	return s.callee
}

// CalleeClass returns the reactive class receiving the message: the
// caller's own class for internal sites, the resolved target's class
// for external ones.
func (s *CallSite) CalleeClass() string {
	return s.calleeClass
}

// Delay returns the verbatim after-clause expression text, or the empty
// string when the send carries no after clause.
func (s *CallSite) Delay() string {
	if s.delay == nil {
		return ""
	}
	return s.delay.String()
}

// DelayInt returns the delay as an integer when the after clause is a
// plain integer literal. Any other delay shape is not statically known
// and reports false.
func (s *CallSite) DelayInt() (int64, bool) {
	lit, ok := s.delay.(*rebeca.IntLit)
	if !ok {
		return 0, false
	}
	return lit.Value(), true
}

// Deadline returns the verbatim deadline-clause expression text, or the
// empty string when the send carries no deadline clause. Deadlines
// appear in the debug dumps; no emitted construct consumes them.
func (s *CallSite) Deadline() string {
	if s.deadline == nil {
		return ""
	}
	return s.deadline.String()
}

// Pos returns the position of the send in the source model.
func (s *CallSite) Pos() rebeca.Pos {
	return s.pos
}

func (s *CallSite) String() string {
	ctx := s.callerHandler
	if ctx == "" {
		ctx = "constructor"
	}
	recv := "self"
	if !s.internal {
		recv = s.callee.Name()
	}
	args := make([]string, len(s.args))
	for i, arg := range s.args {
		args[i] = arg.String()
	}
	str := fmt.Sprintf("[%s] %s.%s(%s)", ctx, recv, s.message, strings.Join(args, ", "))
	if s.delay != nil {
		str += " after(" + s.delay.String() + ")"
	}
	if s.deadline != nil {
		str += " deadline(" + s.deadline.String() + ")"
	}
	return str
}

// CallGraph represents the communication structure of a model: every
// CallSite grouped by issuing instance, plus the instance level edge
// index consumed by the cycle audit and the emitters.
type CallGraph struct {
	model *rebeca.Model

	instanceSites map[string][]*CallSite

	// external sites deduplicated by (message, target, source),
	// keeping the first discovered site of each triple
	externals   []*CallSite
	externalSet map[string]bool

	edgeTargets map[string][]string
	pairSites   map[string]map[string][]*CallSite
}

func newCallGraph(model *rebeca.Model) *CallGraph {
	g := new(CallGraph)
	g.model = model
	g.instanceSites = make(map[string][]*CallSite)
	g.externalSet = make(map[string]bool)
	g.edgeTargets = make(map[string][]string)
	g.pairSites = make(map[string]map[string][]*CallSite)
	return g
}

// Model returns the model the graph was built from.
func (g *CallGraph) Model() *rebeca.Model {
	return g.model
}

// SitesOf returns the ordered CallSites issued by the named instance.
func (g *CallGraph) SitesOf(instance string) []*CallSite {
	return g.instanceSites[instance]
}

// ExternalTriples returns one representative external CallSite per
// distinct (message, target, source) triple, in first discovery order.
// The Composition Emitter derives exactly one connection from each.
func (g *CallGraph) ExternalTriples() []*CallSite {
	return g.externals
}

// Successors returns the instances the named instance sends to, in
// first discovery order, each listed once.
func (g *CallGraph) Successors(instance string) []string {
	return g.edgeTargets[instance]
}

// PairSites returns all external CallSites from source to target.
func (g *CallGraph) PairSites(source, target string) []*CallSite {
	return g.pairSites[source][target]
}

func (g *CallGraph) addSite(site *CallSite) {
	caller := site.caller.Name()
	g.instanceSites[caller] = append(g.instanceSites[caller], site)
	if site.internal {
		return
	}

	target := site.callee.Name()
	if g.pairSites[caller] == nil {
		g.pairSites[caller] = make(map[string][]*CallSite)
	}
	if g.pairSites[caller][target] == nil {
		g.edgeTargets[caller] = append(g.edgeTargets[caller], target)
	}
	g.pairSites[caller][target] = append(g.pairSites[caller][target], site)

	key := site.message + "\x00" + target + "\x00" + caller
	if !g.externalSet[key] {
		g.externalSet[key] = true
		g.externals = append(g.externals, site)
	}
}

// Graph returns a graphviz graph representation of the instance
// communication graph. Nodes are instances, edges are the deduplicated
// external sends labelled with the message name and delay.
func (g *CallGraph) Graph() (*gv.Graph, error) {
	graph := gv.NewGraph()
	if err := graph.SetName("comm"); err != nil {
		return nil, err
	}
	if err := graph.SetDir(true); err != nil {
		return nil, err
	}
	for _, inst := range g.model.Instances() {
		if err := graph.AddNode("comm", inst.Name(), nil); err != nil {
			return nil, err
		}
	}
	for _, site := range g.externals {
		label := site.message
		if site.delay != nil {
			label += " after(" + site.delay.String() + ")"
		}
		attrs := map[string]string{"label": fmt.Sprintf("%q", label)}
		if err := graph.AddEdge(site.caller.Name(), site.callee.Name(), true, attrs); err != nil {
			return nil, err
		}
	}
	return graph, nil
}

func (g *CallGraph) String() string {
	var b strings.Builder

	b.WriteString("Call Sites:\n")
	for _, inst := range g.model.Instances() {
		fmt.Fprintf(&b, "%s (%s)\n", inst.Name(), inst.ClassName())
		for _, site := range g.instanceSites[inst.Name()] {
			fmt.Fprintf(&b, "\t%s\n", site)
		}
	}
	b.WriteString("\n")

	b.WriteString("Connections:\n")
	for _, site := range g.externals {
		fmt.Fprintf(&b, "%s -> %s: %s", site.caller.Name(), site.callee.Name(), site.message)
		if site.delay != nil {
			fmt.Fprintf(&b, " after(%s)", site.delay.String())
		}
		b.WriteString("\n")
	}

	return b.String()
}

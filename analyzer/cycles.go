package analyzer

import (
	"fmt"
	"strings"
)

// AuditCycles enumerates communication cycles in the instance graph and
// reports every cycle that could re-trigger itself without logical time
// advancing. A cycle is time safe only when each of its edges is
// delayed; an edge counts as delayed when every CallSite between its
// two instances carries a strictly positive integer literal after
// clause. The diagnostics are advisory and never abort a translation.
func AuditCycles(g *CallGraph) []error {
	var diagnostics []error

	visited := make(map[string]bool)
	stack := make([]string, 0)
	stackSet := make(map[string]bool)

	var visit func(v string)
	visit = func(v string) {
		visited[v] = true
		stack = append(stack, v)
		stackSet[v] = true

		for _, w := range g.Successors(v) {
			if !visited[w] {
				visit(w)
			} else if stackSet[w] {
				// An edge back to a node on the stack closes a cycle:
				// the stack suffix starting at w.
				i := len(stack) - 1
				for stack[i] != w {
					i--
				}
				cycle := append([]string(nil), stack[i:]...)
				if err := auditCycle(g, cycle); err != nil {
					diagnostics = append(diagnostics, err)
				}
			}
		}

		stack = stack[:len(stack)-1]
		stackSet[v] = false
	}

	for _, inst := range g.Model().Instances() {
		if !visited[inst.Name()] {
			visit(inst.Name())
		}
	}

	return diagnostics
}

func auditCycle(g *CallGraph, cycle []string) error {
	for i, from := range cycle {
		to := cycle[(i+1)%len(cycle)]
		if !edgeDelayed(g, from, to) {
			ring := strings.Join(append(cycle, cycle[0]), " -> ")
			return fmt.Errorf("standalone cycle risk: %s can repeat without logical time advancing (undelayed send %s -> %s)",
				ring, from, to)
		}
	}
	return nil
}

// edgeDelayed reports whether every send from one instance to the next
// carries a strictly positive integer literal delay.
func edgeDelayed(g *CallGraph, from, to string) bool {
	sites := g.PairSites(from, to)
	for _, site := range sites {
		d, ok := site.DelayInt()
		if !ok || d <= 0 {
			return false
		}
	}
	return len(sites) > 0
}

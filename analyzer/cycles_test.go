package analyzer

import (
	"fmt"
	"strings"
	"testing"
)

// ringModel builds a three instance ring r1 -> r2 -> r3 -> r1 where
// each edge carries the given after clause ("" for none).
func ringModel(t *testing.T, d1, d2, d3 string) *CallGraph {
	t.Helper()
	src := fmt.Sprintf(`
reactiveclass R1(5) { knownrebecs { R2 next; } msgsrv tick() { next.tick() %s; } }
reactiveclass R2(5) { knownrebecs { R3 next; } msgsrv tick() { next.tick() %s; } }
reactiveclass R3(5) { knownrebecs { R1 next; } msgsrv tick() { next.tick() %s; } }
main {
	R1 r1(r2):();
	R2 r2(r3):();
	R3 r3(r1):();
}
`, d1, d2, d3)
	model := buildModel(t, src)
	g, warnings := BuildCallGraph(model)
	if len(warnings) != 0 {
		t.Fatalf("BuildCallGraph() warnings: %v", warnings)
	}
	return g
}

func TestAuditCyclesRing(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		delays    [3]string
		wantDiags int
		want      string
	}{
		{
			name:   "fully delayed ring",
			delays: [3]string{"after(2)", "after(1)", "after(3)"},
		},
		{
			name:      "one undelayed edge",
			delays:    [3]string{"after(2)", "", "after(3)"},
			wantDiags: 1,
			want:      "r2 -> r3",
		},
		{
			name:      "zero delay edge",
			delays:    [3]string{"after(2)", "after(1)", "after(0)"},
			wantDiags: 1,
			want:      "r3 -> r1",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := ringModel(t, tc.delays[0], tc.delays[1], tc.delays[2])
			diags := AuditCycles(g)
			if len(diags) != tc.wantDiags {
				t.Fatalf("got %d diagnostics %v, want %d", len(diags), diags, tc.wantDiags)
			}
			if tc.wantDiags == 0 {
				return
			}
			msg := diags[0].Error()
			if !strings.Contains(msg, "standalone cycle risk") {
				t.Errorf("diagnostic %q does not name the risk", msg)
			}
			if !strings.Contains(msg, "r1 -> r2 -> r3 -> r1") {
				t.Errorf("diagnostic %q does not name the ring", msg)
			}
			if !strings.Contains(msg, tc.want) {
				t.Errorf("diagnostic %q does not name the undelayed edge %q", msg, tc.want)
			}
		})
	}
}

func TestAuditCyclesNonLiteralDelay(t *testing.T) {
	t.Parallel()
	model := buildModel(t, `
reactiveclass A(5) {
	knownrebecs { B b; }
	statevars { int d; }
	msgsrv ping() { b.pong() after(d); }
}
reactiveclass B(5) {
	knownrebecs { A a; }
	msgsrv pong() { a.ping() after(2); }
}
main {
	A a(b):();
	B b(a):();
}
`)
	g, _ := BuildCallGraph(model)
	diags := AuditCycles(g)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics %v, want 1 for a statically unknown delay", len(diags), diags)
	}
	if !strings.Contains(diags[0].Error(), "a -> b") {
		t.Errorf("diagnostic %q does not name the unknown delay edge", diags[0])
	}
}

func TestAuditCyclesSelfBinding(t *testing.T) {
	t.Parallel()
	model := buildModel(t, `
reactiveclass Looper(5) {
	knownrebecs { Looper peer; }
	msgsrv tick() { peer.tick(); }
}
main { Looper solo(solo):(); }
`)
	g, _ := BuildCallGraph(model)
	diags := AuditCycles(g)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics %v, want 1 for an undelayed self binding", len(diags), diags)
	}
	if !strings.Contains(diags[0].Error(), "solo -> solo") {
		t.Errorf("diagnostic %q does not name the self loop", diags[0])
	}
}

func TestAuditCyclesAcyclicChain(t *testing.T) {
	t.Parallel()
	model := buildModel(t, `
reactiveclass Head(5) {
	knownrebecs { Tail tail; }
	msgsrv start() { tail.finish(); }
}
reactiveclass Tail(5) {
	msgsrv finish() { }
}
main {
	Head head(tail):();
	Tail tail():();
}
`)
	g, _ := BuildCallGraph(model)
	if diags := AuditCycles(g); len(diags) != 0 {
		t.Errorf("acyclic chain produced diagnostics: %v", diags)
	}
}

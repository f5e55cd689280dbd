package analyzer

import (
	"strings"
	"testing"

	"github.com/sarmadiali98/ReLico-sub000/builder"
	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

func buildModel(t *testing.T, src string) *rebeca.Model {
	t.Helper()
	model, warnings := builder.BuildModel([]byte(src), "test")
	if model == nil {
		t.Fatalf("BuildModel() failed: %v", warnings)
	}
	return model
}

const pingPongSrc = `
reactiveclass Ping(5) {
	knownrebecs { Pong pong; }
	statevars { int count; }
	Ping() {
		self.ping(0);
	}
	msgsrv ping(int round) {
		pong.pong(round) after(1);
	}
}
reactiveclass Pong(5) {
	knownrebecs { Ping ping; }
	msgsrv pong(int round) {
		ping.ping(round + 1) after(2);
	}
}
main {
	Ping ping(pong):();
	Pong pong(ping):();
}
`

func TestBuildCallGraphSites(t *testing.T) {
	t.Parallel()
	model := buildModel(t, pingPongSrc)
	g, warnings := BuildCallGraph(model)
	if len(warnings) != 0 {
		t.Fatalf("BuildCallGraph() warnings: %v", warnings)
	}

	sites := g.SitesOf("ping")
	if len(sites) != 2 {
		t.Fatalf("ping issues %d sites, want 2", len(sites))
	}

	ctorSite := sites[0]
	if !ctorSite.Internal() {
		t.Error("constructor self send classified external")
	}
	if ctorSite.CallerHandler() != "" {
		t.Errorf("constructor site handler %q, want empty", ctorSite.CallerHandler())
	}
	if ctorSite.Message() != "ping" || ctorSite.CalleeClass() != "Ping" {
		t.Errorf("constructor site sends %s to class %s, want ping to Ping", ctorSite.Message(), ctorSite.CalleeClass())
	}
	if ctorSite.Delay() != "" {
		t.Errorf("constructor site delay %q, want none", ctorSite.Delay())
	}

	sendSite := sites[1]
	if sendSite.Internal() {
		t.Error("known rebec send classified internal")
	}
	if sendSite.CallerHandler() != "ping" || sendSite.Message() != "pong" {
		t.Errorf("send site = [%s] %s, want [ping] pong", sendSite.CallerHandler(), sendSite.Message())
	}
	if sendSite.Callee() == nil || sendSite.Callee().Name() != "pong" {
		t.Errorf("send site callee %v, want instance pong", sendSite.Callee())
	}
	if sendSite.CalleeClass() != "Pong" {
		t.Errorf("send site callee class %s, want Pong", sendSite.CalleeClass())
	}
	if sendSite.Delay() != "1" {
		t.Errorf("send site delay %q, want 1", sendSite.Delay())
	}
	if d, ok := sendSite.DelayInt(); !ok || d != 1 {
		t.Errorf("send site DelayInt() = %d, %t, want 1, true", d, ok)
	}
	if len(sendSite.Args()) != 1 || sendSite.Args()[0].String() != "round" {
		t.Errorf("send site args %v, want [round]", sendSite.Args())
	}

	if len(g.ExternalTriples()) != 2 {
		t.Errorf("got %d external triples, want 2", len(g.ExternalTriples()))
	}
	if succ := g.Successors("ping"); len(succ) != 1 || succ[0] != "pong" {
		t.Errorf("ping successors %v, want [pong]", succ)
	}
}

func TestCallGraphTripleDedup(t *testing.T) {
	t.Parallel()
	model := buildModel(t, `
reactiveclass Chooser(5) {
	knownrebecs { Sink sink; }
	statevars { boolean flag; }
	msgsrv choose() {
		if (flag) {
			sink.drop(1);
		} else {
			sink.drop(2);
		}
	}
}
reactiveclass Sink(5) {
	msgsrv drop(int v) { }
}
main {
	Chooser chooser(sink):();
	Sink sink():();
}
`)
	g, warnings := BuildCallGraph(model)
	if len(warnings) != 0 {
		t.Fatalf("BuildCallGraph() warnings: %v", warnings)
	}
	if len(g.ExternalTriples()) != 1 {
		t.Errorf("got %d external triples, want 1 for two branch sends", len(g.ExternalTriples()))
	}
	if sites := g.PairSites("chooser", "sink"); len(sites) != 2 {
		t.Errorf("got %d pair sites, want 2", len(sites))
	}
}

func TestBuildCallGraphWarnings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "unknown message on target",
			src: `
reactiveclass A(2) { knownrebecs { B b; } msgsrv m() { b.ghost(); } }
reactiveclass B(2) { msgsrv n() { } }
main { A a(b):(); B b():(); }
`,
			want: "has no message server ghost",
		},
		{
			name: "missing binding",
			src: `
reactiveclass A(2) { knownrebecs { B b; } msgsrv m() { b.n(); } }
reactiveclass B(2) { msgsrv n() { } }
main { A a():(); B b():(); }
`,
			want: "has no binding for known rebec b",
		},
		{
			name: "unrecognized receiver",
			src: `
reactiveclass A(2) { msgsrv m() { stranger.n(); } }
main { A a():(); }
`,
			want: "neither self nor a known rebec",
		},
		{
			name: "unknown self message",
			src: `
reactiveclass A(2) { msgsrv m() { self.ghost(); } }
main { A a():(); }
`,
			want: "has no message server ghost",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			model, _ := builder.BuildModel([]byte(tc.src), "test")
			if model == nil {
				t.Fatal("BuildModel() failed")
			}
			g, warnings := BuildCallGraph(model)
			if len(warnings) != 1 {
				t.Fatalf("got %d warnings %v, want 1", len(warnings), warnings)
			}
			if !strings.Contains(warnings[0].Error(), tc.want) {
				t.Errorf("warning %q, want it to contain %q", warnings[0], tc.want)
			}
			if len(g.SitesOf("a")) != 0 {
				t.Errorf("a issues %d sites, want the bad send dropped", len(g.SitesOf("a")))
			}
		})
	}
}

func TestMethodCallsAreNotSends(t *testing.T) {
	t.Parallel()
	model := buildModel(t, `
reactiveclass A(2) {
	statevars { int n; }
	msgsrv m() {
		self.bump();
	}
	int bump() {
		n = n + 1;
		return n;
	}
}
main { A a():(); }
`)
	g, warnings := BuildCallGraph(model)
	if len(warnings) != 0 {
		t.Fatalf("BuildCallGraph() warnings: %v", warnings)
	}
	if sites := g.SitesOf("a"); len(sites) != 0 {
		t.Errorf("synchronous method call produced %d sites: %v", len(sites), sites)
	}
}

func TestCallGraphGraph(t *testing.T) {
	t.Parallel()
	model := buildModel(t, pingPongSrc)
	g, _ := BuildCallGraph(model)
	graph, err := g.Graph()
	if err != nil {
		t.Fatalf("Graph() failed: %v", err)
	}
	dot := graph.String()
	if !strings.Contains(dot, "digraph comm") {
		t.Errorf("DOT output missing digraph header:\n%s", dot)
	}
	if !strings.Contains(dot, `label="pong after(1)"`) {
		t.Errorf("DOT output missing labelled edge:\n%s", dot)
	}
}

func TestCallGraphString(t *testing.T) {
	t.Parallel()
	model := buildModel(t, pingPongSrc)
	g, _ := BuildCallGraph(model)
	dump := g.String()
	for _, want := range []string{
		"Call Sites:",
		"ping (Ping)",
		"[constructor] self.ping(0)",
		"[ping] pong.pong(round) after(1)",
		"Connections:",
		"ping -> pong: pong after(1)",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("String() output missing %q:\n%s", want, dump)
		}
	}
}

func TestCallSiteDeadline(t *testing.T) {
	t.Parallel()
	model := buildModel(t, `
reactiveclass A(2) { knownrebecs { B b; } msgsrv m() { b.n(1) after(2) deadline(5); } }
reactiveclass B(2) { msgsrv n(int v) { } }
main { A a(b):(); B b():(); }
`)
	g, warnings := BuildCallGraph(model)
	if len(warnings) != 0 {
		t.Fatalf("BuildCallGraph() warnings: %v", warnings)
	}
	sites := g.SitesOf("a")
	if len(sites) != 1 {
		t.Fatalf("a issues %d sites, want 1", len(sites))
	}
	if sites[0].Deadline() != "5" {
		t.Errorf("site deadline %q, want 5", sites[0].Deadline())
	}
	if got := sites[0].String(); !strings.Contains(got, "b.n(1) after(2) deadline(5)") {
		t.Errorf("site renders %q, want deadline clause retained", got)
	}
}

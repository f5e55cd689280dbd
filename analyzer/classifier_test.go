package analyzer

import (
	"strings"
	"testing"

	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

func classify(t *testing.T, src string) (*Classification, []error) {
	t.Helper()
	model := buildModel(t, src)
	g, warnings := BuildCallGraph(model)
	if len(warnings) != 0 {
		t.Fatalf("BuildCallGraph() warnings: %v", warnings)
	}
	return Classify(model, g)
}

func handlerNames(handlers []*rebeca.MsgSrv) []string {
	names := make([]string, len(handlers))
	for i, h := range handlers {
		names[i] = h.Name()
	}
	return names
}

func TestClassifyPartition(t *testing.T) {
	t.Parallel()
	model := buildModel(t, `
reactiveclass A(5) {
	knownrebecs { B b; }
	statevars { int n; }
	A() {
		self.start();
	}
	msgsrv start() {
		self.step();
		b.done();
	}
	msgsrv step() {
		n = n + 1;
	}
	msgsrv notify() { }
}
reactiveclass B(5) {
	knownrebecs { A a; }
	msgsrv done() {
		a.notify();
	}
}
main {
	A a(b):();
	B b(a):();
}
`)
	g, _ := BuildCallGraph(model)
	c, warnings := Classify(model, g)
	if len(warnings) != 0 {
		t.Fatalf("Classify() warnings: %v", warnings)
	}

	a := model.ClassNamed("A")
	internal := handlerNames(c.InternalHandlers(a))
	external := handlerNames(c.ExternalHandlers(a))
	if got, want := strings.Join(internal, ","), "start,step"; got != want {
		t.Errorf("A internal handlers %q, want %q", got, want)
	}
	if got, want := strings.Join(external, ","), "notify"; got != want {
		t.Errorf("A external handlers %q, want %q", got, want)
	}

	b := model.ClassNamed("B")
	if got := handlerNames(c.InternalHandlers(b)); len(got) != 0 {
		t.Errorf("B internal handlers %v, want none", got)
	}
	if got := handlerNames(c.ExternalHandlers(b)); len(got) != 1 || got[0] != "done" {
		t.Errorf("B external handlers %v, want [done]", got)
	}

	// internal and external together cover each class's handlers exactly
	for _, cls := range model.Classes() {
		in := c.InternalHandlers(cls)
		ex := c.ExternalHandlers(cls)
		if len(in)+len(ex) != len(cls.MsgSrvs()) {
			t.Errorf("%s: partition covers %d handlers, class has %d",
				cls.Name(), len(in)+len(ex), len(cls.MsgSrvs()))
		}
		for _, srv := range in {
			for _, other := range ex {
				if srv.Name() == other.Name() {
					t.Errorf("%s.%s classified both internal and external", cls.Name(), srv.Name())
				}
			}
		}
	}
}

func TestClassifySelfSendInsideExpression(t *testing.T) {
	t.Parallel()
	model := buildModel(t, `
reactiveclass A(5) {
	statevars { boolean armed; int n; }
	msgsrv probe() {
		n = self.weigh(2);
		if (armed) {
			self.fire();
		}
	}
	msgsrv weigh(int k) { }
	msgsrv fire() { }
}
main { A a():(); }
`)
	g, warnings := BuildCallGraph(model)
	if len(warnings) != 0 {
		t.Fatalf("BuildCallGraph() warnings: %v", warnings)
	}
	c, warnings := Classify(model, g)
	if len(warnings) != 0 {
		t.Fatalf("Classify() warnings: %v", warnings)
	}
	// the nested self.weigh(2) counts for classification even though it
	// is no statement level send and therefore produced no CallSite
	if !c.IsInternal("A", "weigh") {
		t.Error("self send inside an assignment not counted for classification")
	}
	if len(g.SitesOf("a")) != 1 {
		t.Errorf("a issues %d sites, want only the statement level self.fire()", len(g.SitesOf("a")))
	}
	if !c.IsInternal("A", "fire") {
		t.Error("self send inside a conditional not counted for classification")
	}
	if c.IsInternal("A", "probe") {
		t.Error("probe is never self sent, want external")
	}
}

func TestClassifyDualUseWarning(t *testing.T) {
	t.Parallel()
	c, warnings := classify(t, `
reactiveclass A(5) {
	knownrebecs { B b; }
	A() {
		self.poke();
	}
	msgsrv poke() {
		b.nudge();
	}
}
reactiveclass B(5) {
	knownrebecs { A a; }
	msgsrv nudge() {
		a.poke();
	}
}
main {
	A a(b):();
	B b(a):();
}
`)
	if !c.IsInternal("A", "poke") {
		t.Error("self sent handler classified external despite external senders")
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings %v, want 1", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0].Error(), "A.poke") {
		t.Errorf("warning %q does not name A.poke", warnings[0])
	}
}

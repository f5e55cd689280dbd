package lf

import (
	"testing"
)

func TestProgramAsLF(t *testing.T) {
	t.Parallel()

	p := NewProgram("Cpp")
	s := p.AddStruct("Pong_pong_t")
	s.AddField("round", "int")

	ping := p.AddReactor("Ping")
	ping.AddParameter("limit", "int", "0")
	ping.AddState("round_ping", "int", "0")
	ping.AddInput("ack_from_pong_to_ping", "int")
	ping.AddOutput("pong_to_pong_from_ping", "Pong_pong_t")
	ping.AddAction("ping")
	internal := ping.AddReaction()
	internal.AddTrigger("ping")
	internal.AddEffect("pong_to_pong_from_ping")
	internal.AddBodyLine("pong_to_pong_from_ping.set(Pong_pong_t{ round_ping });")
	startup := ping.AddReaction()
	startup.AddTrigger("startup")
	startup.AddEffect("ping")
	startup.AddBodyLine("round_ping = 0;")
	startup.AddBodyLine("ping.schedule(0s);")
	external := ping.AddReaction()
	external.AddTrigger("ack_from_pong_to_ping")

	pong := p.AddReactor("Pong")
	pong.AddInput("pong_from_ping_to_pong", "Pong_pong_t")

	p.AddInstantiation("ping", "Ping").AddArgument("limit", "3")
	p.AddInstantiation("pong", "Pong")
	conn := p.AddConnection("ping", "pong_to_pong_from_ping", "pong", "pong_from_ping_to_pong")
	conn.SetDelay("1 sec")

	want := `target Cpp;

public preamble {=
    struct Pong_pong_t {
        int round;
    };
=}

reactor Ping(limit: int(0)) {
    state round_ping: int(0);
    input ack_from_pong_to_ping: int;
    output pong_to_pong_from_ping: Pong_pong_t;
    logical action ping: void;
    reaction(ping) -> pong_to_pong_from_ping {=
        pong_to_pong_from_ping.set(Pong_pong_t{ round_ping });
    =}
    reaction(startup) -> ping {=
        round_ping = 0;
        ping.schedule(0s);
    =}
    reaction(ack_from_pong_to_ping) {=
    =}
}

reactor Pong {
    input pong_from_ping_to_pong: Pong_pong_t;
}

main reactor {
    ping = new Ping(limit = 3);
    pong = new Pong();
    ping.pong_to_pong_from_ping -> pong.pong_from_ping_to_pong after 1 sec;
}
`
	if got := p.AsLF(); got != want {
		t.Errorf("Program.AsLF() = %q, want %q", got, want)
	}
}

func TestProgramWithoutPreamble(t *testing.T) {
	t.Parallel()

	p := NewProgram("Cpp")
	p.AddReactor("Sink")
	want := "target Cpp;\n\nreactor Sink {\n}\n\nmain reactor {\n}\n"
	if got := p.AsLF(); got != want {
		t.Errorf("Program.AsLF() = %q, want %q", got, want)
	}
}

func TestConnectionAsLF(t *testing.T) {
	t.Parallel()

	p := NewProgram("Cpp")
	a := p.AddReactor("A")
	a.AddOutput("out", "int")
	b := p.AddReactor("B")
	b.AddInput("in", "int")
	p.AddInstantiation("a", "A")
	p.AddInstantiation("b", "B")

	conn := p.AddConnection("a", "out", "b", "in")
	if got, want := conn.AsLF(), "a.out -> b.in;"; got != want {
		t.Errorf("Connection.AsLF() = %q, want %q", got, want)
	}
	conn.SetDelay("2 sec")
	if got, want := conn.AsLF(), "a.out -> b.in after 2 sec;"; got != want {
		t.Errorf("Connection.AsLF() = %q, want %q", got, want)
	}
}

func TestReactionDeduplicatesTriggersAndEffects(t *testing.T) {
	t.Parallel()

	reaction := newReaction()
	reaction.AddTrigger("a")
	reaction.AddTrigger("b")
	reaction.AddTrigger("a")
	reaction.AddEffect("x")
	reaction.AddEffect("x")
	reaction.AddEffect("y")

	if got, want := len(reaction.Triggers()), 2; got != want {
		t.Errorf("got %d triggers, want %d", got, want)
	}
	if got, want := len(reaction.Effects()), 2; got != want {
		t.Errorf("got %d effects, want %d", got, want)
	}
	want := "    reaction(a, b) -> x, y {=\n    =}\n"
	if got := reaction.AsLF(); got != want {
		t.Errorf("Reaction.AsLF() = %q, want %q", got, want)
	}
}

func TestMemberNameCollisionPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when reusing a member name")
		}
	}()
	r := NewProgram("Cpp").AddReactor("A")
	r.AddState("n", "int", "0")
	r.AddInput("n", "int")
}

func TestReactorNameCollisionPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when reusing a reactor name")
		}
	}()
	p := NewProgram("Cpp")
	p.AddReactor("A")
	p.AddReactor("A")
}

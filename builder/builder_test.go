package builder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildModelWarnings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "binding count mismatch",
			src: `
reactiveclass Ping(2) { knownrebecs { Pong pong; } msgsrv ping() { } }
reactiveclass Pong(2) { msgsrv pong() { } }
main { Ping p():(); Pong q():(); }
`,
			want: "binds 0 known rebecs",
		},
		{
			name: "unknown binding target",
			src: `
reactiveclass Ping(2) { knownrebecs { Pong pong; } msgsrv ping() { } }
reactiveclass Pong(2) { msgsrv pong() { } }
main { Ping p(ghost):(); Pong q():(); }
`,
			want: "unknown instance ghost",
		},
		{
			name: "binding class mismatch",
			src: `
reactiveclass A(2) { knownrebecs { B b; } msgsrv m() { } }
reactiveclass B(2) { msgsrv m() { } }
reactiveclass C(2) { msgsrv m() { } }
main { A a(c):(); B bb():(); C c():(); }
`,
			want: "expected B",
		},
		{
			name: "undeclared class",
			src: `
reactiveclass A(2) { msgsrv m() { } }
main { A a():(); Ghost g():(); }
`,
			want: "undeclared reactiveclass Ghost",
		},
		{
			name: "duplicate class",
			src: `
reactiveclass A(2) { msgsrv m() { } }
reactiveclass A(2) { msgsrv m() { } }
main { A a():(); }
`,
			want: "duplicate reactiveclass A",
		},
		{
			name: "duplicate instance",
			src: `
reactiveclass A(2) { msgsrv m() { } }
main { A a():(); A a():(); }
`,
			want: "duplicate instance a",
		},
		{
			name: "constructor arity",
			src: `
reactiveclass A(2) { A(int x) { } msgsrv m() { } }
main { A a():(1, 2); }
`,
			want: "passes 2 constructor arguments",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			model, warnings := BuildModel([]byte(tc.src), "test")
			if model == nil {
				t.Fatalf("BuildModel() failed: %v", warnings)
			}
			if len(warnings) != 1 {
				t.Fatalf("got %d warnings %v, want 1", len(warnings), warnings)
			}
			if !strings.Contains(warnings[0].Error(), tc.want) {
				t.Errorf("warning %q, want it to contain %q", warnings[0], tc.want)
			}
		})
	}
}

func TestBuildModelClean(t *testing.T) {
	t.Parallel()
	model, warnings := BuildModel([]byte(pingPongSrc), "pingpong")
	if model == nil {
		t.Fatalf("BuildModel() failed: %v", warnings)
	}
	if len(warnings) != 0 {
		t.Errorf("got warnings %v, want none", warnings)
	}
	if model.Name() != "pingpong" {
		t.Errorf("model name %q, want pingpong", model.Name())
	}
}

func TestBuildModelParseFailure(t *testing.T) {
	t.Parallel()
	model, errs := BuildModel([]byte("reactiveclass C { msgsrv m( { } }"), "broken")
	if model != nil {
		t.Fatal("BuildModel() returned a model for malformed input")
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors %v, want 1", len(errs), errs)
	}
	if !strings.Contains(errs[0].Error(), "^") {
		t.Errorf("error %q carries no source snippet", errs[0])
	}
}

func TestBuildFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "pingpong.rebeca")
	if err := os.WriteFile(path, []byte(pingPongSrc), 0644); err != nil {
		t.Fatal(err)
	}
	model, warnings := BuildFile(path)
	if model == nil {
		t.Fatalf("BuildFile() failed: %v", warnings)
	}
	if model.Name() != "pingpong" {
		t.Errorf("model name %q, want pingpong", model.Name())
	}

	model, errs := BuildFile(filepath.Join(dir, "missing.rebeca"))
	if model != nil || len(errs) != 1 {
		t.Fatalf("BuildFile() on missing file: model %v, errors %v", model, errs)
	}
	if !strings.Contains(errs[0].Error(), "could not read file") {
		t.Errorf("error %q, want it to mention the unreadable file", errs[0])
	}
}

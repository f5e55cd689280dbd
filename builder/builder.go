// Package builder turns Timed Rebeca source text into a rebeca.Model.
//
// Building happens in two stages: the lexer and parser produce the
// model structure, then the builder cross checks the main block against
// the declared reactive classes. Structural problems in the main block
// are reported as warnings and never abort the build; only lex and
// parse failures do.
package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

type builder struct {
	model    *rebeca.Model
	warnings []error
}

func (b *builder) addWarning(err error) {
	b.warnings = append(b.warnings, err)
}

// BuildFile builds the model contained in the file at path. The model
// name is the file name without its extension. The returned model is
// nil if and only if the file could not be read or parsed; the error
// slice then holds the failure. Otherwise the slice holds any
// validation warnings.
func BuildFile(path string) (*rebeca.Model, []error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{fmt.Errorf("could not read file: %v", err)}
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	model, warnings := buildModel(src, name, path)
	return model, warnings
}

// BuildModel builds the model in src. The name becomes the model name
// and, downstream, the name of the generated main reactor.
func BuildModel(src []byte, name string) (*rebeca.Model, []error) {
	return buildModel(src, name, "")
}

func buildModel(src []byte, name, file string) (*rebeca.Model, []error) {
	toks, err := NewLexer(string(src)).Scan()
	if err != nil {
		return nil, []error{WrapWithSource(err, string(src), file)}
	}
	model, err := parse(toks, name)
	if err != nil {
		return nil, []error{WrapWithSource(err, string(src), file)}
	}
	b := &builder{model: model}
	b.validate()
	return model, b.warnings
}

func (b *builder) validate() {
	b.checkUniqueNames()
	for _, inst := range b.model.Instances() {
		b.checkInstance(inst)
	}
}

func (b *builder) checkUniqueNames() {
	seenClasses := make(map[string]bool)
	for _, cls := range b.model.Classes() {
		if seenClasses[cls.Name()] {
			b.addWarning(fmt.Errorf("duplicate reactiveclass %s, keeping the first declaration", cls.Name()))
		}
		seenClasses[cls.Name()] = true
	}
	seenInstances := make(map[string]bool)
	for _, inst := range b.model.Instances() {
		if seenInstances[inst.Name()] {
			b.addWarning(fmt.Errorf("duplicate instance %s in main, keeping the first declaration", inst.Name()))
		}
		seenInstances[inst.Name()] = true
	}
}

func (b *builder) checkInstance(inst *rebeca.InstanceDecl) {
	cls := b.model.ClassNamed(inst.ClassName())
	if cls == nil {
		b.addWarning(fmt.Errorf("instance %s refers to undeclared reactiveclass %s", inst.Name(), inst.ClassName()))
		return
	}
	known := cls.KnownRebecs()
	bindings := inst.Bindings()
	if len(bindings) != len(known) {
		b.addWarning(fmt.Errorf("instance %s binds %d known rebecs, reactiveclass %s declares %d",
			inst.Name(), len(bindings), cls.Name(), len(known)))
	}
	for i, target := range bindings {
		if i >= len(known) {
			break
		}
		targetDecl := b.model.InstanceNamed(target)
		if targetDecl == nil {
			b.addWarning(fmt.Errorf("instance %s binds %s to unknown instance %s",
				inst.Name(), known[i].Name(), target))
			continue
		}
		if targetDecl.ClassName() != known[i].Type() {
			b.addWarning(fmt.Errorf("instance %s binds %s to %s of reactiveclass %s, expected %s",
				inst.Name(), known[i].Name(), target, targetDecl.ClassName(), known[i].Type()))
		}
	}
	b.checkConstructorArgs(inst, cls)
}

func (b *builder) checkConstructorArgs(inst *rebeca.InstanceDecl, cls *rebeca.ReactiveClass) {
	ctor := cls.Constructor()
	wantArgs := 0
	if ctor != nil {
		wantArgs = len(ctor.Params())
	}
	if len(inst.Args()) != wantArgs {
		b.addWarning(fmt.Errorf("instance %s passes %d constructor arguments, reactiveclass %s takes %d",
			inst.Name(), len(inst.Args()), cls.Name(), wantArgs))
	}
}

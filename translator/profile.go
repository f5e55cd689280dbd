package translator

import (
	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

// constructorProfile determines which state variables of a class become
// reactor parameters: those assigned directly from a constructor
// parameter by a top-level statement of the constructor body. All other
// state variables stay plain reactor state.
type constructorProfile struct {
	class  *rebeca.ReactiveClass
	params []*profileParam

	paramsByStateVar map[string]*profileParam
	stateVarBySource map[string]string
}

// profileParam is a state variable promoted to a reactor parameter,
// supplied positionally by the constructor argument at argIndex.
type profileParam struct {
	stateVar *rebeca.Field
	source   string
	argIndex int
}

// StateVar returns the promoted state variable.
func (p *profileParam) StateVar() *rebeca.Field {
	return p.stateVar
}

// ArgIndex returns the constructor parameter position that supplies the
// parameter's value.
func (p *profileParam) ArgIndex() int {
	return p.argIndex
}

func newConstructorProfile(cls *rebeca.ReactiveClass) *constructorProfile {
	profile := new(constructorProfile)
	profile.class = cls
	profile.paramsByStateVar = make(map[string]*profileParam)
	profile.stateVarBySource = make(map[string]string)

	ctor := cls.Constructor()
	if ctor == nil || ctor.Body() == nil {
		return profile
	}
	for _, stmt := range ctor.Body().Stmts() {
		assign, ok := stmt.(*rebeca.AssignStmt)
		if !ok {
			continue
		}
		svName := assignedStateVarName(assign.Lhs())
		if svName == "" || cls.StateVarNamed(svName) == nil {
			continue
		}
		if _, ok := profile.paramsByStateVar[svName]; ok {
			continue
		}
		source, ok := assign.Rhs().(*rebeca.Ident)
		if !ok || ctor.ParamIndex(source.Name()) < 0 {
			continue
		}
		param := &profileParam{
			stateVar: cls.StateVarNamed(svName),
			source:   source.Name(),
			argIndex: ctor.ParamIndex(source.Name()),
		}
		profile.params = append(profile.params, param)
		profile.paramsByStateVar[svName] = param
		if _, ok := profile.stateVarBySource[source.Name()]; !ok {
			profile.stateVarBySource[source.Name()] = svName
		}
	}
	return profile
}

// Params returns the promoted state variables in the order their
// assignments appear in the constructor body.
func (profile *constructorProfile) Params() []*profileParam {
	return profile.params
}

// IsParam reports whether the named state variable is promoted to a
// reactor parameter.
func (profile *constructorProfile) IsParam(stateVar string) bool {
	_, ok := profile.paramsByStateVar[stateVar]
	return ok
}

// MappedStateVar returns the name of the state variable holding the
// named constructor parameter's value, if the profile promoted one.
func (profile *constructorProfile) MappedStateVar(ctorParam string) (string, bool) {
	svName, ok := profile.stateVarBySource[ctorParam]
	return svName, ok
}

// assignedStateVarName returns the state variable name an assignment
// target refers to: a bare identifier or a self member access. Other
// target shapes return the empty string.
func assignedStateVarName(lhs rebeca.Expr) string {
	switch lhs := lhs.(type) {
	case *rebeca.Ident:
		return lhs.Name()
	case *rebeca.DotExpr:
		if recv, ok := lhs.Recv().(*rebeca.Ident); ok && recv.Name() == "self" {
			return lhs.Member()
		}
	}
	return ""
}

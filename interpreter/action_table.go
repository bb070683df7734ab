package interpreter

import (
	"sort"

	"moon-go/ast"
)

type Action struct {
	name_   string
	params_ []string
	body_   ast.Block
}

func NewAction(def *ast.Action) *Action {
	ret := Action{}
	ret.name_ = def.Name
	ret.params_ = def.Params
	ret.body_ = def.Body
	return &ret
}

func (this *Action) Name() string {
	return this.name_
}

func (this *Action) Params() []string {
	return this.params_
}

// ActionTable holds every defined action. It is global for a run; a later
// definition replaces an earlier one of the same name.
type ActionTable struct {
	actions_ map[string]*Action
}

func NewActionTable() *ActionTable {
	ret := ActionTable{}
	ret.actions_ = make(map[string]*Action)
	return &ret
}

func (this *ActionTable) AddAction(action *Action) {
	this.actions_[action.name_] = action
}

func (this *ActionTable) LookupAction(name string) *Action {
	return this.actions_[name]
}

// / Names of all defined actions, sorted.
func (this *ActionTable) Names() []string {
	names := make([]string, 0, len(this.actions_))
	for name := range this.actions_ {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (this *ActionTable) Snapshot() map[string]*Action {
	ret := make(map[string]*Action, len(this.actions_))
	for k, v := range this.actions_ {
		ret[k] = v
	}
	return ret
}

func (this *ActionTable) Restore(snapshot map[string]*Action) {
	this.actions_ = make(map[string]*Action, len(snapshot))
	for k, v := range snapshot {
		this.actions_[k] = v
	}
}

package interpreter

import (
	"github.com/ahrtr/gocontainer/set"
)

// BindingEnv is a scope of variable bindings. The top-level scope has no
// parent. An action call gets a child scope of its caller: reads fall
// through to the caller, and writes to names the caller already knows are
// held back until Commit.
type BindingEnv struct {
	bindings_ map[string]Value
	parent_   *BindingEnv
	touched_  set.Interface // caller names assigned in this scope
}

func NewBindingEnv() *BindingEnv {
	ret := BindingEnv{}
	ret.bindings_ = make(map[string]Value)
	ret.touched_ = set.New()
	return &ret
}

func NewBindingEnvWithParent(parent *BindingEnv) *BindingEnv {
	ret := NewBindingEnv()
	ret.parent_ = parent
	return ret
}

func (this *BindingEnv) LookupVariable(name string) (Value, bool) {
	if v, ok := this.bindings_[name]; ok {
		return v, true
	}
	if this.parent_ != nil {
		return this.parent_.LookupVariable(name)
	}
	return Null, false
}

// / Bind name in this scope only, shadowing any caller binding.
func (this *BindingEnv) AddBinding(key string, val Value) {
	this.bindings_[key] = val
}

// / Assign implements "name is value".
func (this *BindingEnv) Assign(name string, val Value) {
	if _, ok := this.bindings_[name]; !ok && this.parent_ != nil {
		if _, known := this.parent_.LookupVariable(name); known {
			this.touched_.Add(name)
		}
	}
	this.bindings_[name] = val
}

// / Commit writes assignments to caller variables back to the parent.
// / Names first created in this scope do not leak.
func (this *BindingEnv) Commit() {
	if this.parent_ == nil {
		return
	}
	for name, val := range this.bindings_ {
		if this.touched_.Contains(name) {
			this.parent_.Assign(name, val)
		}
	}
}

// / Snapshot copies this scope's own bindings.
func (this *BindingEnv) Snapshot() map[string]Value {
	ret := make(map[string]Value, len(this.bindings_))
	for k, v := range this.bindings_ {
		ret[k] = v
	}
	return ret
}

func (this *BindingEnv) Restore(snapshot map[string]Value) {
	this.bindings_ = make(map[string]Value, len(snapshot))
	for k, v := range snapshot {
		this.bindings_[k] = v
	}
}

func (this *BindingEnv) Len() int {
	return len(this.bindings_)
}

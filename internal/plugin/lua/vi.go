package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input/key"
	"github.com/dshills/vimode/internal/input/mode"
)

// ModuleName is the global table installed by Register.
const ModuleName = "vi"

// Binder receives the binding changes made by a script.
type Binder interface {
	Bind(m mode.Mode, mods key.Modifier, code key.Code, ev edit.Event)
	Unbind(m mode.Mode, mods key.Modifier, code key.Code) bool
	Mode() mode.Mode
}

// viModule implements the vi table.
type viModule struct {
	binder Binder
}

// Register installs the vi table in s, applying changes to b.
func Register(s *State, b Binder) {
	m := &viModule{binder: b}
	s.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"bind":             m.bind,
		"bind_edits":       m.bindEdits,
		"bind_until_found": m.bindUntilFound,
		"unbind":           m.unbind,
		"mode":             m.mode,
	})
}

// RunFile runs the script at path with a vi table bound to b.
func RunFile(path string, b Binder, opts ...StateOption) error {
	s := NewState(opts...)
	defer s.Close()

	Register(s, b)
	return s.DoFile(path)
}

// bind(mode, key, event)
func (m *viModule) bind(L *lua.LState) int {
	md, k := checkTarget(L)
	name := L.CheckString(3)

	ev, err := edit.ParseEvent(name, nil)
	if err != nil {
		L.ArgError(3, err.Error())
		return 0
	}
	m.binder.Bind(md, k.Modifiers, k.Code(), ev)
	return 0
}

// bind_edits(mode, key, {commands})
func (m *viModule) bindEdits(L *lua.LState) int {
	md, k := checkTarget(L)
	specs := checkStrings(L, 3)
	if len(specs) == 0 {
		L.ArgError(3, "at least one edit command expected")
		return 0
	}

	ev, err := edit.ParseEvent("", specs)
	if err != nil {
		L.ArgError(3, err.Error())
		return 0
	}
	m.binder.Bind(md, k.Modifiers, k.Code(), ev)
	return 0
}

// bind_until_found(mode, key, {events})
func (m *viModule) bindUntilFound(L *lua.LState) int {
	md, k := checkTarget(L)
	names := checkStrings(L, 3)
	if len(names) == 0 {
		L.ArgError(3, "at least one event expected")
		return 0
	}

	events := make([]edit.Event, 0, len(names))
	for _, name := range names {
		ev, err := edit.ParseEvent(name, nil)
		if err != nil {
			L.ArgError(3, err.Error())
			return 0
		}
		events = append(events, ev)
	}
	m.binder.Bind(md, k.Modifiers, k.Code(), edit.UntilFound(events...))
	return 0
}

// unbind(mode, key) -> bool
func (m *viModule) unbind(L *lua.LState) int {
	md, k := checkTarget(L)
	L.Push(lua.LBool(m.binder.Unbind(md, k.Modifiers, k.Code())))
	return 1
}

// mode() -> string
func (m *viModule) mode(L *lua.LState) int {
	L.Push(lua.LString(m.binder.Mode().String()))
	return 1
}

// checkTarget reads the mode and key arguments.
func checkTarget(L *lua.LState) (mode.Mode, key.Event) {
	md, err := mode.Parse(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	k, err := key.Parse(L.CheckString(2))
	if err != nil {
		L.ArgError(2, err.Error())
	}
	return md, k
}

// checkStrings reads a table argument holding a list of strings.
func checkStrings(L *lua.LState, n int) []string {
	tbl := L.CheckTable(n)
	out := make([]string, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		s, ok := tbl.RawGetInt(i).(lua.LString)
		if !ok {
			L.ArgError(n, "list of strings expected")
		}
		out = append(out, string(s))
	}
	return out
}

package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimode/internal/logging"
)

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	// Open base library (print, type, pairs, ipairs, etc.)
	lua.OpenBase(L)

	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Not opened: io, os, debug, package
}

// installSandbox removes the functions that load code from outside the
// script and routes print to the logger.
func installSandbox(L *lua.LState, logger *logging.Logger) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		logger.Info("%s", strings.Join(parts, "\t"))
		return 0
	}))
}

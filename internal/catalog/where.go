package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// whereTimeout bounds a single predicate evaluation.
var whereTimeout = 500 * time.Millisecond

const sandboxTimeoutMessage = "sandbox timeout"

// Where keeps the entries for which the Lua predicate is truthy. The
// predicate sees the global table `entry` with klid, driver, language, name
// and aliases. A bare expression is evaluated as `return (<expr>)`.
func Where(entries []Entry, predicate string) ([]Entry, error) {
	L := newSandboxState()
	defer L.Close()

	fn, err := compilePredicate(L, predicate)
	if err != nil {
		return nil, fmt.Errorf("where: %v", err)
	}
	out := []Entry{}
	for _, e := range entries {
		ok, err := evalPredicate(L, fn, e)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// compilePredicate tries the code as an expression first, then as a chunk.
func compilePredicate(L *lua.LState, code string) (*lua.LFunction, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		code = "true"
	}
	if fn, err := L.LoadString("return (" + code + "\n)"); err == nil {
		return fn, nil
	}
	return L.LoadString(code)
}

func evalPredicate(L *lua.LState, fn *lua.LFunction, e Entry) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), whereTimeout)
	defer cancel()
	L.SetContext(ctx)
	defer L.RemoveContext()

	L.SetGlobal("entry", entryTable(L, e))
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return false, fmt.Errorf("where: %s", sandboxTimeoutMessage)
		}
		return false, fmt.Errorf("where: %s: %v", e.KLID, err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret), nil
}

// newSandboxState opens only the base, string, table and math libraries,
// without file loading.
func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.TabLibName, lua.OpenTable},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

func entryTable(L *lua.LState, e Entry) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("klid", lua.LString(e.KLID))
	tbl.RawSetString("driver", lua.LString(e.Driver))
	tbl.RawSetString("language", lua.LString(e.Language))
	tbl.RawSetString("name", lua.LString(e.Name))
	aliases := L.NewTable()
	for i, a := range e.Aliases {
		aliases.RawSetInt(i+1, lua.LString(a))
	}
	tbl.RawSetString("aliases", aliases)
	return tbl
}

package pluginlua

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestStateSandboxClosesDangerousGlobals(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.LoadString(`
		if os ~= nil then error("os should not be open") end
		if io ~= nil then error("io should not be open") end
		if dofile ~= nil then error("dofile should be nil") end
	`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
}

func TestStateLoadStringAfterClose(t *testing.T) {
	s := NewState()
	s.Close()

	if err := s.LoadString("x = 1"); err != ErrStateClosed {
		t.Errorf("LoadString after Close = %v, want ErrStateClosed", err)
	}
}

func TestStateLoadStringSyntaxError(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.LoadString("this is not lua ((("); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestStateExecuteRecoversPanic(t *testing.T) {
	s := NewState()
	defer s.Close()

	err := s.Execute(func(l *lua.LState) error {
		panic("boom")
	})
	if err == nil {
		t.Fatal("expected Execute to recover the panic as an error")
	}
}

func TestStateExecuteAfterClose(t *testing.T) {
	s := NewState()
	s.Close()

	err := s.Execute(func(l *lua.LState) error { return nil })
	if err != ErrStateClosed {
		t.Errorf("Execute after Close = %v, want ErrStateClosed", err)
	}
}

func TestStateExecuteSeesPriorGlobals(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.LoadString("answer = 42"); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	var answer int
	err := s.Execute(func(l *lua.LState) error {
		answer = int(l.GetGlobal("answer").(lua.LNumber))
		return nil
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if answer != 42 {
		t.Errorf("answer = %d, want 42", answer)
	}
}

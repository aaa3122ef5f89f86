package demo

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/msto63/musterwerk/internal/console"
	"github.com/msto63/musterwerk/internal/menu"
	"github.com/msto63/musterwerk/internal/patterns/singleton"
)

func newTestEnv(input string) (*Env, *bytes.Buffer) {
	var out bytes.Buffer
	return NewEnv(console.New(strings.NewReader(input), &out)), &out
}

func TestNewRegistry_Order(t *testing.T) {
	env, _ := newTestEnv("")
	reg := NewRegistry(env)

	want := []string{
		"0.Singleton_Instance",
		"1.Factory_Instance",
		"2.Abstract_Factory",
		"3.Builder_Instance",
		"4.Prototype_Instance",
		"5.Object_Pool_Instance",
		"6.Chain_of_command",
		"7.Command_Pattern",
		"8.Interpreter_Pattern",
	}

	entries := reg.Entries()
	if len(entries) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Label() != want[i] {
			t.Errorf("entry %d Label() = %q, want %q", i, e.Label(), want[i])
		}
		if e.Action == nil {
			t.Errorf("entry %d has no action", i)
		}
	}

	if entries[5].Category != menu.CategoryCreational || entries[6].Category != menu.CategoryBehavioral {
		t.Error("categories should split after the object pool")
	}
}

func TestSingleton(t *testing.T) {
	env, out := newTestEnv("hola mundo\n")

	if err := Singleton(env); err != nil {
		t.Fatalf("Singleton() error = %v", err)
	}

	if !strings.Contains(out.String(), "This is the stream\nhola mundo\n") {
		t.Errorf("output = %q", out.String())
	}
	if singleton.Instance().Message() != "hola mundo" {
		t.Errorf("holder message = %q", singleton.Instance().Message())
	}
}

func TestSingleton_RepeatedRunsShareInstance(t *testing.T) {
	first, _ := newTestEnv("first\n")
	second, _ := newTestEnv("second\n")

	_ = Singleton(first)
	holder := singleton.Instance()
	_ = Singleton(second)

	if singleton.Instance() != holder {
		t.Fatal("second run should reuse the holder")
	}
	if holder.Message() != "second" {
		t.Errorf("Message() = %q, want second", holder.Message())
	}
}

func TestFactory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"circle", "0\n", "Drawing circle"},
		{"square", "1\n", "Drawing square"},
		{"rectangle", "2\n", "Drawing rectangle"},
		{"unknown", "7\n", ""},
		{"retry then square", "square\n1\n", "Drawing square"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, out := newTestEnv(tt.input)
			if err := Factory(env); err != nil {
				t.Fatalf("Factory() error = %v", err)
			}

			if tt.want == "" {
				if strings.Contains(out.String(), "Drawing") {
					t.Errorf("unknown id should not draw, got %q", out.String())
				}
				return
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.want)
			}
		})
	}
}

func TestAbstractFactory(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		unsupported bool
	}{
		{"basic circle", "0\n0\n", "Drawing circle", false},
		{"advanced cube", "1\n1\n", "Drawing cube", false},
		{"advanced unknown shape", "1\n9\n", "", false},
		{"unsupported family", "5\n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, out := newTestEnv(tt.input)
			if err := AbstractFactory(env); err != nil {
				t.Fatalf("AbstractFactory() error = %v", err)
			}

			got := out.String()
			if tt.unsupported {
				if !strings.Contains(got, "Selected factory is not supported") {
					t.Errorf("missing unsupported notice: %q", got)
				}
				if strings.Contains(got, "Enter the item id") {
					t.Error("demo should stop before asking for an item")
				}
				return
			}
			if tt.want == "" && strings.Contains(got, "Drawing") {
				t.Errorf("unknown shape should not draw, got %q", got)
			}
			if tt.want != "" && !strings.Contains(got, tt.want) {
				t.Errorf("output = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	env, out := newTestEnv("")
	if err := Builder(env); err != nil {
		t.Fatalf("Builder() error = %v", err)
	}

	want := "0 1 2 3 4 5 6 7 8 9 10 2 4 6 8 10\nabcdefghijkcegik\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestPrototype(t *testing.T) {
	env, out := newTestEnv("")
	if err := Prototype(env); err != nil {
		t.Fatalf("Prototype() error = %v", err)
	}

	for _, want := range []string{"ID: 5", "Name: NuevoPrototipo", "Flags: 0xFF0FF000", "Enabled: true", "Tags: [creational copy]"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q: %q", want, out.String())
		}
	}
	if strings.Contains(out.String(), "changed") {
		t.Error("changing the original must not reach the clone")
	}
}

func TestObjectPool(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{"unbounded", -1},
		{"bounded", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, out := newTestEnv("")
			env.Pool.Capacity = tt.capacity

			if err := ObjectPool(env); err != nil {
				t.Fatalf("ObjectPool() error = %v", err)
			}

			got := out.String()
			for _, want := range []string{"Hola Mundo", "Es un nuevo mundo", "Reused same instance: true (created 1, reused 1)"} {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q: %q", want, got)
				}
			}
		})
	}
}

func TestChainOfResponsibility(t *testing.T) {
	env, out := newTestEnv("")
	if err := ChainOfResponsibility(env); err != nil {
		t.Fatalf("ChainOfResponsibility() error = %v", err)
	}

	want := "*ST* *S *N* PR**V* P*R* V*R S* *ST* F*NC**N*\nHandled by: upper -> vowels -> print\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestCommand(t *testing.T) {
	env, out := newTestEnv("")
	if err := Command(env); err != nil {
		t.Fatalf("Command() error = %v", err)
	}

	got := out.String()
	numbers := strings.Index(got, "112 114 117 101 118 97")
	upper := strings.Index(got, "PRUEVA")
	if numbers < 0 || upper < 0 {
		t.Fatalf("output missing command effects: %q", got)
	}
	if numbers > upper {
		t.Error("numbers command must run before uppercase command")
	}
	if !strings.Contains(got, "1. write-as-numbers") || !strings.Contains(got, "2. write-as-uppercase") {
		t.Errorf("history missing from output: %q", got)
	}
}

func TestInterpreter(t *testing.T) {
	env, out := newTestEnv("10\n")
	if err := Interpreter(env); err != nil {
		t.Fatalf("Interpreter() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Value in binary is: 1010\n") {
		t.Errorf("binary line missing: %q", got)
	}
	if !strings.Contains(got, "Value in hex is: A\n") {
		t.Errorf("hex line missing: %q", got)
	}
}

func TestDemos_EOF(t *testing.T) {
	prompting := map[string]func(*Env) error{
		"singleton":        Singleton,
		"factory":          Factory,
		"abstract factory": AbstractFactory,
		"interpreter":      Interpreter,
	}

	for name, fn := range prompting {
		t.Run(name, func(t *testing.T) {
			env, _ := newTestEnv("")
			if err := fn(env); !errors.Is(err, io.EOF) {
				t.Errorf("error = %v, want io.EOF", err)
			}
		})
	}
}

func TestRegistry_EndToEnd(t *testing.T) {
	env, out := newTestEnv("3\ny\n42\nn\n")
	loop := menu.NewLoop(NewRegistry(env), env.Prompter)

	if err := loop.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "abcdefghijkcegik") {
		t.Error("builder demo should have run")
	}
	// 42 clamps to the interpreter, which then reads "n" as a malformed value
	if !strings.Contains(got, "\"n\" is not a number") {
		t.Errorf("interpreter should reject the answer as a value: %q", got)
	}
	if loop.Runs() != 2 {
		t.Errorf("Runs() = %d, want 2", loop.Runs())
	}
}

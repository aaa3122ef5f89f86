package command

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReceiver_Operations(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want string
	}{
		{"numbers", OpWriteAsNumbers, "112 114 117 101 118 97\n"},
		{"uppercase", OpWriteAsUppercase, "PRUEVA\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(NewReceiver("prueva", &buf), tt.op).Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestInvoker_ExecutesInOrder(t *testing.T) {
	var buf bytes.Buffer
	receiver := NewReceiver("prueva", &buf)
	invoker := NewInvoker()

	first := New(receiver, OpWriteAsNumbers)
	second := New(receiver, OpWriteAsUppercase)

	if err := invoker.AddAndExecute(first); err != nil {
		t.Fatalf("AddAndExecute() error = %v", err)
	}
	if err := invoker.AddAndExecute(second); err != nil {
		t.Fatalf("AddAndExecute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %v, want 2", lines)
	}
	if lines[0] != "112 114 117 101 118 97" || lines[1] != "PRUEVA" {
		t.Errorf("side effects out of order: %v", lines)
	}

	history := invoker.History()
	if len(history) != 2 {
		t.Fatalf("History() len = %d, want 2", len(history))
	}
	if history[0].ID != first.ID || history[1].ID != second.ID {
		t.Error("History() should list commands in execution order")
	}
	if history[0].Operation != OpWriteAsNumbers || history[1].Operation != OpWriteAsUppercase {
		t.Errorf("History() operations = %v, %v", history[0].Operation, history[1].Operation)
	}
}

func TestCommand_UnknownOperation(t *testing.T) {
	var buf bytes.Buffer
	invoker := NewInvoker()

	err := invoker.AddAndExecute(New(NewReceiver("x", &buf), Operation(42)))
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("AddAndExecute() error = %v, want ErrUnknownOperation", err)
	}
	if len(invoker.History()) != 0 {
		t.Error("failed commands must not be recorded")
	}
	if buf.Len() != 0 {
		t.Error("unknown operation must not touch the receiver")
	}
}

func TestCommand_UniqueIDs(t *testing.T) {
	r := NewReceiver("x", &bytes.Buffer{})
	if New(r, OpWriteAsNumbers).ID == New(r, OpWriteAsNumbers).ID {
		t.Error("commands should get distinct IDs")
	}
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op       Operation
		expected string
	}{
		{OpWriteAsNumbers, "write-as-numbers"},
		{OpWriteAsUppercase, "write-as-uppercase"},
		{Operation(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.expected {
			t.Errorf("Operation(%d).String() = %v, want %v", tt.op, got, tt.expected)
		}
	}
}

func TestInvoker_HistoryIsCopy(t *testing.T) {
	invoker := NewInvoker()
	_ = invoker.AddAndExecute(New(NewReceiver("x", &bytes.Buffer{}), OpWriteAsUppercase))

	h := invoker.History()
	h[0].Operation = OpWriteAsNumbers

	if invoker.History()[0].Operation != OpWriteAsUppercase {
		t.Error("mutating History() result must not change the invoker")
	}
}

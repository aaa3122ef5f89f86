package demo

import (
	"strings"

	"github.com/msto63/musterwerk/internal/patterns/chain"
	"github.com/msto63/musterwerk/internal/patterns/command"
	"github.com/msto63/musterwerk/internal/patterns/interpreter"
)

// ChainInput is the sentence sent through the chain demonstration
const ChainInput = "Esta es una prueva para ver si esto funciona"

// ReceiverMessage is the message owned by the command demonstration's receiver
const ReceiverMessage = "prueva"

// ChainOfResponsibility sends a sentence through three links and shows the
// path it took
func ChainOfResponsibility(env *Env) error {
	p := env.Prompter

	c := chain.New(env.Logger.Named("chain"), chain.UpperCase(), chain.MaskVowels())
	c.Register(chain.Printer(p.Out()))
	env.Logger.Debug("Chain assembled", "handlers", strings.Join(c.Names(), ","))

	req := chain.NewRequest(ChainInput)
	if err := c.Process(req); err != nil {
		return err
	}
	p.Printf("Handled by: %s\n", strings.Join(req.Trail, " -> "))
	return nil
}

// Command binds two operations to one receiver and runs them in order
func Command(env *Env) error {
	p := env.Prompter
	invoker := command.NewInvoker()
	receiver := command.NewReceiver(ReceiverMessage, p.Out())

	for _, op := range []command.Operation{command.OpWriteAsNumbers, command.OpWriteAsUppercase} {
		if err := invoker.AddAndExecute(command.New(receiver, op)); err != nil {
			return err
		}
	}

	p.Println()
	for i, rec := range invoker.History() {
		p.Printf("%d. %s [%s]\n", i+1, rec.Operation, rec.ID)
		env.Logger.Debug("Command executed", "id", rec.ID.String(), "operation", rec.Operation.String())
	}
	return nil
}

// Interpreter prints a user value in binary and in hex
func Interpreter(env *Env) error {
	p := env.Prompter

	value, err := p.Int("Enter Value")
	if err != nil {
		return err
	}
	p.Println("processing... ")

	ctx := interpreter.NewContext(int64(value))

	p.Printf("Value in binary is: ")
	interpreter.NewBinary().Interpret(ctx)
	ctx.Flush(p.Out())

	p.Printf("Value in hex is: ")
	interpreter.NewHex().Interpret(ctx)
	ctx.Flush(p.Out())
	return nil
}

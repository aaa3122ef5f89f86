package demo

import (
	"fmt"

	"github.com/msto63/musterwerk/internal/patterns/builder"
	"github.com/msto63/musterwerk/internal/patterns/factory"
	"github.com/msto63/musterwerk/internal/patterns/pool"
	"github.com/msto63/musterwerk/internal/patterns/prototype"
	"github.com/msto63/musterwerk/internal/patterns/singleton"
)

// BuilderInput is the sequence rendered by the builder demonstration
var BuilderInput = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 2, 4, 6, 8, 10}

// Singleton stores a user message in the process-wide holder and reads it back
func Singleton(env *Env) error {
	p := env.Prompter

	msg, err := p.Line("Enter a message to print")
	if err != nil {
		return err
	}

	singleton.Instance().Put(msg)
	p.Println("\n\nThis is the stream")
	singleton.Instance().Print(p.Out())

	env.Logger.Debug("Singleton message stored", "writes", singleton.Instance().Writes())
	return nil
}

// Factory creates one shape from the basic factory by id
func Factory(env *Env) error {
	p := env.Prompter

	id, err := p.Int("\nEnter the item id to create")
	if err != nil {
		return err
	}

	shape, ok := factory.BasicFactory{}.CreateShape(id)
	if !ok {
		env.Logger.Debug("No shape for id", "id", id)
		return nil
	}
	shape.Draw(p.Out())
	return nil
}

// AbstractFactory selects a factory family first, then a shape from it
func AbstractFactory(env *Env) error {
	p := env.Prompter

	familyID, err := p.Int("\nEnter the factory id to use")
	if err != nil {
		return err
	}

	f, ok := factory.NewFactory(factory.Family(familyID))
	if !ok {
		p.Println("Selected factory is not supported")
		return nil
	}

	id, err := p.Int("\nEnter the item id to create")
	if err != nil {
		return err
	}

	shape, ok := f.CreateShape(id)
	if !ok {
		env.Logger.Debug("No shape for id", "family", f.Family().String(), "id", id)
		return nil
	}
	shape.Draw(p.Out())
	return nil
}

// Builder renders the same sequence with two builders side by side
func Builder(env *Env) error {
	numbers := builder.NewReader(&builder.NumberBuilder{}).Build(BuilderInput)
	chars := builder.NewReader(&builder.CharacterBuilder{}).Build(BuilderInput)

	env.Prompter.Println(numbers)
	env.Prompter.Println(chars)
	return nil
}

// Prototype clones a fully initialised object and prints the clone
func Prototype(env *Env) error {
	original := prototype.NewAdvanced(5, "NuevoPrototipo", 0xFF0FF000, true, "creational", "copy")
	clone := original.Clone()

	// The clone keeps its own state once the original changes
	original.Name = ""
	original.Flags = 0
	original.Tags[0] = "changed"

	clone.Print(env.Prompter.Out())
	return nil
}

// ObjectPool acquires a buffer, releases it and acquires again to show reuse
func ObjectPool(env *Env) error {
	p := env.Prompter
	objects := pool.New(env.Pool, pool.NewStringBuffer)
	env.Logger.Debug("Pool created", "capacity", objects.Capacity())

	first, err := objects.Acquire()
	if err != nil {
		return fmt.Errorf("acquire: %w", err)
	}
	first.Flush()
	first.Set("Hola Mundo")
	p.Printf("Acquired %s: %s\n", first.ID(), first)
	if err := objects.Release(first); err != nil {
		return fmt.Errorf("release: %w", err)
	}

	second, err := objects.Acquire()
	if err != nil {
		return fmt.Errorf("acquire: %w", err)
	}
	second.Flush()
	second.Set("Es un nuevo mundo")
	p.Printf("Acquired %s: %s\n", second.ID(), second)
	second.Flush()
	if err := objects.Release(second); err != nil {
		return fmt.Errorf("release: %w", err)
	}

	stats := objects.Stats()
	p.Printf("Reused same instance: %t (created %d, reused %d)\n", first == second, stats.Created, stats.Reused)
	return nil
}

// Package demo wires the pattern packages into the nine menu
// demonstrations. Each demonstration builds its objects, exercises the
// pattern, prints the result and returns.
package demo

import (
	"github.com/msto63/musterwerk/internal/console"
	"github.com/msto63/musterwerk/internal/menu"
	"github.com/msto63/musterwerk/internal/patterns/pool"
	"github.com/msto63/musterwerk/pkg/core/logging"
)

// Env is what a demonstration needs from its surroundings
type Env struct {
	Prompter *console.Prompter
	Logger   *logging.Logger

	// Pool configures the object pool demonstration
	Pool pool.Config
}

// NewEnv creates an environment with an unbounded pool and a silent logger
func NewEnv(p *console.Prompter) *Env {
	return &Env{
		Prompter: p,
		Logger:   logging.Nop(),
		Pool:     pool.DefaultConfig(),
	}
}

// NewRegistry returns the demonstrations in menu order
func NewRegistry(env *Env) *menu.Registry {
	bind := func(fn func(*Env) error) menu.Action {
		return func() error { return fn(env) }
	}

	return menu.NewRegistry(
		menu.Entry{Name: "Singleton_Instance", Category: menu.CategoryCreational, Action: bind(Singleton)},
		menu.Entry{Name: "Factory_Instance", Category: menu.CategoryCreational, Action: bind(Factory)},
		menu.Entry{Name: "Abstract_Factory", Category: menu.CategoryCreational, Action: bind(AbstractFactory)},
		menu.Entry{Name: "Builder_Instance", Category: menu.CategoryCreational, Action: bind(Builder)},
		menu.Entry{Name: "Prototype_Instance", Category: menu.CategoryCreational, Action: bind(Prototype)},
		menu.Entry{Name: "Object_Pool_Instance", Category: menu.CategoryCreational, Action: bind(ObjectPool)},
		menu.Entry{Name: "Chain_of_command", Category: menu.CategoryBehavioral, Action: bind(ChainOfResponsibility)},
		menu.Entry{Name: "Command_Pattern", Category: menu.CategoryBehavioral, Action: bind(Command)},
		menu.Entry{Name: "Interpreter_Pattern", Category: menu.CategoryBehavioral, Action: bind(Interpreter)},
	)
}

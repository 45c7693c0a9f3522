package clue

import (
	"context"
	"fmt"
)

// Engine is a text-generation backend able to produce a clue for a word.
type Engine interface {
	Name() string
	GetModel() string
	Clue(ctx context.Context, word string) (Result, error)
}

type Engines struct {
	Gemini Engine
	OpenAI Engine
}

func (e *Engines) GetEngine(name string) (Engine, error) {
	switch name {
	case "gemini":
		if e.Gemini != nil {
			return e.Gemini, nil
		}
	case "gpt":
		if e.OpenAI != nil {
			return e.OpenAI, nil
		}
	}
	return nil, fmt.Errorf("unknown or unconfigured engine %q", name)
}

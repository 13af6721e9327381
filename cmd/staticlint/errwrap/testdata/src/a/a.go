package a

import (
	"errors"
	"fmt"
)

var errBase = errors.New("base")

func wrapped() error {
	return fmt.Errorf("failed to load: %w", errBase)
}

func flattened() error {
	return fmt.Errorf("failed to load: %v", errBase) // want `error formatted with %v; use %w to keep it in the chain`
}

func asString(code string) error {
	return fmt.Errorf("code %s: %s", code, errBase) // want `error formatted with %s; use %w to keep it in the chain`
}

func message(err error) error {
	return fmt.Errorf("unexpected: %v", err.Error())
}

func twice() error {
	return fmt.Errorf("%w: %w", errBase, errBase)
}

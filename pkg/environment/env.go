package environment

import "github.com/nikmy/txcommand/pkg/errors"

type Env int

const (
	Unknown Env = iota
	Development
	Production
)

func FromString(s string) Env {
	switch s {
	case "dev":
		return Development
	case "prod":
		return Production
	default:
		return Unknown
	}
}

func (e Env) String() string {
	switch e {
	case Development:
		return "dev"
	case Production:
		return "prod"
	default:
		return ""
	}
}

// Set and Type make Env usable as a command line flag value.
func (e *Env) Set(s string) error {
	env := FromString(s)
	if env == Unknown {
		return errors.Errorf("unknown environment %q, want dev or prod", s)
	}

	*e = env
	return nil
}

func (e *Env) Type() string {
	return "env"
}

func (e *Env) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	*e = FromString(raw)
	return nil
}

package tools

import (
	"github.com/cohesivestack/valgo"
	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
	"github.com/theapemachine/mcp-server-gravatar/pkg/identity"
)

func validate(validation *valgo.Validation) error {
	if validation.Valid() {
		return nil
	}

	return errors.InvalidInput(validation.Error())
}

func requireEmail(email string) *valgo.ValidatorString[string] {
	return valgo.String(email, "email").Not().Blank()
}

func requireIdentifier(id, name string) *valgo.ValidatorString[string] {
	return valgo.String(id, name).Not().Blank()
}

// Unknown field names are not rejected; they project to null.
func requireField(field string) *valgo.ValidatorString[string] {
	return valgo.String(field, "field").Not().Blank()
}

func optionalKey(key, name string) *valgo.ValidatorString[string] {
	return valgo.String(key, name).Passing(func(v string) bool {
		return v == "" || identity.IsKey(v)
	}, "{{title}} must be a SHA256 hex digest")
}

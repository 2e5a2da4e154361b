package mocks

import (
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

func errUnexpectedPath(got, want string) error {
	return errors.Newf(errors.CodeInternal, "save called with path %s, expected %s", got, want)
}

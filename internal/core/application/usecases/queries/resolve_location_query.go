package queries

import (
	"errors"
	"strings"

	"foodjourney/internal/pkg/errs"
	"foodjourney/internal/pkg/guard"
)

var (
	ErrResolveLocationQueryIsNotConstructed = errors.New(
		"ResolveLocationQuery must be created via NewResolveLocationQuery constructor",
	)
	ErrQueryIsRequired = errs.NewValueIsRequiredError("query")
)

// ResolveLocationQuery maps free text to a registered entity.
type ResolveLocationQuery struct { //nolint:recvcheck //using for validation
	text string

	guard guard.ConstructorGuard
}

// NewResolveLocationQuery rejects blank text. Surrounding whitespace is trimmed.
func NewResolveLocationQuery(text string) (ResolveLocationQuery, error) {
	q := ResolveLocationQuery{guard: guard.NewConstructorGuard()}
	if err := q.setText(text); err != nil {
		return ResolveLocationQuery{}, err
	}
	return q, nil
}

func (q ResolveLocationQuery) Validate() error {
	return q.guard.Validate(ErrResolveLocationQueryIsNotConstructed)
}

func (q ResolveLocationQuery) Text() string {
	return q.text
}

func (q *ResolveLocationQuery) setText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrQueryIsRequired
	}
	q.text = text
	return nil
}

package apperr

import (
	"errors"
	"fmt"
)

// Kind clasifica un error. Los handlers deciden el status HTTP a partir del Kind,
// nunca a partir del mensaje ni de la causa.
type Kind uint8

const (
	KindUnknown Kind = iota

	// input
	KindMissingParameters
	KindParse
	KindInvalidParameters
	KindInvalidInput
	KindUnauthorized

	// storage
	KindNotFound
	KindStorage
	KindDuplicateKey

	// people
	KindPersonNotFound
	KindGetPeople
	KindGetPerson
	KindCreatePerson
	KindUpdatePerson
	KindDeletePerson
	KindAddPet

	// moderation
	KindModeration
	KindValidateBadWords

	// accounts
	KindCreateAccount
	KindDuplicateAccount
	KindGetAccount
	KindWrongPassword
	KindLogin
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindMissingParameters: "missing parameters",
	KindParse:             "cannot parse parameter",
	KindInvalidParameters: "invalid parameters",
	KindInvalidInput:      "invalid input",
	KindUnauthorized:      "unauthorized",
	KindNotFound:          "record not found",
	KindStorage:           "storage error",
	KindDuplicateKey:      "duplicate key",
	KindPersonNotFound:    "person not found",
	KindGetPeople:         "cannot get people",
	KindGetPerson:         "cannot get person",
	KindCreatePerson:      "cannot create person",
	KindUpdatePerson:      "cannot update person",
	KindDeletePerson:      "cannot delete person",
	KindAddPet:            "cannot add pet",
	KindModeration:        "moderation error",
	KindValidateBadWords:  "cannot validate bad words",
	KindCreateAccount:     "cannot create account",
	KindDuplicateAccount:  "account already registered",
	KindGetAccount:        "cannot get account",
	KindWrongPassword:     "wrong password",
	KindLogin:             "cannot login",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// Error es el único tipo de error que cruza capas: Kind + operación + causa opcional.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, msg, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", msg, e.Err)
	default:
		return msg
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is compara por Kind, así errors.Is(err, &Error{Kind: KindNotFound}) funciona
// sin importar Op, Msg o causa.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Public devuelve el texto apto para clientes (sin detalle de infraestructura).
func (e *Error) Public() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Kind.String()
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf devuelve el Kind del *Error más externo de la cadena.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reporta si algún error de la cadena tiene el Kind indicado.
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, &Error{Kind: kind})
}

// As es errors.As restringido a *Error.
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

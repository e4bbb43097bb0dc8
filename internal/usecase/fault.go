package usecase

import "errors"

// Store-level sentinels. Repositories return these; services translate
// them into a Fault carrying the client-facing message.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

type FaultKind int

const (
	FaultInvalidInput FaultKind = iota
	FaultConflict
	FaultNotFound
	FaultUnauthorized
	FaultForbidden
)

// Fault is the tagged failure every rule operation returns for expected
// business conditions. Code is the short machine title, Message the
// human detail; handlers dispatch Kind into an HTTP status.
type Fault struct {
	Kind    FaultKind
	Code    string
	Message string
}

func (f *Fault) Error() string {
	return f.Code + ": " + f.Message
}

func InvalidInput(code, message string) *Fault {
	return &Fault{Kind: FaultInvalidInput, Code: code, Message: message}
}

func Conflict(code, message string) *Fault {
	return &Fault{Kind: FaultConflict, Code: code, Message: message}
}

func NotFound(code, message string) *Fault {
	return &Fault{Kind: FaultNotFound, Code: code, Message: message}
}

func Unauthorized(code, message string) *Fault {
	return &Fault{Kind: FaultUnauthorized, Code: code, Message: message}
}

func Forbidden(code, message string) *Fault {
	return &Fault{Kind: FaultForbidden, Code: code, Message: message}
}

// AsFault unwraps err into a Fault when it carries one.
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork indica falha de transporte ou status HTTP diferente de 2xx
	ErrNetwork = errors.New("crm network error")

	// ErrParse indica JSON malformado vindo do CRM ou do cache
	ErrParse = errors.New("malformed payload")

	// ErrNoData indica que não há dado algum (nem cache) para montar a métrica
	ErrNoData = errors.New("no data available")

	// ErrSuperseded indica que um filtro mais recente substituiu esta requisição
	ErrSuperseded = errors.New("result superseded by a newer request")

	ErrInvalidFilter = errors.New("invalid filter")
)

// CRMError carrega o contexto de uma falha ao consultar o CRM
type CRMError struct {
	Kind       error  // ErrNetwork ou ErrParse
	Collection string // coleção consultada
	StatusCode int    // status HTTP, quando houver
	Err        error  // erro original
}

func (e *CRMError) Error() string {
	msg := fmt.Sprintf("%s: collection=%s", e.Kind.Error(), e.Collection)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s status=%d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

func (e *CRMError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewNetworkError(collection string, status int, err error) *CRMError {
	return &CRMError{Kind: ErrNetwork, Collection: collection, StatusCode: status, Err: err}
}

func NewParseError(collection string, err error) *CRMError {
	return &CRMError{Kind: ErrParse, Collection: collection, Err: err}
}

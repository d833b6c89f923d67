package parser

import "io"

// Parser decodes a provider response body into a list of records
type Parser[T any] interface {
	Parse(body io.Reader) ([]T, error)
}

// SingleResultParser decodes a provider response body into one record
type SingleResultParser[T any] interface {
	Parse(body io.Reader) (T, error)
}

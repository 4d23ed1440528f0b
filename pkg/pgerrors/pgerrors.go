// Package pgerrors распознает коды ошибок PostgreSQL в цепочке ошибок.
package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL
const (
	// CodeUniqueViolation нарушение уникального ограничения (класс 23)
	CodeUniqueViolation = "23505"
	// CodeSerializationFailure конфликт сериализуемых транзакций (класс 40)
	CodeSerializationFailure = "40001"
)

// IsCode проверяет, есть ли в цепочке err ошибка PostgreSQL с заданным кодом
func IsCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}

// IsUniqueViolation проверяет нарушение уникального индекса или ограничения
func IsUniqueViolation(err error) bool {
	return IsCode(err, CodeUniqueViolation)
}

// IsSerializationFailure проверяет конфликт сериализации (40001).
// Такую ошибку нельзя заворачивать через %v: менеджер транзакций должен
// увидеть её в цепочке и повторить транзакцию.
func IsSerializationFailure(err error) bool {
	return IsCode(err, CodeSerializationFailure)
}

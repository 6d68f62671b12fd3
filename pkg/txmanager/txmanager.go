package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/suphotsudsee/queue-booking-app-v2/pkg/dbmetrics"
)

// Код ошибки PostgreSQL для сбоя сериализации (конфликт SSI)
const pqSerializationFailure = "40001"

// maxSerializationAttempts предел повторов транзакции при сбое сериализации
const maxSerializationAttempts = 3

// TransactionManager управляет транзакциями поверх обёртки с метриками
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn внутри транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn внутри сериализуемой транзакции
// Используется там, где read-then-write последовательность должна быть атомарной
// (например, проверка занятости слота перед созданием записи).
// Сбой сериализации (40001) приводит к повтору всей транзакции;
// повторный проход видит зафиксированные конкурентом данные
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn внутри read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	return withSerializationRetry(func() error {
		return m.runOnce(ctx, opts, fn)
	})
}

func (m *TransactionManager) runOnce(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback after error %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}

	return nil
}

// withSerializationRetry повторяет attempt при сбое сериализации,
// не более maxSerializationAttempts раз. Любая другая ошибка,
// включая бизнес-ошибки из fn, возвращается сразу без повтора.
// Исчерпание повторов возвращает последнюю ошибку 40001
func withSerializationRetry(attempt func() error) error {
	var err error
	for i := 0; i < maxSerializationAttempts; i++ {
		err = attempt()
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// isSerializationFailure распознает сбой сериализации PostgreSQL
// как в ошибке fn, так и в ошибке коммита
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqSerializationFailure
}

package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

var (
	// ErrDuplicateKey 唯一约束冲突
	ErrDuplicateKey = errors.New("唯一约束冲突")
	// ErrForeignKey 外键引用的记录不存在
	ErrForeignKey = errors.New("外键引用的记录不存在")
)

// Classify 将驱动层错误归类为 ErrDuplicateKey / ErrForeignKey。
// 无法识别的错误原样返回，nil 返回 nil。
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return ErrDuplicateKey
		case codeForeignKeyViolation:
			return ErrForeignKey
		}
	}

	return err
}

// IsDuplicateKey 是否唯一约束冲突
func IsDuplicateKey(err error) bool {
	return errors.Is(Classify(err), ErrDuplicateKey)
}

// IsForeignKey 是否外键约束冲突
func IsForeignKey(err error) bool {
	return errors.Is(Classify(err), ErrForeignKey)
}

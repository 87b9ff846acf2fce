package database

import (
	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"

	apperrors "github.com/allisson/inventory/internal/errors"
)

const (
	// mysqlNoReferencedRow is ER_NO_REFERENCED_ROW, raised by older MySQL and MariaDB builds.
	mysqlNoReferencedRow = 1216
	// mysqlNoReferencedRow2 is ER_NO_REFERENCED_ROW_2.
	mysqlNoReferencedRow2 = 1452
	// postgresForeignKeyViolation is SQLSTATE foreign_key_violation.
	postgresForeignKeyViolation = "23503"
)

// IsForeignKeyViolation reports whether err was raised by the engine because a
// referencing column points at a row that does not exist.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *mysql.MySQLError
	if apperrors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlNoReferencedRow || mysqlErr.Number == mysqlNoReferencedRow2
	}

	var pqErr *pq.Error
	if apperrors.As(err, &pqErr) {
		return pqErr.Code == postgresForeignKeyViolation
	}

	return false
}

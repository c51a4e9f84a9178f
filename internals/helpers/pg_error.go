package helper

import "errors"

// Driver postgres (pgx) mengembalikan *pgconn.PgError; cukup cocokkan
// lewat interface SQLState supaya tidak terikat tipe konkret driver.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsUniqueViolation: cek error Postgres 23505 (unique_violation),
// dipakai untuk menerjemahkan bentrok index unik jadi 409.
func IsUniqueViolation(err error) bool {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}

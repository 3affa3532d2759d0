package repository

import (
	"github.com/doug-martin/goqu/v9"
	// Postgres dialect registration for goqu
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

var pg = goqu.Dialect("postgres")

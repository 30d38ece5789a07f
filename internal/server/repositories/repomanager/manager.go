package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/wifikeeper/internal/dbx"
	"github.com/dmitrijs2005/wifikeeper/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/wifikeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Credentials(db dbx.DBTX) credentials.Repository
}

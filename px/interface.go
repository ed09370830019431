package px

//go:generate mockgen -source interface.go -destination interface_mock.go -package px
//go:generate mockgen -package px -destination pgx_mock.go github.com/jackc/pgx/v5 Tx

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// ITransactionBeginner is the subset of pgx.Conn, pgxpool.Conn and
// pgxpool.Pool interfaces used to start transactions.
type ITransactionBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

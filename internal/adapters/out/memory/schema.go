// Package memory provides the default order store: a go-memdb database with
// id and status indexes and a Unit of Work built on its write transactions.
//
//	db, err := memory.NewDB()
//	factory := memory.NewUnitOfWorkFactory(db)
//
// Write transactions are serialized by go-memdb; a Unit of Work that has
// begun holds the writer lock until Commit or Rollback.
package memory

import (
	"github.com/hashicorp/go-memdb"
)

const (
	ordersTable = "orders"
	indexID     = "id"
	indexStatus = "status"
)

// NewDB creates an empty order database.
func NewDB() (*memdb.MemDB, error) {
	return memdb.NewMemDB(schema())
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			ordersTable: {
				Name: ordersTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexStatus: {
						Name:    indexStatus,
						Indexer: &memdb.IntFieldIndex{Field: "Status"},
					},
				},
			},
		},
	}
}

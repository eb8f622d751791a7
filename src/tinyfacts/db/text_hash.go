package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jonbodner/proteus"
)

var TextHashDAO TextHashDAOImpl

type TextHashDAOImpl struct {
	Upsert    func(ctx context.Context, e proteus.ContextExecutor, mid int, md5Sum []byte) (int64, error) `proq:"q:upsert" prop:"mid,md5Sum"`
	FindByMD5 func(ctx context.Context, e proteus.ContextQuerier, md5Sum []byte) (int64, error) `proq:"q:findByMD5" prop:"md5Sum"`
}

func init() {
	m := proteus.MapMapper{
		"upsert": `INSERT INTO text_hash (message_id, md5_sum) VALUES (:mid:, :md5Sum:)
				   ON CONFLICT (message_id)
				   DO UPDATE SET md5_sum = excluded.md5_sum`,
		"findByMD5": `SELECT message_id FROM text_hash WHERE md5_sum = :md5Sum:`,
	}
	err := proteus.ShouldBuild(context.Background(), &TextHashDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}

// CheckHash records a content hash, reporting an error when the same content
// was already stored under a different message.
func CheckHash(ctx context.Context, e proteus.ContextWrapper, mid int, hash [16]byte) error {
	midFound, err := TextHashDAO.FindByMD5(ctx, e, hash[:])
	if err == nil && midFound != 0 && midFound != int64(mid) {
		return fmt.Errorf("content already stored under message_id %d", midFound)
	}
	_, err = TextHashDAO.Upsert(ctx, e, mid, hash[:])
	if err != nil {
		log.Println("could not store text hash in database,", err)
		return fmt.Errorf("error while storing text hash: %w", err)
	}
	return nil
}

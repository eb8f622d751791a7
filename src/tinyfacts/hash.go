package tinyfacts

import (
	"context"
	"crypto/md5"
	"database/sql"
	"log"
	"strings"

	"github.com/tinyfacts/tinyfacts/src/tinyfacts/db"
)

// DuplicateHash fingerprints a text for dedup: letters, spaces and newlines
// only, case-insensitive, so trivial punctuation edits don't defeat it.
func DuplicateHash(text string) [md5.Size]byte {
	s := strings.ToUpper(hashStrip(text))
	return md5.Sum([]byte(s))
}

func hashStrip(s string) string {
	var result strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || b == ' ' || b == '\n' {
			result.WriteByte(b)
		}
	}
	return result.String()
}

// UpdateHashes ensures all stored explanations have their hashes loaded into
// the table. It's intended to be run on a separate goroutine on startup.
func UpdateHashes(sqlDB *sql.DB) {
	defer func() {
		if err := recover(); err != nil {
			log.Printf("recovered from panic in UpdateHashes: %v", err)
			return
		}
	}()
	log.Println("beginning UpdateHashes.")
	ctx := context.Background()
	rows, err := sqlDB.QueryContext(ctx, `SELECT message_id, content FROM explanation`)
	if err == sql.ErrNoRows {
		return
	}
	if err != nil {
		log.Println("encountered error while updating hashes,", err)
		return
	}
	defer rows.Close()
	var (
		messageID int
		content   string
	)
	insertCount := 0
	for rows.Next() {
		err = rows.Scan(&messageID, &content)
		if err != nil {
			log.Println("encountered error while scanning hashes,", err)
			return
		}
		hash := DuplicateHash(content)
		count, _ := db.TextHashDAO.Upsert(ctx, sqlDB, messageID, hash[:])
		if count != 0 {
			insertCount++
		}
	}
	log.Printf("upserted %d new text hashes", insertCount)
}

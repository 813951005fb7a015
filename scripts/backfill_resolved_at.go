//go:build ignore

// One-off backfill: topics resolved before resolved_at existed have a NULL
// timestamp. Copy updated_at into resolved_at for those rows.
//
// Usage: go run scripts/backfill_resolved_at.go [-db path] [-dry-run]
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get home directory: %v\n", err)
		os.Exit(1)
	}

	dbPath := flag.String("db", filepath.Join(home, ".bpos", "bpos.db"), "database file")
	dryRun := flag.Bool("dry-run", false, "report affected rows without writing")
	flag.Parse()

	db, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	var affected int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM topics
		WHERE status = 'resolved' AND resolved_at IS NULL
	`).Scan(&affected)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to count rows: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d resolved topics missing resolved_at\n", affected)
	if *dryRun || affected == 0 {
		return
	}

	result, err := db.Exec(`
		UPDATE topics
		SET resolved_at = updated_at
		WHERE status = 'resolved' AND resolved_at IS NULL
	`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to backfill: %v\n", err)
		os.Exit(1)
	}

	n, _ := result.RowsAffected()
	fmt.Printf("✓ Backfilled %d rows\n", n)
}

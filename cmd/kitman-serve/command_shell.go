package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/krabicezpapundeklu/kitman/internal/httpserver"
	"github.com/krabicezpapundeklu/kitman/internal/store"
)

// Shell opens an ad hoc SQL prompt against the database named in a server
// config file, replacing the original prototype's embedded sqlite3 shell.
type Shell struct {
	Config string `short:"c" name:"config" help:"Location of server config file" default:"kitman-serve.toml" type:"path"`
}

func (c *Shell) Run(globals *Globals) error {
	cfg, err := httpserver.NewConfig(c.Config, globals.ExpandEnv)
	if err != nil {
		return err
	}

	dsn := &mysql.Config{
		User:                 cfg.DB.User,
		Passwd:               cfg.DB.Passwd,
		Net:                  "tcp",
		Addr:                 cfg.DB.Host,
		DBName:               cfg.DB.Name,
		ParseTime:            true,
		AllowNativePasswords: true,
	}

	db, err := store.NewDB(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Printf("kitman shell connected to %s, enter SQL statements terminated by ';' (Ctrl-D to quit)\n", cfg.DB.Name)

	scanner := bufio.NewScanner(os.Stdin)
	var stmt strings.Builder

	for {
		fmt.Print("kitman> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := scanner.Text()
		stmt.WriteString(line)
		stmt.WriteByte('\n')
		if !strings.HasSuffix(strings.TrimSpace(line), ";") {
			continue
		}
		query := strings.TrimSuffix(strings.TrimSpace(stmt.String()), ";")
		stmt.Reset()
		if query == "" {
			continue
		}
		runStatement(db, query)
	}
}

func runStatement(db store.DB, query string) {
	rows, err := db.Database().Query(query)
	if err != nil {
		if _, execErr := db.Database().Exec(query); execErr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		fmt.Println("OK")
		return
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	fmt.Println(strings.Join(cols, "\t"))

	values := make([]any, len(cols))
	scanDests := make([]any, len(cols))
	for i := range values {
		scanDests[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanDests...); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		cells := make([]string, len(cols))
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				cells[i] = string(b)
			} else {
				cells[i] = fmt.Sprintf("%v", v)
			}
		}
		fmt.Println(strings.Join(cells, "\t"))
	}
}

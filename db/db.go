// Package db stores locale data in an SQLite database, so that edited
// tables can be served without recompiling.
package db

import (
	"database/sql"
	"fmt"

	"github.com/dys2p/regionnames/cldr"
)

type DB struct {
	sqlDB            *sql.DB
	addLikely        *sql.Stmt
	addLocale        *sql.Stmt
	addName          *sql.Stmt
	addSortOrder     *sql.Stmt
	deleteLikely     *sql.Stmt
	deleteLocales    *sql.Stmt
	deleteNames      *sql.Stmt
	deleteSortOrders *sql.Stmt
	getLikely        *sql.Stmt
	getLocales       *sql.Stmt
	getNames         *sql.Stmt
	getSortOrders    *sql.Stmt
}

// OpenDB opens or creates the database at path.
func OpenDB(path string) (*DB, error) {

	var sqlDB, err = sql.Open("sqlite3", path+"?_busy_timeout=10000&_journal=WAL&_sync=NORMAL")
	if err != nil {
		return nil, err
	}

	var db = &DB{
		sqlDB: sqlDB,
	}

	_, err = sqlDB.Exec(`
		pragma foreign_keys = on;
		create table if not exists locale (
			id      text    not null primary key,
			curated boolean not null -- locale has its own sort order, even if empty
		);
		create table if not exists region_name (
			locale text not null,
			code   text not null,
			name   text not null,
			foreign key (locale) references locale(id),
			primary key (locale, code)
		);
		create table if not exists sort_order (
			locale   text    not null,
			position integer not null,
			code     text    not null,
			foreign key (locale) references locale(id),
			primary key (locale, position)
		);
		create table if not exists likely_region (
			locale   text    not null,
			position integer not null,
			code     text    not null,
			foreign key (locale) references locale(id),
			primary key (locale, position)
		);
	`)
	if err != nil {
		return nil, err
	}

	db.addLikely, err = db.sqlDB.Prepare("insert into likely_region (locale, position, code) values (?, ?, ?)")
	if err != nil {
		return nil, err
	}

	db.addLocale, err = db.sqlDB.Prepare("insert into locale (id, curated) values (?, ?)")
	if err != nil {
		return nil, err
	}

	db.addName, err = db.sqlDB.Prepare("insert into region_name (locale, code, name) values (?, ?, ?)")
	if err != nil {
		return nil, err
	}

	db.addSortOrder, err = db.sqlDB.Prepare("insert into sort_order (locale, position, code) values (?, ?, ?)")
	if err != nil {
		return nil, err
	}

	// children before parents because of the foreign keys
	db.deleteLikely, err = db.sqlDB.Prepare("delete from likely_region")
	if err != nil {
		return nil, err
	}

	db.deleteNames, err = db.sqlDB.Prepare("delete from region_name")
	if err != nil {
		return nil, err
	}

	db.deleteSortOrders, err = db.sqlDB.Prepare("delete from sort_order")
	if err != nil {
		return nil, err
	}

	db.deleteLocales, err = db.sqlDB.Prepare("delete from locale")
	if err != nil {
		return nil, err
	}

	db.getLikely, err = db.sqlDB.Prepare("select locale, code from likely_region order by locale, position")
	if err != nil {
		return nil, err
	}

	db.getLocales, err = db.sqlDB.Prepare("select id, curated from locale order by id")
	if err != nil {
		return nil, err
	}

	db.getNames, err = db.sqlDB.Prepare("select locale, code, name from region_name")
	if err != nil {
		return nil, err
	}

	db.getSortOrders, err = db.sqlDB.Prepare("select locale, code from sort_order order by locale, position")
	if err != nil {
		return nil, err
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.sqlDB.Close()
}

// Export replaces the stored data by src within a single transaction.
func (db *DB) Export(src map[string]*cldr.Locale) error {

	tx, err := db.sqlDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() // no effect if tx has been committed

	for _, stmt := range []*sql.Stmt{db.deleteLikely, db.deleteNames, db.deleteSortOrders, db.deleteLocales} {
		if _, err := tx.Stmt(stmt).Exec(); err != nil {
			return err
		}
	}

	for id, locale := range src {
		if _, err := tx.Stmt(db.addLocale).Exec(id, locale.Sorted != nil); err != nil {
			return fmt.Errorf("adding locale %s: %w", id, err)
		}
		for code, name := range locale.Names {
			if _, err := tx.Stmt(db.addName).Exec(id, code, name); err != nil {
				return fmt.Errorf("adding name %s/%s: %w", id, code, err)
			}
		}
		for i, code := range locale.Sorted {
			if _, err := tx.Stmt(db.addSortOrder).Exec(id, i, code); err != nil {
				return fmt.Errorf("adding sort order %s/%d: %w", id, i, err)
			}
		}
		for i, code := range locale.Likely {
			if _, err := tx.Stmt(db.addLikely).Exec(id, i, code); err != nil {
				return fmt.Errorf("adding likely region %s/%d: %w", id, i, err)
			}
		}
	}

	return tx.Commit()
}

// Sources reads all locales in the shape regionnames.Load accepts.
func (db *DB) Sources() (map[string]*cldr.Locale, error) {

	// table locale
	rows, err := db.getLocales.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var src = map[string]*cldr.Locale{}
	for rows.Next() {
		var id string
		var curated bool
		if err := rows.Scan(&id, &curated); err != nil {
			return nil, err
		}
		var locale = &cldr.Locale{
			ID:    id,
			Names: map[string]string{},
		}
		if curated {
			locale.Sorted = []string{}
		}
		src[id] = locale
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// table region_name
	rows, err = db.getNames.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id, code, name string
		if err := rows.Scan(&id, &code, &name); err != nil {
			return nil, err
		}
		if locale, ok := src[id]; ok {
			locale.Names[code] = name
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// table sort_order
	rows, err = db.getSortOrders.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id, code string
		if err := rows.Scan(&id, &code); err != nil {
			return nil, err
		}
		if locale, ok := src[id]; ok {
			locale.Sorted = append(locale.Sorted, code)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// table likely_region
	rows, err = db.getLikely.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id, code string
		if err := rows.Scan(&id, &code); err != nil {
			return nil, err
		}
		if locale, ok := src[id]; ok {
			locale.Likely = append(locale.Likely, code)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return src, nil
}

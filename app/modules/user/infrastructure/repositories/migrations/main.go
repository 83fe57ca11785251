package usermigrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()

func init() {
	// Migration IDs are derived from the file name of each registered migration.
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}

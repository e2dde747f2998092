package database

import "time"

type Config struct {
	FileName    string        `envconfig:"PLINKO_DB_FILE" default:"plinko.db"`
	OpenTimeout time.Duration `envconfig:"PLINKO_DB_OPEN_TIMEOUT" default:"1s"`
}

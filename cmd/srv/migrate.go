package main

import (
	"github.com/strandsapp/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) migrate(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	return migration.AutoMigrate(s.baseContext())
}
